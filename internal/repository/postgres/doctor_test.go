package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/cliniccare-api/internal/model"
	"github.com/jwalitptl/cliniccare-api/internal/repository"
)

var doctorRowColumns = []string{"id", "username", "email", "full_name", "hashed_password", "is_active", "created_at"}

func TestDoctorCreate_Success(t *testing.T) {
	mock, repos := setupMockDB(t)
	createdAt := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO doctors`).
		WithArgs("doctor", "doctor@cliniccare.com", "Dr. John Smith", "hash", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, createdAt))

	d := &model.Doctor{
		Username:       "doctor",
		Email:          "doctor@cliniccare.com",
		FullName:       "Dr. John Smith",
		HashedPassword: "hash",
		IsActive:       true,
	}
	require.NoError(t, repos.Doctors.Create(context.Background(), d))

	assert.Equal(t, int64(1), d.ID)
	assert.Equal(t, createdAt, d.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorCreate_UniqueViolation(t *testing.T) {
	mock, repos := setupMockDB(t)

	mock.ExpectQuery(`INSERT INTO doctors`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "doctors_username_key"})

	err := repos.Doctors.Create(context.Background(), &model.Doctor{Username: "doctor"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrDuplicate))
	assert.Contains(t, err.Error(), "doctors_username_key")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorGetByUsername(t *testing.T) {
	mock, repos := setupMockDB(t)
	createdAt := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM doctors WHERE username = \$1`).
		WithArgs("doctor").
		WillReturnRows(sqlmock.NewRows(doctorRowColumns).
			AddRow(1, "doctor", "doctor@cliniccare.com", "Dr. John Smith", "hash", false, createdAt))

	d, err := repos.Doctors.GetByUsername(context.Background(), "doctor")
	require.NoError(t, err)
	assert.Equal(t, "doctor", d.Username)
	assert.Equal(t, "hash", d.HashedPassword)
	assert.False(t, d.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorGetByEmail_NotFound(t *testing.T) {
	mock, repos := setupMockDB(t)

	mock.ExpectQuery(`FROM doctors WHERE email = \$1`).
		WithArgs("ghost@cliniccare.com").
		WillReturnRows(sqlmock.NewRows(doctorRowColumns))

	_, err := repos.Doctors.GetByEmail(context.Background(), "ghost@cliniccare.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorListAndCount(t *testing.T) {
	mock, repos := setupMockDB(t)
	now := time.Now()

	mock.ExpectQuery(`FROM doctors ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows(doctorRowColumns).
			AddRow(1, "doctor", "doctor@cliniccare.com", "Dr. John Smith", "hash", true, now).
			AddRow(2, "house", "house@cliniccare.com", "Dr. Gregory House", "hash", true, now))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM doctors`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	doctors, err := repos.Doctors.List(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 2)
	assert.Equal(t, "house", doctors[1].Username)

	count, err := repos.Doctors.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
