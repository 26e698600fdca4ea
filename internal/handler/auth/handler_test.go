package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/cliniccare-api/internal/middleware"
	"github.com/jwalitptl/cliniccare-api/internal/model"
	apperrors "github.com/jwalitptl/cliniccare-api/pkg/errors"
	"github.com/jwalitptl/cliniccare-api/pkg/httputil"
	"github.com/jwalitptl/cliniccare-api/pkg/validator"
)

type mockService struct {
	RegisterFunc    func(ctx context.Context, req *model.RegisterRequest) (*model.Doctor, string, error)
	LoginFunc       func(ctx context.Context, username, password string) (*model.Doctor, string, error)
	ListDoctorsFunc func(ctx context.Context) ([]*model.Doctor, error)
}

func (m *mockService) Register(ctx context.Context, req *model.RegisterRequest) (*model.Doctor, string, error) {
	return m.RegisterFunc(ctx, req)
}

func (m *mockService) Login(ctx context.Context, username, password string) (*model.Doctor, string, error) {
	return m.LoginFunc(ctx, username, password)
}

func (m *mockService) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	return m.ListDoctorsFunc(ctx)
}

var testDoctor = &model.Doctor{
	ID:             1,
	Username:       "doctor",
	Email:          "doctor@cliniccare.com",
	FullName:       "Dr. John Smith",
	HashedPassword: "$2a$12$secret",
	IsActive:       true,
}

func fakeAuthenticate(c *gin.Context) {
	if c.GetHeader("Authorization") != "Bearer good" {
		httputil.RespondWithError(c, apperrors.Unauthenticated("not authenticated"))
		return
	}
	c.Set(middleware.ContextDoctor, testDoctor)
	c.Next()
}

func newRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc, validator.New()).RegisterRoutes(r.Group("/api"), fakeAuthenticate)
	return r
}

func loginService() *mockService {
	return &mockService{
		LoginFunc: func(ctx context.Context, username, password string) (*model.Doctor, string, error) {
			if username == "doctor" && password == "password123" {
				return testDoctor, "signed-token", nil
			}
			return nil, "", apperrors.Unauthenticated("incorrect username or password")
		},
	}
}

func TestRegister(t *testing.T) {
	var got *model.RegisterRequest
	svc := &mockService{
		RegisterFunc: func(ctx context.Context, req *model.RegisterRequest) (*model.Doctor, string, error) {
			got = req
			return testDoctor, "signed-token", nil
		},
	}
	r := newRouter(svc)

	body := `{"username":"doctor","email":"doctor@cliniccare.com","full_name":"Dr. John Smith","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "doctor", got.Username)
	assert.Equal(t, "password123", got.Password)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp["access_token"])
	assert.Equal(t, "bearer", resp["token_type"])
	doctor := resp["doctor"].(map[string]interface{})
	assert.Equal(t, "doctor", doctor["username"])
	assert.NotContains(t, w.Body.String(), "hashed_password")
	assert.NotContains(t, w.Body.String(), "$2a$")
}

func TestRegister_ErrorsMapToStatus(t *testing.T) {
	svc := &mockService{
		RegisterFunc: func(ctx context.Context, req *model.RegisterRequest) (*model.Doctor, string, error) {
			return nil, "", apperrors.Conflict("username already registered", nil)
		},
	}
	r := newRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"username":"doctor"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"detail":"username already registered","kind":"conflict"}`, w.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestLogin_Form(t *testing.T) {
	r := newRouter(loginService())

	form := url.Values{"username": {"doctor"}, "password": {"password123"}}
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"access_token":"signed-token","token_type":"bearer"}`, w.Body.String())

	form.Set("password", "wrong")
	req = httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestLogin_MissingFields(t *testing.T) {
	r := newRouter(loginService())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("username=doctor"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "password is required")
}

func TestLoginJSON(t *testing.T) {
	r := newRouter(loginService())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login-json",
		strings.NewReader(`{"username":"doctor","password":"password123"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp model.DoctorTokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, int64(1), resp.Doctor.ID)
}

func TestMe(t *testing.T) {
	r := newRouter(&mockService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"doctor"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListDoctors(t *testing.T) {
	svc := &mockService{
		ListDoctorsFunc: func(ctx context.Context) ([]*model.Doctor, error) {
			return []*model.Doctor{testDoctor}, nil
		},
	}
	r := newRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/doctors", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var doctors []model.Doctor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doctors))
	assert.Len(t, doctors, 1)
}
