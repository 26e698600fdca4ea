package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const (
	DefaultConsultationPageSize = 100
	MaxConsultationPageSize     = 500
	MaxPatientNameLength        = 255
)

// Consultation is a clinical note tying a patient visit to one or more
// diagnosis codes. It is immutable once created.
type Consultation struct {
	ID               int64           `json:"id" db:"id"`
	PatientName      string          `json:"patient_name" db:"patient_name"`
	ConsultationDate time.Time       `json:"consultation_date" db:"consultation_date"`
	Notes            string          `json:"notes" db:"notes"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	DiagnosisCodes   []DiagnosisCode `json:"diagnosis_codes" db:"-"`
}

type CreateConsultationRequest struct {
	PatientName      string    `json:"patient_name"`
	ConsultationDate time.Time `json:"consultation_date"`
	Notes            string    `json:"notes"`
	DiagnosisCodeIDs []int64   `json:"diagnosis_code_ids" validate:"min=1,dive,gt=0"`
}

// consultationDateLayouts are tried in order. Layouts without a zone are read
// as UTC.
var consultationDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// UnmarshalJSON accepts consultation_date as RFC 3339, a naive timestamp or
// a plain date. A missing or null date stays zero.
func (r *CreateConsultationRequest) UnmarshalJSON(data []byte) error {
	type plain CreateConsultationRequest
	aux := struct {
		*plain
		ConsultationDate json.RawMessage `json:"consultation_date"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	raw := bytes.TrimSpace(aux.ConsultationDate)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		r.ConsultationDate = time.Time{}
		return nil
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("consultation_date must be a string: %w", err)
	}
	parsed, err := ParseConsultationDate(value)
	if err != nil {
		return err
	}
	r.ConsultationDate = parsed
	return nil
}

func ParseConsultationDate(value string) (time.Time, error) {
	for _, layout := range consultationDateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid consultation_date %q", value)
}

type ConsultationListResponse struct {
	Consultations []Consultation `json:"consultations"`
	Total         int            `json:"total"`
}
