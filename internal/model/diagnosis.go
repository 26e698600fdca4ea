package model

// DiagnosisCode is read-only reference data (ICD-10 style) loaded by the
// seeder.
type DiagnosisCode struct {
	ID          int64  `json:"id" db:"id"`
	Code        string `json:"code" db:"code"`
	Description string `json:"description" db:"description"`
}

const (
	DefaultDiagnosisSearchLimit = 50
	MaxDiagnosisSearchLimit     = 100
)

type DiagnosisSearchResponse struct {
	Results []DiagnosisCode `json:"results"`
	Total   int             `json:"total"`
}
