package models

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"climbreg/internal/sheet"
	id "climbreg/pkg/domain"
)

// Kind is the normalized certificate kind.
type Kind string

const (
	KindGreen   Kind = "green"
	KindRed     Kind = "red"
	KindNone    Kind = "none"
	KindUnknown Kind = "unknown"
)

// registry vocabulary used in the exam and card sheets
var registryValues = map[Kind]string{
	KindGreen: "roheline",
	KindRed:   "punane",
}

// ParseKind normalizes a certificate cell. Both the registry vocabulary and
// the English names are accepted, in any case.
func ParseKind(raw string) Kind {
	// Casers are stateful, so one is made per call.
	switch cases.Fold().String(strings.TrimSpace(raw)) {
	case "roheline", "green":
		return KindGreen
	case "punane", "red":
		return KindRed
	case "":
		return KindNone
	default:
		return KindUnknown
	}
}

// RegistryValue returns the word the sheets use for k. Only green and red
// can be written.
func (k Kind) RegistryValue() (string, bool) {
	v, ok := registryValues[k]
	return v, ok
}

func (k Kind) IsCertified() bool {
	return k == KindGreen || k == KindRed
}

// ExamRow is one row of the exam sheet. A climber can have many.
type ExamRow struct {
	sheet.Row
	ID           string
	Certificate  string
	Name         string
	Examiner     string
	ExamDate     string
	ExpiryDate   string
	FormFillTime string
	Email        string
	Comment      string
}

// ExamSchema maps the exam sheet by its header row.
func ExamSchema(table string) sheet.Schema[*ExamRow] {
	return sheet.Schema[*ExamRow]{
		Name: table,
		New:  func() *ExamRow { return &ExamRow{} },
		Columns: []sheet.Column[*ExamRow]{
			{Name: "id", Field: func(r *ExamRow) *string { return &r.ID }},
			{Name: "certificate", Field: func(r *ExamRow) *string { return &r.Certificate }},
			{Name: "name", Field: func(r *ExamRow) *string { return &r.Name }},
			{Name: "examiner", Field: func(r *ExamRow) *string { return &r.Examiner }},
			{Name: "examDate", Field: func(r *ExamRow) *string { return &r.ExamDate }},
			{Name: "expiryDate", Field: func(r *ExamRow) *string { return &r.ExpiryDate }},
			{Name: "formFillTime", Field: func(r *ExamRow) *string { return &r.FormFillTime }},
			{Name: "email", Field: func(r *ExamRow) *string { return &r.Email }},
			{Name: "comment", Field: func(r *ExamRow) *string { return &r.Comment }},
		},
	}
}

// Certificate is the authoritative record picked for one climber. Dates are
// calendar dates at UTC midnight; the zero time means absent.
type Certificate struct {
	IDCode     id.IDCode `json:"id_code"`
	Kind       Kind      `json:"kind"`
	Name       string    `json:"name"`
	Examiner   string    `json:"examiner"`
	ExamDate   time.Time `json:"exam_date"`
	ExpiryDate time.Time `json:"expiry_date"`
}

// ValidOn reports whether the certificate is a green or red one that has not
// expired by the calendar date of now. The expiry day itself still counts.
func (c *Certificate) ValidOn(now time.Time) bool {
	return c.Kind.IsCertified() && !c.ExpiryDate.IsZero() && !c.ExpiryDate.Before(DateOf(now))
}

// Status is how a certificate stands on a given day.
type Status string

const (
	StatusValid   Status = "valid"
	StatusExpired Status = "expired"
	// StatusInvalid covers certificates with no usable kind or expiry.
	StatusInvalid Status = "invalid"
)

// StatusOn classifies the certificate on the calendar date of now.
func (c *Certificate) StatusOn(now time.Time) Status {
	switch {
	case c.ValidOn(now):
		return StatusValid
	case !c.ExpiryDate.IsZero() && c.ExpiryDate.Before(DateOf(now)):
		return StatusExpired
	default:
		return StatusInvalid
	}
}

// DateOf truncates t to its UTC calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Registration adds a new exam row for a climber who passed an exam.
type Registration struct {
	IDCode   id.IDCode
	Name     string
	Email    string
	Kind     Kind
	ExamDate time.Time
	Comment  string
	Examiner string
}
