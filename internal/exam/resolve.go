// Package exam picks the authoritative certificate out of a climber's exam
// records.
package exam

import (
	"time"

	"climbreg/internal/exam/models"
	id "climbreg/pkg/domain"
)

// Resolve selects the one certificate that represents a climber, given all of
// their exam rows in sheet order. Rows are ranked, best first:
//
//  1. red and unexpired, latest exam date
//  2. green and unexpired, latest exam date
//  3. expired, last seen
//  4. anything else (no expiry, unknown or empty kind), last seen
//
// A row without an exam date loses to any other row of the same tier.
// Expiry is compared by calendar date, so a certificate is valid through its
// expiry day.
func Resolve(rows []*models.ExamRow, now time.Time) (*models.Certificate, error) {
	if len(rows) == 0 {
		return nil, notFound("")
	}
	today := models.DateOf(now)

	var red, green, expired, invalid *models.Certificate
	for _, row := range rows {
		c, err := candidate(row)
		if err != nil {
			return nil, err
		}
		switch {
		case c.ExpiryDate.IsZero():
			invalid = c
		case c.ExpiryDate.Before(today):
			expired = c
		case c.Kind == models.KindRed:
			if supersedes(c, red) {
				red = c
			}
		case c.Kind == models.KindGreen:
			if supersedes(c, green) {
				green = c
			}
		default:
			invalid = c
		}
	}

	best := red
	for _, next := range []*models.Certificate{green, expired, invalid} {
		if best == nil {
			best = next
		}
	}

	if missing := missingFields(best); len(missing) > 0 {
		return nil, invalidCertificate(rows[0].ID, missing)
	}
	return best, nil
}

func candidate(row *models.ExamRow) (*models.Certificate, error) {
	examDate, _, err := ParseDate(row.ExamDate)
	if err != nil {
		return nil, malformedDate(row.ID, "examDate", row.ExamDate)
	}
	expiry, hasExpiry, err := ParseDate(row.ExpiryDate)
	if err != nil {
		return nil, malformedDate(row.ID, "expiryDate", row.ExpiryDate)
	}
	filled, hasFilled, err := ParseDate(row.FormFillTime)
	if err != nil {
		return nil, malformedDate(row.ID, "formFillTime", row.FormFillTime)
	}
	if !hasExpiry && hasFilled {
		expiry = filled.Add(formFillValidity)
	}

	return &models.Certificate{
		// rows were selected by the code they carry
		IDCode:     id.IDCode(row.ID),
		Kind:       models.ParseKind(row.Certificate),
		Name:       row.Name,
		Examiner:   row.Examiner,
		ExamDate:   examDate,
		ExpiryDate: expiry,
	}, nil
}

func supersedes(c, best *models.Certificate) bool {
	if best == nil || best.ExamDate.IsZero() {
		return true
	}
	return !c.ExamDate.IsZero() && c.ExamDate.After(best.ExamDate)
}

func missingFields(c *models.Certificate) []string {
	var missing []string
	if c.Name == "" {
		missing = append(missing, "name")
	}
	if c.Examiner == "" {
		missing = append(missing, "examiner")
	}
	if c.ExamDate.IsZero() {
		missing = append(missing, "examDate")
	}
	if c.ExpiryDate.IsZero() {
		missing = append(missing, "expiryDate")
	}
	return missing
}
