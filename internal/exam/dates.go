package exam

import (
	"strings"
	"time"

	"climbreg/internal/exam/models"
)

// formFillValidity is how long a filled-in exam form stands in for a
// missing expiry date.
const formFillValidity = 42 * 24 * time.Hour

// Layouts seen in the exam sheet: ISO dates, timestamps written by the
// registration flow, and the spreadsheet's Estonian and US locale formats.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateTime,
	"02.01.2006",
	"02.01.2006 15:04:05",
	"2.1.2006",
	"1/2/2006",
	"1/2/2006 15:04:05",
}

// ParseDate returns the UTC calendar date of raw. An empty cell yields the
// zero time and ok == false.
func ParseDate(raw string) (date time.Time, ok bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false, nil
	}
	for _, layout := range dateLayouts {
		if t, perr := time.Parse(layout, raw); perr == nil {
			return models.DateOf(t), true, nil
		}
	}
	return time.Time{}, false, ErrMalformedDate
}

// FormatDate renders a calendar date the way the sheets store it.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
