// Package testutil provides fixtures and helpers shared by package tests.
package testutil

import (
	"testing"
	"time"

	"climbreg/internal/sheet"
)

const (
	ExamTable = "Andmebaas"
	CardTable = "Füüsilised kaardid"
)

// Today is the date the registry fixtures are written against.
var Today = time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// ExamRows is a discovered-schema exam sheet: a blank caption, a header with
// the columns in a non-canonical order, then data.
func ExamRows() [][]string {
	return [][]string{
		{},
		{"id", "name", "certificate", "formFillTime", "examDate", "expiryDate", "examiner"},
		{"10001010002", "Robert Roheline", "roheline", "", "2022-12-08", "2026-12-08", "Ilmar Instruktor"},
		{"20202020004", "Pulvi Punane", "punane", "", "2022-12-15", "2026-12-15", "Eerik Eksamineerija"},
		{"30303030004", "Kaarel Kehtetu", "punane", "", "2017-11-15", "2021-03-06", "Tiit Testija"},
		{"40404040009"},
		{"50505050003", "Agnes Aegumas", "roheline", "", "2012-12-01", "2024-05-10", "Andrei Popov"},
		{"60606060008", "Virve Vigane", "", "2022-35-33"},
		{"70000000007", "Ain Vormiga", "roheline", "", "2024-02-20", "", "Eerik Eksamineerija"},
		{"80000000008", "Viktor Vormiga", "roheline", "2026-01-03", "2023-12-01", "", "Eerik Eksamineerija"},
		{"90000000009", "Kaspar Katsejänes", "roheline", "", "2023-01-30", "", "Eerik Eksamineerija"},
		{"90000000009", "Kaspar Katsejänes", "roheline", "", "2023-01-28", "2026-05-25", "Tiit Testija"},
		{"90000000009", "Kaspar Katsejänes", "punane", "", "2023-01-30", "2024-07-20", "Indrek Instruktor"},
	}
}

// CardRows is a fixed-schema card sheet with a blank caption row.
func CardRows() [][]string {
	return [][]string{
		{},
		{"01-AAA111", "roheline"},
		{"01-AAA112", "punane"},
		{"01-AAA113", "roheline"},
		{"01-AAA114", "punane"},
		{"01-AAA115", "roheline"},
		{"01-AAA116", "punane", "20202020004"},
		{"01-AAA117", "roheline", "90000000009"},
		{"01-AAA118", "punane", "36409110292"},
		{"01-AAA119", "roheline"},
	}
}

// NewRegistry returns an in-memory store loaded with both fixture sheets.
func NewRegistry(t *testing.T) *sheet.MemoryAccess {
	t.Helper()
	access := sheet.NewMemoryAccess()
	access.Load(ExamTable, ExamRows())
	access.Load(CardTable, CardRows())
	return access
}
