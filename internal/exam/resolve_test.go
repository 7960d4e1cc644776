package exam_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"climbreg/internal/exam"
	"climbreg/internal/exam/models"
	"climbreg/internal/sheet"
	dErrors "climbreg/pkg/domain-errors"
	"climbreg/pkg/testutil"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fixtureRows returns the exam fixture rows for code, in sheet order.
func fixtureRows(t *testing.T, code string) []*models.ExamRow {
	t.Helper()
	table, err := sheet.NewTable(testutil.NewRegistry(t), models.ExamSchema(testutil.ExamTable))
	require.NoError(t, err)
	rows, err := table.Fetch(context.Background(), func(r *models.ExamRow) bool { return r.ID == code })
	require.NoError(t, err)
	return rows
}

func TestResolveFixtures(t *testing.T) {
	tests := []struct {
		code string
		want models.Certificate
	}{
		{
			code: "10001010002",
			want: models.Certificate{Kind: models.KindGreen, Name: "Robert Roheline", Examiner: "Ilmar Instruktor", ExamDate: date(2022, 12, 8), ExpiryDate: date(2026, 12, 8)},
		},
		{
			code: "20202020004",
			want: models.Certificate{Kind: models.KindRed, Name: "Pulvi Punane", Examiner: "Eerik Eksamineerija", ExamDate: date(2022, 12, 15), ExpiryDate: date(2026, 12, 15)},
		},
		{
			code: "30303030004",
			want: models.Certificate{Kind: models.KindRed, Name: "Kaarel Kehtetu", Examiner: "Tiit Testija", ExamDate: date(2017, 11, 15), ExpiryDate: date(2021, 3, 6)},
		},
		{
			code: "50505050003",
			want: models.Certificate{Kind: models.KindGreen, Name: "Agnes Aegumas", Examiner: "Andrei Popov", ExamDate: date(2012, 12, 1), ExpiryDate: date(2024, 5, 10)},
		},
		{
			// expiry derived from the form fill time
			code: "80000000008",
			want: models.Certificate{Kind: models.KindGreen, Name: "Viktor Vormiga", Examiner: "Eerik Eksamineerija", ExamDate: date(2023, 12, 1), ExpiryDate: date(2026, 2, 14)},
		},
		{
			// the only unexpired row wins over a newer row without expiry
			code: "90000000009",
			want: models.Certificate{Kind: models.KindGreen, Name: "Kaspar Katsejänes", Examiner: "Tiit Testija", ExamDate: date(2023, 1, 28), ExpiryDate: date(2026, 5, 25)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := exam.Resolve(fixtureRows(t, tt.code), testutil.Today)
			require.NoError(t, err)
			tt.want.IDCode = got.IDCode
			assert.Equal(t, tt.code, got.IDCode.String())
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestResolveFixtureErrors(t *testing.T) {
	tests := []struct {
		code string
		err  error
		kind dErrors.Code
	}{
		{"00000000000", exam.ErrNotFound, dErrors.CodeNotFound},
		{"40404040009", exam.ErrInvalidCertificate, dErrors.CodeDataIntegrity},
		{"70000000007", exam.ErrInvalidCertificate, dErrors.CodeDataIntegrity},
		{"60606060008", exam.ErrMalformedDate, dErrors.CodeDataIntegrity},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			_, err := exam.Resolve(fixtureRows(t, tt.code), testutil.Today)
			require.ErrorIs(t, err, tt.err)
			assert.True(t, dErrors.HasCode(err, tt.kind))
		})
	}
}

func TestResolveAfterAllExpire(t *testing.T) {
	got, err := exam.Resolve(fixtureRows(t, "90000000009"), date(2026, 6, 1))
	require.NoError(t, err)
	// the last expired row in sheet order
	assert.Equal(t, models.KindRed, got.Kind)
	assert.Equal(t, "Indrek Instruktor", got.Examiner)
}

func TestResolveTiers(t *testing.T) {
	now := date(2025, 6, 1)
	row := func(kind, examDate, expiry, examiner string) *models.ExamRow {
		return &models.ExamRow{
			ID:          "10001010002",
			Name:        "Robert Roheline",
			Certificate: kind,
			ExamDate:    examDate,
			ExpiryDate:  expiry,
			Examiner:    examiner,
		}
	}

	t.Run("red beats a newer green", func(t *testing.T) {
		got, err := exam.Resolve([]*models.ExamRow{
			row("punane", "2020-01-01", "2026-01-01", "A"),
			row("roheline", "2024-01-01", "2027-01-01", "B"),
		}, now)
		require.NoError(t, err)
		assert.Equal(t, "A", got.Examiner)
	})

	t.Run("latest exam date wins within a tier", func(t *testing.T) {
		got, err := exam.Resolve([]*models.ExamRow{
			row("roheline", "2024-01-01", "2027-01-01", "A"),
			row("roheline", "2024-03-01", "2027-01-01", "B"),
			row("roheline", "2023-01-01", "2027-01-01", "C"),
		}, now)
		require.NoError(t, err)
		assert.Equal(t, "B", got.Examiner)
	})

	t.Run("equal exam dates keep the first row", func(t *testing.T) {
		got, err := exam.Resolve([]*models.ExamRow{
			row("roheline", "2024-01-01", "2027-01-01", "A"),
			row("roheline", "2024-01-01", "2028-01-01", "B"),
		}, now)
		require.NoError(t, err)
		assert.Equal(t, "A", got.Examiner)
	})

	t.Run("row without exam date is superseded", func(t *testing.T) {
		got, err := exam.Resolve([]*models.ExamRow{
			row("punane", "", "2027-01-01", "A"),
			row("punane", "2010-01-01", "2027-01-01", "B"),
		}, now)
		require.NoError(t, err)
		assert.Equal(t, "B", got.Examiner)

		got, err = exam.Resolve([]*models.ExamRow{
			row("punane", "2010-01-01", "2027-01-01", "B"),
			row("punane", "", "2027-01-01", "A"),
		}, now)
		require.NoError(t, err)
		assert.Equal(t, "B", got.Examiner)
	})

	t.Run("expired beats unknown kind", func(t *testing.T) {
		got, err := exam.Resolve([]*models.ExamRow{
			row("roheline", "2010-01-01", "2012-01-01", "A"),
			row("kollane", "2024-01-01", "2027-01-01", "B"),
		}, now)
		require.NoError(t, err)
		assert.Equal(t, "A", got.Examiner)
	})

	t.Run("unknown kind alone is returned as is", func(t *testing.T) {
		got, err := exam.Resolve([]*models.ExamRow{
			row("kollane", "2024-01-01", "2027-01-01", "B"),
		}, now)
		require.NoError(t, err)
		assert.Equal(t, models.KindUnknown, got.Kind)
		assert.False(t, got.ValidOn(now))
	})

	t.Run("expiry day is still valid", func(t *testing.T) {
		got, err := exam.Resolve([]*models.ExamRow{
			row("punane", "2010-01-01", "2025-06-01", "A"),
			row("roheline", "2024-01-01", "2027-01-01", "B"),
		}, time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, "A", got.Examiner)
	})

	t.Run("malformed date fails the whole lookup", func(t *testing.T) {
		_, err := exam.Resolve([]*models.ExamRow{
			row("roheline", "2024-01-01", "2027-01-01", "A"),
			row("roheline", "yesterday", "2027-01-01", "B"),
		}, now)
		assert.ErrorIs(t, err, exam.ErrMalformedDate)
	})

	t.Run("empty input is not found", func(t *testing.T) {
		_, err := exam.Resolve(nil, now)
		assert.ErrorIs(t, err, exam.ErrNotFound)
	})
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{"2022-12-08", date(2022, 12, 8)},
		{"2026-01-03T10:15:30Z", date(2026, 1, 3)},
		{"2026-01-03T10:15:30.123Z", date(2026, 1, 3)},
		{"2026-01-03 10:15:30", date(2026, 1, 3)},
		{"08.12.2022", date(2022, 12, 8)},
		{"8.12.2022", date(2022, 12, 8)},
		{"08.12.2022 14:00:00", date(2022, 12, 8)},
		{"12/8/2022", date(2022, 12, 8)},
		{" 2022-12-08 ", date(2022, 12, 8)},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok, err := exam.ParseDate(tt.raw)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("empty is absent", func(t *testing.T) {
		got, ok, err := exam.ParseDate("")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.True(t, got.IsZero())
	})

	for _, raw := range []string{"2022-35-33", "not a date", "2022/12/08"} {
		t.Run("rejects "+raw, func(t *testing.T) {
			_, _, err := exam.ParseDate(raw)
			assert.ErrorIs(t, err, exam.ErrMalformedDate)
		})
	}
}
