// Package sheet maps spreadsheet tables onto typed entities.
//
// Access is the thin transport to the remote tabular store; Table builds a
// generic entity mapper on top of it that discovers column order from a
// header row (or takes a fixed order), filters rows by predicate and
// remembers where each returned entity came from so it can be written back
// to exactly that row.
package sheet

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

//go:generate mockgen -source=access.go -destination=mocks/mocks.go -package=mocks Access

// Access reads and writes raw text cells of a remote spreadsheet.
type Access interface {
	// GetRange returns the rows of rng. Every cell must be text.
	GetRange(ctx context.Context, rng string) ([][]string, error)

	// UpdateRange overwrites the cells of the single row addressed by rng.
	UpdateRange(ctx context.Context, rng string, patch Patch) error

	// AppendRow adds patch as a new row after the last row of table.
	AppendRow(ctx context.Context, table string, patch Patch) error
}

// Patch is one row of cell writes. A nil cell leaves the stored value as is.
type Patch []*string

// Text returns a patch cell holding s.
func Text(s string) *string {
	return &s
}

// TableRange addresses a whole table.
func TableRange(table string) string {
	return table
}

// RowRange addresses the single row at the 0-based position of table.
func RowRange(table string, position int) string {
	row := position + 1
	return fmt.Sprintf("%s!%d:%d", quoteTable(table), row, row)
}

// ParseRange splits rng into its table name and, for a single-row range, the
// 0-based row position. Whole-table ranges report position -1.
func ParseRange(rng string) (table string, position int, err error) {
	name, rows, hasRows := cutRange(rng)
	table = unquoteTable(name)
	if table == "" {
		return "", 0, fmt.Errorf("range %q has no table name", rng)
	}
	if !hasRows {
		return table, -1, nil
	}

	from, to, ok := strings.Cut(rows, ":")
	if !ok || from != to {
		return "", 0, fmt.Errorf("range %q must address exactly one row", rng)
	}
	row, err := strconv.Atoi(from)
	if err != nil || row < 1 {
		return "", 0, fmt.Errorf("range %q has an invalid row number", rng)
	}
	return table, row - 1, nil
}

// cutRange splits at the '!' that follows the (possibly quoted) table name.
func cutRange(rng string) (name, rows string, ok bool) {
	if strings.HasPrefix(rng, "'") {
		for i := 1; i < len(rng); i++ {
			if rng[i] != '\'' {
				continue
			}
			if i+1 < len(rng) && rng[i+1] == '\'' {
				i++
				continue
			}
			rest := rng[i+1:]
			if strings.HasPrefix(rest, "!") {
				return rng[:i+1], rest[1:], true
			}
			return rng[:i+1], "", false
		}
		return rng, "", false
	}
	return strings.Cut(rng, "!")
}

func quoteTable(table string) string {
	for _, r := range table {
		if !(r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return "'" + strings.ReplaceAll(table, "'", "''") + "'"
		}
	}
	return table
}

func unquoteTable(name string) string {
	if len(name) >= 2 && strings.HasPrefix(name, "'") && strings.HasSuffix(name, "'") {
		return strings.ReplaceAll(name[1:len(name)-1], "''", "'")
	}
	return name
}
