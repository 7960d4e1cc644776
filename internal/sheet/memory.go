package sheet

import (
	"context"
	"fmt"
	"sync"
)

// MemoryAccess keeps tables in process memory. It backs tests and dry runs
// and follows the remote store's addressing rules.
type MemoryAccess struct {
	mu     sync.RWMutex
	tables map[string][][]string
}

// NewMemoryAccess returns an empty in-memory store.
func NewMemoryAccess() *MemoryAccess {
	return &MemoryAccess{tables: make(map[string][][]string)}
}

// Load replaces the contents of table with a copy of rows.
func (m *MemoryAccess) Load(table string, rows [][]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[table] = copyRows(rows)
}

// Rows returns a copy of the current contents of table.
func (m *MemoryAccess) Rows(table string) [][]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyRows(m.tables[table])
}

func (m *MemoryAccess) GetRange(_ context.Context, rng string) ([][]string, error) {
	table, position, err := ParseRange(rng)
	if err != nil {
		return nil, remoteAccess("read "+rng, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	rows, ok := m.tables[table]
	if !ok {
		return nil, remoteAccess("read "+rng, fmt.Errorf("table %q does not exist", table))
	}
	if position < 0 {
		return copyRows(rows), nil
	}
	if position >= len(rows) {
		return [][]string{}, nil
	}
	return copyRows(rows[position : position+1]), nil
}

func (m *MemoryAccess) UpdateRange(_ context.Context, rng string, patch Patch) error {
	table, position, err := ParseRange(rng)
	if err == nil && position < 0 {
		err = fmt.Errorf("range %q does not address a row", rng)
	}
	if err != nil {
		return remoteAccess("update "+rng, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	rows, ok := m.tables[table]
	if !ok {
		return remoteAccess("update "+rng, fmt.Errorf("table %q does not exist", table))
	}
	for len(rows) <= position {
		rows = append(rows, []string{})
	}
	rows[position] = applyPatch(rows[position], patch)
	m.tables[table] = rows
	return nil
}

func (m *MemoryAccess) AppendRow(_ context.Context, table string, patch Patch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows, ok := m.tables[table]
	if !ok {
		return remoteAccess("append "+table, fmt.Errorf("table %q does not exist", table))
	}
	m.tables[table] = append(rows, applyPatch(nil, patch))
	return nil
}

func applyPatch(row []string, patch Patch) []string {
	out := append([]string{}, row...)
	for len(out) < len(patch) {
		out = append(out, "")
	}
	for i, cell := range patch {
		if cell != nil {
			out[i] = *cell
		}
	}
	return out
}

func copyRows(rows [][]string) [][]string {
	if rows == nil {
		return nil
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string{}, row...)
	}
	return out
}
