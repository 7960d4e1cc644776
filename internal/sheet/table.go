package sheet

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultPositionCapacity bounds how many fetched entities a table remembers.
const DefaultPositionCapacity = 4096

// Row positions: the human caption sits in row 0, the machine header in row 1.
const (
	headerPosition      = 1
	discoveredDataStart = 2
	fixedDataStart      = 1
	missingColumn       = -1
)

// nextRef hands out instance references. It is shared by all tables so a
// reference never means anything to a table that did not issue it.
var nextRef atomic.Uint64

// Row is embedded by every entity struct. It carries the reference a Table
// uses to find the row the entity was read from.
type Row struct {
	ref uint64
}

func (r *Row) sheetRow() *Row {
	return r
}

// Entity is satisfied by pointers to structs that embed Row.
type Entity interface {
	sheetRow() *Row
}

// Column binds a header name to an entity field.
type Column[E Entity] struct {
	Name  string
	Field func(E) *string
}

// Schema describes how a table maps onto E.
type Schema[E Entity] struct {
	// Name is the table (sheet tab) name.
	Name string
	// New returns an empty entity.
	New func() E
	// Columns lists the mapped fields. For a Fixed schema the order is the
	// column order of the table.
	Columns []Column[E]
	// Fixed skips header discovery: row 0 is a caption and data starts at row 1.
	Fixed bool
}

// Table is a typed view over one table of an Access.
type Table[E Entity] struct {
	access    Access
	schema    Schema[E]
	logger    *slog.Logger
	positions *lru.Cache[uint64, int]

	mu      sync.Mutex
	indexes []int
}

type TableOption func(*tableOptions)

type tableOptions struct {
	logger   *slog.Logger
	capacity int
}

func WithLogger(logger *slog.Logger) TableOption {
	return func(o *tableOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithPositionCapacity sets how many fetched entities stay saveable. Older
// entities are evicted first and then fail Save with ErrUnknownPosition.
func WithPositionCapacity(n int) TableOption {
	return func(o *tableOptions) {
		o.capacity = n
	}
}

// NewTable returns a Table for schema backed by access.
func NewTable[E Entity](access Access, schema Schema[E], opts ...TableOption) (*Table[E], error) {
	if access == nil {
		return nil, fmt.Errorf("table access is required")
	}
	if schema.Name == "" {
		return nil, fmt.Errorf("table name is required")
	}
	if schema.New == nil {
		return nil, fmt.Errorf("table %s: entity constructor is required", schema.Name)
	}
	if len(schema.Columns) == 0 {
		return nil, fmt.Errorf("table %s: at least one column is required", schema.Name)
	}

	o := tableOptions{logger: slog.Default(), capacity: DefaultPositionCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	positions, err := lru.New[uint64, int](o.capacity)
	if err != nil {
		return nil, fmt.Errorf("table %s: position cache: %w", schema.Name, err)
	}

	t := &Table[E]{
		access:    access,
		schema:    schema,
		logger:    o.logger,
		positions: positions,
	}
	if schema.Fixed {
		t.indexes = make([]int, len(schema.Columns))
		for i := range schema.Columns {
			t.indexes[i] = i
		}
	}
	return t, nil
}

// Name returns the table name.
func (t *Table[E]) Name() string {
	return t.schema.Name
}

// Fetch reads the whole table and returns, in row order, every data row for
// which match returns true. A nil match keeps every row. Each returned
// entity can later be passed to Save.
func (t *Table[E]) Fetch(ctx context.Context, match func(E) bool) ([]E, error) {
	data, err := t.access.GetRange(ctx, TableRange(t.schema.Name))
	if err != nil {
		return nil, err
	}
	indexes, err := t.indexesFrom(data)
	if err != nil {
		return nil, err
	}

	var out []E
	for position := t.dataStart(); position < len(data); position++ {
		entity := t.decode(data[position], indexes)
		if match != nil && !match(entity) {
			continue
		}
		ref := nextRef.Add(1)
		entity.sheetRow().ref = ref
		t.positions.Add(ref, position)
		out = append(out, entity)
	}

	t.logger.DebugContext(ctx, "table fetched",
		"table", t.schema.Name,
		"rows", len(data),
		"matched", len(out),
	)
	return out, nil
}

// Save writes entity back to the row it was fetched from. Only the schema's
// columns are written; every other cell of the row is left untouched.
func (t *Table[E]) Save(ctx context.Context, entity E) error {
	position, ok := t.positionOf(entity)
	if !ok {
		return unknownPosition(t.schema.Name)
	}
	indexes, err := t.writeIndexes(ctx)
	if err != nil {
		return err
	}
	return t.access.UpdateRange(ctx, RowRange(t.schema.Name, position), t.encode(entity, indexes))
}

// Append adds entity as a new row. The entity does not become saveable; fetch
// it again to update it.
func (t *Table[E]) Append(ctx context.Context, entity E) error {
	indexes, err := t.writeIndexes(ctx)
	if err != nil {
		return err
	}
	return t.access.AppendRow(ctx, t.schema.Name, t.encode(entity, indexes))
}

// Forget drops the remembered position of entity.
func (t *Table[E]) Forget(entity E) {
	if ref := entity.sheetRow().ref; ref != 0 {
		t.positions.Remove(ref)
	}
}

func (t *Table[E]) positionOf(entity E) (int, bool) {
	ref := entity.sheetRow().ref
	if ref == 0 {
		return 0, false
	}
	return t.positions.Get(ref)
}

func (t *Table[E]) dataStart() int {
	if t.schema.Fixed {
		return fixedDataStart
	}
	return discoveredDataStart
}

// indexesFrom returns the memoized column indexes, discovering them from the
// header row of data on first use.
func (t *Table[E]) indexesFrom(data [][]string) ([]int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.indexes != nil {
		return t.indexes, nil
	}
	if len(data) <= headerPosition {
		return nil, schemaViolation(t.schema.Name, "header row %d is missing", headerPosition+1)
	}
	t.indexes = t.mapHeader(data[headerPosition])
	return t.indexes, nil
}

// writeIndexes returns the column indexes, reading only the header row when
// they are not known yet.
func (t *Table[E]) writeIndexes(ctx context.Context) ([]int, error) {
	t.mu.Lock()
	indexes := t.indexes
	t.mu.Unlock()
	if indexes != nil {
		return indexes, nil
	}

	header, err := t.access.GetRange(ctx, RowRange(t.schema.Name, headerPosition))
	if err != nil {
		return nil, err
	}
	if len(header) == 0 {
		return nil, schemaViolation(t.schema.Name, "header row %d is missing", headerPosition+1)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.indexes == nil {
		t.indexes = t.mapHeader(header[0])
	}
	return t.indexes, nil
}

func (t *Table[E]) mapHeader(header []string) []int {
	positions := make(map[string]int, len(header))
	for i := len(header) - 1; i >= 0; i-- {
		positions[header[i]] = i
	}

	indexes := make([]int, len(t.schema.Columns))
	for i, col := range t.schema.Columns {
		idx, ok := positions[col.Name]
		if !ok {
			idx = missingColumn
			t.logger.Warn("column not found in header", "table", t.schema.Name, "column", col.Name)
		}
		indexes[i] = idx
	}
	return indexes
}

func (t *Table[E]) decode(row []string, indexes []int) E {
	entity := t.schema.New()
	for i, col := range t.schema.Columns {
		idx := indexes[i]
		if idx == missingColumn || idx >= len(row) {
			continue
		}
		*col.Field(entity) = row[idx]
	}
	return entity
}

func (t *Table[E]) encode(entity E, indexes []int) Patch {
	width := 0
	for _, idx := range indexes {
		if idx+1 > width {
			width = idx + 1
		}
	}
	patch := make(Patch, width)
	for i, col := range t.schema.Columns {
		idx := indexes[i]
		if idx == missingColumn {
			continue
		}
		patch[idx] = Text(*col.Field(entity))
	}
	return patch
}
