package sheet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "climbreg/pkg/domain-errors"
)

func TestMemoryAccess(t *testing.T) {
	ctx := context.Background()

	newAccess := func() *MemoryAccess {
		m := NewMemoryAccess()
		m.Load("T", [][]string{
			{"caption"},
			{"a", "b", "c"},
			{"1", "2", "3"},
		})
		return m
	}

	t.Run("reads whole table as a copy", func(t *testing.T) {
		m := newAccess()
		rows, err := m.GetRange(ctx, "T")
		require.NoError(t, err)
		require.Len(t, rows, 3)

		rows[2][0] = "mutated"
		assert.Equal(t, "1", m.Rows("T")[2][0])
	})

	t.Run("reads a single row", func(t *testing.T) {
		rows, err := newAccess().GetRange(ctx, "T!2:2")
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"a", "b", "c"}}, rows)
	})

	t.Run("row past the end is empty", func(t *testing.T) {
		rows, err := newAccess().GetRange(ctx, "T!10:10")
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("unknown table is a remote access error", func(t *testing.T) {
		_, err := newAccess().GetRange(ctx, "Missing")
		require.ErrorIs(t, err, ErrRemoteAccess)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnavailable))
	})

	t.Run("update skips nil cells and extends short rows", func(t *testing.T) {
		m := newAccess()
		err := m.UpdateRange(ctx, "T!3:3", Patch{nil, Text("x"), nil, Text("new")})
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "x", "3", "new"}, m.Rows("T")[2])
	})

	t.Run("update requires a row range", func(t *testing.T) {
		err := newAccess().UpdateRange(ctx, "T", Patch{Text("x")})
		assert.ErrorIs(t, err, ErrRemoteAccess)
	})

	t.Run("append adds a row with blanks for nil cells", func(t *testing.T) {
		m := newAccess()
		require.NoError(t, m.AppendRow(ctx, "T", Patch{Text("4"), nil, Text("6")}))
		rows := m.Rows("T")
		require.Len(t, rows, 4)
		assert.Equal(t, []string{"4", "", "6"}, rows[3])
	})
}
