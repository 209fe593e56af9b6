package relation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yashagw/relscan/internal/value"
)

func newEmployeeIterator(t *testing.T) *MemoryIterator {
	schema := NewSchema()
	schema.AddIntField("id")
	schema.AddStringField("name")

	rows := [][]*value.Constant{
		{value.NewIntConstant(1), value.NewStringConstant("Alice")},
		{value.NewIntConstant(2), value.NewStringConstant("Bob")},
		{value.NewIntConstant(3), value.NewStringConstant("Charlie")},
	}

	it, err := NewMemoryIterator(schema, rows)
	require.NoError(t, err)
	require.NotNil(t, it)
	return it
}

func TestMemoryIteratorValidation(t *testing.T) {
	schema := NewSchema()
	schema.AddIntField("id")
	schema.AddStringField("name")

	t.Run("ArityMismatch", func(t *testing.T) {
		rows := [][]*value.Constant{
			{value.NewIntConstant(1)},
		}
		_, err := NewMemoryIterator(schema, rows)
		assert.Error(t, err)
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		rows := [][]*value.Constant{
			{value.NewStringConstant("1"), value.NewStringConstant("Alice")},
		}
		_, err := NewMemoryIterator(schema, rows)
		assert.Error(t, err)
	})
}

func TestMemoryIteratorIteration(t *testing.T) {
	it := newEmployeeIterator(t)

	assert.Equal(t, 2, it.NumColumns())
	assert.Equal(t, 0, it.NumTuples())

	var ids []int
	var names []string
	for {
		ok, err := it.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		id, err := it.Value(0)
		require.NoError(t, err)
		name, err := it.Value(1)
		require.NoError(t, err)
		ids = append(ids, id.AsInt())
		names = append(names, name.AsString())
	}

	assert.Equal(t, []int{1, 2, 3}, ids)
	assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, names)
	assert.Equal(t, 3, it.NumTuples())

	// Exhaustion latches: further calls keep returning false.
	ok, err := it.Next()
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = it.Next()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 3, it.NumTuples())

	require.NoError(t, it.Close())
}

func TestMemoryIteratorNotPositioned(t *testing.T) {
	it := newEmployeeIterator(t)

	// Value access before the first Next.
	_, err := it.Value(0)
	assert.ErrorIs(t, err, ErrNotPositioned)

	// Value access after exhaustion.
	for {
		ok, err := it.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
	}
	_, err = it.Value(0)
	assert.ErrorIs(t, err, ErrNotPositioned)

	require.NoError(t, it.Close())
}

func TestMemoryIteratorIndexOutOfRange(t *testing.T) {
	it := newEmployeeIterator(t)

	ok, err := it.Next()
	require.NoError(t, err)
	require.True(t, ok)

	_, err = it.Value(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = it.Value(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = it.Column(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	// A bad index does not corrupt the cursor.
	val, err := it.Value(1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", val.AsString())

	require.NoError(t, it.Close())
}

func TestMemoryIteratorClosed(t *testing.T) {
	it := newEmployeeIterator(t)

	require.NoError(t, it.Close())

	_, err := it.Next()
	assert.ErrorIs(t, err, ErrClosed)
	_, err = it.Value(0)
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, it.Close(), ErrClosed)
}

func TestMemoryIteratorColumns(t *testing.T) {
	it := newEmployeeIterator(t)

	idCol, err := it.Column(0)
	require.NoError(t, err)
	assert.Equal(t, "id", idCol.Name())
	assert.Equal(t, 0, idCol.Index())
	assert.Same(t, it, idCol.Owner().(*MemoryIterator))

	// Columns are live views: the same descriptor tracks the cursor.
	ok, err := it.Next()
	require.NoError(t, err)
	require.True(t, ok)
	v1, err := idCol.Value()
	require.NoError(t, err)
	assert.Equal(t, 1, v1.AsInt())

	ok, err = it.Next()
	require.NoError(t, err)
	require.True(t, ok)
	v2, err := idCol.Value()
	require.NoError(t, err)
	assert.Equal(t, 2, v2.AsInt())

	require.NoError(t, it.Close())
}
