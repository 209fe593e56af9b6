package relation

import (
	"fmt"

	"github.com/yashagw/relscan/internal/value"
)

var (
	_ Iterator = (*MemoryIterator)(nil)
)

// MemoryIterator is a base iterator over tuples held in memory. It stands in
// for a storage-backed scan at the bottom of a plan tree and is the usual
// relation driver in tests.
type MemoryIterator struct {
	schema    *Schema
	rows      [][]*value.Constant
	columns   []*Column
	current   int
	numTuples int
	exhausted bool
	closed    bool
}

// NewMemoryIterator creates an iterator over the given rows. Every row must
// match the schema's arity and field types.
func NewMemoryIterator(schema *Schema, rows [][]*value.Constant) (*MemoryIterator, error) {
	for i, row := range rows {
		if len(row) != schema.NumFields() {
			return nil, fmt.Errorf("row %d has %d values, schema has %d fields", i, len(row), schema.NumFields())
		}
		for j, val := range row {
			if err := checkFieldType(schema.FieldType(j), val); err != nil {
				return nil, fmt.Errorf("row %d, field %q: %w", i, schema.FieldName(j), err)
			}
		}
	}

	m := &MemoryIterator{
		schema:  schema,
		rows:    rows,
		current: -1,
	}
	m.columns = make([]*Column, schema.NumFields())
	for i := range m.columns {
		m.columns[i] = NewColumn(m, i, schema.FieldName(i))
	}
	return m, nil
}

func checkFieldType(fieldType string, val *value.Constant) error {
	switch fieldType {
	case TypeInt:
		if !val.IsInt() {
			return fmt.Errorf("expected an int value")
		}
	case TypeFloat:
		if !val.IsFloat() {
			return fmt.Errorf("expected a float value")
		}
	case TypeString:
		if !val.IsString() {
			return fmt.Errorf("expected a string value")
		}
	default:
		return fmt.Errorf("unknown field type %q", fieldType)
	}
	return nil
}

// Next moves the iterator to the next row. Once the rows are exhausted it
// keeps returning false.
func (m *MemoryIterator) Next() (bool, error) {
	if m.closed {
		return false, ErrClosed
	}
	if m.exhausted {
		return false, nil
	}
	if m.current+1 >= len(m.rows) {
		m.exhausted = true
		return false, nil
	}
	m.current++
	m.numTuples++
	return true, nil
}

// Close releases the iterator. Call at most once.
func (m *MemoryIterator) Close() error {
	if m.closed {
		return ErrClosed
	}
	m.closed = true
	m.rows = nil
	return nil
}

// NumColumns returns the number of fields in the iterator's schema.
func (m *MemoryIterator) NumColumns() int {
	return m.schema.NumFields()
}

// Column returns the column descriptor at the specified index.
func (m *MemoryIterator) Column(index int) (*Column, error) {
	if index < 0 || index >= len(m.columns) {
		return nil, fmt.Errorf("index %d, relation has %d columns: %w", index, len(m.columns), ErrIndexOutOfRange)
	}
	return m.columns[index], nil
}

// Value returns the value at the specified index of the current row.
func (m *MemoryIterator) Value(index int) (*value.Constant, error) {
	if m.closed {
		return nil, ErrClosed
	}
	if index < 0 || index >= m.schema.NumFields() {
		return nil, fmt.Errorf("index %d, relation has %d columns: %w", index, m.schema.NumFields(), ErrIndexOutOfRange)
	}
	if m.current < 0 || m.exhausted {
		return nil, ErrNotPositioned
	}
	return m.rows[m.current][index], nil
}

// NumTuples returns the number of rows returned so far.
func (m *MemoryIterator) NumTuples() int {
	return m.numTuples
}

// Schema returns the iterator's schema.
func (m *MemoryIterator) Schema() *Schema {
	return m.schema
}
