package relation

import "github.com/yashagw/relscan/internal/value"

// Column describes one column of a relation. It is a live view: Value reads
// the owning iterator's current row at call time rather than a snapshot, so
// repeated calls track the cursor as it advances.
type Column struct {
	owner Iterator
	index int
	name  string
}

// NewColumn creates a column descriptor for the column at the given index of
// the owning iterator's schema.
func NewColumn(owner Iterator, index int, name string) *Column {
	return &Column{
		owner: owner,
		index: index,
		name:  name,
	}
}

// Name returns the column's name.
func (c *Column) Name() string {
	return c.name
}

// Index returns the column's position in the owning iterator's schema.
func (c *Column) Index() int {
	return c.index
}

// Owner returns the iterator whose rows back this column.
func (c *Column) Owner() Iterator {
	return c.owner
}

// Value returns the column's value in the row the owning iterator is
// currently positioned on.
func (c *Column) Value() (*value.Constant, error) {
	return c.owner.Value(c.index)
}
