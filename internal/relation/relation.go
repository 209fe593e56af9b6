package relation

import (
	"errors"

	"github.com/yashagw/relscan/internal/value"
)

var (
	ErrNoSubrelation   = errors.New("no subrelation supplied")
	ErrIndexOutOfRange = errors.New("column index out of range")
	ErrNotPositioned   = errors.New("iterator is not positioned on a tuple")
	ErrClosed          = errors.New("iterator is closed")
)

// Iterator is the fundamental interface for iterating over the tuples of a
// relation. Implementations form a plan tree: a base iterator reads stored
// tuples, and wrapping iterators (such as a projection) consume another
// Iterator as their subrelation.
type Iterator interface {
	// Next advances the iterator to the next tuple. It returns true if the
	// iterator is now positioned on a new tuple and false when the relation
	// is exhausted. Errors from the underlying store propagate unchanged.
	Next() (bool, error)
	// Close releases the resources held by the iterator, including any
	// subrelation it wraps. Call at most once.
	Close() error
	// NumColumns returns the number of columns in the iterator's schema.
	NumColumns() int
	// Column returns the column descriptor at the specified index.
	// The leftmost column has index 0.
	Column(index int) (*Column, error)
	// Value returns the value of the column at the specified index in the
	// tuple the iterator is currently positioned on.
	Value(index int) (*value.Constant, error)
	// NumTuples returns the number of tuples the iterator has returned so far.
	NumTuples() int
}
