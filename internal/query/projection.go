package query

import (
	"fmt"

	"github.com/yashagw/relscan/internal/relation"
	"github.com/yashagw/relscan/internal/value"
)

var (
	_ relation.Iterator = (*ProjectionIterator)(nil)
)

// ProjectionIterator iterates over the relation formed by projecting a
// subset (or reordering) of a subrelation's columns, optionally eliminating
// duplicate output rows. It implements SELECT [DISTINCT] col, ... for every
// SELECT except SELECT *.
//
// Duplicate elimination keeps one key per distinct projected row in memory
// for the iterator's lifetime, so DISTINCT over a large result set grows the
// set without bound.
type ProjectionIterator struct {
	columns       []*relation.Column
	subrel        relation.Iterator
	checkDistinct bool
	numTuples     int
	visited       map[string]struct{}
}

// NewProjectionIterator creates a projection over the relation that subrel
// iterates over. The column list defines the projection's output order and
// may subset, reorder, or repeat the subrelation's columns. Fails with
// ErrNoSubrelation if subrel is nil.
func NewProjectionIterator(columns []*relation.Column, distinct bool, subrel relation.Iterator) (*ProjectionIterator, error) {
	if subrel == nil {
		return nil, relation.ErrNoSubrelation
	}
	cols := make([]*relation.Column, len(columns))
	copy(cols, columns)
	return &ProjectionIterator{
		columns:       cols,
		subrel:        subrel,
		checkDistinct: distinct,
		visited:       make(map[string]struct{}),
	}, nil
}

// Project creates a projection of the given columns of subrel, identified by
// their indexes in the subrelation's schema.
func Project(subrel relation.Iterator, distinct bool, indexes ...int) (*ProjectionIterator, error) {
	if subrel == nil {
		return nil, relation.ErrNoSubrelation
	}
	columns := make([]*relation.Column, len(indexes))
	for i, idx := range indexes {
		col, err := subrel.Column(idx)
		if err != nil {
			return nil, err
		}
		columns[i] = col
	}
	return NewProjectionIterator(columns, distinct, subrel)
}

// Next advances the iterator to the next tuple in the projected relation.
// Under DISTINCT, underlying tuples whose projected values were already
// returned are skipped invisibly. Returns false when the subrelation is
// exhausted; subrelation errors propagate unchanged.
func (p *ProjectionIterator) Next() (bool, error) {
	// Loop rather than recurse so a long run of duplicates cannot grow
	// the stack.
	for {
		ok, err := p.subrel.Next()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		if p.checkDistinct {
			key, err := p.currentKey()
			if err != nil {
				return false, err
			}
			if _, seen := p.visited[key]; seen {
				continue
			}
			p.visited[key] = struct{}{}
		}
		p.numTuples++
		return true, nil
	}
}

// currentKey builds a composite key over the projected values of the current
// row. The per-value encoding is boundary-safe, so two rows produce the same
// key iff all their projected values are equal.
func (p *ProjectionIterator) currentKey() (string, error) {
	var key []byte
	for _, col := range p.columns {
		val, err := col.Value()
		if err != nil {
			return "", err
		}
		key = val.AppendKey(key)
	}
	return string(key), nil
}

// Close closes the iterator, closing the subrelation it wraps.
func (p *ProjectionIterator) Close() error {
	return p.subrel.Close()
}

// NumColumns returns the projection's arity.
func (p *ProjectionIterator) NumColumns() int {
	return len(p.columns)
}

// Column returns the projected column descriptor at the specified index.
// The leftmost column has index 0.
func (p *ProjectionIterator) Column(index int) (*relation.Column, error) {
	if index < 0 || index >= len(p.columns) {
		return nil, fmt.Errorf("index %d, projection has %d columns: %w", index, len(p.columns), relation.ErrIndexOutOfRange)
	}
	return p.columns[index], nil
}

// Value returns the value of the projected column at the specified index in
// the row the iterator is currently positioned on. Calling it before the
// first successful Next fails with the subrelation's not-positioned error.
func (p *ProjectionIterator) Value(index int) (*value.Constant, error) {
	col, err := p.Column(index)
	if err != nil {
		return nil, err
	}
	return col.Value()
}

// NumTuples returns the number of tuples returned so far, after duplicate
// elimination.
func (p *ProjectionIterator) NumTuples() int {
	return p.numTuples
}
