package rangemap

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/iotaledger/hive.go/interval"
)

// Element is a wrapper for the Node used in the underlying red-black tree.
type Element[K interval.Bound[K], V any] struct {
	*redblacktree.Node
}

// Range returns the interval that the Element covers.
func (e *Element[K, V]) Range() interval.HalfOpen[K] {
	return e.entry().keyRange
}

// Value returns the value that is mapped to the Range.
func (e *Element[K, V]) Value() V {
	return e.entry().value
}

func (e *Element[K, V]) entry() *entry[K, V] {
	return e.Node.Value.(*entry[K, V])
}

// entry is the payload stored in the tree. Nodes are keyed by the lower bound of their range.
type entry[K interval.Bound[K], V any] struct {
	keyRange interval.HalfOpen[K]
	value    V
}
