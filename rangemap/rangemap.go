package rangemap

import (
	"sync"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/interval"
	"github.com/iotaledger/hive.go/lo"
)

var (
	// ErrEmptyRange is returned if an empty interval is used as a key.
	ErrEmptyRange = ierrors.New("range is empty")

	// ErrOverlappingRange is returned if a key overlaps with a range that is already part of the map.
	ErrOverlappingRange = ierrors.New("range overlaps with an existing range")
)

// RangeMap is a data structure that maps disjoint half-open intervals to values. Looking up a key returns the value of
// the interval that contains it.
type RangeMap[K interval.Bound[K], V any] struct {
	tree *redblacktree.Tree

	sync.RWMutex
}

// New returns an empty RangeMap.
func New[K interval.Bound[K], V any]() *RangeMap[K, V] {
	return &RangeMap[K, V]{
		tree: redblacktree.NewWith(func(a interface{}, b interface{}) int {
			return a.(K).Compare(b.(K))
		}),
	}
}

// Set maps all keys in keyRange to the given value. It returns ErrEmptyRange if keyRange is empty and
// ErrOverlappingRange if it overlaps with a range that has been set before.
func (r *RangeMap[K, V]) Set(keyRange interval.HalfOpen[K], value V) error {
	if keyRange.IsEmpty() {
		return ierrors.Wrapf(ErrEmptyRange, "failed to set %v", keyRange)
	}

	r.Lock()
	defer r.Unlock()

	// ranges are disjoint, so only the direct neighbors of the lower bound can overlap
	if floor, exists := r.tree.Floor(keyRange.LowerBound()); exists && r.wrapNode(floor).Range().Overlaps(keyRange) {
		return ierrors.Wrapf(ErrOverlappingRange, "%v overlaps with %v", keyRange, r.wrapNode(floor).Range())
	}
	if ceiling, exists := r.tree.Ceiling(keyRange.LowerBound()); exists && r.wrapNode(ceiling).Range().Overlaps(keyRange) {
		return ierrors.Wrapf(ErrOverlappingRange, "%v overlaps with %v", keyRange, r.wrapNode(ceiling).Range())
	}

	r.tree.Put(keyRange.LowerBound(), &entry[K, V]{keyRange: keyRange, value: value})

	return nil
}

// Get returns the value of the range that contains the given key and a flag that indicates if such a range exists.
func (r *RangeMap[K, V]) Get(key K) (value V, exists bool) {
	if element := r.GetElement(key); element != nil {
		return element.Value(), true
	}

	return value, false
}

// GetElement returns the Element whose range contains the given key (or nil if none exists).
func (r *RangeMap[K, V]) GetElement(key K) *Element[K, V] {
	r.RLock()
	defer r.RUnlock()

	floor, exists := r.tree.Floor(key)
	if !exists {
		return nil
	}

	if element := r.wrapNode(detachedNode(floor)); element.Range().Contains(key) {
		return element
	}

	return nil
}

// Overlapping returns the Elements whose ranges overlap with the given interval, ordered by their lower bounds.
func (r *RangeMap[K, V]) Overlapping(other interval.Interval[K]) (elements []*Element[K, V]) {
	r.RLock()
	defer r.RUnlock()

	// ranges are disjoint, so no range below the floor of the lower bound can reach into other
	it := r.tree.Iterator()
	if floor, exists := r.tree.Floor(other.LowerBound()); exists {
		it = r.tree.IteratorAt(floor)
		it.Prev()
	}

	for it.Next() {
		element := r.wrapNode(&redblacktree.Node{Key: it.Key(), Value: it.Value()})
		if element.Range().LowerBound().Compare(other.UpperBound()) > 0 {
			break
		}

		if element.Range().Overlaps(other) {
			elements = append(elements, element)
		}
	}

	return elements
}

// Delete removes the given range from the map. It only succeeds if the range has been set with exactly these bounds.
func (r *RangeMap[K, V]) Delete(keyRange interval.HalfOpen[K]) (success bool) {
	r.Lock()
	defer r.Unlock()

	node := r.lookup(keyRange.LowerBound())
	if node == nil || !r.wrapNode(node).Range().Equal(keyRange) {
		return false
	}

	r.tree.Remove(keyRange.LowerBound())

	return true
}

// ForEach provides a callback based iterator that iterates through all Elements in the map in ascending order.
func (r *RangeMap[K, V]) ForEach(iterator func(element *Element[K, V]) bool) {
	r.RLock()
	defer r.RUnlock()

	for it := r.tree.Iterator(); it.Next(); {
		if !iterator(r.wrapNode(&redblacktree.Node{Key: it.Key(), Value: it.Value()})) {
			break
		}
	}
}

// Keys returns the ranges that have been set in the map.
func (r *RangeMap[K, V]) Keys() []interval.HalfOpen[K] {
	r.RLock()
	defer r.RUnlock()

	return lo.Map(r.tree.Values(), func(value interface{}) interval.HalfOpen[K] {
		return value.(*entry[K, V]).keyRange
	})
}

// Values returns the values that are associated to the ranges in the map.
func (r *RangeMap[K, V]) Values() []V {
	r.RLock()
	defer r.RUnlock()

	return lo.Map(r.tree.Values(), func(value interface{}) V {
		return value.(*entry[K, V]).value
	})
}

// Size returns the amount of ranges that are stored in the map.
func (r *RangeMap[K, V]) Size() int {
	r.RLock()
	defer r.RUnlock()

	return r.tree.Size()
}

// Empty returns true if the map has no ranges.
func (r *RangeMap[K, V]) Empty() bool {
	r.RLock()
	defer r.RUnlock()

	return r.tree.Empty()
}

// Clear removes all Elements from the map.
func (r *RangeMap[K, V]) Clear() {
	r.Lock()
	defer r.Unlock()

	r.tree.Clear()
}

func (r *RangeMap[K, V]) lookup(key K) *redblacktree.Node {
	node := r.tree.Root
	for node != nil {
		compare := r.tree.Comparator(key, node.Key)
		switch {
		case compare == 0:
			return node
		case compare < 0:
			node = node.Left
		case compare > 0:
			node = node.Right
		}
	}

	return nil
}

// detachedNode returns a copy of the given Node that is not affected by later modifications of the tree.
func detachedNode(node *redblacktree.Node) *redblacktree.Node {
	return &redblacktree.Node{Key: node.Key, Value: node.Value}
}

// wrapNode is an internal utility function that wraps the Node of the underlying tree with a map Element.
func (r *RangeMap[K, V]) wrapNode(node *redblacktree.Node) (element *Element[K, V]) {
	if node == nil {
		return
	}

	return &Element[K, V]{node}
}
