package store

import (
	"bytes"

	"github.com/google/btree"
)

// pendingRange returns the pending writes within [start, end), deletes
// included, in iteration order. A nil bound is open.
func (c cacheWrap) pendingRange(start, end []byte, reverse bool) []*entry {
	var out []*entry
	collect := func(item btree.Item) bool {
		out = append(out, item.(*entry))
		return true
	}
	switch {
	case start == nil && end == nil:
		c.pending.Ascend(collect)
	case start == nil:
		c.pending.AscendLessThan(&entry{key: end}, collect)
	case end == nil:
		c.pending.AscendGreaterOrEqual(&entry{key: start}, collect)
	default:
		c.pending.AscendRange(&entry{key: start}, &entry{key: end}, collect)
	}
	if reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// side tells which source holds the next key of a mergeIterator.
type side int

const (
	exhausted side = iota
	fromParent
	fromPending
	fromBoth
)

// mergeIterator walks the pending writes of a cache and the parent
// iterator side by side. On equal keys the pending write wins.
type mergeIterator struct {
	pending []*entry
	parent  Iterator
	reverse bool
}

var _ Iterator = (*mergeIterator)(nil)

func newMergeIterator(pending []*entry, parent Iterator, reverse bool) *mergeIterator {
	it := &mergeIterator{pending: pending, parent: parent, reverse: reverse}
	it.skipDeleted()
	return it
}

func (it *mergeIterator) next() side {
	hasPending := len(it.pending) > 0
	hasParent := it.parent != nil && it.parent.Valid()
	switch {
	case !hasPending && !hasParent:
		return exhausted
	case !hasParent:
		return fromPending
	case !hasPending:
		return fromParent
	}
	cmp := bytes.Compare(it.parent.Key(), it.pending[0].key)
	if it.reverse {
		cmp = -cmp
	}
	switch {
	case cmp < 0:
		return fromParent
	case cmp > 0:
		return fromPending
	default:
		return fromBoth
	}
}

func (it *mergeIterator) Valid() bool {
	return it.next() != exhausted
}

// Next panics once the iterator is exhausted.
func (it *mergeIterator) Next() {
	switch it.next() {
	case fromPending:
		it.pending = it.pending[1:]
	case fromBoth:
		it.pending = it.pending[1:]
		it.parent.Next()
	case fromParent:
		it.parent.Next()
	default:
		panic("iterator exhausted")
	}
	it.skipDeleted()
}

func (it *mergeIterator) Key() []byte {
	switch it.next() {
	case fromPending, fromBoth:
		return it.pending[0].key
	case fromParent:
		return it.parent.Key()
	}
	panic("iterator exhausted")
}

func (it *mergeIterator) Value() []byte {
	switch it.next() {
	case fromPending, fromBoth:
		return it.pending[0].value
	case fromParent:
		return it.parent.Value()
	}
	panic("iterator exhausted")
}

func (it *mergeIterator) Close() {
	if it.parent != nil {
		it.parent.Close()
	}
	it.pending = nil
}

// skipDeleted drops leading pending deletes along with the parent keys
// they hide.
func (it *mergeIterator) skipDeleted() {
	for {
		s := it.next()
		if s != fromPending && s != fromBoth {
			return
		}
		if !it.pending[0].deleted {
			return
		}
		it.pending = it.pending[1:]
		if s == fromBoth {
			it.parent.Next()
		}
	}
}
