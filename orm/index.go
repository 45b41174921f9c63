package orm

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
)

// Indexer calculates the secondary index key for a given model. A nil key
// means the model is not indexed.
type Indexer func(Model) ([]byte, error)

// Index is a secondary index of a bucket. Each indexed model is stored as an
// empty value under
//
//   idx:<kind>.<name>:<len(value)><value><primary key>
//
// so all keys indexed under a value are one prefix scan away.
type Index struct {
	name    string
	prefix  []byte
	unique  bool
	indexer Indexer
}

func newIndex(kind, name string, indexer Indexer, unique bool) Index {
	return Index{
		name:    name,
		prefix:  []byte("idx:" + kind + "." + name + ":"),
		unique:  unique,
		indexer: indexer,
	}
}

// Name returns the name of this index.
func (i Index) Name() string {
	return i.name
}

func (i Index) valuePrefix(value []byte) []byte {
	out := make([]byte, 0, len(i.prefix)+1+len(value))
	out = append(out, i.prefix...)
	out = append(out, byte(len(value)))
	return append(out, value...)
}

func (i Index) entryKey(value, pk []byte) []byte {
	return append(i.valuePrefix(value), pk...)
}

// Keys returns all primary keys indexed under value.
func (i Index) Keys(db barter.ReadOnlyKVStore, value []byte) [][]byte {
	prefix := i.valuePrefix(value)
	start, end := PrefixRange(prefix)
	it := db.Iterator(start, end)
	defer it.Close()

	var keys [][]byte
	for ; it.Valid(); it.Next() {
		keys = append(keys, append([]byte(nil), it.Key()[len(prefix):]...))
	}
	return keys
}

// Update moves the index entry of pk from prev to save.
// prev == nil means insert, save == nil means delete.
func (i Index) Update(db barter.KVStore, pk []byte, prev, save Model) error {
	if prev == nil && save == nil {
		return errors.Wrap(errors.ErrHuman, "update requires at least one non-nil model")
	}
	var before, after []byte
	var err error
	if prev != nil {
		if before, err = i.indexer(prev); err != nil {
			return errors.Wrapf(err, "index %s", i.name)
		}
	}
	if save != nil {
		if after, err = i.indexer(save); err != nil {
			return errors.Wrapf(err, "index %s", i.name)
		}
	}
	if len(before) > 255 || len(after) > 255 {
		return errors.Wrapf(errors.ErrInput, "index %s value too long", i.name)
	}
	if prev != nil && save != nil && string(before) == string(after) {
		return nil
	}
	if before != nil {
		db.Delete(i.entryKey(before, pk))
	}
	if after != nil {
		if i.unique && len(i.Keys(db, after)) > 0 {
			return errors.Wrapf(errors.ErrDuplicate, "unique index %s", i.name)
		}
		db.Set(i.entryKey(after, pk), []byte{})
	}
	return nil
}

// PrefixRange returns the [start, end) range of keys with the given prefix.
func PrefixRange(prefix []byte) ([]byte, []byte) {
	if len(prefix) == 0 {
		return nil, nil
	}
	start := append([]byte(nil), prefix...)
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return start, end[:i+1]
		}
	}
	// prefix is all 0xff, there is no upper bound
	return start, nil
}
