package orm

import (
	"fmt"
	"reflect"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
)

// ModelBucket gives typed access to all records of one kind in the account
// space. All records are keyed by their address.
type ModelBucket struct {
	kind    string
	model   reflect.Type
	indexes map[string]Index
}

// BucketOption configures a ModelBucket.
type BucketOption func(*ModelBucket)

// WithIndex configures the bucket to build an index with given name. All
// entities stored in the bucket are indexed using value returned by the
// indexer function. If an index is unique, there can be only one entity
// referenced per index value.
func WithIndex(name string, indexer Indexer, unique bool) BucketOption {
	return func(b *ModelBucket) {
		if _, ok := b.indexes[name]; ok {
			panic(fmt.Sprintf("index %q registered twice", name))
		}
		b.indexes[name] = newIndex(b.kind, name, indexer, unique)
	}
}

// NewModelBucket returns a bucket for records of the given kind, represented
// by the type of proto. The kind is registered for LoadAccount.
func NewModelBucket(kind string, proto Model, opts ...BucketOption) ModelBucket {
	RegisterKind(kind, proto)
	b := ModelBucket{
		kind:    kind,
		model:   reflect.TypeOf(proto),
		indexes: make(map[string]Index),
	}
	for _, fn := range opts {
		fn(&b)
	}
	return b
}

// Kind returns the name of the record kind.
func (b ModelBucket) Kind() string {
	return b.kind
}

// One loads the record stored at key into dest.
// This method returns ErrNotFound if nothing is stored at key, and ErrType
// if a record of a different kind is.
func (b ModelBucket) One(db barter.ReadOnlyKVStore, key []byte, dest Model) error {
	if err := b.checkDest(dest); err != nil {
		return err
	}
	raw := db.Get(AccountKey(key))
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s %s", b.kind, barter.Address(key))
	}
	return decodeInto(b.kind, raw, dest)
}

// Has returns true if a record of this kind is stored at key.
func (b ModelBucket) Has(db barter.ReadOnlyKVStore, key []byte) bool {
	kind, ok := AccountKind(db, key)
	return ok && kind == b.kind
}

// Create stores a new record. It fails with ErrDuplicate if any account,
// whichever its kind, already lives at key.
func (b ModelBucket) Create(db barter.KVStore, key []byte, m Model) error {
	if Exists(db, key) {
		return errors.Wrapf(errors.ErrDuplicate, "address %s in use", barter.Address(key))
	}
	return b.Put(db, key, m)
}

// Put saves the record, replacing a previous record of the same kind.
func (b ModelBucket) Put(db barter.KVStore, key []byte, m Model) error {
	if err := b.checkDest(m); err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return errors.Wrapf(err, "invalid %s", b.kind)
	}

	prev, err := b.load(db, key)
	if err != nil && !errors.ErrNotFound.Is(err) {
		return err
	}
	for _, idx := range b.indexes {
		if err := idx.Update(db, key, prev, m); err != nil {
			return err
		}
	}

	raw, err := EncodeAccount(b.kind, m)
	if err != nil {
		return err
	}
	db.Set(AccountKey(key), raw)
	return nil
}

// Delete removes the record stored at key.
// It returns ErrNotFound if no record of this kind exists.
func (b ModelBucket) Delete(db barter.KVStore, key []byte) error {
	prev, err := b.load(db, key)
	if err != nil {
		return err
	}
	for _, idx := range b.indexes {
		if err := idx.Update(db, key, prev, nil); err != nil {
			return err
		}
	}
	db.Delete(AccountKey(key))
	return nil
}

// ByIndex returns the keys of all records indexed under value by the named
// index and appends the records to destination, a pointer to a slice of
// model pointers.
func (b ModelBucket) ByIndex(db barter.ReadOnlyKVStore, indexName string, value []byte, destination interface{}) ([][]byte, error) {
	idx, ok := b.indexes[indexName]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidIndex, "%s has no index %q", b.kind, indexName)
	}
	keys := idx.Keys(db, value)
	if err := b.appendAll(db, keys, destination); err != nil {
		return nil, err
	}
	return keys, nil
}

// All returns the keys of every record of this kind and appends the records
// to destination, a pointer to a slice of model pointers.
func (b ModelBucket) All(db barter.ReadOnlyKVStore, destination interface{}) ([][]byte, error) {
	dest, err := b.destSlice(destination)
	if err != nil {
		return nil, err
	}
	disc := Discriminator(b.kind)
	start, end := PrefixRange([]byte(accountPrefix))
	it := db.Iterator(start, end)
	defer it.Close()

	var keys [][]byte
	for ; it.Valid(); it.Next() {
		raw := it.Value()
		if len(raw) < DiscriminatorLength || string(raw[:DiscriminatorLength]) != string(disc) {
			continue
		}
		m := reflect.New(b.model.Elem())
		if err := decodeInto(b.kind, raw, m.Interface().(Model)); err != nil {
			return nil, err
		}
		dest.Set(reflect.Append(dest, m))
		keys = append(keys, append([]byte(nil), it.Key()[len(accountPrefix):]...))
	}
	return keys, nil
}

func (b ModelBucket) appendAll(db barter.ReadOnlyKVStore, keys [][]byte, destination interface{}) error {
	dest, err := b.destSlice(destination)
	if err != nil {
		return err
	}
	for _, key := range keys {
		m := reflect.New(b.model.Elem())
		if err := b.One(db, key, m.Interface().(Model)); err != nil {
			return errors.Wrapf(err, "indexed key %X", key)
		}
		dest.Set(reflect.Append(dest, m))
	}
	return nil
}

func (b ModelBucket) destSlice(destination interface{}) (reflect.Value, error) {
	v := reflect.ValueOf(destination)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice || v.Elem().Type().Elem() != b.model {
		return reflect.Value{}, errors.Wrapf(errors.ErrType, "destination must be *[]%s, got %T", b.model, destination)
	}
	return v.Elem(), nil
}

func (b ModelBucket) load(db barter.ReadOnlyKVStore, key []byte) (Model, error) {
	m := reflect.New(b.model.Elem()).Interface().(Model)
	if err := b.One(db, key, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (b ModelBucket) checkDest(m Model) error {
	if reflect.TypeOf(m) != b.model {
		return errors.Wrapf(errors.ErrType, "%s bucket cannot hold %T", b.kind, m)
	}
	return nil
}

// ErrInvalidIndex is returned when an index specified is invalid.
var ErrInvalidIndex = errors.Register(50, "invalid index")
