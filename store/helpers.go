package store

// SliceIterator iterates over models already sorted in iteration order.
type SliceIterator struct {
	data []Model
}

var _ Iterator = (*SliceIterator)(nil)

func NewSliceIterator(data []Model) *SliceIterator {
	return &SliceIterator{data: data}
}

func (s *SliceIterator) Valid() bool {
	return len(s.data) > 0
}

// Next panics past the last model.
func (s *SliceIterator) Next() {
	s.mustBeValid()
	s.data = s.data[1:]
}

func (s *SliceIterator) Key() []byte {
	s.mustBeValid()
	return s.data[0].Key
}

func (s *SliceIterator) Value() []byte {
	s.mustBeValid()
	return s.data[0].Value
}

func (s *SliceIterator) Close() {
	s.data = nil
}

func (s *SliceIterator) mustBeValid() {
	if len(s.data) == 0 {
		panic("slice iterator exhausted")
	}
}

// ReadAll drains the iterator and closes it.
func ReadAll(it Iterator) []Model {
	defer it.Close()
	var res []Model
	for ; it.Valid(); it.Next() {
		res = append(res, Model{Key: it.Key(), Value: it.Value()})
	}
	return res
}

// EmptyKVStore holds nothing and ignores writes. MemStore caches over it.
type EmptyKVStore struct{}

var _ KVStore = EmptyKVStore{}

func (EmptyKVStore) Get(key []byte) []byte { return nil }
func (EmptyKVStore) Has(key []byte) bool   { return false }
func (EmptyKVStore) Set(key, value []byte) {}
func (EmptyKVStore) Delete(key []byte)     {}

func (EmptyKVStore) Iterator(start, end []byte) Iterator {
	return NewSliceIterator(nil)
}

func (EmptyKVStore) ReverseIterator(start, end []byte) Iterator {
	return NewSliceIterator(nil)
}

func (e EmptyKVStore) NewBatch() Batch {
	return NewNonAtomicBatch(e)
}

// NonAtomicBatch queues writes and replays them in order on Write. A
// failure halfway leaves the target partially written, so use it only
// over in memory stores.
type NonAtomicBatch struct {
	out SetDeleter
	ops []func(SetDeleter)
}

var _ Batch = (*NonAtomicBatch)(nil)

func NewNonAtomicBatch(out SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{out: out}
}

func (b *NonAtomicBatch) Set(key, value []byte) {
	b.ops = append(b.ops, func(out SetDeleter) { out.Set(key, value) })
}

func (b *NonAtomicBatch) Delete(key []byte) {
	b.ops = append(b.ops, func(out SetDeleter) { out.Delete(key) })
}

func (b *NonAtomicBatch) Write() {
	for _, op := range b.ops {
		op(b.out)
	}
	b.ops = nil
}
