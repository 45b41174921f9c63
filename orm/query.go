package orm

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
)

// ConsumeIterator will read all remaining data into an
// array and close the iterator
func ConsumeIterator(itr barter.Iterator) []barter.Model {
	defer itr.Close()

	res := []barter.Model{}
	for ; itr.Valid(); itr.Next() {
		res = append(res, barter.Model{Key: itr.Key(), Value: itr.Value()})
	}
	return res
}

// Register registers the bucket and all its indexes under the given path.
//
//   /<name>          key: the record at the address, prefix: all records
//                    whose address starts with data
//   /<name>/<index>  key: all records indexed under data
//
// Returned models are keyed by address and hold the protobuf encoding of the
// record, without the discriminator.
func (b ModelBucket) Register(name string, r barter.QueryRouter) {
	if name == "" {
		name = b.kind + "s"
	}
	root := "/" + name
	r.Register(root, bucketQuery{b})
	for n, idx := range b.indexes {
		r.Register(root+"/"+n, indexQuery{bucket: b, index: idx})
	}
}

type bucketQuery struct {
	b ModelBucket
}

func (q bucketQuery) Query(db barter.ReadOnlyKVStore, mod string, data []byte) ([]barter.Model, error) {
	switch mod {
	case barter.KeyQueryMod:
		raw := db.Get(AccountKey(data))
		if raw == nil || !q.b.Has(db, data) {
			return nil, nil
		}
		return []barter.Model{{Key: data, Value: raw[DiscriminatorLength:]}}, nil
	case barter.PrefixQueryMod:
		start, end := PrefixRange(AccountKey(data))
		disc := string(Discriminator(q.b.kind))
		var res []barter.Model
		for _, m := range ConsumeIterator(db.Iterator(start, end)) {
			if len(m.Value) < DiscriminatorLength || string(m.Value[:DiscriminatorLength]) != disc {
				continue
			}
			res = append(res, barter.Model{
				Key:   m.Key[len(accountPrefix):],
				Value: m.Value[DiscriminatorLength:],
			})
		}
		return res, nil
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod %q", mod)
	}
}

type indexQuery struct {
	bucket ModelBucket
	index  Index
}

func (q indexQuery) Query(db barter.ReadOnlyKVStore, mod string, data []byte) ([]barter.Model, error) {
	if mod != barter.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod %q", mod)
	}
	var res []barter.Model
	for _, key := range q.index.Keys(db, data) {
		raw := db.Get(AccountKey(key))
		if len(raw) < DiscriminatorLength {
			continue
		}
		res = append(res, barter.Model{Key: key, Value: raw[DiscriminatorLength:]})
	}
	return res, nil
}

// AccountQuery serves /accounts: the raw account stored at an address,
// discriminator included, so a client can decode it with DecodeAccount.
type AccountQuery struct{}

// Query implements barter.QueryHandler.
func (AccountQuery) Query(db barter.ReadOnlyKVStore, mod string, data []byte) ([]barter.Model, error) {
	if mod != barter.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod %q", mod)
	}
	raw := db.Get(AccountKey(data))
	if raw == nil {
		return nil, nil
	}
	return []barter.Model{{Key: data, Value: raw}}, nil
}

// RegisterQuery registers the generic account query.
func RegisterQuery(qr barter.QueryRouter) {
	qr.Register("/accounts", AccountQuery{})
}
