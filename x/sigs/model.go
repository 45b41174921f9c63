package sigs

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/crypto"
	"github.com/iov-one/barter/errors"
)

// BucketName is where we store the sequences
const BucketName = "sigs"

var bucketPrefix = []byte(BucketName + ":")

// Validate ensures the sequence was produced by a known key.
func (u *UserData) Validate() error {
	if u.Sequence < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative")
	}
	if u.Pubkey == nil {
		return errors.Wrap(errors.ErrEmpty, "pubkey")
	}
	return nil
}

// CheckAndIncrementSequence implements check and increment operation.
// If current sequence value is the same as given expected value then it is
// incremented. Otherwise an error is returned.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if u.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", expected, u.Sequence)
	}

	// clients encode the nonce as a javascript safe integer
	const maxSequenceValue = (1 << 53) - 1
	next := u.Sequence + 1
	if next <= 0 || next > maxSequenceValue {
		return errors.Wrap(errors.ErrOverflow, "sequence out of range")
	}
	u.Sequence = next
	return nil
}

// Bucket stores one UserData per signer address.
type Bucket struct{}

// NewBucket creates the proper bucket for this extension
func NewBucket() Bucket {
	return Bucket{}
}

func userKey(addr barter.Address) []byte {
	return append(append([]byte{}, bucketPrefix...), addr...)
}

// Get returns the stored data, or nil if the signer never signed.
func (Bucket) Get(db barter.ReadOnlyKVStore, addr barter.Address) (*UserData, error) {
	raw := db.Get(userKey(addr))
	if raw == nil {
		return nil, nil
	}
	var u UserData
	if err := proto.Unmarshal(raw, &u); err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	return &u, nil
}

// GetOrCreate initializes a UserData if none exist for that key
func (b Bucket) GetOrCreate(db barter.ReadOnlyKVStore, pubkey *crypto.PublicKey) (*UserData, error) {
	u, err := b.Get(db, pubkey.Address())
	if err != nil {
		return nil, err
	}
	if u == nil {
		u = &UserData{Pubkey: pubkey}
	}
	return u, nil
}

// Save validates and writes the data under the address of its key.
func (Bucket) Save(db barter.KVStore, u *UserData) error {
	if err := u.Validate(); err != nil {
		return errors.Wrap(err, "invalid user")
	}
	raw, err := proto.Marshal(u)
	if err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	db.Set(userKey(u.Pubkey.Address()), raw)
	return nil
}

// Register exposes the bucket under /name, queried by signer address.
func (b Bucket) Register(name string, r barter.QueryRouter) {
	r.Register("/"+name, b)
}

// Query returns the data of the signer address given as data.
func (Bucket) Query(db barter.ReadOnlyKVStore, mod string, data []byte) ([]barter.Model, error) {
	if mod != barter.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unsupported query mod %q", mod)
	}
	key := userKey(data)
	value := db.Get(key)
	if value == nil {
		return nil, nil
	}
	return []barter.Model{barter.Pair(data, value)}, nil
}
