package sigs

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/crypto"
	"github.com/iov-one/barter/errors"
)

// signCode versions the layout of the signed bytes.
var signCode = []byte{0, 0xBA, 0x27, 0}

// VerifyTxSignatures checks every signature on tx and bumps each signer's
// sequence. It returns the signers in signature order; one bad signature
// fails the whole transaction.
func VerifyTxSignatures(db barter.KVStore, tx SignedTx, chainID string) ([]barter.Address, error) {
	raw, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	signers := make([]barter.Address, len(tx.GetSignatures()))
	for i, sig := range tx.GetSignatures() {
		if signers[i], err = VerifySignature(db, sig, raw, chainID); err != nil {
			return nil, err
		}
	}
	return signers, nil
}

// VerifySignature checks sig over raw for chainID and stores the signer's
// next sequence. Unknown keys get a fresh user record.
func VerifySignature(db barter.KVStore, sig *StdSignature, raw []byte, chainID string) (barter.Address, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	digest, err := BuildSignBytes(raw, chainID, sig.Sequence)
	if err != nil {
		return nil, err
	}

	users := NewBucket()
	user, err := users.GetOrCreate(db, sig.Pubkey)
	if err != nil {
		return nil, err
	}
	if !user.Pubkey.Verify(digest, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}
	if err := user.CheckAndIncrementSequence(sig.Sequence); err != nil {
		return nil, err
	}
	if err := users.Save(db, user); err != nil {
		return nil, err
	}
	return user.Pubkey.Address(), nil
}

// BuildSignBytes returns the sha512 digest that is actually signed:
//
//   code (4) | len(chainID) (1) | chainID | seq (8, big endian) | raw
func BuildSignBytes(raw []byte, chainID string, seq int64) ([]byte, error) {
	if seq < 0 {
		return nil, errors.Wrap(ErrInvalidSequence, "negative")
	}
	if !barter.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}

	buf := make([]byte, 0, len(signCode)+1+len(chainID)+8+len(raw))
	buf = append(buf, signCode...)
	buf = append(buf, byte(len(chainID)))
	buf = append(buf, chainID...)
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(seq))
	buf = append(buf, n[:]...)
	buf = append(buf, raw...)

	digest := sha512.Sum512(buf)
	return digest[:], nil
}

// SignTx signs tx for chainID at sequence seq.
func SignTx(signer crypto.Signer, tx SignedTx, chainID string, seq int64) (*StdSignature, error) {
	raw, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	digest, err := BuildSignBytes(raw, chainID, seq)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(digest)
	if err != nil {
		return nil, err
	}
	return &StdSignature{Pubkey: signer.PublicKey(), Signature: sig, Sequence: seq}, nil
}

// NextNonce is the sequence signer must use next, zero for a new key.
func NextNonce(db barter.ReadOnlyKVStore, signer barter.Address) (int64, error) {
	u, err := NewBucket().Get(db, signer)
	switch {
	case err != nil:
		return 0, errors.Wrap(err, "bucket get")
	case u == nil:
		return 0, nil
	}
	return u.Sequence, nil
}
