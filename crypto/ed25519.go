package crypto

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"golang.org/x/crypto/ed25519"
)

// Signer is anything that can produce a signature for a public key.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}

// Verify verifies the signature was created with this message and public key
func (p *PublicKey) Verify(message []byte, sig *Signature) bool {
	if p == nil || sig == nil || len(p.Ed25519) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p.Ed25519), message, sig.Ed25519)
}

// Address returns the account controlled by this key.
func (p *PublicKey) Address() barter.Address {
	if p == nil {
		return nil
	}
	return barter.Address(p.Ed25519).Clone()
}

// PublicKeyFromAddress restores the verification key of a wallet address.
// Program derived addresses have no key and are rejected.
func PublicKeyFromAddress(addr barter.Address) (*PublicKey, error) {
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	if !barter.IsOnCurve(addr) {
		return nil, errors.Wrap(errors.ErrInput, "address has no public key")
	}
	return &PublicKey{Ed25519: addr.Clone()}, nil
}

var _ Signer = (*PrivateKey)(nil)

func (m *PrivateKey) String() string { return "PrivateKey{...}" }

// Sign returns a matching signature for this private key
func (p *PrivateKey) Sign(message []byte) (*Signature, error) {
	if p == nil || len(p.Ed25519) != ed25519.PrivateKeySize {
		return nil, errors.Wrap(errors.ErrInput, "invalid private key")
	}
	return &Signature{Ed25519: ed25519.Sign(ed25519.PrivateKey(p.Ed25519), message)}, nil
}

// PublicKey returns the corresponding PublicKey
func (p *PrivateKey) PublicKey() *PublicKey {
	pub := ed25519.PrivateKey(p.Ed25519).Public().(ed25519.PublicKey)
	return &PublicKey{Ed25519: []byte(pub)}
}

// Address returns the account controlled by this key.
func (p *PrivateKey) Address() barter.Address {
	return p.PublicKey().Address()
}

// GenPrivKeyEd25519 returns a random new private key
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Ed25519: priv}
}

// PrivKeyEd25519FromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases.
func PrivKeyEd25519FromSeed(seed []byte) *PrivateKey {
	return &PrivateKey{Ed25519: ed25519.NewKeyFromSeed(seed)}
}
