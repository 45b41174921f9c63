package offer

import (
	"encoding/binary"
	"fmt"

	"github.com/hashicorp/golang-lru/v2"
	"github.com/iov-one/barter"
)

// ProgramID owns every offer and signs for every vault.
var ProgramID = barter.NewProgramID("offer")

func amountSeed(amount uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, amount)
	return b
}

func offerSeeds(giveAccount barter.Address, giveAmount uint64, receiveAccount barter.Address, receiveAmount uint64) [][]byte {
	return [][]byte{giveAccount, amountSeed(giveAmount), receiveAccount, amountSeed(receiveAmount)}
}

func vaultSeeds(giveAccount, receiveAccount barter.Address) [][]byte {
	return [][]byte{giveAccount, receiveAccount}
}

// DeriveOfferAddress returns the address of the offer exchanging giveAmount
// from giveAccount for receiveAmount from receiveAccount. The order of the
// arguments matters.
func DeriveOfferAddress(giveAccount barter.Address, giveAmount uint64, receiveAccount barter.Address, receiveAmount uint64) (barter.Address, uint8, error) {
	return barter.FindProgramAddress(ProgramID, offerSeeds(giveAccount, giveAmount, receiveAccount, receiveAmount)...)
}

// DeriveVaultAddress returns the address of the vault between two token
// accounts. The amounts are not part of it.
func DeriveVaultAddress(giveAccount, receiveAccount barter.Address) (barter.Address, uint8, error) {
	return barter.FindProgramAddress(ProgramID, vaultSeeds(giveAccount, receiveAccount)...)
}

// Derivation is the result of deriving one address.
type Derivation struct {
	Address barter.Address
	Bump    uint8
}

// Deriver memoizes derivations. The bump search hashes up to 256 times, a
// client listing many offers asks for the same addresses over and over.
// It is safe for concurrent use.
type Deriver struct {
	cache *lru.Cache[string, Derivation]
}

// NewDeriver returns a Deriver remembering up to size derivations.
func NewDeriver(size int) (*Deriver, error) {
	c, err := lru.New[string, Derivation](size)
	if err != nil {
		return nil, err
	}
	return &Deriver{cache: c}, nil
}

// Offer memoizes DeriveOfferAddress.
func (d *Deriver) Offer(giveAccount barter.Address, giveAmount uint64, receiveAccount barter.Address, receiveAmount uint64) (Derivation, error) {
	key := fmt.Sprintf("o/%x/%d/%x/%d", []byte(giveAccount), giveAmount, []byte(receiveAccount), receiveAmount)
	if v, ok := d.cache.Get(key); ok {
		return v, nil
	}
	addr, bump, err := DeriveOfferAddress(giveAccount, giveAmount, receiveAccount, receiveAmount)
	if err != nil {
		return Derivation{}, err
	}
	v := Derivation{Address: addr, Bump: bump}
	d.cache.Add(key, v)
	return v, nil
}

// Vault memoizes DeriveVaultAddress.
func (d *Deriver) Vault(giveAccount, receiveAccount barter.Address) (Derivation, error) {
	key := fmt.Sprintf("v/%x/%x", []byte(giveAccount), []byte(receiveAccount))
	if v, ok := d.cache.Get(key); ok {
		return v, nil
	}
	addr, bump, err := DeriveVaultAddress(giveAccount, receiveAccount)
	if err != nil {
		return Derivation{}, err
	}
	v := Derivation{Address: addr, Bump: bump}
	d.cache.Add(key, v)
	return v, nil
}
