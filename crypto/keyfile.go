package crypto

import (
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/btcsuite/btcutil/base58"
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"golang.org/x/crypto/ed25519"
)

// keyFile is the on disk form of a private key. The secret is the base58
// encoded 64 byte ed25519 key, the address is only informative.
type keyFile struct {
	Address barter.Address `json:"address"`
	Secret  string         `json:"secret"`
}

// SaveKeyFile writes the key to path, readable by the owner only.
// An existing file is never overwritten.
func SaveKeyFile(path string, key *PrivateKey) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Wrapf(errors.ErrDuplicate, "key file %q", path)
	}
	raw, err := json.MarshalIndent(keyFile{
		Address: key.Address(),
		Secret:  base58.Encode(key.Ed25519),
	}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "cannot serialize key")
	}
	if err := ioutil.WriteFile(path, raw, 0600); err != nil {
		return errors.Wrap(err, "cannot write key file")
	}
	return nil
}

// LoadKeyFile reads a key written by SaveKeyFile.
func LoadKeyFile(path string) (*PrivateKey, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read key file")
	}
	var kf keyFile
	if err := json.Unmarshal(raw, &kf); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	secret := base58.Decode(kf.Secret)
	if len(secret) != ed25519.PrivateKeySize {
		return nil, errors.Wrap(errors.ErrInput, "invalid secret length")
	}
	key := &PrivateKey{Ed25519: secret}
	if len(kf.Address) != 0 && !kf.Address.Equals(key.Address()) {
		return nil, errors.Wrap(errors.ErrInput, "address does not match the secret")
	}
	return key, nil
}
