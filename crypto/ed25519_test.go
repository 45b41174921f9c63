package crypto

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEd25519Signing(t *testing.T) {
	msg := []byte("move forward")
	msg2 := []byte("move backward")

	private := GenPrivKeyEd25519()
	public := private.PublicKey()
	bad := GenPrivKeyEd25519().PublicKey()

	sig, err := private.Sign(msg)
	require.NoError(t, err)
	sig2, err := private.Sign(msg2)
	require.NoError(t, err)

	assert.True(t, public.Verify(msg, sig))
	assert.True(t, public.Verify(msg2, sig2))
	assert.False(t, public.Verify(msg, sig2))
	assert.False(t, bad.Verify(msg, sig))
	assert.False(t, public.Verify(msg, nil))
	assert.False(t, (*PublicKey)(nil).Verify(msg, sig))
}

func TestEd25519Address(t *testing.T) {
	private := GenPrivKeyEd25519()
	addr := private.Address()

	assert.NoError(t, addr.Validate())
	assert.Len(t, addr, barter.AddressLength)
	assert.True(t, barter.IsOnCurve(addr))

	pub, err := PublicKeyFromAddress(addr)
	require.NoError(t, err)
	assert.Equal(t, private.PublicKey(), pub)

	pda, _, err := barter.FindProgramAddress(barter.NewProgramID("test"), []byte("seed"))
	require.NoError(t, err)
	_, err = PublicKeyFromAddress(pda)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestPrivKeyEd25519FromSeed(t *testing.T) {
	seed := make([]byte, 32)
	a := PrivKeyEd25519FromSeed(seed)
	b := PrivKeyEd25519FromSeed(seed)
	assert.Equal(t, a, b)
	assert.Equal(t, []byte{
		59, 106, 39, 188, 206, 182, 164, 45, 98, 163, 168, 208, 42, 111, 13, 115,
		101, 50, 21, 119, 29, 226, 67, 166, 58, 192, 72, 161, 139, 89, 218, 41,
	}, a.PublicKey().Ed25519)

	assert.Panics(t, func() { PrivKeyEd25519FromSeed([]byte{0}) })
}

func TestEmptyPrivateKeySign(t *testing.T) {
	var key PrivateKey
	_, err := key.Sign([]byte("foo"))
	assert.Error(t, err)
}

func TestKeyFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "keyfile")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "alice.key")
	key := GenPrivKeyEd25519()
	require.NoError(t, SaveKeyFile(path, key))

	// never overwrite
	err = SaveKeyFile(path, GenPrivKeyEd25519())
	assert.True(t, errors.ErrDuplicate.Is(err))

	loaded, err := LoadKeyFile(path)
	require.NoError(t, err)
	assert.Equal(t, key.Ed25519, loaded.Ed25519)

	_, err = LoadKeyFile(filepath.Join(dir, "missing.key"))
	assert.Error(t, err)
}
