package x

import (
	"context"
	"testing"

	"github.com/iov-one/barter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticAuth []barter.Address

func (s staticAuth) GetSigners(barter.Context) []barter.Address { return s }

func (s staticAuth) HasAddress(_ barter.Context, addr barter.Address) bool {
	for _, a := range s {
		if a.Equals(addr) {
			return true
		}
	}
	return false
}

func TestMultiAuth(t *testing.T) {
	alice, bob, carol := barter.NewProgramID("alice"), barter.NewProgramID("bob"), barter.NewProgramID("carol")
	ctx := context.Background()
	auth := ChainAuth(staticAuth{alice}, staticAuth{bob})

	assert.Equal(t, []barter.Address{alice, bob}, auth.GetSigners(ctx))
	assert.True(t, auth.HasAddress(ctx, bob))
	assert.False(t, auth.HasAddress(ctx, carol))
	assert.Equal(t, alice, MainSigner(ctx, auth))
	assert.Nil(t, MainSigner(ctx, staticAuth{}))
	assert.True(t, HasAllAddresses(ctx, auth, alice, bob))
	assert.False(t, HasAllAddresses(ctx, auth, alice, carol))
}

func TestProgramSigner(t *testing.T) {
	program := barter.NewProgramID("escrow")
	addr, bump, err := barter.FindProgramAddress(program, []byte("vault"))
	require.NoError(t, err)

	ctx := context.Background()
	assert.False(t, ProgramAuth{}.HasAddress(ctx, addr))

	signed, got, err := WithProgramSigner(ctx, program, []byte("vault"), []byte{bump})
	require.NoError(t, err)
	assert.Equal(t, addr, got)
	assert.True(t, ProgramAuth{}.HasAddress(signed, addr))
	assert.False(t, ProgramAuth{}.HasAddress(ctx, addr))

	// a wrong bump never grants the address
	_, other, err := WithProgramSigner(ctx, program, []byte("vault"), []byte{bump - 1})
	if err == nil {
		assert.NotEqual(t, addr, other)
	}
}
