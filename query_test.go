package barter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticQuery []Model

func (q staticQuery) Query(ReadOnlyKVStore, string, []byte) ([]Model, error) {
	return q, nil
}

func TestQueryRouterRoute(t *testing.T) {
	r := NewQueryRouter()
	offers := staticQuery{Pair([]byte("k"), []byte("v"))}
	r.Register("offers", offers)
	r.Register("/offers/taker", staticQuery{})

	h, mod, ok := r.Route("/offers?prefix")
	require.True(t, ok)
	assert.Equal(t, PrefixQueryMod, mod)
	res, err := h.Query(nil, mod, nil)
	require.NoError(t, err)
	assert.Len(t, res, 1)

	_, mod, ok = r.Route("/offers/taker")
	assert.True(t, ok)
	assert.Equal(t, KeyQueryMod, mod)

	_, _, ok = r.Route("/items")
	assert.False(t, ok)

	assert.Equal(t, []string{"/offers", "/offers/taker"}, r.Paths())
	assert.Panics(t, func() { r.Register("/offers", offers) })
}
