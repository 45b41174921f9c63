package barter

import (
	"io"
	"strings"
	"testing"

	"github.com/iov-one/barter/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/common"
)

func TestDeliverResultRoundTrip(t *testing.T) {
	res := &DeliverResult{
		Data: []byte("offer"),
		Log:  "created",
		Tags: []common.KVPair{{Key: []byte("action"), Value: []byte("offer/create")}},
	}
	abciRes := DeliverOrError(res, nil, false)
	assert.EqualValues(t, 0, abciRes.Code)

	parsed, err := ParseDeliverOrError(abciRes)
	require.NoError(t, err)
	assert.Equal(t, res.Data, parsed.Data)
	assert.Equal(t, res.Tags, parsed.Tags)
}

func TestDeliverErrorRoundTrip(t *testing.T) {
	abciRes := DeliverOrError(nil, errors.ErrUnauthorized.New("not the initializer"), false)
	assert.EqualValues(t, 2, abciRes.Code)
	assert.True(t, strings.HasPrefix(abciRes.Log, "cannot deliver tx"))

	_, err := ParseDeliverOrError(abciRes)
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestCheckErrorRedacted(t *testing.T) {
	abciRes := CheckOrError(nil, io.ErrUnexpectedEOF, false)
	assert.EqualValues(t, 1, abciRes.Code)
	assert.Equal(t, "cannot check tx: internal error", abciRes.Log)

	_, err := ParseCheckOrError(abciRes)
	assert.Error(t, err)

	ok := CheckOrError(NewCheck(10, "fine"), nil, false)
	assert.EqualValues(t, 10, ok.GasWanted)
	parsed, err := ParseCheckOrError(ok)
	require.NoError(t, err)
	assert.Equal(t, "fine", parsed.Log)
}
