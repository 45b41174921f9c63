package barter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

func TestContextHeader(t *testing.T) {
	bg := context.Background()
	_, ok := GetHeader(bg)
	assert.False(t, ok)
	_, ok = BlockTime(bg)
	assert.False(t, ok)

	now := time.Now().UTC()
	ctx := WithHeader(bg, abci.Header{Height: 7, Time: now})
	h, ok := GetHeader(ctx)
	assert.True(t, ok)
	assert.EqualValues(t, 7, h.Height)
	bt, ok := BlockTime(ctx)
	assert.True(t, ok)
	assert.Equal(t, now, bt)

	assert.Panics(t, func() { WithHeader(ctx, abci.Header{}) })
}

func TestContextHeight(t *testing.T) {
	ctx := WithHeight(context.Background(), 12)
	h, ok := GetHeight(ctx)
	assert.True(t, ok)
	assert.EqualValues(t, 12, h)
	assert.Panics(t, func() { WithHeight(ctx, 13) })
}

func TestContextChainID(t *testing.T) {
	bg := context.Background()
	assert.Panics(t, func() { GetChainID(bg) })
	assert.Panics(t, func() { WithChainID(bg, "no") })

	ctx := WithChainID(bg, "barter-test")
	assert.Equal(t, "barter-test", GetChainID(ctx))
	assert.Panics(t, func() { WithChainID(ctx, "barter-other") })
}

func TestContextLogger(t *testing.T) {
	bg := context.Background()
	assert.Equal(t, DefaultLogger, GetLogger(bg))

	logger := log.NewNopLogger()
	ctx := WithLogger(bg, logger)
	assert.Equal(t, logger, GetLogger(ctx))

	ctx = WithLogInfo(ctx, "module", "offer")
	assert.NotNil(t, GetLogger(ctx))
}
