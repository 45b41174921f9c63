package app

import (
	"encoding/json"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/app"
	"github.com/iov-one/barter/crypto"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/x/offer"
	"github.com/iov-one/barter/x/sigs"
	"github.com/iov-one/barter/x/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
)

func TestSignBytesIgnoreSignatures(t *testing.T) {
	key := crypto.GenPrivKeyEd25519()
	tx, err := NewTx(&offer.CancelMsg{Offer: key.Address()})
	require.NoError(t, err)

	unsigned, err := tx.GetSignBytes()
	require.NoError(t, err)

	sig, err := sigs.SignTx(key, tx, "barter-test", 0)
	require.NoError(t, err)
	tx.Signatures = append(tx.Signatures, sig)

	signed, err := tx.GetSignBytes()
	require.NoError(t, err)
	assert.Equal(t, unsigned, signed)

	raw, err := tx.Marshal()
	require.NoError(t, err)
	decoded, err := TxDecoder(raw)
	require.NoError(t, err)
	msg, err := decoded.GetMsg()
	require.NoError(t, err)
	assert.Equal(t, offer.PathCancelMsg, msg.Path())
	assert.Len(t, decoded.(*Tx).GetSignatures(), 1)
}

func TestTxDecoderRejectsGarbage(t *testing.T) {
	_, err := TxDecoder([]byte{0xff, 0xff, 0xff})
	assert.True(t, errors.ErrInput.Is(err), "got %+v", err)

	empty, err := TxDecoder(nil)
	require.NoError(t, err)
	_, err = empty.GetMsg()
	assert.True(t, errors.ErrInput.Is(err), "got %+v", err)
}

func TestGenInitOptions(t *testing.T) {
	_, err := GenInitOptions(nil)
	assert.True(t, errors.ErrEmpty.Is(err))

	_, err = GenInitOptions([]string{"not base58 0OIl"})
	assert.Error(t, err)

	key := crypto.GenPrivKeyEd25519()
	raw, err := GenInitOptions([]string{key.Address().String()})
	require.NoError(t, err)

	var state struct {
		System []system.GenesisWallet `json:"system"`
	}
	require.NoError(t, json.Unmarshal(raw, &state))
	require.Len(t, state.System, 1)
	assert.Equal(t, key.Address(), state.System[0].Address)
	assert.EqualValues(t, GenesisLamports, state.System[0].Lamports)
}

func TestGenesisFundsWallets(t *testing.T) {
	key := crypto.GenPrivKeyEd25519()
	state, err := GenInitOptions([]string{key.Address().String()})
	require.NoError(t, err)

	kv, err := CommitKVStore("")
	require.NoError(t, err)
	myApp := Application(Stack(), kv, true)
	myApp.InitChain(abci.RequestInitChain{ChainId: "barter-test", AppStateBytes: state})
	myApp.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{ChainID: "barter-test", Height: 1}})
	myApp.EndBlock(abci.RequestEndBlock{Height: 1})
	myApp.Commit()

	res := myApp.Query(abci.RequestQuery{Path: "/wallets", Data: key.Address()})
	require.EqualValues(t, 0, res.Code, res.Log)

	var keys, values app.ResultSet
	require.NoError(t, keys.Unmarshal(res.Key))
	require.NoError(t, values.Unmarshal(res.Value))
	models, err := app.JoinResults(&keys, &values)
	require.NoError(t, err)
	require.Len(t, models, 1)

	var w system.Wallet
	require.NoError(t, proto.Unmarshal(models[0].Value, &w))
	assert.EqualValues(t, GenesisLamports, w.Lamports)
	assert.Equal(t, barter.Address(models[0].Key), key.Address())
}
