package client

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
	rpcclient "github.com/tendermint/tendermint/rpc/client"
	tmtypes "github.com/tendermint/tendermint/types"
)

// Conn is a connection to a node.
type Conn interface {
	// CommitTx returns once the transaction is part of a block. A
	// transaction rejected by check or deliver returns the chain error.
	CommitTx(ctx context.Context, tx []byte) (*barter.DeliverResult, error)
	// Query runs an abci query against the last committed state.
	Query(ctx context.Context, path string, data []byte) (abci.ResponseQuery, error)
	// ChainID returns the chain the node runs.
	ChainID(ctx context.Context) (string, error)
}

// TendermintConn talks to a tendermint node over rpc.
type TendermintConn struct {
	rpc rpcclient.Client
}

var _ Conn = (*TendermintConn)(nil)

// NewHTTPConnection takes a URL and sends all requests to the remote node
func NewHTTPConnection(remote string) *TendermintConn {
	return NewTendermintConn(rpcclient.NewHTTP(remote, "/websocket"))
}

// NewTendermintConn wraps an existing rpc client.
func NewTendermintConn(rpc rpcclient.Client) *TendermintConn {
	return &TendermintConn{rpc: rpc}
}

func (c *TendermintConn) CommitTx(ctx context.Context, tx []byte) (*barter.DeliverResult, error) {
	res, err := c.rpc.BroadcastTxCommit(tmtypes.Tx(tx))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNetwork, "broadcast tx: %s", err)
	}
	// a checktx error is handled like any other error... didn't make it into mempool... will not make it into block
	if res.CheckTx.Code != 0 {
		return nil, errors.ABCIError(res.CheckTx.Code, res.CheckTx.Log)
	}
	return barter.ParseDeliverOrError(res.DeliverTx)
}

func (c *TendermintConn) Query(ctx context.Context, path string, data []byte) (abci.ResponseQuery, error) {
	res, err := c.rpc.ABCIQuery(path, cmn.HexBytes(data))
	if err != nil {
		return abci.ResponseQuery{}, errors.Wrapf(errors.ErrNetwork, "query %s: %s", path, err)
	}
	return res.Response, nil
}

func (c *TendermintConn) ChainID(ctx context.Context) (string, error) {
	status, err := c.rpc.Status()
	if err != nil {
		return "", errors.Wrapf(errors.ErrNetwork, "status: %s", err)
	}
	return status.NodeInfo.Network, nil
}

// LocalConn drives an application in the same process. Every transaction
// goes through check and deliver in a block of its own. Calls are
// serialized, it is safe for concurrent use.
type LocalConn struct {
	mu      sync.Mutex
	app     abci.Application
	chainID string
	height  int64
}

var _ Conn = (*LocalConn)(nil)

// NewLocalConn initializes the chain with the given app_state and commits
// the genesis block.
func NewLocalConn(app abci.Application, chainID string, appState json.RawMessage) (conn *LocalConn, err error) {
	// InitChain panics on a bad genesis
	defer errors.Recover(&err)

	app.InitChain(abci.RequestInitChain{
		ChainId:       chainID,
		AppStateBytes: appState,
	})
	c := &LocalConn{app: app, chainID: chainID}
	c.block(nil)
	return c, nil
}

func (c *LocalConn) CommitTx(ctx context.Context, tx []byte) (*barter.DeliverResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := barter.ParseCheckOrError(c.app.CheckTx(tx)); err != nil {
		return nil, err
	}
	return barter.ParseDeliverOrError(c.block(tx))
}

// block runs one block holding tx, if any.
func (c *LocalConn) block(tx []byte) abci.ResponseDeliverTx {
	c.height++
	c.app.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{
			ChainID: c.chainID,
			Height:  c.height,
			Time:    time.Now().UTC(),
		},
	})
	var res abci.ResponseDeliverTx
	if tx != nil {
		res = c.app.DeliverTx(tx)
	}
	c.app.EndBlock(abci.RequestEndBlock{Height: c.height})
	c.app.Commit()
	return res
}

func (c *LocalConn) Query(ctx context.Context, path string, data []byte) (abci.ResponseQuery, error) {
	if err := ctx.Err(); err != nil {
		return abci.ResponseQuery{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.app.Query(abci.RequestQuery{Path: path, Data: data}), nil
}

func (c *LocalConn) ChainID(context.Context) (string, error) {
	return c.chainID, nil
}
