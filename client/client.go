package client

import (
	"context"

	"github.com/gogo/protobuf/proto"
	"github.com/hashicorp/golang-lru/v2"
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/app"
	barterd "github.com/iov-one/barter/cmd/barterd/app"
	"github.com/iov-one/barter/crypto"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/x/batch"
	"github.com/iov-one/barter/x/offer"
	"github.com/iov-one/barter/x/sigs"
	"github.com/iov-one/barter/x/system"
)

const (
	itemCacheSize  = 512
	deriveMemoSize = 1024
)

// Signer signs transactions for one wallet.
type Signer = crypto.Signer

// Client builds, signs and commits transactions and reads the chain
// state through a Conn. It is safe for concurrent use.
type Client struct {
	conn    Conn
	deriver *offer.Deriver
	// items maps item and mint addresses to items. Items never change
	// once created.
	items *lru.Cache[string, ItemInfo]
}

// NewClient wraps a connection.
func NewClient(conn Conn) (*Client, error) {
	deriver, err := offer.NewDeriver(deriveMemoSize)
	if err != nil {
		return nil, err
	}
	items, err := lru.New[string, ItemInfo](itemCacheSize)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, deriver: deriver, items: items}, nil
}

// BuildTx wraps msgs into one unsigned transaction. Several messages
// become a batch that succeeds or fails as a whole.
func BuildTx(msgs ...barter.Msg) (*barterd.Tx, error) {
	switch len(msgs) {
	case 0:
		return nil, errors.Wrap(errors.ErrEmpty, "no message")
	case 1:
		return barterd.NewTx(msgs[0])
	}
	b, err := batch.NewExecuteBatchMsg(msgs...)
	if err != nil {
		return nil, err
	}
	return barterd.NewTx(b)
}

// SignTx adds a signature of every signer, each committing to the next
// nonce of its wallet.
func (c *Client) SignTx(ctx context.Context, tx *barterd.Tx, signers ...Signer) error {
	chainID, err := c.conn.ChainID(ctx)
	if err != nil {
		return err
	}
	for _, s := range signers {
		seq, err := c.Nonce(ctx, s.PublicKey().Address())
		if err != nil {
			return err
		}
		sig, err := sigs.SignTx(s, tx, chainID, seq)
		if err != nil {
			return errors.Wrap(err, "sign")
		}
		tx.Signatures = append(tx.Signatures, sig)
	}
	return nil
}

// Commit builds a transaction out of msgs, signs it and waits until it is
// part of a block.
func (c *Client) Commit(ctx context.Context, signers []Signer, msgs ...barter.Msg) (*barter.DeliverResult, error) {
	tx, err := BuildTx(msgs...)
	if err != nil {
		return nil, err
	}
	if err := c.SignTx(ctx, tx, signers...); err != nil {
		return nil, err
	}
	raw, err := tx.Marshal()
	if err != nil {
		return nil, errors.Wrap(errors.ErrMsg, err.Error())
	}
	return c.conn.CommitTx(ctx, raw)
}

// Nonce returns the sequence the next signature of addr must use.
func (c *Client) Nonce(ctx context.Context, addr barter.Address) (int64, error) {
	var u sigs.UserData
	found, err := c.queryOne(ctx, "/auth", addr, &u)
	if err != nil || !found {
		return 0, err
	}
	return u.Sequence, nil
}

// Balance returns the lamports held by addr.
func (c *Client) Balance(ctx context.Context, addr barter.Address) (uint64, error) {
	var w system.Wallet
	if _, err := c.queryOne(ctx, "/wallets", addr, &w); err != nil {
		return 0, err
	}
	return w.Lamports, nil
}

// query returns the models of an abci query.
func (c *Client) query(ctx context.Context, path string, data []byte) ([]barter.Model, error) {
	res, err := c.conn.Query(ctx, path, data)
	if err != nil {
		return nil, err
	}
	if res.Code != 0 {
		return nil, errors.ABCIError(res.Code, res.Log)
	}
	var keys, values app.ResultSet
	if err := keys.Unmarshal(res.Key); err != nil {
		return nil, err
	}
	if err := values.Unmarshal(res.Value); err != nil {
		return nil, err
	}
	return app.JoinResults(&keys, &values)
}

// queryOne loads the first result of a key query into dest and reports
// whether there was one.
func (c *Client) queryOne(ctx context.Context, path string, key []byte, dest proto.Message) (bool, error) {
	models, err := c.query(ctx, path, key)
	if err != nil {
		return false, err
	}
	if len(models) == 0 {
		return false, nil
	}
	if err := proto.Unmarshal(models[0].Value, dest); err != nil {
		return false, errors.Wrap(errors.ErrModel, err.Error())
	}
	return true, nil
}
