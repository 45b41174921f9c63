package batch

import (
	"strings"

	"github.com/iov-one/barter"
	"github.com/tendermint/go-amino"
	"github.com/tendermint/tendermint/libs/common"
)

// Decorator unrolls an ExecuteBatchMsg and runs each message through the
// rest of the stack as if it came alone. Other messages pass straight on.
// The first failing message fails the batch.
type Decorator struct{}

var _ barter.Decorator = Decorator{}

func NewDecorator() Decorator {
	return Decorator{}
}

// single shows one message of a batch as a transaction; signatures and
// everything else come from the batch transaction.
type single struct {
	barter.Tx
	msg barter.Msg
}

func (tx *single) GetMsg() (barter.Msg, error) {
	return tx.msg, nil
}

// unroll returns the transactions to run, or nil if tx is not a batch.
func unroll(tx barter.Tx) ([]barter.Tx, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	b, ok := msg.(*ExecuteBatchMsg)
	if !ok {
		return nil, nil
	}
	msgs, err := b.MsgList()
	if err != nil {
		return nil, err
	}
	txs := make([]barter.Tx, len(msgs))
	for i, m := range msgs {
		txs[i] = &single{Tx: tx, msg: m}
	}
	return txs, nil
}

func (Decorator) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx, next barter.Checker) (*barter.CheckResult, error) {
	txs, err := unroll(tx)
	if err != nil {
		return nil, err
	}
	if txs == nil {
		return next.Check(ctx, db, tx)
	}

	var (
		out  barter.CheckResult
		data = make([][]byte, len(txs))
		logs = make([]string, len(txs))
	)
	for i, t := range txs {
		res, err := next.Check(ctx, db, t)
		if err != nil {
			return nil, err
		}
		if res != nil {
			data[i], logs[i] = res.Data, res.Log
			out.GasAllocated += res.GasAllocated
		}
	}
	out.Data = amino.MustMarshalBinaryBare(data)
	out.Log = strings.Join(logs, "\n")
	return &out, nil
}

func (Decorator) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx, next barter.Deliverer) (*barter.DeliverResult, error) {
	txs, err := unroll(tx)
	if err != nil {
		return nil, err
	}
	if txs == nil {
		return next.Deliver(ctx, db, tx)
	}

	var (
		out  barter.DeliverResult
		data = make([][]byte, len(txs))
		logs = make([]string, len(txs))
		tags []common.KVPair
	)
	for i, t := range txs {
		res, err := next.Deliver(ctx, db, t)
		if err != nil {
			return nil, err
		}
		if res != nil {
			data[i], logs[i] = res.Data, res.Log
			out.GasUsed += res.GasUsed
			tags = append(tags, res.Tags...)
		}
	}
	out.Data = amino.MustMarshalBinaryBare(data)
	out.Log = strings.Join(logs, "\n")
	out.Tags = tags
	return &out, nil
}

// SplitData splits the Data of a batch result back into one entry per
// message.
func SplitData(data []byte) ([][]byte, error) {
	var parts [][]byte
	if err := amino.UnmarshalBinaryBare(data, &parts); err != nil {
		return nil, err
	}
	return parts, nil
}
