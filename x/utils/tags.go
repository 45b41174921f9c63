package utils

import (
	"encoding/hex"
	"strings"

	"github.com/iov-one/barter"
	"github.com/tendermint/tendermint/libs/common"
)

// ActionKey is the tag key holding the path of the delivered message.
const ActionKey = "action"

// ActionTagger tags every delivered message with `action = msg.Path()`,
// so a client can subscribe to all offer/accept transactions. Chain it
// after the batch decorator to tag each message of a batch.
type ActionTagger struct{}

var _ barter.Decorator = ActionTagger{}

func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

func (ActionTagger) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx, next barter.Checker) (*barter.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

func (ActionTagger) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx, next barter.Deliverer) (*barter.DeliverResult, error) {
	// an unreadable message never reaches the handler
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return withTags(res, common.KVPair{Key: []byte(ActionKey), Value: []byte(msg.Path())}), nil
}

// KeyTagger tags every key written or deleted during DeliverTx with `s`
// or `d`. Keys are upper case hex, so a client can subscribe to changes
// of one vault or token account.
type KeyTagger struct{}

var _ barter.Decorator = KeyTagger{}

func NewKeyTagger() KeyTagger {
	return KeyTagger{}
}

func (KeyTagger) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx, next barter.Checker) (*barter.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

func (KeyTagger) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx, next barter.Deliverer) (*barter.DeliverResult, error) {
	written := make(writeLog)
	res, err := next.Deliver(ctx, &loggingStore{KVStore: db, log: written}, tx)
	if err != nil {
		return nil, err
	}
	return withTags(res, written.tags()...), nil
}

func withTags(res *barter.DeliverResult, tags ...common.KVPair) *barter.DeliverResult {
	if res == nil {
		res = &barter.DeliverResult{}
	}
	res.Tags = append(res.Tags, tags...)
	return res
}

// writeLog maps each touched key to whether its last write was a delete.
type writeLog map[string]bool

func (w writeLog) tags() common.KVPairs {
	if len(w) == 0 {
		return nil
	}
	tags := make(common.KVPairs, 0, len(w))
	for key, deleted := range w {
		op := "s"
		if deleted {
			op = "d"
		}
		tags = append(tags, common.KVPair{
			Key:   []byte(strings.ToUpper(hex.EncodeToString([]byte(key)))),
			Value: []byte(op),
		})
	}
	tags.Sort()
	return tags
}

// loggingStore fills the log with every write, batched writes included.
type loggingStore struct {
	barter.KVStore
	log writeLog
}

func (s *loggingStore) Set(key, value []byte) {
	s.log[string(key)] = false
	s.KVStore.Set(key, value)
}

func (s *loggingStore) Delete(key []byte) {
	s.log[string(key)] = true
	s.KVStore.Delete(key)
}

func (s *loggingStore) NewBatch() barter.Batch {
	return &loggingBatch{Batch: s.KVStore.NewBatch(), log: s.log}
}

type loggingBatch struct {
	barter.Batch
	log writeLog
}

func (b *loggingBatch) Set(key, value []byte) {
	b.log[string(key)] = false
	b.Batch.Set(key, value)
}

func (b *loggingBatch) Delete(key []byte) {
	b.log[string(key)] = true
	b.Batch.Delete(key)
}
