package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
)

// setMsg stores Value under Key when delivered.
type setMsg struct {
	Key   []byte `protobuf:"bytes,1,opt,name=key,proto3"`
	Value []byte `protobuf:"bytes,2,opt,name=value,proto3"`
	Route string `protobuf:"bytes,3,opt,name=route,proto3"`
}

func (m *setMsg) Reset()         { *m = setMsg{} }
func (m *setMsg) String() string { return proto.CompactTextString(m) }
func (*setMsg) ProtoMessage()    {}

func (m *setMsg) Path() string {
	if m.Route != "" {
		return m.Route
	}
	return "test/set"
}

func (m *setMsg) Validate() error {
	if len(m.Key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	return nil
}

// testTx carries a setMsg directly.
type testTx struct {
	Msg *setMsg `protobuf:"bytes,1,opt,name=msg,proto3"`
}

func (m *testTx) Reset()         { *m = testTx{} }
func (m *testTx) String() string { return proto.CompactTextString(m) }
func (*testTx) ProtoMessage()    {}

func (m *testTx) GetMsg() (barter.Msg, error) {
	if m.Msg == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "msg")
	}
	return m.Msg, nil
}

func decodeTestTx(raw []byte) (barter.Tx, error) {
	var tx testTx
	if err := proto.Unmarshal(raw, &tx); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return &tx, nil
}

// setHandler writes the message content into the store.
type setHandler struct{}

func (setHandler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	var msg setMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	return barter.NewCheck(1, "ok"), nil
}

func (setHandler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	var msg setMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if string(msg.Value) == "fail" {
		db.Set(msg.Key, msg.Value)
		return nil, errors.Wrap(errors.ErrState, "failing on purpose")
	}
	db.Set(msg.Key, msg.Value)
	return &barter.DeliverResult{Data: msg.Key}, nil
}

// counting records the order in which decorators run.
type counting struct {
	name string
	log  *[]string
}

func (c counting) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx, next barter.Checker) (*barter.CheckResult, error) {
	*c.log = append(*c.log, c.name)
	return next.Check(ctx, db, tx)
}

func (c counting) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx, next barter.Deliverer) (*barter.DeliverResult, error) {
	*c.log = append(*c.log, c.name)
	return next.Deliver(ctx, db, tx)
}

// keyQuery returns the raw value stored under the queried key.
type keyQuery struct{}

func (keyQuery) Query(db barter.ReadOnlyKVStore, mod string, data []byte) ([]barter.Model, error) {
	v := db.Get(data)
	if v == nil {
		return nil, nil
	}
	return []barter.Model{barter.Pair(data, v)}, nil
}
