package bartertest

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter"
)

// Tx represents a barter transaction.
// Transaction represents a single message that is to be processed within this
// transaction.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg barter.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ barter.Tx = (*Tx)(nil)

func (tx *Tx) Reset()         { *tx = Tx{} }
func (tx *Tx) String() string { return "bartertest.Tx" }
func (*Tx) ProtoMessage()     {}

func (tx *Tx) GetMsg() (barter.Msg, error) {
	return tx.Msg, tx.Err
}

// Msg represents a barter message.
// Message is a request processed by barter within a single transaction.
type Msg struct {
	// RoutePath returned by the path method, consumed by the router.
	RoutePath string `protobuf:"bytes,1,opt,name=route_path,proto3"`
	// Serialized represents the payload of this message.
	Serialized []byte `protobuf:"bytes,2,opt,name=serialized,proto3"`
	// Err if set is returned by Validate.
	Err error
}

var _ barter.Msg = (*Msg)(nil)

func (m *Msg) Reset()         { *m = Msg{} }
func (m *Msg) String() string { return proto.CompactTextString(m) }
func (*Msg) ProtoMessage()    {}

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}
