package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/x/sigs"
)

// Tx is the transaction format of the barter chain: one message envelope
// and the signatures over it.
type Tx struct {
	Signatures []*sigs.StdSignature `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
	Msg        *barter.MsgEnvelope  `protobuf:"bytes,2,opt,name=msg,proto3" json:"msg,omitempty"`
}

// make sure tx fulfills all interfaces
var _ barter.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

func (m *Tx) Reset()         { *m = Tx{} }
func (m *Tx) String() string { return proto.CompactTextString(m) }
func (*Tx) ProtoMessage()    {}

// NewTx wraps msg into an unsigned transaction.
func NewTx(msg barter.Msg) (*Tx, error) {
	env, err := barter.Seal(msg)
	if err != nil {
		return nil, err
	}
	return &Tx{Msg: env}, nil
}

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (barter.Tx, error) {
	tx := new(Tx)
	if err := proto.Unmarshal(bz, tx); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return tx, nil
}

// GetMsg opens the message envelope.
func (tx *Tx) GetMsg() (barter.Msg, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrInput, "unable to decode")
	}
	return tx.Msg.Open()
}

// GetSignatures implements sigs.SignedTx.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// signatures never sign each other
	unsigned := Tx{Msg: tx.Msg}
	return proto.Marshal(&unsigned)
}

// Marshal serializes the transaction.
func (tx *Tx) Marshal() ([]byte, error) {
	return proto.Marshal(tx)
}
