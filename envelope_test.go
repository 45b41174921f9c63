package barter

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingMsg struct {
	Text string `protobuf:"bytes,1,opt,name=text,proto3"`
}

func (m *pingMsg) Reset()         { *m = pingMsg{} }
func (m *pingMsg) String() string { return proto.CompactTextString(m) }
func (*pingMsg) ProtoMessage()    {}
func (*pingMsg) Path() string     { return "test/ping" }
func (*pingMsg) Validate() error  { return nil }

type otherPingMsg struct{ pingMsg }

func TestEnvelope(t *testing.T) {
	RegisterMsg(&pingMsg{})
	RegisterMsg(&pingMsg{})
	assert.Panics(t, func() { RegisterMsg(&otherPingMsg{}) })

	env, err := Seal(&pingMsg{Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "test/ping", env.Path)

	raw, err := proto.Marshal(env)
	require.NoError(t, err)
	var got MsgEnvelope
	require.NoError(t, proto.Unmarshal(raw, &got))

	msg, err := got.Open()
	require.NoError(t, err)
	assert.Equal(t, &pingMsg{Text: "hello"}, msg)

	_, err = (&MsgEnvelope{Path: "test/unknown"}).Open()
	assert.True(t, errors.ErrMsg.Is(err))
	_, err = (*MsgEnvelope)(nil).Open()
	assert.True(t, errors.ErrEmpty.Is(err))
	_, err = Seal(nil)
	assert.True(t, errors.ErrEmpty.Is(err))
}
