package barter

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter/errors"
)

var msgTypes = struct {
	sync.RWMutex
	byPath map[string]reflect.Type
}{byPath: make(map[string]reflect.Type)}

// RegisterMsg declares the concrete type carried under msg.Path(). Every
// extension registers its messages from an init function. Registering the
// same type twice is a noop, another type under the same path panics.
func RegisterMsg(msg Msg) {
	t := reflect.TypeOf(msg)
	if t.Kind() != reflect.Ptr {
		panic(fmt.Sprintf("message %T must be a pointer", msg))
	}
	msgTypes.Lock()
	defer msgTypes.Unlock()
	path := msg.Path()
	if prev, ok := msgTypes.byPath[path]; ok {
		if prev != t.Elem() {
			panic(fmt.Sprintf("path %q already registered for %s", path, prev))
		}
		return
	}
	msgTypes.byPath[path] = t.Elem()
}

// Seal serializes msg into an envelope.
func Seal(msg Msg) (*MsgEnvelope, error) {
	if msg == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "msg")
	}
	raw, err := proto.Marshal(msg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrMsg, err.Error())
	}
	return &MsgEnvelope{Path: msg.Path(), Data: raw}, nil
}

// Open decodes the message of the envelope into its registered type.
func (m *MsgEnvelope) Open() (Msg, error) {
	if m == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "msg")
	}
	msgTypes.RLock()
	t, ok := msgTypes.byPath[m.Path]
	msgTypes.RUnlock()
	if !ok {
		return nil, errors.Wrapf(errors.ErrMsg, "unknown path %q", m.Path)
	}
	msg := reflect.New(t).Interface().(Msg)
	if err := proto.Unmarshal(m.Data, msg); err != nil {
		return nil, errors.Wrap(errors.ErrMsg, err.Error())
	}
	return msg, nil
}
