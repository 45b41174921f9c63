package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
)

// ResultSet is the Key or Value of a query response: one entry per
// matching model.
type ResultSet struct {
	Results [][]byte `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

func (m *ResultSet) Reset()         { *m = ResultSet{} }
func (m *ResultSet) String() string { return proto.CompactTextString(m) }
func (*ResultSet) ProtoMessage()    {}

// Marshal serializes the result set.
func (m *ResultSet) Marshal() ([]byte, error) {
	return proto.Marshal(&wireResultSet{Results: m.Results})
}

// Unmarshal loads the result set from bytes.
func (m *ResultSet) Unmarshal(raw []byte) error {
	var w wireResultSet
	if err := proto.Unmarshal(raw, &w); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	m.Results = w.Results
	return nil
}

// wireResultSet is the encoded form of ResultSet. A separate type keeps the
// reflection based codec from calling back into ResultSet.Marshal.
type wireResultSet struct {
	Results [][]byte `protobuf:"bytes,1,rep,name=results,proto3"`
}

func (m *wireResultSet) Reset()         { *m = wireResultSet{} }
func (m *wireResultSet) String() string { return proto.CompactTextString(m) }
func (*wireResultSet) ProtoMessage()    {}

// ResultsFromKeys collects the keys of models, in order.
func ResultsFromKeys(models []barter.Model) *ResultSet {
	keys := make([][]byte, len(models))
	for i := range models {
		keys[i] = models[i].Key
	}
	return &ResultSet{Results: keys}
}

// ResultsFromValues collects the values of models, in order.
func ResultsFromValues(models []barter.Model) *ResultSet {
	values := make([][]byte, len(models))
	for i := range models {
		values[i] = models[i].Value
	}
	return &ResultSet{Results: values}
}

// JoinResults pairs the key and value sets of a query response back into
// models.
func JoinResults(keys, values *ResultSet) ([]barter.Model, error) {
	if len(keys.Results) != len(values.Results) {
		return nil, errors.Wrap(errors.ErrState, "mismatched result set size")
	}
	models := make([]barter.Model, len(keys.Results))
	for i, k := range keys.Results {
		models[i] = barter.Model{Key: k, Value: values.Results[i]}
	}
	return models, nil
}

// UnmarshalOneResult decodes the first entry of an encoded ResultSet into
// o. An empty set is ErrNotFound.
func UnmarshalOneResult(raw []byte, o proto.Message) error {
	var set ResultSet
	if err := set.Unmarshal(raw); err != nil {
		return err
	}
	if len(set.Results) == 0 {
		return errors.Wrap(errors.ErrNotFound, "empty result set")
	}
	if err := proto.Unmarshal(set.Results[0], o); err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	return nil
}
