package barter

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressText(t *testing.T) {
	addr := NewProgramID("text")

	b58, err := ParseAddress(addr.String())
	require.NoError(t, err)
	assert.Equal(t, addr, b58)

	fromHex, err := ParseAddress("hex:" + hex.EncodeToString(addr))
	require.NoError(t, err)
	assert.Equal(t, addr, fromHex)

	s, err := addr.Bech32()
	require.NoError(t, err)
	assert.Contains(t, s, AddressHRP+"1")
	fromBech, err := ParseAddress(s)
	require.NoError(t, err)
	assert.Equal(t, addr, fromBech)
}

func TestParseAddressErrors(t *testing.T) {
	cases := map[string]string{
		"too short":   "hex:0102",
		"invalid hex": "hex:zz",
		"empty":       "",
		"bad base58":  "0OIl",
	}
	for testName, s := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := ParseAddress(s)
			assert.Error(t, err)
		})
	}
}

func TestAddressJSON(t *testing.T) {
	type holder struct {
		Owner Address `json:"owner"`
	}
	in := holder{Owner: NewProgramID("json")}
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"owner":"`+in.Owner.String()+`"}`, string(raw))

	var out holder
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.True(t, in.Owner.Equals(out.Owner))

	require.NoError(t, json.Unmarshal([]byte(`{"owner":"hex:`+hex.EncodeToString(in.Owner)+`"}`), &out))
	assert.Equal(t, in.Owner, out.Owner)

	assert.Error(t, json.Unmarshal([]byte(`{"owner":12}`), &out))
}

func TestAddressClone(t *testing.T) {
	a := NewProgramID("clone")
	c := a.Clone()
	c[0] ^= 0xff
	assert.False(t, a.Equals(c))
	assert.Nil(t, Address(nil).Clone())
	assert.Equal(t, "(nil)", Address(nil).String())
}
