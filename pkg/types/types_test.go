package types

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signing-core/pkg/errno"
)

func TestNewDenom(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"uatom", true},
		{"ATOM", true},
		{"ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2", true},
		{"a:b.c_d-e", true},
		{"", false},
		{"ab", false},
		{"1atom", false},
		{"u atom", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := NewDenom(tt.input)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.input, d.String())
				return
			}
			assert.True(t, errors.Is(err, errno.ErrDecode))
		})
	}
}

func TestCoinMarshal(t *testing.T) {
	c, err := NewCoin("uatom", "2000")
	require.NoError(t, err)

	bz, err := c.Marshal()
	require.NoError(t, err)
	assert.Equal(t, "0a057561746f6d120432303030", hex.EncodeToString(bz))
	assert.Equal(t, "2000uatom", c.String())
}

func TestCoinJSON(t *testing.T) {
	var c Coin
	require.NoError(t, json.Unmarshal([]byte(`{"denom":"uatom","amount":"115792089237316195423570985008687907853269984665640564039457584007913129639935"}`), &c))
	assert.Equal(t, "115792089237316195423570985008687907853269984665640564039457584007913129639935", c.Amount.Dec())

	bz, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(bz), `"denom":"uatom"`)

	for _, bad := range []string{
		`{"denom":"uatom","amount":"-1"}`,
		`{"denom":"uatom","amount":"1.5"}`,
		`{"denom":"uatom"}`,
		`{"denom":"x","amount":"1"}`,
		`{"amount":"1"}`,
	} {
		assert.Error(t, json.Unmarshal([]byte(bad), &c), bad)
	}
}

func TestNewCoins(t *testing.T) {
	a, _ := NewCoinUint64("uatom", 1)
	b, _ := NewCoinUint64("uosmo", 2)
	a2, _ := NewCoinUint64("uatom", 3)

	coins, err := NewCoins(b, a)
	require.NoError(t, err)
	assert.Equal(t, "2uosmo,1uatom", coins.String())

	_, err = NewCoins()
	assert.True(t, errors.Is(err, errno.ErrDecode))
	_, err = NewCoins(a, a2)
	assert.True(t, errors.Is(err, errno.ErrDecode))

	var decoded Coins
	require.NoError(t, json.Unmarshal([]byte(`[]`), &decoded))
	assert.Nil(t, decoded)
	assert.Error(t, json.Unmarshal([]byte(`[{"denom":"uatom","amount":"1"},{"denom":"uatom","amount":"2"}]`), &decoded))
	require.NoError(t, json.Unmarshal([]byte(`[{"denom":"uatom","amount":"5"}]`), &decoded))
	assert.Len(t, decoded, 1)
}

func TestMetadata(t *testing.T) {
	md := Metadata{
		Base:    "uatom",
		Display: "ATOM",
		DenomUnits: []DenomUnit{
			{Denom: "uatom", Exponent: 0},
			{Denom: "ATOM", Exponent: 6},
		},
	}
	require.NoError(t, md.Validate())

	u, ok := md.Unit("ATOM")
	require.True(t, ok)
	assert.EqualValues(t, 6, u.Exponent)
	_, ok = md.Unit("matom")
	assert.False(t, ok)

	bad := md
	bad.DenomUnits = []DenomUnit{{Denom: "uatom", Exponent: 3}}
	assert.Error(t, bad.Validate())

	bad = md
	bad.DenomUnits = []DenomUnit{{Denom: "ATOM", Exponent: 6}, {Denom: "ATOM", Exponent: 6}}
	assert.Error(t, bad.Validate())

	bad = md
	bad.Base = ""
	assert.Error(t, bad.Validate())
}
