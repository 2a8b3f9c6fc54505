package types

import (
	"encoding/json"
	"strings"

	"github.com/holiman/uint256"

	"signing-core/pkg/codec"
	"signing-core/pkg/errno"
)

// Coin 单一面额的数量，Amount 为基础单位下的 256 位无符号整数
type Coin struct {
	Denom  Denom
	Amount uint256.Int
}

// NewCoin 从十进制字符串构造
func NewCoin(denom string, amount string) (Coin, error) {
	d, err := NewDenom(denom)
	if err != nil {
		return Coin{}, err
	}
	amt, err := uint256.FromDecimal(amount)
	if err != nil {
		return Coin{}, errno.Wrapf(errno.ErrDecode, "invalid amount %q: %v", amount, err)
	}
	return Coin{Denom: d, Amount: *amt}, nil
}

// NewCoinUint64 方便测试与常量使用
func NewCoinUint64(denom string, amount uint64) (Coin, error) {
	d, err := NewDenom(denom)
	if err != nil {
		return Coin{}, err
	}
	return Coin{Denom: d, Amount: *uint256.NewInt(amount)}, nil
}

func (c Coin) String() string {
	return c.Amount.Dec() + c.Denom.String()
}

// Marshal cosmos.base.v1beta1.Coin: 1 denom, 2 amount (十进制字符串)
func (c Coin) Marshal() ([]byte, error) {
	var b []byte
	b = codec.AppendString(b, 1, c.Denom.String())
	b = codec.AppendString(b, 2, c.Amount.Dec())
	return b, nil
}

type coinJSON struct {
	Denom  Denom  `json:"denom"`
	Amount string `json:"amount"`
}

func (c Coin) MarshalJSON() ([]byte, error) {
	return json.Marshal(coinJSON{Denom: c.Denom, Amount: c.Amount.Dec()})
}

func (c *Coin) UnmarshalJSON(data []byte) error {
	var raw coinJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Denom == "" {
		return errno.Wrapf(errno.ErrMissingField, "coin denom")
	}
	if raw.Amount == "" {
		return errno.Wrapf(errno.ErrMissingField, "coin amount")
	}
	amt, err := uint256.FromDecimal(raw.Amount)
	if err != nil {
		return errno.Wrapf(errno.ErrDecode, "invalid amount %q: %v", raw.Amount, err)
	}
	c.Denom = raw.Denom
	c.Amount = *amt
	return nil
}

// Coins 非空且面额不重复，保持原始顺序
type Coins []Coin

// NewCoins 校验非空与面额唯一
func NewCoins(coins ...Coin) (Coins, error) {
	if len(coins) == 0 {
		return nil, errno.Wrapf(errno.ErrDecode, "list of coins is empty")
	}
	seen := make(map[Denom]struct{}, len(coins))
	for _, c := range coins {
		if _, ok := seen[c.Denom]; ok {
			return nil, errno.Wrapf(errno.ErrDecode, "duplicate denomination %s", c.Denom)
		}
		seen[c.Denom] = struct{}{}
	}
	out := make(Coins, len(coins))
	copy(out, coins)
	return out, nil
}

// Clone 深拷贝，Coin 本身是值类型
func (cs Coins) Clone() Coins {
	if cs == nil {
		return nil
	}
	out := make(Coins, len(cs))
	copy(out, cs)
	return out
}

func (cs Coins) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

// UnmarshalJSON 空数组与 null 都视为未设置
func (cs *Coins) UnmarshalJSON(data []byte) error {
	var raw []Coin
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		*cs = nil
		return nil
	}
	parsed, err := NewCoins(raw...)
	if err != nil {
		return err
	}
	*cs = parsed
	return nil
}
