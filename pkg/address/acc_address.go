package address

import (
	"bytes"
	"encoding/hex"
	"encoding/json"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"signing-core/pkg/errno"
)

const (
	// Bech32PrefixAccAddr 账户地址的 bech32 前缀
	Bech32PrefixAccAddr = "cosmos"
	// MaxAddrLen 地址最大字节数
	MaxAddrLen = 255
)

// AccAddress 账户地址 (原始字节)，展示时使用 bech32 编码
type AccAddress []byte

// NewAccAddress 校验长度并复制一份字节
func NewAccAddress(b []byte) (AccAddress, error) {
	if len(b) == 0 {
		return nil, errno.Wrapf(errno.ErrDecode, "empty address")
	}
	if len(b) > MaxAddrLen {
		return nil, errno.Wrapf(errno.ErrDecode, "address length %d exceeds %d", len(b), MaxAddrLen)
	}
	out := make(AccAddress, len(b))
	copy(out, b)
	return out, nil
}

// FromBech32 解析 bech32 地址，前缀必须是 cosmos
func FromBech32(s string) (AccAddress, error) {
	hrp, data, err := bech32.DecodeToBase256(s)
	if err != nil {
		return nil, errno.Wrapf(errno.ErrDecode, "invalid bech32 address %q: %v", s, err)
	}
	if hrp != Bech32PrefixAccAddr {
		return nil, errno.Wrapf(errno.ErrDecode, "invalid address prefix: expected %s, got %s", Bech32PrefixAccAddr, hrp)
	}
	return NewAccAddress(data)
}

// MustFromBech32 用于常量地址，解析失败直接 panic
func MustFromBech32(s string) AccAddress {
	addr, err := FromBech32(s)
	if err != nil {
		panic(err)
	}
	return addr
}

// String 返回 bech32 编码
func (a AccAddress) String() string {
	if len(a) == 0 {
		return ""
	}
	s, err := bech32.EncodeFromBase256(Bech32PrefixAccAddr, a)
	if err != nil {
		// 长度已在构造时校验，这里只可能是 bech32 的 90 字符上限
		return ""
	}
	return s
}

// Hex 返回小写 Hex 编码
func (a AccAddress) Hex() string {
	return hex.EncodeToString(a)
}

func (a AccAddress) Equals(other AccAddress) bool {
	return bytes.Equal(a, other)
}

func (a AccAddress) Clone() AccAddress {
	if a == nil {
		return nil
	}
	return append(AccAddress(nil), a...)
}

func (a AccAddress) Empty() bool {
	return len(a) == 0
}

func (a AccAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *AccAddress) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errno.Wrapf(errno.ErrDecode, "address must be a string: %v", err)
	}
	if s == "" {
		*a = nil
		return nil
	}
	addr, err := FromBech32(s)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
