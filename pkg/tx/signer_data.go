package tx

import (
	"encoding/json"

	"signing-core/pkg/address"
	"signing-core/pkg/errno"
	"signing-core/pkg/textual"
)

// MaxChainIDLen 链 ID 最大字节数
const MaxChainIDLen = 50

// ChainID 非空且不超过 50 字节
type ChainID string

func NewChainID(s string) (ChainID, error) {
	if s == "" {
		return "", errno.Wrapf(errno.ErrDecode, "chain id cannot be empty")
	}
	if len(s) > MaxChainIDLen {
		return "", errno.Wrapf(errno.ErrDecode, "chain id must be at most %d bytes, got %d", MaxChainIDLen, len(s))
	}
	return ChainID(s), nil
}

func (c ChainID) String() string {
	return string(c)
}

func (c *ChainID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errno.Wrapf(errno.ErrDecode, "chain id must be a string: %v", err)
	}
	parsed, err := NewChainID(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// SignerData 签名者身份上下文。账户号与序号由外部提供，渲染过程不修改。
type SignerData struct {
	Address       address.AccAddress `json:"address"`
	ChainID       ChainID            `json:"chain_id"`
	AccountNumber uint64             `json:"account_number,string"`
	Sequence      uint64             `json:"sequence,string"`
	PubKey        PublicKey          `json:"pub_key"`
}

// Validate 检查必填字段
func (sd SignerData) Validate() error {
	if sd.ChainID == "" {
		return errno.Wrapf(errno.ErrMissingField, "signer data chain_id")
	}
	if _, err := NewChainID(string(sd.ChainID)); err != nil {
		return err
	}
	if sd.Address.Empty() {
		return errno.Wrapf(errno.ErrMissingField, "signer data address")
	}
	if sd.PubKey.IsZero() {
		return errno.Wrapf(errno.ErrMissingField, "signer data pub_key")
	}
	return nil
}

// Format 单独渲染签名者信息，账户号与序号即使为 0 也展示
func (sd SignerData) Format(r textual.MetadataResolver) ([]textual.Screen, error) {
	chainID, err := textual.NewContent(sd.ChainID.String())
	if err != nil {
		return nil, err
	}
	addr, err := textual.NewContent(sd.Address.String())
	if err != nil {
		return nil, err
	}
	screens := []textual.Screen{
		{Title: "Chain id", Content: chainID},
		{Title: "Account number", Content: textual.MustContent(textual.FormatUint(sd.AccountNumber))},
		{Title: "Sequence", Content: textual.MustContent(textual.FormatUint(sd.Sequence))},
		{Title: "Address", Content: addr, Expert: true},
	}
	keyScreens, err := sd.PubKey.Format(r)
	if err != nil {
		return nil, err
	}
	return append(screens, keyScreens...), nil
}
