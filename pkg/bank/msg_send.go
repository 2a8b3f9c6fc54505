// Package bank 注册转账消息及其 textual 渲染
package bank

import (
	"encoding/json"

	"signing-core/pkg/address"
	"signing-core/pkg/codec"
	"signing-core/pkg/errno"
	"signing-core/pkg/textual"
	"signing-core/pkg/tx"
	"signing-core/pkg/types"
)

// TypeURLMsgSend 转账消息类型
const TypeURLMsgSend = "/cosmos.bank.v1beta1.MsgSend"

// MsgSend 从 FromAddress 向 ToAddress 转账 Amount
type MsgSend struct {
	FromAddress address.AccAddress `json:"from_address"`
	ToAddress   address.AccAddress `json:"to_address"`
	Amount      types.Coins        `json:"amount"`
}

var _ tx.Message = MsgSend{}

func (m MsgSend) TypeURL() string {
	return TypeURLMsgSend
}

func (m MsgSend) Clone() tx.Message {
	return MsgSend{
		FromAddress: m.FromAddress.Clone(),
		ToAddress:   m.ToAddress.Clone(),
		Amount:      m.Amount.Clone(),
	}
}

// ValidateBasic 地址与金额都必须存在
func (m MsgSend) ValidateBasic() error {
	if m.FromAddress.Empty() {
		return errno.Wrapf(errno.ErrMissingField, "from_address")
	}
	if m.ToAddress.Empty() {
		return errno.Wrapf(errno.ErrMissingField, "to_address")
	}
	if len(m.Amount) == 0 {
		return errno.Wrapf(errno.ErrMissingField, "amount")
	}
	return nil
}

// Marshal 1 from_address 2 to_address 3 amount
func (m MsgSend) Marshal() ([]byte, error) {
	var b []byte
	b = codec.AppendString(b, 1, m.FromAddress.String())
	b = codec.AppendString(b, 2, m.ToAddress.String())
	for _, c := range m.Amount {
		var err error
		if b, err = codec.AppendMarshaler(b, 3, c); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Format 发送方、接收方、金额三屏，缩进两级
func (m MsgSend) Format(r textual.MetadataResolver) ([]textual.Screen, error) {
	if err := m.ValidateBasic(); err != nil {
		return nil, err
	}
	amount, err := textual.FormatCoins(m.Amount, r)
	if err != nil {
		return nil, err
	}
	return []textual.Screen{
		{Title: "From address", Content: textual.MustContent(m.FromAddress.String()), Indent: 2},
		{Title: "To address", Content: textual.MustContent(m.ToAddress.String()), Indent: 2},
		{Title: "Amount", Content: textual.MustContent(amount), Indent: 2},
	}, nil
}

func (m MsgSend) MarshalJSON() ([]byte, error) {
	type plain MsgSend
	return json.Marshal(struct {
		Type string `json:"@type"`
		plain
	}{Type: TypeURLMsgSend, plain: plain(m)})
}

// DecodeMsgSend 注册到 tx.Registry 的解码函数
func DecodeMsgSend(data json.RawMessage) (tx.Message, error) {
	type plain MsgSend
	var raw plain
	if err := json.Unmarshal(data, &raw); err != nil {
		if code, _ := errno.Decode(err); code != errno.InternalServerError.Code {
			return nil, err
		}
		return nil, errno.Wrapf(errno.ErrDecode, "%s: %v", TypeURLMsgSend, err)
	}
	msg := MsgSend(raw)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return msg, nil
}

// RegisterMessages 注册 bank 模块的消息类型
func RegisterMessages(reg *tx.Registry) error {
	return reg.Register(TypeURLMsgSend, DecodeMsgSend)
}
