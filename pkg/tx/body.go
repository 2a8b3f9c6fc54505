package tx

import (
	"signing-core/pkg/codec"
	"signing-core/pkg/textual"
)

// Message 交易消息。每种消息自带渲染逻辑，通过 Registry 注册，新增类型无需修改信封渲染。
type Message interface {
	textual.ValueRenderer
	codec.Marshaler
	TypeURL() string
	// Clone 返回不与原值共享底层数组的副本，信封构造时调用
	Clone() Message
}

// TxBody cosmos.tx.v1beta1.TxBody
type TxBody struct {
	Messages      []Message
	Memo          string
	TimeoutHeight uint64
}

// Marshal 1 messages(Any) 2 memo 3 timeout_height
func (b TxBody) Marshal() ([]byte, error) {
	var out []byte
	for _, msg := range b.Messages {
		a, err := codec.NewAny(msg.TypeURL(), msg)
		if err != nil {
			return nil, err
		}
		if out, err = codec.AppendMarshaler(out, 1, a); err != nil {
			return nil, err
		}
	}
	out = codec.AppendString(out, 2, b.Memo)
	out = codec.AppendUint64(out, 3, b.TimeoutHeight)
	return out, nil
}
