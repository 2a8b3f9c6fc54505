package signing

import (
	"signing-core/pkg/errno"
	"signing-core/pkg/textual"
	"signing-core/pkg/tx"
)

// TextualHandler 绑定元数据查询与摘要算法，无内部可变状态，可并发使用
type TextualHandler struct {
	resolver textual.MetadataResolver
	opts     []Option
}

// NewTextualHandler resolver 为 nil 时所有金额按基础单位展示
func NewTextualHandler(resolver textual.MetadataResolver, opts ...Option) *TextualHandler {
	return &TextualHandler{resolver: resolver, opts: opts}
}

// Envelope 构造信封
func (h *TextualHandler) Envelope(sd tx.SignerData, data tx.TxData) (*Envelope, error) {
	return NewEnvelope(sd, data, h.opts...)
}

// Render 返回完整的 Screen 列表
func (h *TextualHandler) Render(sd tx.SignerData, data tx.TxData) ([]textual.Screen, error) {
	env, err := h.Envelope(sd, data)
	if err != nil {
		return nil, err
	}
	return h.FormatEnvelope(env)
}

// FormatEnvelope 用 handler 的元数据查询渲染已构造的信封
func (h *TextualHandler) FormatEnvelope(env *Envelope) ([]textual.Screen, error) {
	return env.Format(h.resolver)
}

// GetSignBytes 渲染后编码为 CBOR 签名文档
func (h *TextualHandler) GetSignBytes(sd tx.SignerData, data tx.TxData) ([]byte, error) {
	screens, err := h.Render(sd, data)
	if err != nil {
		return nil, err
	}
	return textual.SignBytes(screens)
}

// VerifySignature 验证 signature 是否为 pubKey 对 signBytes 的签名。
// 格式错误返回 ErrDecode；签名不匹配返回 ErrSignatureInvalid，由调用方决定是否拒绝交易。
func VerifySignature(pubKey tx.PublicKey, signBytes, signature []byte) error {
	if len(signBytes) == 0 {
		return errno.Wrapf(errno.ErrMissingField, "sign bytes")
	}
	return pubKey.VerifySignature(signBytes, signature)
}

// VerifyTx 重新渲染交易得到签名字节后验证签名
func (h *TextualHandler) VerifyTx(sd tx.SignerData, data tx.TxData, signature []byte) error {
	signBytes, err := h.GetSignBytes(sd, data)
	if err != nil {
		return err
	}
	return VerifySignature(sd.PubKey, signBytes, signature)
}
