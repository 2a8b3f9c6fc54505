// Package signing 组装 textual 签名模式的交易信封，输出有序的 Screen 列表、签名字节，
// 并提供签名验证入口。
package signing

import (
	"encoding/binary"
	"fmt"

	"signing-core/pkg/address"
	"signing-core/pkg/crypto_util"
	"signing-core/pkg/textual"
	"signing-core/pkg/tx"
	"signing-core/pkg/types"
)

type options struct {
	digest crypto_util.DigestFunc
}

// Option 配置摘要算法等
type Option func(*options)

// WithDigest 替换 "Hash of raw bytes" 使用的摘要算法，默认 SHA-256
func WithDigest(fn crypto_util.DigestFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.digest = fn
		}
	}
}

func newOptions(opts []Option) options {
	o := options{digest: crypto_util.CalculateSHA256}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Envelope 一次签名尝试的完整展示视图。构造后不再修改，不引用原始交易的切片。
type Envelope struct {
	chainID        tx.ChainID
	accountNumber  uint64
	sequence       uint64
	address        address.AccAddress
	publicKey      tx.PublicKey
	messages       []tx.Message
	memo           string
	fees           types.Coins
	feePayer       address.AccAddress
	feeGranter     string
	tip            types.Coins
	tipper         address.AccAddress
	gasLimit       uint64
	timeoutHeight  uint64
	hashOfRawBytes string
}

// NewEnvelope 从签名者信息与交易数据构造信封，并在此时计算原始字节摘要
func NewEnvelope(sd tx.SignerData, data tx.TxData, opts ...Option) (*Envelope, error) {
	if err := sd.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts)

	hash, err := HashOfRawBytes(data, o.digest)
	if err != nil {
		return nil, err
	}

	authInfo := data.AuthInfo.Clone()
	messages := make([]tx.Message, len(data.Body.Messages))
	for i, msg := range data.Body.Messages {
		messages[i] = msg.Clone()
	}
	env := &Envelope{
		chainID:        sd.ChainID,
		accountNumber:  sd.AccountNumber,
		sequence:       sd.Sequence,
		address:        sd.Address.Clone(),
		publicKey:      sd.PubKey,
		messages:       messages,
		memo:           data.Body.Memo,
		fees:           authInfo.Fee.Amount,
		feePayer:       authInfo.Fee.Payer,
		feeGranter:     authInfo.Fee.Granter,
		gasLimit:       authInfo.Fee.GasLimit,
		timeoutHeight:  data.Body.TimeoutHeight,
		hashOfRawBytes: hash,
	}
	if authInfo.Tip != nil {
		env.tip = authInfo.Tip.Amount
		env.tipper = authInfo.Tip.Tipper
	}
	return env, nil
}

// HashOfRawBytes digest(be64(len(body)) || body || be64(len(auth_info)) || auth_info)
func HashOfRawBytes(data tx.TxData, digest crypto_util.DigestFunc) (string, error) {
	body, err := data.Body.Marshal()
	if err != nil {
		return "", err
	}
	authInfo, err := data.AuthInfo.Marshal()
	if err != nil {
		return "", err
	}

	buf := make([]byte, 0, 16+len(body)+len(authInfo))
	buf = binary.BigEndian.AppendUint64(buf, uint64(len(body)))
	buf = append(buf, body...)
	buf = binary.BigEndian.AppendUint64(buf, uint64(len(authInfo)))
	buf = append(buf, authInfo...)
	return digest(buf), nil
}

// Hash 原始字节摘要 (小写 Hex)
func (e *Envelope) Hash() string {
	return e.hashOfRawBytes
}

// Messages 信封持有的消息数
func (e *Envelope) Messages() int {
	return len(e.messages)
}

// Format 按固定顺序输出全部 Screen。任一子渲染失败立即返回错误，不返回部分结果。
// 值为默认值 (0、空) 的可选字段整屏省略。
func (e *Envelope) Format(r textual.MetadataResolver) ([]textual.Screen, error) {
	var screens []textual.Screen

	chainID, err := textual.NewContent(e.chainID.String())
	if err != nil {
		return nil, err
	}
	screens = append(screens, textual.Screen{Title: "Chain id", Content: chainID})

	if e.accountNumber != 0 {
		screens = append(screens, textual.Screen{Title: "Account number", Content: textual.MustContent(textual.FormatUint(e.accountNumber))})
	}
	if e.sequence != 0 {
		screens = append(screens, textual.Screen{Title: "Sequence", Content: textual.MustContent(textual.FormatUint(e.sequence))})
	}

	addr, err := textual.NewContent(e.address.String())
	if err != nil {
		return nil, err
	}
	screens = append(screens, textual.Screen{Title: "Address", Content: addr, Expert: true})

	keyScreens, err := textual.RenderAll(r, e.publicKey)
	if err != nil {
		return nil, err
	}
	screens = append(screens, keyScreens...)

	n := len(e.messages)
	header := "This transaction has 1 Message"
	if n != 1 {
		header = fmt.Sprintf("This transaction has %d Messages", n)
	}
	screens = append(screens, textual.Screen{Content: textual.MustContent(header)})

	for i, msg := range e.messages {
		typeURL, err := textual.NewContent(msg.TypeURL())
		if err != nil {
			return nil, err
		}
		screens = append(screens, textual.Screen{
			Title:   fmt.Sprintf("Message (%d/%d)", i+1, n),
			Content: typeURL,
			Indent:  1,
		})
		msgScreens, err := msg.Format(r)
		if err != nil {
			return nil, err
		}
		screens = append(screens, msgScreens...)
	}
	screens = append(screens, textual.Screen{Content: textual.MustContent("End of Message")})

	if e.memo != "" {
		screens = append(screens, textual.Screen{Title: "Memo", Content: textual.MustContent(e.memo)})
	}
	if len(e.fees) > 0 {
		fees, err := textual.FormatCoins(e.fees, r)
		if err != nil {
			return nil, err
		}
		screens = append(screens, textual.Screen{Title: "Fees", Content: textual.MustContent(fees)})
	}
	if !e.feePayer.Empty() {
		screens = append(screens, textual.Screen{Title: "Fee payer", Content: textual.MustContent(e.feePayer.String()), Expert: true})
	}
	if e.feeGranter != "" {
		screens = append(screens, textual.Screen{Title: "Fee granter", Content: textual.MustContent(e.feeGranter), Expert: true})
	}
	if len(e.tip) > 0 {
		tip, err := textual.FormatCoins(e.tip, r)
		if err != nil {
			return nil, err
		}
		screens = append(screens, textual.Screen{Title: "Tip", Content: textual.MustContent(tip)})
	}
	if !e.tipper.Empty() {
		screens = append(screens, textual.Screen{Title: "Tipper", Content: textual.MustContent(e.tipper.String())})
	}
	if e.gasLimit != 0 {
		screens = append(screens, textual.Screen{Title: "Gas limit", Content: textual.MustContent(textual.FormatUint(e.gasLimit)), Expert: true})
	}
	if e.timeoutHeight != 0 {
		screens = append(screens, textual.Screen{Title: "Timeout height", Content: textual.MustContent(textual.FormatUint(e.timeoutHeight)), Expert: true})
	}

	hash, err := textual.NewContent(e.hashOfRawBytes)
	if err != nil {
		return nil, err
	}
	screens = append(screens, textual.Screen{Title: "Hash of raw bytes", Content: hash, Expert: true})

	return screens, nil
}
