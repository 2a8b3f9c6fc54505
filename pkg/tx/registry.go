package tx

import (
	"encoding/json"
	"sort"
	"sync"

	"signing-core/pkg/errno"
)

// MessageDecoder 把带 @type 的 JSON 解码为具体消息
type MessageDecoder func(data json.RawMessage) (Message, error)

// Registry 消息类型注册表。启动时注册，之后只读。
type Registry struct {
	mu       sync.RWMutex
	decoders map[string]MessageDecoder
}

func NewRegistry() *Registry {
	return &Registry{decoders: make(map[string]MessageDecoder)}
}

// Register 注册消息类型，重复注册返回错误
func (r *Registry) Register(typeURL string, decoder MessageDecoder) error {
	if typeURL == "" || decoder == nil {
		return errno.Wrapf(errno.ErrMissingField, "message type url and decoder are required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.decoders[typeURL]; ok {
		return errno.Wrapf(errno.ErrCustom, "message type %s already registered", typeURL)
	}
	r.decoders[typeURL] = decoder
	return nil
}

// TypeURLs 已注册的类型，按字典序
func (r *Registry) TypeURLs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.decoders))
	for url := range r.decoders {
		out = append(out, url)
	}
	sort.Strings(out)
	return out
}

// DecodeMessage 按 @type 分发
func (r *Registry) DecodeMessage(data json.RawMessage) (Message, error) {
	var head struct {
		Type string `json:"@type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, errno.Wrapf(errno.ErrDecode, "message: %v", err)
	}
	if head.Type == "" {
		return nil, errno.Wrapf(errno.ErrMissingField, "message @type")
	}

	r.mu.RLock()
	decoder, ok := r.decoders[head.Type]
	r.mu.RUnlock()
	if !ok {
		return nil, errno.Wrapf(errno.ErrUnknownMessage, "%s", head.Type)
	}
	return decoder(data)
}

// TxData 待签名交易的 body 与 auth info
type TxData struct {
	Body     TxBody
	AuthInfo AuthInfo
}

type txBodyJSON struct {
	Messages      []json.RawMessage `json:"messages"`
	Memo          string            `json:"memo"`
	TimeoutHeight uint64            `json:"timeout_height,string"`
}

type txDocumentJSON struct {
	SignerData *SignerData `json:"signer_data"`
	Body       *txBodyJSON `json:"body"`
	AuthInfo   *AuthInfo   `json:"auth_info"`
}

// DecodeTxDocument 解码 {signer_data, body, auth_info} 格式的待签名文档
func (r *Registry) DecodeTxDocument(data []byte) (SignerData, TxData, error) {
	var doc txDocumentJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return SignerData{}, TxData{}, wrapDecode(err)
	}
	if doc.SignerData == nil {
		return SignerData{}, TxData{}, errno.Wrapf(errno.ErrMissingField, "signer_data")
	}
	if doc.Body == nil {
		return SignerData{}, TxData{}, errno.Wrapf(errno.ErrMissingField, "body")
	}
	if doc.AuthInfo == nil {
		return SignerData{}, TxData{}, errno.Wrapf(errno.ErrMissingField, "auth_info")
	}
	if err := doc.SignerData.Validate(); err != nil {
		return SignerData{}, TxData{}, err
	}

	body := TxBody{
		Memo:          doc.Body.Memo,
		TimeoutHeight: doc.Body.TimeoutHeight,
		Messages:      make([]Message, 0, len(doc.Body.Messages)),
	}
	for _, raw := range doc.Body.Messages {
		msg, err := r.DecodeMessage(raw)
		if err != nil {
			return SignerData{}, TxData{}, wrapDecode(err)
		}
		body.Messages = append(body.Messages, msg)
	}

	return *doc.SignerData, TxData{Body: body, AuthInfo: *doc.AuthInfo}, nil
}

// wrapDecode 已经是 Errno 的错误原样返回，其他 JSON 错误归为 ErrDecode
func wrapDecode(err error) error {
	if code, _ := errno.Decode(err); code != errno.InternalServerError.Code {
		return err
	}
	return errno.Wrapf(errno.ErrDecode, "tx document: %v", err)
}
