package tx

import (
	"encoding/json"

	"signing-core/pkg/address"
	"signing-core/pkg/codec"
	"signing-core/pkg/errno"
	"signing-core/pkg/secp256k1"
	"signing-core/pkg/textual"
)

// KeyType 支持的曲线类型，目前只有 secp256k1
type KeyType int

const (
	KeyTypeUnknown KeyType = iota
	KeyTypeSecp256k1
)

// PublicKey 签名者公钥。封闭集合，每个实例恰好持有一种具体类型。
type PublicKey struct {
	keyType   KeyType
	secp256k1 secp256k1.PubKey
}

// NewSecp256k1PublicKey 包装 secp256k1 公钥
func NewSecp256k1PublicKey(k secp256k1.PubKey) PublicKey {
	return PublicKey{keyType: KeyTypeSecp256k1, secp256k1: k}
}

func (k PublicKey) Type() KeyType {
	return k.keyType
}

// TypeURL Any 中的类型标识
func (k PublicKey) TypeURL() string {
	switch k.keyType {
	case KeyTypeSecp256k1:
		return secp256k1.TypeURL
	default:
		return ""
	}
}

// Bytes 原始公钥字节
func (k PublicKey) Bytes() []byte {
	switch k.keyType {
	case KeyTypeSecp256k1:
		return k.secp256k1.Bytes()
	default:
		return nil
	}
}

func (k PublicKey) IsZero() bool {
	return k.keyType == KeyTypeUnknown
}

func (k PublicKey) Address() (address.AccAddress, error) {
	switch k.keyType {
	case KeyTypeSecp256k1:
		return k.secp256k1.Address(), nil
	default:
		return nil, errno.Wrapf(errno.ErrMissingField, "public key not set")
	}
}

// VerifySignature 按具体曲线验证签名
func (k PublicKey) VerifySignature(message, signature []byte) error {
	switch k.keyType {
	case KeyTypeSecp256k1:
		return k.secp256k1.VerifySignature(message, signature)
	default:
		return errno.Wrapf(errno.ErrMissingField, "public key not set")
	}
}

// Format 两屏：类型标识和分组 Hex 的公钥，都只在专家模式显示
func (k PublicKey) Format(_ textual.MetadataResolver) ([]textual.Screen, error) {
	if k.keyType == KeyTypeUnknown {
		return nil, errno.Wrapf(errno.ErrMissingField, "public key not set")
	}
	typeURL, err := textual.NewContent(k.TypeURL())
	if err != nil {
		return nil, err
	}
	hexKey, err := textual.FormatBytes(k.Bytes())
	if err != nil {
		return nil, err
	}
	return []textual.Screen{
		{Title: "Public key", Content: typeURL, Expert: true},
		{Title: "Key", Content: textual.MustContent(hexKey), Indent: 1, Expert: true},
	}, nil
}

// Marshal 编码为 Any{type_url, PubKey{1: key}}
func (k PublicKey) Marshal() ([]byte, error) {
	if k.keyType == KeyTypeUnknown {
		return nil, errno.Wrapf(errno.ErrMissingField, "public key not set")
	}
	inner := codec.AppendBytes(nil, 1, k.Bytes())
	return codec.Any{TypeURL: k.TypeURL(), Value: inner}.Marshal()
}

type publicKeyJSON struct {
	Type string `json:"@type"`
	Key  string `json:"key"`
}

func (k PublicKey) MarshalJSON() ([]byte, error) {
	switch k.keyType {
	case KeyTypeSecp256k1:
		return json.Marshal(publicKeyJSON{Type: secp256k1.TypeURL, Key: k.secp256k1.String()})
	default:
		return []byte("null"), nil
	}
}

func (k *PublicKey) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var raw publicKeyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errno.Wrapf(errno.ErrDecode, "public key: %v", err)
	}
	switch raw.Type {
	case secp256k1.TypeURL:
		key, err := secp256k1.PubKeyFromBase64(raw.Key)
		if err != nil {
			return err
		}
		*k = NewSecp256k1PublicKey(key)
		return nil
	case "":
		return errno.Wrapf(errno.ErrMissingField, "public key @type")
	default:
		return errno.Wrapf(errno.ErrDecode, "unsupported public key type %s", raw.Type)
	}
}
