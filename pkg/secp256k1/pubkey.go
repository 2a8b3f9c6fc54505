package secp256k1

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"signing-core/pkg/address"
	"signing-core/pkg/crypto_util"
	"signing-core/pkg/errno"
)

const (
	// TypeURL 公钥在 Any 中的类型标识
	TypeURL = "/cosmos.crypto.secp256k1.PubKey"
	// PubKeySize 压缩公钥长度
	PubKeySize = btcec.PubKeyBytesLenCompressed
	// SignatureSize compact 签名长度 (r || s，不含 recovery id)
	SignatureSize = 64
)

// PubKey secp256k1 公钥，只接受压缩格式 (33 字节)
type PubKey struct {
	key *btcec.PublicKey
}

// NewPubKey 解析压缩格式公钥字节
func NewPubKey(b []byte) (PubKey, error) {
	if len(b) != PubKeySize {
		return PubKey{}, errno.Wrapf(errno.ErrDecode, "invalid key: expected %d bytes, got %d", PubKeySize, len(b))
	}
	key, err := btcec.ParsePubKey(b)
	if err != nil {
		return PubKey{}, errno.Wrapf(errno.ErrDecode, "invalid key: %v", err)
	}
	return PubKey{key: key}, nil
}

// PubKeyFromBase64 解析标准 base64 编码的公钥 (JSON 中的表示形式)
func PubKeyFromBase64(s string) (PubKey, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return PubKey{}, errno.Wrapf(errno.ErrDecode, "error parsing public key '%s': %v", s, err)
	}
	return NewPubKey(b)
}

// Bytes 返回压缩格式公钥
func (k PubKey) Bytes() []byte {
	if k.key == nil {
		return nil
	}
	return k.key.SerializeCompressed()
}

// String 返回标准 base64 编码 (注意不是 Hex)
func (k PubKey) String() string {
	return base64.StdEncoding.EncodeToString(k.Bytes())
}

func (k PubKey) Equals(other PubKey) bool {
	return bytes.Equal(k.Bytes(), other.Bytes())
}

func (k PubKey) IsZero() bool {
	return k.key == nil
}

// Address 比特币风格地址: RIPEMD160(SHA256(pubkey))
func (k PubKey) Address() address.AccAddress {
	return address.AccAddress(crypto_util.Hash160(k.Bytes()))
}

// VerifySignature 先对 message 做 SHA256 再验证 compact 签名。
// 签名格式错误返回 ErrDecode；格式合法但不匹配返回 ErrSignatureInvalid。
// 与链上行为一致，高 S 值签名视为验证失败。
func (k PubKey) VerifySignature(message, signature []byte) error {
	if k.key == nil {
		return errno.Wrapf(errno.ErrMissingField, "public key not set")
	}
	sig, err := parseCompact(signature)
	if err != nil {
		return err
	}
	if sig.s.IsOverHalfOrder() {
		return errno.Wrapf(errno.ErrSignatureInvalid, "signature is not in lower-S form")
	}

	hash := sha256.Sum256(message)
	if !ecdsa.NewSignature(&sig.r, &sig.s).Verify(hash[:], k.key) {
		return errno.ErrSignatureInvalid
	}
	return nil
}

type compactSignature struct {
	r, s btcec.ModNScalar
}

func parseCompact(signature []byte) (*compactSignature, error) {
	if len(signature) != SignatureSize {
		return nil, errno.Wrapf(errno.ErrDecode, "malformed signature: expected %d bytes, got %d", SignatureSize, len(signature))
	}

	var sig compactSignature
	if overflow := sig.r.SetByteSlice(signature[:32]); overflow || sig.r.IsZero() {
		return nil, errno.Wrapf(errno.ErrDecode, "malformed signature: invalid r value")
	}
	if overflow := sig.s.SetByteSlice(signature[32:]); overflow || sig.s.IsZero() {
		return nil, errno.Wrapf(errno.ErrDecode, "malformed signature: invalid s value")
	}
	return &sig, nil
}

type pubKeyJSON struct {
	Key string `json:"key"`
}

func (k PubKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(pubKeyJSON{Key: k.String()})
}

func (k *PubKey) UnmarshalJSON(data []byte) error {
	var raw pubKeyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errno.Wrapf(errno.ErrDecode, "string-encoded secp256k1 public key expected: %v", err)
	}
	parsed, err := PubKeyFromBase64(raw.Key)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
