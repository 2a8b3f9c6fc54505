package crypto_util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // 地址格式固定使用 RIPEMD-160
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"

	"signing-core/pkg/errno"
)

// DigestFunc 计算输入的摘要并返回小写 Hex 字符串
type DigestFunc func(data []byte) string

// 摘要算法名称，与配置项 textual.digest 对应
const (
	DigestSHA256    = "sha256"
	DigestKeccak256 = "keccak256"
	DigestBlake3    = "blake3"
)

// CalculateSHA256 计算输入的 SHA256 哈希值。
func CalculateSHA256(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// CalculateKeccak256 计算输入的 Keccak256 哈希值。
func CalculateKeccak256(data []byte) string {
	hash := sha3.NewLegacyKeccak256()
	hash.Write(data)
	return hex.EncodeToString(hash.Sum(nil))
}

// CalculateBlake3 计算输入的 Blake3 哈希值。
func CalculateBlake3(data []byte) string {
	hash := blake3.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Hash160 返回 RIPEMD160(SHA256(data))，固定 20 字节
func Hash160(data []byte) []byte {
	sum := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(sum[:])
	return h.Sum(nil)
}

// DigestByName 根据名称返回摘要函数，空字符串视为 sha256
func DigestByName(name string) (DigestFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", DigestSHA256:
		return CalculateSHA256, nil
	case DigestKeccak256:
		return CalculateKeccak256, nil
	case DigestBlake3:
		return CalculateBlake3, nil
	default:
		return nil, errno.Wrapf(errno.ErrDecode, "unsupported digest algorithm: %s", name)
	}
}
