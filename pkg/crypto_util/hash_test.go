package crypto_util

import (
	"encoding/hex"
	"errors"
	"testing"

	"signing-core/pkg/errno"
)

func TestHashes(t *testing.T) {
	input := []byte("hello world")

	// SHA256
	sha256Hash := CalculateSHA256(input)
	if sha256Hash != "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9" {
		t.Errorf("SHA256 不匹配: 得到 %s", sha256Hash)
	}

	// Keccak256
	keccakHash := CalculateKeccak256(input)
	if keccakHash != "47173285a8d7341e5e972fc677286384f802f8ef42a5ec5f03bbfa254cb01fad" {
		t.Errorf("Keccak256 不匹配: 得到 %s", keccakHash)
	}

	// Blake3
	blake3Hash := CalculateBlake3(input)
	if len(blake3Hash) != 64 {
		t.Errorf("Blake3 哈希长度不匹配: 得到 %d, 期望 64", len(blake3Hash))
	}
	t.Logf("Blake3: %s", blake3Hash)
}

func TestHash160(t *testing.T) {
	got := hex.EncodeToString(Hash160([]byte("hello world")))
	if got != "d7d5ee7824ff93f94c3055af9382c86c68b5ca92" {
		t.Errorf("Hash160 不匹配: 得到 %s", got)
	}
}

func TestDigestByName(t *testing.T) {
	for _, name := range []string{"", "sha256", "SHA256", "keccak256", "blake3"} {
		fn, err := DigestByName(name)
		if err != nil {
			t.Fatalf("DigestByName(%q) 失败: %v", name, err)
		}
		if len(fn([]byte("x"))) != 64 {
			t.Errorf("DigestByName(%q) 摘要长度错误", name)
		}
	}

	_, err := DigestByName("md5")
	if !errors.Is(err, errno.ErrDecode) {
		t.Errorf("期望不支持的算法返回 ErrDecode, 得到 %v", err)
	}
}
