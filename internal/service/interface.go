package service

import (
	"signing-core/pkg/textual"
)

type TextualService interface {
	// Render 解码待签名文档并渲染
	// expert: 是否返回专家屏幕 (签名字节始终基于完整列表)
	Render(document []byte, expert bool) (*RenderResult, error)

	// Verify 验证签名。签名不匹配返回 (false, nil)，只有输入格式错误才返回 error
	Verify(pubKey string, signBytes, signature []byte) (bool, error)

	// Address 由 base64 公钥推导账户地址
	Address(pubKey string) (*AddressResult, error)
}

// RenderResult 渲染结果
type RenderResult struct {
	ChainID   string           `json:"chain_id"`
	Screens   []textual.Screen `json:"screens"`
	SignBytes string           `json:"sign_bytes"` // CBOR 签名文档 (Hex)
	Hash      string           `json:"hash"`       // Hash of raw bytes
}

// AddressResult 地址推导结果
type AddressResult struct {
	Bech32 string `json:"bech32"`
	Hex    string `json:"hex"`
}
