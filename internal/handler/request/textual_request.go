package request

import "encoding/json"

type RenderRequest struct {
	// Document 待签名文档: {"signer_data": {...}, "body": {...}, "auth_info": {...}}
	Document json.RawMessage `json:"document" binding:"required"`
	// Expert 为空时使用服务端配置
	Expert *bool `json:"expert"`
}

type VerifyRequest struct {
	PubKey    string `json:"pub_key" binding:"required,pubkey"`
	SignBytes string `json:"sign_bytes" binding:"required,hexadecimal"`
	Signature string `json:"signature" binding:"required,hexadecimal,len=128"`
	// Signer 可选，填写时必须与公钥推导出的地址一致
	Signer string `json:"signer" binding:"omitempty,bech32addr"`
}

type AddressRequest struct {
	PubKey string `json:"pub_key" binding:"required,pubkey"`
}
