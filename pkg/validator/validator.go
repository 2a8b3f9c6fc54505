package validator

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"signing-core/pkg/address"
	"signing-core/pkg/secp256k1"
)

var initOnce sync.Once

// Init 在 gin 的校验器上注册自定义规则
func Init() {
	initOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("pubkey", validatePubKey)
			_ = v.RegisterValidation("bech32addr", validateBech32Addr)
		}
	})
}

// pubkey: base64 编码的 33 字节压缩 secp256k1 公钥
func validatePubKey(fl validator.FieldLevel) bool {
	_, err := secp256k1.PubKeyFromBase64(fl.Field().String())
	return err == nil
}

// bech32addr: cosmos 前缀的 bech32 地址
func validateBech32Addr(fl validator.FieldLevel) bool {
	_, err := address.FromBech32(fl.Field().String())
	return err == nil
}

// GetErrorMsg translates validation errors into user-friendly messages
func GetErrorMsg(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var errMsgs []string
		for _, e := range validationErrors {
			field := e.Field()
			tag := e.Tag()
			param := e.Param()

			switch tag {
			case "required":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 不能为空", field))
			case "len":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 长度必须为 %s", field, param))
			case "hexadecimal":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 必须是 Hex 字符串", field))
			case "pubkey":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 不是有效的 secp256k1 压缩公钥 (base64)", field))
			case "bech32addr":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 不是有效的 %s 地址", field, address.Bech32PrefixAccAddr))
			default:
				errMsgs = append(errMsgs, fmt.Sprintf("%s 校验失败 (%s)", field, tag))
			}
		}
		return strings.Join(errMsgs, "; ")
	}
	return "请求参数错误"
}
