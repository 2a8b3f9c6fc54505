package errno

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// Errno defines the error code logic
type Errno struct {
	Code    int
	Message string
}

func (e Errno) Error() string {
	return e.Message
}

// WithMessage 保留错误码，替换描述
func (e Errno) WithMessage(msg string) Errno {
	return Errno{Code: e.Code, Message: msg}
}

// Wrapf 在 Errno 外包一层带堆栈的详细信息，errors.Is(err, base) 依然成立
func Wrapf(base Errno, format string, args ...interface{}) error {
	return pkgerrors.Wrapf(base, format, args...)
}

// Decode tries to convert an error to Errno
// 包装过的错误沿 Unwrap 链查找，Message 使用完整的错误描述
func Decode(err error) (int, string) {
	if err == nil {
		return OK.Code, OK.Message
	}

	var typed Errno
	if errors.As(err, &typed) {
		return typed.Code, err.Error()
	}
	var ptr *Errno
	if errors.As(err, &ptr) && ptr != nil {
		return ptr.Code, err.Error()
	}
	return InternalServerError.Code, err.Error()
}

// Common Errors
var (
	OK                  = Errno{Code: 0, Message: "Success"}
	InternalServerError = Errno{Code: 10001, Message: "Internal server error"}
	ErrBind             = Errno{Code: 10002, Message: "Error occurred while binding the request body to the struct"}
)

// Textual signing errors (30000+)
var (
	// ErrRendering 数值溢出、精度超限、不支持的缩放、空内容
	ErrRendering = Errno{Code: 30001, Message: "rendering error"}
	// ErrDecode 公钥/签名/面额/地址格式错误
	ErrDecode = Errno{Code: 30002, Message: "decode error"}
	// ErrMissingField 必填结构字段缺失
	ErrMissingField = Errno{Code: 30003, Message: "missing field"}
	// ErrCustom 底层编解码错误
	ErrCustom         = Errno{Code: 30004, Message: "custom error"}
	ErrUnknownMessage = Errno{Code: 30005, Message: "unknown message type"}

	// ErrSignatureInvalid 签名格式合法但验证未通过
	ErrSignatureInvalid = Errno{Code: 30101, Message: "signature verification failed"}
)
