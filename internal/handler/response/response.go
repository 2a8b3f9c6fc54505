package response

import (
	"net/http"

	"signing-core/pkg/errno"
	"signing-core/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一返回结构，业务错误也返回 200，由 code 区分
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"msg"`
	Data    interface{} `json:"data"`
}

func Success(c *gin.Context, data interface{}) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(http.StatusOK, Response{Code: errno.OK.Code, Message: errno.OK.Message, Data: data})
}

// Error 渲染/解码类错误原样返回完整描述，便于签名方定位哪一屏出错；
// 未归类的错误只记日志，对外统一为 Internal server error
func Error(c *gin.Context, err error) {
	_ = c.Error(err)

	code, msg := errno.Decode(err)
	if code == errno.InternalServerError.Code {
		logger.Error("unclassified error",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		msg = errno.InternalServerError.Message
	}
	c.JSON(http.StatusOK, Response{Code: code, Message: msg, Data: gin.H{}})
}
