package handler

import (
	"encoding/hex"
	"strings"

	"signing-core/internal/handler/request"
	"signing-core/internal/handler/response"
	"signing-core/internal/service"
	"signing-core/pkg/errno"
	"signing-core/pkg/validator"

	"github.com/gin-gonic/gin"
)

type TextualHandler struct {
	svc        service.TextualService
	showExpert bool
}

// NewTextualHandler showExpert 为请求未指定 expert 时的默认值
func NewTextualHandler(svc service.TextualService, showExpert bool) *TextualHandler {
	return &TextualHandler{svc: svc, showExpert: showExpert}
}

// Render 渲染交易
// @Summary 渲染待签名交易
// @Description 返回屏幕列表、CBOR 签名字节 (Hex) 与原始字节哈希
// @Tags Textual
// @Accept json
// @Produce json
// @Param request body request.RenderRequest true "Render Request"
// @Success 200 {object} response.Response
// @Router /api/v1/textual/render [post]
func (h *TextualHandler) Render(c *gin.Context) {
	var req request.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errno.ErrBind.WithMessage(validator.GetErrorMsg(err)))
		return
	}

	expert := h.showExpert
	if req.Expert != nil {
		expert = *req.Expert
	}

	res, err := h.svc.Render(req.Document, expert)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// Verify 验证签名
// @Summary 验证 secp256k1 签名
// @Tags Textual
// @Accept json
// @Produce json
// @Param request body request.VerifyRequest true "Verify Request"
// @Success 200 {object} response.Response
// @Router /api/v1/textual/verify [post]
func (h *TextualHandler) Verify(c *gin.Context) {
	var req request.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errno.ErrBind.WithMessage(validator.GetErrorMsg(err)))
		return
	}

	signBytes, err := decodeHex(req.SignBytes)
	if err != nil {
		response.Error(c, errno.ErrBind.WithMessage("sign_bytes 必须是 Hex 字符串"))
		return
	}
	sig, err := decodeHex(req.Signature)
	if err != nil {
		response.Error(c, errno.ErrBind.WithMessage("signature 必须是 Hex 字符串"))
		return
	}

	if req.Signer != "" {
		addr, err := h.svc.Address(req.PubKey)
		if err != nil {
			response.Error(c, err)
			return
		}
		if addr.Bech32 != req.Signer {
			response.Error(c, errno.ErrBind.WithMessage("Signer 与 PubKey 推导出的地址不一致"))
			return
		}
	}

	valid, err := h.svc.Verify(req.PubKey, signBytes, sig)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"valid": valid})
}

// Address 公钥转地址
// @Summary 由公钥推导账户地址
// @Tags Textual
// @Accept json
// @Produce json
// @Param request body request.AddressRequest true "Address Request"
// @Success 200 {object} response.Response
// @Router /api/v1/textual/address [post]
func (h *TextualHandler) Address(c *gin.Context) {
	var req request.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errno.ErrBind.WithMessage(validator.GetErrorMsg(err)))
		return
	}

	res, err := h.svc.Address(req.PubKey)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// validator 的 hexadecimal 规则允许 0x 前缀
func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return hex.DecodeString(s)
}
