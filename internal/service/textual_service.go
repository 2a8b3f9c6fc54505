package service

import (
	"encoding/hex"
	"errors"
	"strconv"

	"go.uber.org/zap"

	"signing-core/pkg/errno"
	"signing-core/pkg/logger"
	"signing-core/pkg/monitor"
	"signing-core/pkg/secp256k1"
	"signing-core/pkg/signing"
	"signing-core/pkg/textual"
	"signing-core/pkg/tx"
)

// DefaultTextualService 是 TextualService 的实现，本身无状态，可并发调用
type DefaultTextualService struct {
	registry *tx.Registry
	handler  *signing.TextualHandler
}

var _ TextualService = (*DefaultTextualService)(nil)

// NewTextualService 构造函数
func NewTextualService(registry *tx.Registry, handler *signing.TextualHandler) *DefaultTextualService {
	return &DefaultTextualService{registry: registry, handler: handler}
}

func (s *DefaultTextualService) Render(document []byte, expert bool) (*RenderResult, error) {
	sd, data, err := s.registry.DecodeTxDocument(document)
	if err != nil {
		monitor.ObserveRender(resultLabel(err), 0)
		logger.Warn("decode tx document failed", zap.Error(err))
		return nil, err
	}

	env, err := s.handler.Envelope(sd, data)
	if err != nil {
		monitor.ObserveRender(resultLabel(err), 0)
		return nil, err
	}
	screens, err := s.handler.FormatEnvelope(env)
	if err != nil {
		monitor.ObserveRender(resultLabel(err), 0)
		logger.Warn("render failed", zap.String("chain_id", sd.ChainID.String()), zap.Error(err))
		return nil, err
	}
	signBytes, err := textual.SignBytes(screens)
	if err != nil {
		monitor.ObserveRender(resultLabel(err), 0)
		return nil, err
	}

	monitor.ObserveRender("ok", len(screens))
	logger.Info("transaction rendered",
		zap.String("chain_id", sd.ChainID.String()),
		zap.Int("messages", env.Messages()),
		zap.Int("screens", len(screens)),
		zap.String("hash", env.Hash()),
	)

	if !expert {
		screens = textual.FilterExpert(screens)
	}
	return &RenderResult{
		ChainID:   sd.ChainID.String(),
		Screens:   screens,
		SignBytes: hex.EncodeToString(signBytes),
		Hash:      env.Hash(),
	}, nil
}

func (s *DefaultTextualService) Verify(pubKey string, signBytes, signature []byte) (bool, error) {
	key, err := secp256k1.PubKeyFromBase64(pubKey)
	if err != nil {
		monitor.ObserveVerify("error")
		return false, err
	}

	err = signing.VerifySignature(tx.NewSecp256k1PublicKey(key), signBytes, signature)
	switch {
	case err == nil:
		monitor.ObserveVerify("valid")
		return true, nil
	case errors.Is(err, errno.ErrSignatureInvalid):
		monitor.ObserveVerify("invalid")
		logger.Info("signature rejected", zap.String("address", key.Address().String()), zap.Error(err))
		return false, nil
	default:
		monitor.ObserveVerify("error")
		return false, err
	}
}

func (s *DefaultTextualService) Address(pubKey string) (*AddressResult, error) {
	key, err := secp256k1.PubKeyFromBase64(pubKey)
	if err != nil {
		return nil, err
	}
	addr := key.Address()
	return &AddressResult{Bech32: addr.String(), Hex: addr.Hex()}, nil
}

func resultLabel(err error) string {
	code, _ := errno.Decode(err)
	return strconv.Itoa(code)
}
