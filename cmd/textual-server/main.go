package main

import (
	"log"

	"signing-core/internal/handler"
	"signing-core/internal/server"
	"signing-core/internal/service"

	"signing-core/pkg/bank"
	"signing-core/pkg/config"
	"signing-core/pkg/crypto_util"
	"signing-core/pkg/logger"
	"signing-core/pkg/metadata"
	"signing-core/pkg/signing"
	"signing-core/pkg/textual"
	"signing-core/pkg/tx"

	"go.uber.org/zap"
)

func main() {
	// 0. 初始化 Config
	if err := config.Init(); err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 1. 初始化 Logger
	if err := logger.Init(config.Global.App.Env, config.Global.App.LogLevel); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer logger.Sync()

	// 2. 面额元数据
	var resolver textual.MetadataResolver = metadata.Empty
	if path := config.Global.Textual.MetadataFile; path != "" {
		reg, err := metadata.LoadFile(path)
		if err != nil {
			logger.Fatal("加载面额元数据失败", zap.String("file", path), zap.Error(err))
		}
		resolver = reg
		logger.Info("面额元数据加载成功", zap.String("file", path), zap.Strings("bases", reg.Bases()))
	} else {
		logger.Warn("未配置面额元数据，金额将按基础单位展示")
	}

	// 3. 摘要算法
	digest, err := crypto_util.DigestByName(config.Global.Textual.Digest)
	if err != nil {
		logger.Fatal("摘要算法配置错误", zap.Error(err))
	}

	// 4. 消息注册表
	registry := tx.NewRegistry()
	if err := bank.RegisterMessages(registry); err != nil {
		logger.Fatal("注册消息类型失败", zap.Error(err))
	}
	logger.Info("已注册消息类型", zap.Strings("type_urls", registry.TypeURLs()))

	// 5. Service & Handler
	textualSvc := service.NewTextualService(registry, signing.NewTextualHandler(resolver, signing.WithDigest(digest)))
	info := handler.ServiceInfo{
		Version:      "1.0.0",
		Digest:       config.Global.Textual.Digest,
		MessageTypes: registry.TypeURLs(),
		ShowExpert:   config.Global.Textual.ShowExpert,
	}
	r := server.NewHTTPRouter(handler.NewTextualHandler(textualSvc, config.Global.Textual.ShowExpert), info)

	// 6. 启动应用 (阻塞)
	app := server.New(server.Config{HttpPort: config.Global.App.HttpPort}, r)
	app.Run()

	logger.Info("系统已退出")
}
