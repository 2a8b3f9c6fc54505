package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "textual-cli",
	Short: "交易文本化渲染命令行工具",
	Long: `将待签名交易渲染为硬件钱包展示的屏幕列表，并生成 CBOR 签名字节。
同时支持 secp256k1 公钥转地址与签名验证。`,
	SilenceUsage: true,
}

// Execute 将所有子命令添加到根命令并设置标志
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
