package cmd

import (
	"fmt"

	"signing-core/pkg/secp256k1"

	"github.com/spf13/cobra"
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "由 secp256k1 压缩公钥推导账户地址",
	RunE: func(cmd *cobra.Command, args []string) error {
		pub, _ := cmd.Flags().GetString("pubkey")

		key, err := secp256k1.PubKeyFromBase64(pub)
		if err != nil {
			return err
		}
		addr := key.Address()
		fmt.Fprintf(cmd.OutOrStdout(), "Bech32: %s\nHex:    %s\n", addr.String(), addr.Hex())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addressCmd)

	addressCmd.Flags().String("pubkey", "", "base64 编码的 33 字节压缩公钥")
	_ = addressCmd.MarkFlagRequired("pubkey")
}
