package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"signing-core/pkg/errno"
	"signing-core/pkg/secp256k1"
	"signing-core/pkg/signing"
	"signing-core/pkg/tx"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "验证签名字节上的 secp256k1 签名",
	RunE: func(cmd *cobra.Command, args []string) error {
		pub, _ := cmd.Flags().GetString("pubkey")
		signBytesHex, _ := cmd.Flags().GetString("sign-bytes")
		sigHex, _ := cmd.Flags().GetString("signature")

		key, err := secp256k1.PubKeyFromBase64(pub)
		if err != nil {
			return err
		}
		signBytes, err := hex.DecodeString(strings.TrimSpace(signBytesHex))
		if err != nil {
			return errno.Wrapf(errno.ErrDecode, "sign bytes: %v", err)
		}
		sig, err := hex.DecodeString(strings.TrimSpace(sigHex))
		if err != nil {
			return errno.Wrapf(errno.ErrDecode, "signature: %v", err)
		}

		err = signing.VerifySignature(tx.NewSecp256k1PublicKey(key), signBytes, sig)
		if errors.Is(err, errno.ErrSignatureInvalid) {
			fmt.Fprintln(cmd.OutOrStdout(), "❌ 签名无效")
			return err
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ 签名有效 (signer: %s)\n", key.Address())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().String("pubkey", "", "base64 编码的 33 字节压缩公钥")
	verifyCmd.Flags().String("sign-bytes", "", "签名字节 (Hex)")
	verifyCmd.Flags().String("signature", "", "64 字节 r||s 签名 (Hex)")
	_ = verifyCmd.MarkFlagRequired("pubkey")
	_ = verifyCmd.MarkFlagRequired("sign-bytes")
	_ = verifyCmd.MarkFlagRequired("signature")
}
