package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"signing-core/pkg/bank"
	"signing-core/pkg/crypto_util"
	"signing-core/pkg/metadata"
	"signing-core/pkg/signing"
	"signing-core/pkg/textual"
	"signing-core/pkg/tx"

	"github.com/spf13/cobra"
)

// renderCmd 离线渲染待签名交易
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "渲染待签名交易",
	Long: `读取 {signer_data, body, auth_info} 格式的 JSON 文档，输出屏幕列表。
专家屏幕以 * 标记。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		metaFile, _ := cmd.Flags().GetString("metadata")
		digestName, _ := cmd.Flags().GetString("digest")
		expert, _ := cmd.Flags().GetBool("expert")
		asJSON, _ := cmd.Flags().GetBool("json")
		withSignBytes, _ := cmd.Flags().GetBool("sign-bytes")

		doc, err := readInput(cmd.InOrStdin(), input)
		if err != nil {
			return err
		}

		var resolver textual.MetadataResolver = metadata.Empty
		if metaFile != "" {
			reg, err := metadata.LoadFile(metaFile)
			if err != nil {
				return fmt.Errorf("加载面额元数据失败: %w", err)
			}
			resolver = reg
		}

		digest, err := crypto_util.DigestByName(digestName)
		if err != nil {
			return err
		}

		registry := tx.NewRegistry()
		if err := bank.RegisterMessages(registry); err != nil {
			return err
		}
		sd, data, err := registry.DecodeTxDocument(doc)
		if err != nil {
			return err
		}

		h := signing.NewTextualHandler(resolver, signing.WithDigest(digest))
		screens, err := h.Render(sd, data)
		if err != nil {
			return err
		}
		signBytes, err := textual.SignBytes(screens)
		if err != nil {
			return err
		}

		shown := screens
		if !expert {
			shown = textual.FilterExpert(screens)
		}

		out := cmd.OutOrStdout()
		if asJSON {
			res := struct {
				Screens   []textual.Screen `json:"screens"`
				SignBytes string           `json:"sign_bytes,omitempty"`
			}{Screens: shown}
			if withSignBytes {
				res.SignBytes = hex.EncodeToString(signBytes)
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}

		writeScreens(out, shown)
		if withSignBytes {
			fmt.Fprintf(out, "\nSign bytes: %s\n", hex.EncodeToString(signBytes))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("input", "i", "-", "交易文档 (- 表示标准输入)")
	renderCmd.Flags().StringP("metadata", "m", "", "面额元数据文件 (yaml/json)")
	renderCmd.Flags().String("digest", crypto_util.DigestSHA256, "Hash of raw bytes 使用的摘要算法 (sha256|keccak256|blake3)")
	renderCmd.Flags().Bool("expert", false, "显示专家屏幕")
	renderCmd.Flags().Bool("json", false, "以 JSON 输出")
	renderCmd.Flags().Bool("sign-bytes", false, "同时输出 CBOR 签名字节 (Hex)")
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func writeScreens(w io.Writer, screens []textual.Screen) {
	for _, s := range screens {
		mark := " "
		if s.Expert {
			mark = "*"
		}
		prefix := strings.Repeat("  ", int(s.Indent))
		if s.Title == "" {
			fmt.Fprintf(w, "%s %s%s\n", mark, prefix, s.Content)
			continue
		}
		fmt.Fprintf(w, "%s %s%s: %s\n", mark, prefix, s.Title, s.Content)
	}
}
