package textual

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/holiman/uint256"

	"signing-core/pkg/errno"
)

const thousandsSeparator = '\''

// FormatUint 十进制，每三位插入 ' 分隔，例如 10000 -> 10'000
func FormatUint(v uint64) string {
	return groupDigits(strconv.FormatUint(v, 10))
}

// FormatUint256 同 FormatUint，用于 256 位数量
func FormatUint256(v *uint256.Int) string {
	return groupDigits(v.Dec())
}

// FormatDecimal 对十进制字符串的整数部分分组，小数部分原样保留
func FormatDecimal(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if !hasFrac {
		return groupDigits(intPart)
	}
	return groupDigits(intPart) + "." + frac
}

func groupDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var sb strings.Builder
	sb.Grow(len(digits) + len(digits)/3)
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	sb.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		sb.WriteByte(thousandsSeparator)
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

// FormatBytes 大写 Hex，每 4 个字符一组，组间一个空格，最后一组可以不足 4 个
func FormatBytes(b []byte) (string, error) {
	if len(b) == 0 {
		return "", errno.Wrapf(errno.ErrRendering, "empty content")
	}
	h := strings.ToUpper(hex.EncodeToString(b))

	var sb strings.Builder
	sb.Grow(len(h) + len(h)/4)
	for i := 0; i < len(h); i += 4 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		end := i + 4
		if end > len(h) {
			end = len(h)
		}
		sb.WriteString(h[i:end])
	}
	return sb.String(), nil
}

// FormatString 原样返回，空字符串报错
func FormatString(s string) (string, error) {
	if s == "" {
		return "", errno.Wrapf(errno.ErrRendering, "empty content")
	}
	return s, nil
}
