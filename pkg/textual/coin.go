package textual

import (
	"strings"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"

	"signing-core/pkg/errno"
	"signing-core/pkg/types"
)

const (
	// decimalPlaces 定点小数精度，超出部分截断
	decimalPlaces = 18
	// maxPower 10^77 是 uint256 能表示的最大 10 的幂
	maxPower = 77
)

// maxDecimalAtomics 18 位小数定点数能容纳的最大整数部分
var maxDecimalAtomics = new(uint256.Int).Div(
	new(uint256.Int).SetAllOne(),
	new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(decimalPlaces)),
)

// MetadataResolver 根据面额查询展示单位表，必须是无副作用的纯查询
type MetadataResolver interface {
	Resolve(denom types.Denom) (types.Metadata, bool)
}

// ResolverFunc 函数适配为 MetadataResolver
type ResolverFunc func(denom types.Denom) (types.Metadata, bool)

func (f ResolverFunc) Resolve(denom types.Denom) (types.Metadata, bool) {
	return f(denom)
}

// FormatCoin 按元数据把基础单位数量换算成展示单位，例如 10000000uatom -> "10 ATOM"。
// 没有元数据或找不到对应单位时按原始面额展示。
func FormatCoin(coin types.Coin, r MetadataResolver) (string, error) {
	raw := FormatUint256(&coin.Amount) + " " + coin.Denom.String()
	if r == nil {
		return raw, nil
	}

	md, ok := r.Resolve(coin.Denom)
	if !ok || md.Display == "" || md.Display == coin.Denom.String() {
		return raw, nil
	}

	coinUnit, ok := md.Unit(coin.Denom.String())
	if !ok {
		return raw, nil
	}
	displayUnit, ok := md.Unit(md.Display)
	if !ok {
		return raw, nil
	}

	var amount string
	switch {
	case coinUnit.Exponent < displayUnit.Exponent:
		scaled, err := scaleDown(&coin.Amount, displayUnit.Exponent-coinUnit.Exponent, md.Display)
		if err != nil {
			return "", err
		}
		amount = scaled
	case coinUnit.Exponent == displayUnit.Exponent:
		amount = FormatUint256(&coin.Amount)
	default:
		scaled, err := scaleUp(&coin.Amount, coinUnit.Exponent-displayUnit.Exponent, md.Display)
		if err != nil {
			return "", err
		}
		amount = FormatUint256(scaled)
	}

	return amount + " " + md.Display, nil
}

func scaleDown(amount *uint256.Int, power uint32, display string) (string, error) {
	if amount.Gt(maxDecimalAtomics) {
		return "", errno.Wrapf(errno.ErrRendering,
			"coin amounts greater than %s are not supported for this signing mode", maxDecimalString())
	}
	if power > maxPower {
		return "", errno.Wrapf(errno.ErrRendering, "%s denom is not supported for this signing mode", display)
	}

	d := decimal.NewFromBigInt(amount.ToBig(), 0).Shift(-int32(power))
	if !d.Equal(d.Truncate(decimalPlaces)) {
		return "", errno.Wrapf(errno.ErrRendering,
			"%s %s needs more than %d decimal places", amount.Dec(), display, decimalPlaces)
	}
	return FormatDecimal(d.String()), nil
}

func scaleUp(amount *uint256.Int, power uint32, display string) (*uint256.Int, error) {
	if power > maxPower {
		return nil, errno.Wrapf(errno.ErrRendering, "%s denom is not supported for this signing mode", display)
	}
	scaling := new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(power)))
	out, overflow := new(uint256.Int).MulOverflow(amount, scaling)
	if overflow {
		limit := new(uint256.Int).Div(new(uint256.Int).SetAllOne(), scaling)
		return nil, errno.Wrapf(errno.ErrRendering,
			"coin amounts greater than %s are not supported for this signing mode and denom %s", limit.Dec(), display)
	}
	return out, nil
}

// maxDecimalString 18 位小数定点数的最大值
func maxDecimalString() string {
	return decimal.NewFromBigInt(new(uint256.Int).SetAllOne().ToBig(), -decimalPlaces).String()
}

// FormatCoins 逐个格式化并以 ", " 连接，保持原始顺序。空列表报错，调用方应直接省略该字段。
func FormatCoins(coins types.Coins, r MetadataResolver) (string, error) {
	if len(coins) == 0 {
		return "", errno.Wrapf(errno.ErrRendering, "empty content")
	}
	parts := make([]string, len(coins))
	for i, c := range coins {
		s, err := FormatCoin(c, r)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, ", "), nil
}
