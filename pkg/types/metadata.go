package types

import (
	"signing-core/pkg/errno"
)

// DenomUnit 展示单位，Exponent 为相对基础单位的 10 的幂次
type DenomUnit struct {
	Denom    Denom    `json:"denom" mapstructure:"denom"`
	Exponent uint32   `json:"exponent" mapstructure:"exponent"`
	Aliases  []string `json:"aliases,omitempty" mapstructure:"aliases"`
}

// Metadata 一个基础面额的全部展示单位
type Metadata struct {
	Description string      `json:"description,omitempty" mapstructure:"description"`
	DenomUnits  []DenomUnit `json:"denom_units" mapstructure:"denom_units"`
	Base        string      `json:"base" mapstructure:"base"`
	Display     string      `json:"display" mapstructure:"display"`
	Name        string      `json:"name,omitempty" mapstructure:"name"`
	Symbol      string      `json:"symbol,omitempty" mapstructure:"symbol"`
}

// Unit 查找名为 denom 的展示单位
func (m Metadata) Unit(denom string) (DenomUnit, bool) {
	for _, u := range m.DenomUnits {
		if u.Denom.String() == denom {
			return u, true
		}
	}
	return DenomUnit{}, false
}

// Validate 检查 base/display 合法、单位不重复，且基础单位 exponent 为 0
func (m Metadata) Validate() error {
	if _, err := NewDenom(m.Base); err != nil {
		return errno.Wrapf(errno.ErrDecode, "invalid metadata base denom %q", m.Base)
	}
	if m.Display != "" {
		if _, err := NewDenom(m.Display); err != nil {
			return errno.Wrapf(errno.ErrDecode, "invalid metadata display denom %q", m.Display)
		}
	}

	seen := make(map[Denom]struct{}, len(m.DenomUnits))
	for _, u := range m.DenomUnits {
		if _, err := NewDenom(u.Denom.String()); err != nil {
			return err
		}
		if _, ok := seen[u.Denom]; ok {
			return errno.Wrapf(errno.ErrDecode, "duplicate denomination unit %s", u.Denom)
		}
		seen[u.Denom] = struct{}{}
		if u.Denom.String() == m.Base && u.Exponent != 0 {
			return errno.Wrapf(errno.ErrDecode, "base unit %s must have exponent 0", u.Denom)
		}
	}
	return nil
}
