package types

import (
	"encoding/json"
	"regexp"

	"signing-core/pkg/errno"
)

var denomRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9/:._-]{2,127}$`)

// Denom 面额标识，例如 uatom
type Denom string

// NewDenom 校验面额格式
func NewDenom(s string) (Denom, error) {
	if !denomRegex.MatchString(s) {
		return "", errno.Wrapf(errno.ErrDecode, "invalid denomination %q", s)
	}
	return Denom(s), nil
}

// MustDenom 用于常量面额
func MustDenom(s string) Denom {
	d, err := NewDenom(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Denom) String() string {
	return string(d)
}

func (d *Denom) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errno.Wrapf(errno.ErrDecode, "denomination must be a string: %v", err)
	}
	parsed, err := NewDenom(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
