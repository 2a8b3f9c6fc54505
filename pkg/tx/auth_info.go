package tx

import (
	"encoding/json"
	"strconv"

	"signing-core/pkg/address"
	"signing-core/pkg/codec"
	"signing-core/pkg/errno"
	"signing-core/pkg/textual"
	"signing-core/pkg/types"
)

// SignMode cosmos.tx.signing.v1beta1.SignMode
type SignMode int32

const (
	SignModeUnspecified     SignMode = 0
	SignModeDirect          SignMode = 1
	SignModeTextual         SignMode = 2
	SignModeDirectAux       SignMode = 3
	SignModeLegacyAminoJSON SignMode = 127
	SignModeEIP191          SignMode = 191
)

var signModeNames = map[SignMode]string{
	SignModeUnspecified:     "SIGN_MODE_UNSPECIFIED",
	SignModeDirect:          "SIGN_MODE_DIRECT",
	SignModeTextual:         "SIGN_MODE_TEXTUAL",
	SignModeDirectAux:       "SIGN_MODE_DIRECT_AUX",
	SignModeLegacyAminoJSON: "SIGN_MODE_LEGACY_AMINO_JSON",
	SignModeEIP191:          "SIGN_MODE_EIP_191",
}

func (m SignMode) String() string {
	if name, ok := signModeNames[m]; ok {
		return name
	}
	return strconv.Itoa(int(m))
}

func (m SignMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON 接受枚举名或数字
func (m *SignMode) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		for mode, n := range signModeNames {
			if n == name {
				*m = mode
				return nil
			}
		}
		return errno.Wrapf(errno.ErrDecode, "unknown sign mode %q", name)
	}
	var num int32
	if err := json.Unmarshal(data, &num); err != nil {
		return errno.Wrapf(errno.ErrDecode, "sign mode: %v", err)
	}
	if _, ok := signModeNames[SignMode(num)]; !ok {
		return errno.Wrapf(errno.ErrDecode, "unknown sign mode %d", num)
	}
	*m = SignMode(num)
	return nil
}

// ModeInfo 只支持单签名者模式
type ModeInfo struct {
	Single SignMode
}

// Marshal 1 single{1 mode}
func (m ModeInfo) Marshal() ([]byte, error) {
	single := codec.AppendUint64(nil, 1, uint64(m.Single))
	return codec.AppendMessage(nil, 1, single), nil
}

type modeInfoJSON struct {
	Single *struct {
		Mode SignMode `json:"mode"`
	} `json:"single"`
}

func (m ModeInfo) MarshalJSON() ([]byte, error) {
	var raw modeInfoJSON
	raw.Single = &struct {
		Mode SignMode `json:"mode"`
	}{Mode: m.Single}
	return json.Marshal(raw)
}

func (m *ModeInfo) UnmarshalJSON(data []byte) error {
	var raw modeInfoJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Single == nil {
		return errno.Wrapf(errno.ErrDecode, "only single signer mode info is supported")
	}
	m.Single = raw.Single.Mode
	return nil
}

// SignerInfo 单个签名者的公钥、签名模式和序号
type SignerInfo struct {
	PublicKey PublicKey `json:"public_key"`
	ModeInfo  ModeInfo  `json:"mode_info"`
	Sequence  uint64    `json:"sequence,string"`
}

// Marshal 1 public_key(Any) 2 mode_info 3 sequence
func (s SignerInfo) Marshal() ([]byte, error) {
	var (
		out []byte
		err error
	)
	if !s.PublicKey.IsZero() {
		if out, err = codec.AppendMarshaler(out, 1, s.PublicKey); err != nil {
			return nil, err
		}
	}
	if out, err = codec.AppendMarshaler(out, 2, s.ModeInfo); err != nil {
		return nil, err
	}
	out = codec.AppendUint64(out, 3, s.Sequence)
	return out, nil
}

// Fee 手续费。Amount 为空表示不收取费用。
type Fee struct {
	Amount   types.Coins        `json:"amount,omitempty"`
	GasLimit uint64             `json:"gas_limit,string"`
	Payer    address.AccAddress `json:"payer,omitempty"`
	Granter  string             `json:"granter,omitempty"`
}

// Marshal 1 amount 2 gas_limit 3 payer 4 granter
func (f Fee) Marshal() ([]byte, error) {
	var (
		out []byte
		err error
	)
	for _, c := range f.Amount {
		if out, err = codec.AppendMarshaler(out, 1, c); err != nil {
			return nil, err
		}
	}
	out = codec.AppendUint64(out, 2, f.GasLimit)
	out = codec.AppendString(out, 3, f.Payer.String())
	out = codec.AppendString(out, 4, f.Granter)
	return out, nil
}

// Format 单独渲染手续费。Gas limit 无论是否为 0 都展示。
func (f Fee) Format(r textual.MetadataResolver) ([]textual.Screen, error) {
	var screens []textual.Screen
	if len(f.Amount) > 0 {
		fees, err := textual.FormatCoins(f.Amount, r)
		if err != nil {
			return nil, err
		}
		screens = append(screens, textual.Screen{Title: "Fees", Content: textual.MustContent(fees)})
	}
	if !f.Payer.Empty() {
		screens = append(screens, textual.Screen{Title: "Fee payer", Content: textual.MustContent(f.Payer.String()), Expert: true})
	}
	if f.Granter != "" {
		screens = append(screens, textual.Screen{Title: "Fee granter", Content: textual.MustContent(f.Granter), Expert: true})
	}
	screens = append(screens, textual.Screen{Title: "Gas limit", Content: textual.MustContent(textual.FormatUint(f.GasLimit)), Expert: true})
	return screens, nil
}

func (f Fee) clone() Fee {
	out := f
	out.Amount = f.Amount.Clone()
	out.Payer = f.Payer.Clone()
	return out
}

// Tip 小费
type Tip struct {
	Amount types.Coins        `json:"amount,omitempty"`
	Tipper address.AccAddress `json:"tipper"`
}

// Marshal 1 amount 2 tipper
func (t Tip) Marshal() ([]byte, error) {
	var (
		out []byte
		err error
	)
	for _, c := range t.Amount {
		if out, err = codec.AppendMarshaler(out, 1, c); err != nil {
			return nil, err
		}
	}
	out = codec.AppendString(out, 2, t.Tipper.String())
	return out, nil
}

func (t Tip) Format(r textual.MetadataResolver) ([]textual.Screen, error) {
	var screens []textual.Screen
	if len(t.Amount) > 0 {
		tip, err := textual.FormatCoins(t.Amount, r)
		if err != nil {
			return nil, err
		}
		screens = append(screens, textual.Screen{Title: "Tip", Content: textual.MustContent(tip)})
	}
	if !t.Tipper.Empty() {
		screens = append(screens, textual.Screen{Title: "Tipper", Content: textual.MustContent(t.Tipper.String())})
	}
	return screens, nil
}

// AuthInfo cosmos.tx.v1beta1.AuthInfo
type AuthInfo struct {
	SignerInfos []SignerInfo `json:"signer_infos"`
	Fee         Fee          `json:"fee"`
	Tip         *Tip         `json:"tip,omitempty"`
}

// Marshal 1 signer_infos 2 fee 3 tip
func (a AuthInfo) Marshal() ([]byte, error) {
	var (
		out []byte
		err error
	)
	for _, si := range a.SignerInfos {
		if out, err = codec.AppendMarshaler(out, 1, si); err != nil {
			return nil, err
		}
	}
	if out, err = codec.AppendMarshaler(out, 2, a.Fee); err != nil {
		return nil, err
	}
	if a.Tip != nil {
		if out, err = codec.AppendMarshaler(out, 3, *a.Tip); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Clone 深拷贝，结果与原对象不共享切片
func (a AuthInfo) Clone() AuthInfo {
	out := AuthInfo{Fee: a.Fee.clone()}
	if a.SignerInfos != nil {
		out.SignerInfos = make([]SignerInfo, len(a.SignerInfos))
		copy(out.SignerInfos, a.SignerInfos)
	}
	if a.Tip != nil {
		tip := Tip{Amount: a.Tip.Amount.Clone(), Tipper: a.Tip.Tipper.Clone()}
		out.Tip = &tip
	}
	return out
}
