// Package textual 把交易内容渲染成可供人工 (或硬件钱包) 逐屏核对的 Screen 列表，
// 并生成 textual 签名模式下的签名字节。
package textual

import (
	"encoding/json"

	"signing-core/pkg/errno"
)

// Content 非空的屏幕内容。零值不合法，只能通过 NewContent 构造。
type Content struct {
	s string
}

// NewContent 空字符串返回 ErrRendering。不展示某字段应省略整个 Screen，而不是给空内容。
func NewContent(s string) (Content, error) {
	if s == "" {
		return Content{}, errno.Wrapf(errno.ErrRendering, "empty content")
	}
	return Content{s: s}, nil
}

// MustContent 只用于硬编码的非空文本
func MustContent(s string) Content {
	c, err := NewContent(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Content) String() string {
	return c.s
}

func (c Content) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.s)
}

func (c *Content) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errno.Wrapf(errno.ErrDecode, "content must be a string: %v", err)
	}
	parsed, err := NewContent(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Screen 一屏展示信息。Indent 为 0 表示不缩进；Expert 为 true 时简化视图中隐藏。
type Screen struct {
	Title   string  `json:"title"`
	Content Content `json:"content"`
	Indent  uint8   `json:"indent,omitempty"`
	Expert  bool    `json:"expert"`
}

// Indent 给每个 Screen 增加 n 级缩进，返回新切片
func Indent(screens []Screen, n uint8) []Screen {
	out := make([]Screen, len(screens))
	for i, s := range screens {
		s.Indent += n
		out[i] = s
	}
	return out
}

// FilterExpert 去掉 expert 屏幕，得到简化视图
func FilterExpert(screens []Screen) []Screen {
	out := make([]Screen, 0, len(screens))
	for _, s := range screens {
		if !s.Expert {
			out = append(out, s)
		}
	}
	return out
}
