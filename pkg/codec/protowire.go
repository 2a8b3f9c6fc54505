// Package codec 生成交易结构的规范 protobuf 字节 (proto3 规则：默认值不编码)。
// 只覆盖签名摘要需要的编码方向，不做通用反序列化。
package codec

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Marshaler 能产出规范 protobuf 编码的类型
type Marshaler interface {
	Marshal() ([]byte, error)
}

// AppendString 写入 string 字段，空字符串省略
func AppendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// AppendBytes 写入 bytes 字段，空切片省略
func AppendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// AppendUint64 写入 varint 字段，0 省略
func AppendUint64(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

// AppendMessage 写入已编码的子消息。子消息存在即编码，即使内容为空。
func AppendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

// AppendMarshaler 编码 m 并作为子消息写入
func AppendMarshaler(b []byte, num protowire.Number, m Marshaler) ([]byte, error) {
	bz, err := m.Marshal()
	if err != nil {
		return nil, err
	}
	return AppendMessage(b, num, bz), nil
}

// Any google.protobuf.Any
type Any struct {
	TypeURL string
	Value   []byte
}

func (a Any) Marshal() ([]byte, error) {
	var b []byte
	b = AppendString(b, 1, a.TypeURL)
	b = AppendBytes(b, 2, a.Value)
	return b, nil
}

// NewAny 编码 m 并打包为 Any
func NewAny(typeURL string, m Marshaler) (Any, error) {
	bz, err := m.Marshal()
	if err != nil {
		return Any{}, err
	}
	return Any{TypeURL: typeURL, Value: bz}, nil
}
