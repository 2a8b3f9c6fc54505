package textual

import (
	"github.com/fxamacker/cbor/v2"

	"signing-core/pkg/errno"
)

// cbor 结构：{1: [ {1: title, 2: content, 3: indent, 4: expert}, ... ]}，零值字段省略
type cborScreen struct {
	Title   string `cbor:"1,keyasint,omitempty"`
	Content string `cbor:"2,keyasint,omitempty"`
	Indent  uint8  `cbor:"3,keyasint,omitempty"`
	Expert  bool   `cbor:"4,keyasint,omitempty"`
}

type cborSignDoc struct {
	Screens []cborScreen `cbor:"1,keyasint"`
}

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

// SignBytes 确定性 CBOR 编码的签名文档，签名者对这串字节签名
func SignBytes(screens []Screen) ([]byte, error) {
	doc := cborSignDoc{Screens: make([]cborScreen, len(screens))}
	for i, s := range screens {
		if s.Content.String() == "" {
			return nil, errno.Wrapf(errno.ErrRendering, "screen %d has empty content", i)
		}
		doc.Screens[i] = cborScreen{
			Title:   s.Title,
			Content: s.Content.String(),
			Indent:  s.Indent,
			Expert:  s.Expert,
		}
	}

	bz, err := encMode.Marshal(doc)
	if err != nil {
		return nil, errno.Wrapf(errno.ErrCustom, "encode sign doc: %v", err)
	}
	return bz, nil
}
