package textual

// ValueRenderer 结构化值 (公钥、手续费、签名者信息、各类交易消息) 的渲染约定。
// 要么返回完整的 Screen 列表，要么返回错误，不返回部分结果。
type ValueRenderer interface {
	Format(r MetadataResolver) ([]Screen, error)
}

// RenderAll 依次渲染，遇到第一个错误立即返回 nil
func RenderAll(r MetadataResolver, renderers ...ValueRenderer) ([]Screen, error) {
	var screens []Screen
	for _, vr := range renderers {
		s, err := vr.Format(r)
		if err != nil {
			return nil, err
		}
		screens = append(screens, s...)
	}
	return screens, nil
}
