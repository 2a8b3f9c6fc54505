// Package metadata 提供面额展示单位表的查询实现
package metadata

import (
	"github.com/spf13/viper"

	"signing-core/pkg/errno"
	"signing-core/pkg/textual"
	"signing-core/pkg/types"
)

// Empty 不返回任何元数据，所有金额按基础单位展示
var Empty textual.MetadataResolver = textual.ResolverFunc(func(types.Denom) (types.Metadata, bool) {
	return types.Metadata{}, false
})

// Registry 只读的元数据表，base 与每个展示单位都能查到所属的 Metadata
type Registry struct {
	byDenom map[types.Denom]types.Metadata
	bases   []string
}

var _ textual.MetadataResolver = (*Registry)(nil)

// NewRegistry 校验并建立索引，同一单位名不能属于两个面额
func NewRegistry(mds ...types.Metadata) (*Registry, error) {
	r := &Registry{byDenom: make(map[types.Denom]types.Metadata)}
	for _, md := range mds {
		if err := md.Validate(); err != nil {
			return nil, err
		}
		names := []types.Denom{types.Denom(md.Base)}
		for _, u := range md.DenomUnits {
			if u.Denom.String() != md.Base {
				names = append(names, u.Denom)
			}
		}
		for _, name := range names {
			if owner, ok := r.byDenom[name]; ok {
				return nil, errno.Wrapf(errno.ErrDecode, "denomination %s already belongs to %s", name, owner.Base)
			}
			r.byDenom[name] = md
		}
		r.bases = append(r.bases, md.Base)
	}
	return r, nil
}

func (r *Registry) Resolve(denom types.Denom) (types.Metadata, bool) {
	md, ok := r.byDenom[denom]
	return md, ok
}

// Bases 已加载的基础面额，按加载顺序
func (r *Registry) Bases() []string {
	out := make([]string, len(r.bases))
	copy(out, r.bases)
	return out
}

type metadataFile struct {
	Metadata []types.Metadata `mapstructure:"metadata"`
}

// LoadFile 读取 YAML/JSON/TOML 格式的元数据文件，顶层键为 metadata
func LoadFile(path string) (*Registry, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errno.Wrapf(errno.ErrDecode, "read metadata file %s: %v", path, err)
	}

	var file metadataFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, errno.Wrapf(errno.ErrDecode, "decode metadata file %s: %v", path, err)
	}
	return NewRegistry(file.Metadata...)
}
