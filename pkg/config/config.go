package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"signing-core/pkg/crypto_util"
)

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Textual TextualConfig `mapstructure:"textual"`
}

type AppConfig struct {
	Env      string `mapstructure:"env"`
	HttpPort string `mapstructure:"http_port"`
	LogLevel string `mapstructure:"log_level"`
}

type TextualConfig struct {
	MetadataFile string `mapstructure:"metadata_file"` // 面额元数据文件，留空则按基础单位展示
	Digest       string `mapstructure:"digest"`        // sha256 | keccak256 | blake3
	ShowExpert   bool   `mapstructure:"show_expert"`   // false 时接口只返回简化视图
}

var Global Config

// Init 读取 config.yaml (当前目录或 ./config)，环境变量覆盖，如 TEXTUAL_DIGEST=blake3
func Init() error {
	v := viper.New()
	v.SetConfigName("config") // name of config file (without extension)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	cfg, err := load(v)
	if err != nil {
		return err
	}
	Global = cfg
	return nil
}

// InitFile 读取指定路径的配置文件
func InitFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)

	cfg, err := load(v)
	if err != nil {
		return err
	}
	Global = cfg
	return nil
}

func load(v *viper.Viper) (Config, error) {
	// 环境变量设置
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 设置默认值
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
		// 没有配置文件时使用默认值和环境变量
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if _, err := crypto_util.DigestByName(cfg.Textual.Digest); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.http_port", "8080")
	v.SetDefault("app.log_level", "")

	v.SetDefault("textual.metadata_file", "")
	v.SetDefault("textual.digest", crypto_util.DigestSHA256)
	v.SetDefault("textual.show_expert", true)
}
