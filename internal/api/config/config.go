package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Cfg 全局配置，进程启动时由 LoadConfig 填充
var Cfg *Config

// LoadConfig 读取 yaml 配置并反序列化到 Cfg
// 配置目录默认 ./configs，可用环境变量 INKWELL_CONFIG_DIR 覆盖
func LoadConfig() error {
	dir := os.Getenv("INKWELL_CONFIG_DIR")
	if dir == "" {
		dir = "./configs"
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		return errors.Wrap(err, "read config file")
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return errors.Wrap(err, "unmarshal config")
	}

	Cfg = cfg
	return nil
}
