package config

import (
	"os"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

var config *Config

type Auth struct {
	// PublicKey 用于本地校验Bearer凭证的EC公钥(PEM), 为空时走身份提供方远端校验
	PublicKey string `json:",optional"`
}

type Identity struct {
	BaseURL    string
	APIKey     string `json:",optional"`
	ServiceKey string
}

type Admin struct {
	// Emails 管理员邮箱白名单, 精确匹配
	Emails []string `json:",optional"`
}

type Config struct {
	service.ServiceConf
	ListenOn        string
	MetricsListenOn string `json:",optional"`
	Auth            Auth
	Identity        Identity
	Admin           Admin
	Redis           redis.RedisConf
}

func NewConfig() (*Config, error) {
	c := new(Config)
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "etc/config.yaml"
	}
	err := conf.Load(path, c)
	if err != nil {
		return nil, err
	}
	err = c.SetUp()
	if err != nil {
		return nil, err
	}
	config = c
	return config, nil
}

func GetConfig() *Config {
	return config
}
