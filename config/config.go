package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App       *App       `json:"app" yaml:"app"`
	Database  *Database  `json:"database" yaml:"database"`
	Jwt       *Jwt       `json:"jwt" yaml:"jwt"`
	Server    *Server    `json:"server" yaml:"server"`
	Aggregate *Aggregate `json:"aggregate" yaml:"aggregate"`
	Relation  *Relation  `json:"relation" yaml:"relation"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}

	return conf
}

// Parse 解析 yaml 内容并补齐缺省配置
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}
	conf.applyDefaults()
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Default 测试与工具使用的缺省配置
func Default() *Config {
	conf := &Config{}
	conf.applyDefaults()
	return conf
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverMySQL
	}
	if c.Aggregate == nil {
		c.Aggregate = &Aggregate{}
	}
	if c.Aggregate.CountStrategy == "" {
		c.Aggregate.CountStrategy = CountGrouped
	}
	if c.Aggregate.FanoutLimit <= 0 {
		c.Aggregate.FanoutLimit = 1
	}
	if c.Aggregate.Timeout == 0 {
		c.Aggregate.Timeout = 5 * time.Second
	}
	if c.Relation == nil {
		c.Relation = &Relation{}
	}
	if c.Relation.SelfFollow == "" {
		c.Relation.SelfFollow = SelfFollowKeep
	}
}

func (c *Config) Validate() error {
	switch c.Aggregate.CountStrategy {
	case CountGrouped, CountFanout:
	default:
		return fmt.Errorf("aggregate.count_strategy: unknown value %q", c.Aggregate.CountStrategy)
	}
	switch c.Relation.SelfFollow {
	case SelfFollowKeep, SelfFollowSkip:
	default:
		return fmt.Errorf("relation.self_follow: unknown value %q", c.Relation.SelfFollow)
	}
	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("database.driver: unknown value %q", c.Database.Driver)
	}
	return nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
