package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	JwtTTL        time.Duration `yaml:"jwt_ttl"`
	PageSize      int           `yaml:"page_size"` // default and maximum page size for list endpoints
	MaxTitleLen   int           `yaml:"max_title_len"`
	MaxTextLen    int           `yaml:"max_text_len"`
	SecureCookies bool          `yaml:"secure_cookies"`
	LogLevel      string        `yaml:"log_level"`
	LogJSON       bool          `yaml:"log_json"`
	AllowedOrigin string        `yaml:"allowed_origin"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key"`
	Pg     Pg     `yaml:"pg"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

// The signing secret is fixed for the process lifetime; rotating it
// invalidates every outstanding token, which is accepted behavior.

func (s *Config) JwtKey() string {
	return s.Private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.validate()
	return cfg
}

func (s *Config) validate() {
	if s.Private.JwtKey == "" {
		panic("jwt_key is required")
	}
	if s.Public.JwtTTL <= 0 {
		panic("jwt_ttl must be positive")
	}
	if s.Public.PageSize <= 0 {
		panic("page_size must be positive")
	}
}
