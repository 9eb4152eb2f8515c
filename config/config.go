package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/vicharak-in/tlinker/core/metrics"
)

type Config struct {
	HTTP    HTTPConfig     `json:"http"`
	Data    DataConfig     `json:"data"`
	Metrics metrics.Config `json:"metrics"`
	RunLog  RunLogConfig   `json:"runlog"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("TL_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "tl_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.HTTP.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.RunLog.SetDefaults()
	if err := cfg.RunLog.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.HTTP.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.RunLog.SetDefaults()
	return cfg
}
