package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables checked for the API credential, in priority order.
var apiKeyEnvVars = []string{"API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"}

type Config struct {
	APIKey  string `yaml:"api_key,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`

	Models ModelConfig `yaml:"models"`
	Voice  string      `yaml:"voice"`

	RequestTimeout time.Duration `yaml:"request_timeout"`

	Gate   GateConfig   `yaml:"gate"`
	Audio  AudioConfig  `yaml:"audio"`
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`

	// ExportDir receives saved solutions. Empty means the working directory.
	ExportDir string `yaml:"export_dir,omitempty"`

	path string
}

type ModelConfig struct {
	Full   string `yaml:"full"`
	Lite   string `yaml:"lite"`
	Gate   string `yaml:"gate"`
	Speech string `yaml:"speech"`
}

type GateConfig struct {
	// CacheTTL keeps topic verdicts in memory for this long. Zero disables the cache.
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

type AudioConfig struct {
	Dir      string `yaml:"dir,omitempty"`
	Player   string `yaml:"player,omitempty"`
	Autoplay bool   `yaml:"autoplay"`
}

type LogConfig struct {
	File  string `yaml:"file,omitempty"`
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

func DefaultConfig() *Config {
	return &Config{
		Models: ModelConfig{
			Full:   DefaultFullModel,
			Lite:   DefaultLiteModel,
			Gate:   DefaultLiteModel,
			Speech: DefaultSpeechModel,
		},
		Voice:          DefaultVoice,
		RequestTimeout: 2 * time.Minute,
		Gate: GateConfig{
			CacheTTL: 30 * time.Minute,
		},
		Audio: AudioConfig{
			Autoplay: true,
		},
		Log: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "fico"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the default config file. A missing file is not an error: the
// defaults are returned instead. Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the config at path, filling unset fields from DefaultConfig.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.path = path
	// Left empty so an unset gate model follows the configured lite tier.
	cfg.Models.Gate = ""

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.fillDefaults()
	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides file settings with the process environment.
func (c *Config) ApplyEnv() {
	for _, name := range apiKeyEnvVars {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			c.APIKey = v
			break
		}
	}
	if v := os.Getenv("FICO_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("FICO_SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
}

// HasAPIKey reports whether a credential is configured.
func (c *Config) HasAPIKey() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// Path returns the file the config was loaded from, if any.
func (c *Config) Path() string {
	return c.path
}

func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.Models.Full == "" {
		c.Models.Full = def.Models.Full
	}
	if c.Models.Lite == "" {
		c.Models.Lite = def.Models.Lite
	}
	if c.Models.Gate == "" {
		c.Models.Gate = c.Models.Lite
	}
	if c.Models.Speech == "" {
		c.Models.Speech = def.Models.Speech
	}
	if c.Voice == "" {
		c.Voice = def.Voice
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = def.RequestTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Server.Addr == "" {
		c.Server.Addr = def.Server.Addr
	}
}

func (c *Config) Save() error {
	path := c.path
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
