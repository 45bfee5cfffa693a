package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Grodondo/aitutor/pkg/utils"

	"github.com/shirou/gopsutil/v3/mem"
)

const (
	LargeCoder  = "qwen2.5-coder:32b"
	MediumCoder = "qwen2.5-coder:14b"
	SmallCoder  = "qwen2.5-coder:7b"
	MicroCoder  = "qwen2.5-coder:3b"
)

// Config holds the tutor's persisted settings, stored as JSON under
// .aitutor/config.json in either the home directory or the workspace. The
// workspace copy wins when both exist.
type Config struct {
	Model              string  `json:"model"`
	OllamaServerURL    string  `json:"ollama_server_url"`
	DefaultLevel       string  `json:"default_level"`
	IncludeLineNumbers bool    `json:"include_line_numbers"`
	Temperature        float64 `json:"temperature"`
	MaxTokens          int     `json:"max_tokens"`
	RequestTimeoutSecs int     `json:"request_timeout_secs"`
	TrackChanges       bool    `json:"track_changes"`
	ListenAddr         string  `json:"listen_addr"`
	JsonLogs           bool    `json:"json_logs"`
	SkipPrompt         bool    `json:"-"` // Internal use, not saved to config
}

func getHomeConfigPath() (string, string) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", ""
	}
	configDir := filepath.Join(home, ".aitutor")
	return configDir, filepath.Join(configDir, "config.json")
}

func getCurrentConfigPath() (string, string) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", ""
	}
	configDir := filepath.Join(cwd, ".aitutor")
	return configDir, filepath.Join(configDir, "config.json")
}

// getLocalModel picks an ollama coder model that fits the machine's memory.
func getLocalModel(skipPrompt bool) string {
	logger := utils.GetLogger(skipPrompt)
	v, err := mem.VirtualMemory()
	if err != nil {
		logger.Logf("Could not detect system memory, defaulting to %s: %v", MicroCoder, err)
		return MicroCoder
	}
	gb := v.Total / (1024 * 1024 * 1024)
	switch {
	case gb >= 48:
		return LargeCoder
	case gb >= 38:
		return MediumCoder
	case gb >= 20:
		return SmallCoder
	default:
		return MicroCoder
	}
}

// setDefaultValues fills in any unset fields so older config files keep working.
func (c *Config) setDefaultValues(skipPrompt bool) {
	if c.Model == "" {
		c.Model = getLocalModel(skipPrompt)
	}
	if c.DefaultLevel == "" {
		c.DefaultLevel = "medium"
	}
	if c.Temperature == 0 {
		c.Temperature = 0.2
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 4096
	}
	if c.RequestTimeoutSecs == 0 {
		c.RequestTimeoutSecs = 180
	}
	if c.ListenAddr == "" {
		c.ListenAddr = "127.0.0.1:8517"
	}
	c.SkipPrompt = skipPrompt
}

// LoadOrInitConfig loads the workspace config, falling back to the home config,
// and creates a default home config when neither exists.
func LoadOrInitConfig(skipPrompt bool) (*Config, error) {
	_, cwdPath := getCurrentConfigPath()
	if cfg, err := loadConfigFile(cwdPath, skipPrompt); err == nil {
		return cfg, nil
	}

	homeDir, homePath := getHomeConfigPath()
	if cfg, err := loadConfigFile(homePath, skipPrompt); err == nil {
		return cfg, nil
	}

	cfg := &Config{TrackChanges: true}
	cfg.setDefaultValues(skipPrompt)
	if homeDir != "" {
		if err := cfg.save(homeDir, homePath); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func loadConfigFile(path string, skipPrompt bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// Change tracking is on unless the file carries an explicit
	// "track_changes": false.
	cfg := Config{TrackChanges: true}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.setDefaultValues(skipPrompt)
	return &cfg, nil
}

func (c *Config) save(dir, path string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// SaveToWorkspace persists the config into the current workspace's .aitutor dir.
func (c *Config) SaveToWorkspace() error {
	dir, path := getCurrentConfigPath()
	if dir == "" {
		return fmt.Errorf("could not resolve working directory")
	}
	return c.save(dir, path)
}
