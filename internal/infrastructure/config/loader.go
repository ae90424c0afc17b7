// Package config loads the per-invocation configuration: YAML file first,
// environment overrides second.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/smsh/internal/domain"
)

// Environment overrides applied after the file is read. Env always wins.
const (
	envConfigPath = "SMSH_CONFIG"
	envProvider   = "SMSH_LLM_PROVIDER"
	envLogPath    = "SMSH_LOG"
)

// FileLoader loads YAML configuration from ~/.smsh/config.yaml (overridable
// via SMSH_CONFIG). A missing file is not an error; defaults apply.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader. An empty path defers to SMSH_CONFIG and
// the default location.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load resolves the effective configuration for this invocation.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	cfg := defaultConfig()

	path := l.resolvePath()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var raw fileConfig
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
		applyFile(&cfg, raw)
	case errors.Is(err, fs.ErrNotExist):
		// no file, defaults apply
	default:
		return domain.Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv(envConfigPath); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(userHomeDir(), ".smsh", "config.yaml")
}

// fileConfig mirrors the YAML layout of ~/.smsh/config.yaml.
type fileConfig struct {
	Provider string                  `yaml:"provider"`
	LogPath  string                  `yaml:"log_path"`
	OpenAI   *domain.ModelDefinition `yaml:"openai"`
	Claude   *domain.ModelDefinition `yaml:"claude"`
}

func defaultConfig() domain.Config {
	return domain.Config{
		Provider: domain.ProviderOpenAI,
		OpenAI: domain.ModelDefinition{
			Endpoint:  "https://api.openai.com/v1/chat/completions",
			ModelID:   "gpt-4o",
			MaxTokens: 256,
		},
		Claude: domain.ModelDefinition{
			Endpoint:  "https://api.anthropic.com/v1/messages",
			ModelID:   "claude-sonnet-4-5-20250929",
			MaxTokens: 512,
		},
	}
}

func applyFile(cfg *domain.Config, raw fileConfig) {
	if raw.Provider != "" {
		cfg.Provider = domain.Provider(strings.ToLower(strings.TrimSpace(raw.Provider)))
	}
	if raw.LogPath != "" {
		cfg.LogPath = expandPath(raw.LogPath)
	}
	applyModel(&cfg.OpenAI, raw.OpenAI)
	applyModel(&cfg.Claude, raw.Claude)
}

func applyModel(dst *domain.ModelDefinition, src *domain.ModelDefinition) {
	if src == nil {
		return
	}
	if src.Endpoint != "" {
		dst.Endpoint = src.Endpoint
	}
	if src.ModelID != "" {
		dst.ModelID = src.ModelID
	}
	if src.MaxTokens > 0 {
		dst.MaxTokens = src.MaxTokens
	}
}

func applyEnv(cfg *domain.Config) {
	if provider := os.Getenv(envProvider); provider != "" {
		cfg.Provider = domain.Provider(strings.ToLower(strings.TrimSpace(provider)))
	}
	if logPath := os.Getenv(envLogPath); logPath != "" {
		cfg.LogPath = expandPath(logPath)
	}
}

func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		return filepath.Join(userHomeDir(), strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}

func userHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
