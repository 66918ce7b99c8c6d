package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DirName is the name of both the global (~/.tshegbar) and repo (.tshegbar) config directories.
const DirName = ".tshegbar"

// Normalization forms accepted by Normalize.
const (
	NormalizeNone = ""
	NormalizeNFC  = "nfc"
	NormalizeNFD  = "nfd"
)

// Config holds application configuration.
type Config struct {
	// MaxInputChars is the maximum character count accepted by a single operation.
	MaxInputChars int `json:"max_input_chars"`

	// Normalize applies a Unicode normalization form to text before checking.
	// Empty leaves text untouched.
	Normalize string `json:"normalize,omitempty"`

	// CompletionLimit caps the number of word completions returned.
	CompletionLimit int `json:"completion_limit,omitempty"`

	// Workers is the number of files checked concurrently.
	Workers int `json:"workers,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// All tools are enabled by default. Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxInputChars:   12000,
		CompletionLimit: 8,
		Workers:         4,
		LogLevel:        "info",
	}
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	switch c.Normalize {
	case NormalizeNone, NormalizeNFC, NormalizeNFD:
	default:
		return fmt.Errorf("normalize must be one of \"\", %q, %q; got %q", NormalizeNFC, NormalizeNFD, c.Normalize)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.MaxInputChars < 0 || c.CompletionLimit < 0 || c.Workers < 0 {
		return errors.New("limits must not be negative")
	}
	return nil
}

// Level parses LogLevel into a slog level.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.tshegbar.
func Load(baseDir string) (*Config, error) {
	return loadFile(filepath.Join(baseDir, "config.json"))
}

// LoadWithRepo loads configuration from both global (~/.tshegbar) and repo (.tshegbar) directories.
// Repo config is found by walking upward from startDir to find the nearest .tshegbar/config.json.
// Repo config takes precedence for scalar values; arrays are merged (deduplicated).
// Either or both configs may be missing.
func LoadWithRepo(globalDir, startDir string) (*Config, error) {
	global, err := loadFileRaw(filepath.Join(globalDir, "config.json"))
	if err != nil {
		return nil, err
	}

	repo, err := loadFileRaw(FindRepoConfig(startDir))
	if err != nil {
		return nil, err
	}

	cfg := Merge(Merge(DefaultConfig(), global), repo)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindRepoConfig walks upward from startDir to find the nearest .tshegbar/config.json.
// Returns the path if found, or empty string if not found.
func FindRepoConfig(startDir string) string {
	dir := startDir
	for {
		configPath := filepath.Join(dir, DirName, "config.json")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	if configPath == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	return cfg, nil
}

// loadFile loads configuration from a specific file path.
// Returns default config if the file doesn't exist.
func loadFile(configPath string) (*Config, error) {
	cfg, err := loadFileRaw(configPath)
	if err != nil {
		return nil, err
	}
	merged := Merge(DefaultConfig(), cfg)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	return &Config{
		MaxInputChars:   firstNonZero(overlay.MaxInputChars, base.MaxInputChars),
		Normalize:       firstNonEmpty(strings.ToLower(overlay.Normalize), base.Normalize),
		CompletionLimit: firstNonZero(overlay.CompletionLimit, base.CompletionLimit),
		Workers:         firstNonZero(overlay.Workers, base.Workers),
		LogLevel:        firstNonEmpty(overlay.LogLevel, base.LogLevel),
		DisabledTools:   mergeStringSlice(base.DisabledTools, overlay.DisabledTools),
	}
}

func firstNonZero(a, b int) int {
	if a != 0 {
		return a
	}
	return b
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range append(append([]string{}, a...), b...) {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
