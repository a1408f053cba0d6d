package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultRoot           = "~/Documents/jd"
	DefaultIndexName      = ".jdex.json"
	DefaultFuzzyThreshold = 0.4
)

// Config holds the resolved settings. Root and IndexPath are always
// absolute after Load.
type Config struct {
	Root           string  `toml:"root"`
	IndexPath      string  `toml:"index"`
	FuzzyThreshold float64 `toml:"fuzzy_threshold"`
	JournalPath    string  `toml:"journal"`
	NoJournal      bool    `toml:"no_journal"`
}

// Overrides are command-line values; empty fields are ignored
type Overrides struct {
	Root      string
	IndexPath string
}

// Load resolves configuration from defaults, the TOML file at path (or
// DefaultPath when empty; a missing file is fine), the JDEX_* environment
// and finally the overrides.
func Load(path string, o Overrides) (*Config, error) {
	cfg := &Config{
		Root:           DefaultRoot,
		FuzzyThreshold: DefaultFuzzyThreshold,
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || explicit {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if o.Root != "" {
		cfg.Root = o.Root
	}
	if o.IndexPath != "" {
		cfg.IndexPath = o.IndexPath
	}

	return cfg.resolve()
}

func applyEnv(cfg *Config) error {
	if root := os.Getenv("JDEX_ROOT"); root != "" {
		cfg.Root = root
	}
	if index := os.Getenv("JDEX_INDEX"); index != "" {
		cfg.IndexPath = index
	}
	if journal := os.Getenv("JDEX_JOURNAL"); journal != "" {
		cfg.JournalPath = journal
	}
	if threshold := os.Getenv("JDEX_FUZZY_THRESHOLD"); threshold != "" {
		v, err := strconv.ParseFloat(threshold, 64)
		if err != nil {
			return fmt.Errorf("invalid JDEX_FUZZY_THRESHOLD %q: %w", threshold, err)
		}
		cfg.FuzzyThreshold = v
	}
	return nil
}

func (c *Config) resolve() (*Config, error) {
	root, err := ExpandPath(c.Root)
	if err != nil {
		return nil, err
	}
	c.Root = root

	if c.IndexPath == "" {
		c.IndexPath = filepath.Join(c.Root, DefaultIndexName)
	} else if c.IndexPath, err = ExpandPath(c.IndexPath); err != nil {
		return nil, err
	}

	if c.JournalPath != "" {
		if c.JournalPath, err = ExpandPath(c.JournalPath); err != nil {
			return nil, err
		}
	}

	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 1 {
		return nil, fmt.Errorf("fuzzy_threshold must be between 0 and 1, got %g", c.FuzzyThreshold)
	}
	return c, nil
}

// ExpandPath expands a leading ~ and makes path absolute
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return filepath.Abs(path)
}

// DefaultPath returns the config file location under the XDG config directory
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "jdex", "config.toml")
}
