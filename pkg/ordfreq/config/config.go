package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/ordfreq/pkg/ordfreq/internalerr"
)

// Config is the full ordfreq configuration.
type Config struct {
	Top       int       `yaml:"top" toml:"top"`
	Matching  Matching  `yaml:"matching" toml:"matching"`
	Blacklist Blacklist `yaml:"blacklist" toml:"blacklist"`
	Cache     Cache     `yaml:"cache" toml:"cache"`
	Filter    Filter    `yaml:"filter" toml:"filter"`
	Logging   Logging   `yaml:"logging" toml:"logging"`
	Output    Output    `yaml:"output" toml:"output"`
}

// Matching configures the similarity search shared by the filter and the
// aggregator.
type Matching struct {
	MaxMatches int     `yaml:"max_matches" toml:"max_matches"`
	Cutoff     float64 `yaml:"cutoff" toml:"cutoff"`
}

// Blacklist lists the stopword sources.
type Blacklist struct {
	Sources         []string `yaml:"sources" toml:"sources"`     // one term per line
	Stoplists       []string `yaml:"stoplists" toml:"stoplists"` // YAML files with a terms list
	KeepLineEndings bool     `yaml:"keep_line_endings" toml:"keep_line_endings"`
}

// Cache selects where blacklist snapshots are kept.
type Cache struct {
	Backend string `yaml:"backend" toml:"backend"` // file, sqlite, bbolt or none
	Path    string `yaml:"path" toml:"path"`
}

// Filter tunes the noise filter.
type Filter struct {
	MemoSize int `yaml:"memo_size" toml:"memo_size"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Output selects the report rendering.
type Output struct {
	Format string `yaml:"format" toml:"format"` // table, json or plain
}

// Cache backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendBbolt  = "bbolt"
	BackendNone   = "none"
)

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatPlain = "plain"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Top: 10,
		Matching: Matching{
			MaxMatches: 3,
			Cutoff:     0.6,
		},
		Blacklist: Blacklist{
			Sources: []string{"words/1-1000.txt", "blacklist.txt"},
		},
		Cache: Cache{
			Backend: BackendFile,
			Path:    "blacklist.snapshot",
		},
		Filter: Filter{
			MemoSize: 4096,
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
		Output: Output{
			Format: FormatTable,
		},
	}
}

// Load reads the configuration at path over Default. The format is chosen
// by extension: .toml is TOML, anything else YAML. Relative blacklist and
// cache paths are resolved against the config file's directory.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w: %w", path, internalerr.ErrInvalidConfig, err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("parse config %s: %w: %w", path, internalerr.ErrInvalidConfig, err)
		}
	}

	cfg.resolve(filepath.Dir(path))
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) resolve(base string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	for i, p := range c.Blacklist.Sources {
		c.Blacklist.Sources[i] = abs(p)
	}
	for i, p := range c.Blacklist.Stoplists {
		c.Blacklist.Stoplists[i] = abs(p)
	}
	c.Cache.Path = abs(c.Cache.Path)
}

func (c *Config) normalize() {
	c.Cache.Backend = strings.ToLower(strings.TrimSpace(c.Cache.Backend))
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Top < 0 {
		return invalid("top must be >= 0, got %d", c.Top)
	}
	if c.Matching.MaxMatches <= 0 {
		return invalid("matching.max_matches must be > 0, got %d", c.Matching.MaxMatches)
	}
	if c.Matching.Cutoff < 0 || c.Matching.Cutoff > 1 {
		return invalid("matching.cutoff must be in [0, 1], got %v", c.Matching.Cutoff)
	}
	if c.Filter.MemoSize < 0 {
		return invalid("filter.memo_size must be >= 0, got %d", c.Filter.MemoSize)
	}
	switch c.Cache.Backend {
	case BackendFile, BackendSQLite, BackendBbolt:
		if c.Cache.Path == "" {
			return invalid("cache.path is required for backend %q", c.Cache.Backend)
		}
	case BackendNone:
	default:
		return invalid("cache.backend: unsupported value %q", c.Cache.Backend)
	}
	switch c.Output.Format {
	case FormatTable, FormatJSON, FormatPlain:
	default:
		return invalid("output.format: unsupported value %q", c.Output.Format)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return invalid("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return invalid("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), internalerr.ErrInvalidConfig)
}
