// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/vmunix/streamgen/pkg/streamlink"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	TMDB     TMDBConfig     `toml:"tmdb"`
	Links    LinksConfig    `toml:"links"`
	Drafts   DraftsConfig   `toml:"drafts"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type TMDBConfig struct {
	APIKey            string        `toml:"api_key"`
	Language          string        `toml:"language"`
	BaseURL           string        `toml:"base_url,omitempty"`
	CacheTTL          time.Duration `toml:"cache_ttl"`
	RequestsPerSecond float64       `toml:"requests_per_second"`
	Burst             int           `toml:"burst"`
}

// LinksConfig holds the streaming link allow-list. These values change more
// often than anything else, so none of them are compiled in.
type LinksConfig struct {
	Domains        []string `toml:"domains"`
	Modes          []string `toml:"modes"`
	MinTokenLength int      `toml:"min_token_length"`
	DefaultURL     string   `toml:"default_url"`
	MovieOptions   int      `toml:"movie_options"`
}

type DraftsConfig struct {
	IdleTimeout time.Duration `toml:"idle_timeout"`
}

// Rules builds the link rule set from the [links] section.
func (l LinksConfig) Rules() (*streamlink.Rules, error) {
	return streamlink.NewRules(l.Domains, l.Modes, l.MinTokenLength)
}

// Load reads, parses and validates the configuration file.
// Returns *ConfigError if environment variables are missing or validation fails.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cfgErr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file and applies
// defaults, skipping validation. Used by commands that only need link rules.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.ApplyDefaults()
	return &cfg, missing, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.ApplyDefaults()
	return &cfg
}

// ApplyDefaults fills zero values.
func (c *Config) ApplyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8484
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Database.Path == "" {
		c.Database.Path = "./data/streamgen.db"
	}
	if c.TMDB.Language == "" {
		c.TMDB.Language = "es-MX"
	}
	if c.TMDB.CacheTTL == 0 {
		c.TMDB.CacheTTL = 24 * time.Hour
	}
	if c.TMDB.RequestsPerSecond == 0 {
		c.TMDB.RequestsPerSecond = 4
	}
	if c.TMDB.Burst == 0 {
		c.TMDB.Burst = 10
	}
	if len(c.Links.Domains) == 0 {
		c.Links.Domains = append([]string(nil), streamlink.DefaultDomains...)
	}
	if len(c.Links.Modes) == 0 {
		c.Links.Modes = append([]string(nil), streamlink.DefaultModes...)
	}
	if c.Links.MinTokenLength == 0 {
		c.Links.MinTokenLength = streamlink.DefaultMinTokenLen
	}
	if c.Links.MovieOptions == 0 {
		c.Links.MovieOptions = 3
	}
	if c.Drafts.IdleTimeout == 0 {
		c.Drafts.IdleTimeout = 2 * time.Hour
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::([-?])([^}]*))?\}`)

// substituteEnvVars replaces environment references and returns the names
// (or ":?" messages) of variables that could not be resolved. Unresolved
// references are left in place. TOML comments are copied unchanged.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		code, comment := splitComment(line)
		lines[i] = envVarPattern.ReplaceAllStringFunc(code, func(match string) string {
			m := envVarPattern.FindStringSubmatch(match)
			name, op, arg := m[1], m[2], m[3]
			value, set := os.LookupEnv(name)

			switch op {
			case "-":
				if value == "" {
					return arg
				}
				return value
			case "?":
				if value == "" {
					missing = append(missing, fmt.Sprintf("%s: %s", name, arg))
					return match
				}
				return value
			default:
				if !set {
					missing = append(missing, name)
					return match
				}
				return value
			}
		}) + comment
	}
	return strings.Join(lines, "\n"), missing
}

// splitComment splits a TOML line at the first '#' outside a string.
func splitComment(line string) (code, comment string) {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote == '"' && c == '\\':
			i++
		case quote != 0 && c == quote:
			quote = 0
		case quote == 0 && (c == '"' || c == '\''):
			quote = c
		case quote == 0 && c == '#':
			return line[:i], line[i:]
		}
	}
	return line, ""
}
