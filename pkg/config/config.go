// Package config loads and saves the graphsketch TOML configuration.
//
// The file lives at $XDG_CONFIG_HOME/graphsketch/config.toml, falling back to
// ~/.config/graphsketch/config.toml. A missing file is not an error: the
// defaults apply.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	gserrors "github.com/matzehuels/graphsketch/pkg/errors"
	"github.com/matzehuels/graphsketch/pkg/graph"
)

// AppName names the config and cache directories.
const AppName = "graphsketch"

// Config holds graphsketch configuration.
type Config struct {
	Canvas CanvasConfig `toml:"canvas"`
	Editor EditorConfig `toml:"editor"`
	Server ServerConfig `toml:"server"`
	Export ExportConfig `toml:"export"`
	Cache  CacheConfig  `toml:"cache"`
}

// CanvasConfig sets the drawing area in pixels.
type CanvasConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// EditorConfig controls editor defaults.
type EditorConfig struct {
	EdgeStyle graph.EdgeStyle `toml:"edge_style"`
}

// ServerConfig controls `graphsketch serve`.
type ServerConfig struct {
	Addr       string   `toml:"addr"`
	SessionTTL Duration `toml:"session_ttl"`
}

// ExportConfig selects where exported snapshots go. Every non-empty sink is
// used.
type ExportConfig struct {
	File        string      `toml:"file"`
	HTTPURL     string      `toml:"http_url"`
	HTTPTimeout Duration    `toml:"http_timeout"`
	Redis       RedisConfig `toml:"redis"`
	Mongo       MongoConfig `toml:"mongo"`
}

// RedisConfig configures the Redis sink. An empty Addr disables it.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Channel  string `toml:"channel"`
	Key      string `toml:"key"` // also SET the latest snapshot when non-empty
}

// MongoConfig configures the MongoDB sink. An empty URI disables it.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// CacheConfig controls the render cache. Entries go to Redis when RedisAddr
// is set and to Dir (the user cache directory when empty) otherwise.
type CacheConfig struct {
	Enabled   bool     `toml:"enabled"`
	Dir       string   `toml:"dir"`
	TTL       Duration `toml:"ttl"`
	RedisAddr string   `toml:"redis_addr"`
}

// Duration is a time.Duration written as a Go duration string ("10s").
type Duration struct{ time.Duration }

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{Width: 1200, Height: 600},
		Editor: EditorConfig{EdgeStyle: graph.Undirected},
		Server: ServerConfig{Addr: ":8080", SessionTTL: Duration{time.Hour}},
		Export: ExportConfig{
			HTTPTimeout: Duration{10 * time.Second},
			Redis:       RedisConfig{Channel: "graphsketch:graphs"},
			Mongo:       MongoConfig{Database: AppName, Collection: "snapshots"},
		},
		Cache: CacheConfig{Enabled: true, TTL: Duration{24 * time.Hour}},
	}
}

// Dir returns the graphsketch config directory.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, AppName)
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config at path, or at [Path] when path is empty. Keys
// absent from the file keep their defaults; a missing file yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}
	cfg := Default()

	meta, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, or to [Path] when path is empty.
func Save(path string, cfg *Config) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// EnsureExists writes the defaults to path unless a file is already there.
// It reports whether a file was created.
func EnsureExists(path string) (bool, error) {
	if path == "" {
		path = Path()
	}
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := Save(path, Default()); err != nil {
		return false, err
	}
	return true, nil
}

// Validate checks value ranges that TOML decoding cannot.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return invalid("canvas: width and height must be positive")
	}
	if c.Server.SessionTTL.Duration <= 0 {
		return invalid("server: session_ttl must be positive")
	}
	if c.Cache.TTL.Duration < 0 {
		return invalid("cache: ttl must not be negative")
	}
	if c.Export.HTTPURL != "" {
		if err := gserrors.ValidateURL(c.Export.HTTPURL); err != nil {
			return invalid("export: http_url: %s", gserrors.UserMessage(err))
		}
	}
	if c.Export.Redis.Addr != "" && c.Export.Redis.Channel == "" && c.Export.Redis.Key == "" {
		return invalid("export.redis: channel or key is required")
	}
	if c.Export.Mongo.URI != "" && (c.Export.Mongo.Database == "" || c.Export.Mongo.Collection == "") {
		return invalid("export.mongo: database and collection are required")
	}
	return nil
}

func invalid(format string, args ...any) error {
	return gserrors.New(gserrors.ErrCodeInvalidConfig, format, args...)
}
