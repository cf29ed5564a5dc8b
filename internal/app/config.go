package app

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	subscribesvc "lemmyopml/internal/services/subscribe"
)

// defaultTimeout bounds each HTTP request when nothing overrides it.
const defaultTimeout = 30 * time.Second

// Config holds runtime wiring options for one invocation. The session
// token is deliberately absent: it is obtained after wiring and handed to
// each call, never stored.
type Config struct {
	Instance string
	Username string

	Password string // from --password; empty falls through to PassFile, then prompt
	PassFile string

	Timeout        time.Duration
	SubscribeDelay time.Duration
	SortBy         string

	Debug   bool
	LogFile string

	HTTP *http.Client // optional; defaults to a client with Timeout
}

// FileConfig is the optional defaults file at ~/.lemmyopml/config.toml.
// Flags always win over it; it wins over built-ins.
type FileConfig struct {
	TimeoutSeconds   int    `toml:"timeout_seconds"`
	SubscribeDelayMS int    `toml:"subscribe_delay_ms"`
	SortBy           string `toml:"sort_by"`
}

// DefaultConfigPath returns ~/.lemmyopml/config.toml.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".lemmyopml", "config.toml"), nil
}

// LoadFileConfig reads path if it exists; a missing file yields zero
// defaults, not an error.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fc, nil
	}
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fc, fmt.Errorf("config file %s: %w", path, err)
	}
	return fc, nil
}

// ApplyDefaults fills unset Config fields from the defaults file, then
// from built-ins.
func (c *Config) ApplyDefaults(fc FileConfig) {
	if c.Timeout == 0 && fc.TimeoutSeconds > 0 {
		c.Timeout = time.Duration(fc.TimeoutSeconds) * time.Second
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	if c.SubscribeDelay == 0 && fc.SubscribeDelayMS > 0 {
		c.SubscribeDelay = time.Duration(fc.SubscribeDelayMS) * time.Millisecond
	}
	if c.SubscribeDelay == 0 {
		c.SubscribeDelay = subscribesvc.DefaultDelay
	}
	if c.SortBy == "" {
		c.SortBy = fc.SortBy
	}
}
