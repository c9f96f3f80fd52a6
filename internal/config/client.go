package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	AppDir         = "hrdesk"
	ClientFile     = "hrctl.toml"
	DefaultAPIURL  = "http://localhost:5000"
	APIURLEnv      = "HRDESK_API_URL"
	defaultTimeout = 10 * time.Second
)

// ClientConfig configures the hrctl command line client.
type ClientConfig struct {
	APIURL     string        `toml:"api_url"`
	Timeout    time.Duration `toml:"-"`
	StrTimeout string        `toml:"timeout"`
	LogFile    string        `toml:"log_file"`
	Dir        string        `toml:"-"`
}

// Dir returns <user config dir>/hrdesk.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}

	return filepath.Join(base, AppDir), nil
}

// LoadClient reads hrctl.toml from dir. A missing file yields defaults.
// HRDESK_API_URL overrides the file.
func LoadClient(dir string) (*ClientConfig, error) {
	cfg := &ClientConfig{Dir: dir}

	path := filepath.Join(dir, ClientFile)
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if env := os.Getenv(APIURLEnv); env != "" {
		cfg.APIURL = env
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}

	var err error
	if cfg.Timeout, err = parseDuration(cfg.StrTimeout, defaultTimeout); err != nil {
		return nil, fmt.Errorf("invalid timeout: %w", err)
	}

	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(dir, "hrctl.log")
	}

	return cfg, nil
}
