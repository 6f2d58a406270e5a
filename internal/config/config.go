package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	API APIConfig `toml:"api"`
	UI  UIConfig  `toml:"ui"`
}

type APIConfig struct {
	BaseURL string `toml:"base_url"`
	// PageSize is the number of listings requested per category page.
	PageSize int `toml:"page_size"`
}

type UIConfig struct {
	Locale     string `toml:"locale"`
	Fullscreen bool   `toml:"fullscreen"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	// ScrollHint enables the "scroll for more" hint row under the category
	// strip on narrow windows.
	ScrollHint bool `toml:"scroll_hint"`
	// FontPath points at a TTF with Arabic coverage. Empty uses the bundled
	// Go font (Latin only).
	FontPath string `toml:"font_path"`
	// LocaleKey is the keyboard shortcut that cycles the display language.
	LocaleKey string `toml:"locale_key"`
}

func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:  "http://localhost:8080",
			PageSize: 48,
		},
		UI: UIConfig{
			Locale:     "en",
			Fullscreen: false,
			Width:      1280,
			Height:     720,
			ScrollHint: true,
			LocaleKey:  "l",
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "souqcouch"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
