package core

import (
	"os"
	"path/filepath"

	"github.com/inovacc/sshcm/internal/application"
	"github.com/inovacc/sshcm/internal/params"
	"gopkg.in/ini.v1"
)

// Config carries the optional tool-level overrides read from
// sshcm.ini. All fields are empty when the file is absent.
type Config struct {
	StorePath string `ini:"store"`
	Binary    string `ini:"binary"`
}

// LoadConfig reads sshcm.ini from the user config directory. A missing
// file is not an error; a malformed one is.
func LoadConfig() (Config, error) {
	var cfg Config

	dir, err := os.UserConfigDir()
	if err != nil {
		return cfg, nil
	}

	path := filepath.Join(dir, application.AppName, "sshcm.ini")

	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return cfg, err
	}

	if err := file.Section("").MapTo(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ResolveStorePath resolves the store location: the ini override when
// set, otherwise the first existing canonical candidate.
func (c Config) ResolveStorePath() string {
	if c.StorePath != "" {
		return c.StorePath
	}

	return params.ResolveStorePath()
}
