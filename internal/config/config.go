// AnimeCRC - CRC32 generator and checker
// Copyright (C) 2026 AnimeCRC contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config loads the optional YAML configuration file holding the
// defaults that command-line flags override.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// ReadFrom and WriteTo are the default store lists for reading and
	// writing CRC tags, in chain order.
	ReadFrom []string `yaml:"read_from,omitempty"`
	WriteTo  []string `yaml:"write_to,omitempty"`

	// WarnNoCRC logs untagged files at warning level during checks.
	WarnNoCRC bool `yaml:"warn_no_crc"`

	// Progress selects progress reporting: auto (only on a terminal),
	// always, or never.
	Progress string `yaml:"progress,omitempty"`

	// QuietXattr suppresses the startup warning on platforms without
	// extended attribute support.
	QuietXattr bool `yaml:"quiet_xattr"`

	// IgnoreDirs and IgnoreFiles extend the built-in noise patterns
	// skipped during recursive traversal. Values are regular
	// expressions matched against base names.
	IgnoreDirs  []string `yaml:"ignore_dirs,omitempty"`
	IgnoreFiles []string `yaml:"ignore_files,omitempty"`
}

// Default returns the built-in configuration. The default read chain
// includes the xattr store only when the platform can support it.
func Default(xattrSupported bool) *Config {
	cfg := &Config{
		ReadFrom: []string{"filename"},
		WriteTo:  []string{"filename"},
		Progress: "auto",
	}
	if xattrSupported {
		cfg.ReadFrom = append(cfg.ReadFrom, "xattr")
	}
	return cfg
}

// Load reads the configuration file at path, or the default location when
// path is empty. A missing file at the default location yields defaults.
func Load(path string, xattrSupported bool) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = File()
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return Default(xattrSupported), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default(xattrSupported)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Progress {
	case "", "auto", "always", "never":
		return nil
	}
	return fmt.Errorf("progress must be auto, always or never, not %q", c.Progress)
}
