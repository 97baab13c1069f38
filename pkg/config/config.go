//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Package config provides configuration types and defaults for gomacs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration options for gomacs.
type Config struct {
	LogFile         string   `mapstructure:"log_file"`
	Debug           bool     `mapstructure:"debug"`
	InitFile        string   `mapstructure:"init_file"`   // lisp evaluated at startup
	KeymapFile      string   `mapstructure:"keymap_file"` // YAML or TOML key bindings
	TabWidth        int      `mapstructure:"tab_width"`
	WordDelimiters  []string `mapstructure:"word_delimiters"` // regexp character class items
	MarkovSentences int      `mapstructure:"markov_sentences"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	home, _ := os.UserHomeDir()
	return Config{
		LogFile:         filepath.Join(home, ".gomacslog"),
		TabWidth:        8,
		MarkovSentences: 1,
	}
}

// DefaultPath returns the config file read when none is named.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "gomacs", "config.yaml")
}

// Load reads the configuration into v from cfgFile, or from DefaultPath
// if cfgFile is empty, with GOMACS_ environment variables taking
// precedence. A missing default file is not an error.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	defaults := Defaults()
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("init_file", defaults.InitFile)
	v.SetDefault("keymap_file", defaults.KeymapFile)
	v.SetDefault("tab_width", defaults.TabWidth)
	v.SetDefault("word_delimiters", defaults.WordDelimiters)
	v.SetDefault("markov_sentences", defaults.MarkovSentences)

	v.SetEnvPrefix("GOMACS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = defaults.TabWidth
	}
	return cfg, nil
}
