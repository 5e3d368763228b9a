package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. TODOCARDS_THEME.
const EnvPrefix = "TODOCARDS"

const (
	keyConfig   = "config"
	keyTheme    = "theme"
	keyDebugLog = "debug-log"
	keyFormat   = "format"
	keyPretty   = "pretty"
	keyAddr     = "webtui-addr"
)

const DefaultWebTUIAddr = "127.0.0.1:3335"

type Config struct {
	// Theme is light, dark or auto.
	Theme      string
	DebugLog   string
	Format     string
	Pretty     bool
	WebTUIAddr string

	// File is the config file that was read, if any.
	File string
}

// RegisterFlags adds the persistent flags Load understands.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(keyConfig, "", "Config file (default: $XDG_CONFIG_HOME/todocards/config.{yaml,toml})")
	fs.String(keyTheme, "auto", "TUI theme (light|dark|auto)")
	fs.String(keyDebugLog, "", "Write a JSON debug log to this file")
	fs.String(keyFormat, "json", "Output format (json|edn)")
	fs.Bool(keyPretty, false, "Pretty-print output")
}

// Load resolves configuration with precedence flag > env > file > default.
// A missing default config file is fine; an explicit --config that can't be
// read, or any malformed file, is an error.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyTheme, "auto")
	v.SetDefault(keyFormat, "json")
	v.SetDefault(keyPretty, false)
	v.SetDefault(keyAddr, DefaultWebTUIAddr)

	for _, k := range []string{keyTheme, keyDebugLog, keyFormat, keyPretty} {
		if f := fs.Lookup(k); f != nil {
			if err := v.BindPFlag(k, f); err != nil {
				return Config{}, err
			}
		}
	}

	explicit := ""
	if f := fs.Lookup(keyConfig); f != nil {
		explicit = strings.TrimSpace(f.Value.String())
	}
	if explicit == "" {
		explicit = strings.TrimSpace(os.Getenv(EnvPrefix + "_CONFIG"))
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", explicit, err)
		}
	} else if dir, ok := defaultDir(); ok {
		v.SetConfigName("config")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		Theme:      strings.ToLower(strings.TrimSpace(v.GetString(keyTheme))),
		DebugLog:   strings.TrimSpace(v.GetString(keyDebugLog)),
		Format:     strings.ToLower(strings.TrimSpace(v.GetString(keyFormat))),
		Pretty:     v.GetBool(keyPretty),
		WebTUIAddr: strings.TrimSpace(v.GetString(keyAddr)),
		File:       v.ConfigFileUsed(),
	}
	switch cfg.Theme {
	case "", "auto", "light", "dark":
	default:
		return Config{}, fmt.Errorf("invalid theme %q (want light|dark|auto)", cfg.Theme)
	}
	return cfg, nil
}

func defaultDir() (string, bool) {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return "", false
	}
	return filepath.Join(base, "todocards"), true
}
