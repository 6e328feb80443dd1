package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-uikit/pkg/kit"
)

// Config is the CLI configuration, read from uikit.yaml, UIKIT_* env vars
// and flags, in increasing precedence.
type Config struct {
	LogLevel   string `mapstructure:"log_level"`
	Strict     bool   `mapstructure:"strict"`
	Stylesheet string `mapstructure:"stylesheet"`
	Templates  string `mapstructure:"templates"`
	Native     bool   `mapstructure:"native"`
	Catalog    string `mapstructure:"catalog"`
	Themes     string `mapstructure:"themes"`
	Theme      string `mapstructure:"theme"`
	Variant    string `mapstructure:"variant"`
}

var configDefaults = map[string]any{
	"log_level":  "warn",
	"strict":     false,
	"stylesheet": kit.DefaultStylesheetHref,
}

// flag name -> config key
var configFlags = map[string]string{
	"log-level": "log_level",
	"strict":    "strict",
	"theme":     "theme",
	"variant":   "variant",
}

func loadConfig(cmd *cobra.Command, path string) (Config, error) {
	var cfg Config
	v := viper.New()

	for key, value := range configDefaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("uikit")
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "uikit"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return cfg, err
		}
	}

	v.SetEnvPrefix("uikit")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for name, key := range configFlags {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
