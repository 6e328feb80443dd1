package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-uikit/internal/logging"
	"github.com/goliatone/go-uikit/pkg/kit"
	"github.com/goliatone/go-uikit/pkg/render/template/gotemplate"
	"github.com/goliatone/go-uikit/pkg/variants"
)

type app struct {
	cfg     Config
	logger  zerolog.Logger
	catalog *variants.Catalog
	kit     *kit.Kit
}

func newApp(cmd *cobra.Command, flags *rootFlags) (*app, error) {
	cfg, err := loadConfig(cmd, flags.configPath)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading configuration", err, "Check the --config path and the YAML syntax.")
	}

	logger, err := logging.New(logging.Options{
		Level:         cfg.LogLevel,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     "uikit",
	})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "configuring logging", err, "Use one of debug, info, warn or error.")
	}

	a := &app{cfg: cfg, logger: logger}
	options := []kit.Option{
		kit.WithLogger(logger),
		kit.WithStrict(cfg.Strict),
		kit.WithStylesheetHref(cfg.Stylesheet),
		kit.WithThemeDefaults(cfg.Theme, cfg.Variant),
	}

	if cfg.Catalog != "" {
		catalog, err := variants.LoadFS(os.DirFS(cfg.Catalog))
		if err != nil {
			return nil, newCommandError(cmd.Name(), "loading variant catalog", err, "Each catalog file must hold a list of specs with unique names.")
		}
		a.catalog = catalog
		options = append(options, kit.WithCatalog(catalog))
	}

	if cfg.Themes != "" {
		selector, err := loadThemes(cfg.Themes)
		if err != nil {
			return nil, newCommandError(cmd.Name(), "loading themes", err, "Check the themes file referenced by the config.")
		}
		options = append(options, kit.WithThemeSelector(selector))
	}

	if cfg.Templates != "" {
		if cfg.Native {
			engine, err := gotemplate.NewNative(cfg.Templates)
			if err != nil {
				return nil, newCommandError(cmd.Name(), "creating template engine", err, "Run 'uikit export' into the directory first so every partial exists.")
			}
			options = append(options, kit.WithTemplates(engine))
		} else {
			options = append(options, kit.WithTemplateFS(os.DirFS(cfg.Templates)))
		}
	}

	a.kit = kit.New(options...)
	logger.Debug().
		Bool("strict", cfg.Strict).
		Str("theme", cfg.Theme).
		Str("templates", cfg.Templates).
		Msg("kit configured")
	return a, nil
}
