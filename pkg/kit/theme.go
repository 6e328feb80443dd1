package kit

import (
	"fmt"
	"maps"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-uikit/pkg/components"
)

// StylesheetAsset is the asset key a theme uses to ship its stylesheet.
const StylesheetAsset = "uikit.stylesheet"

// DefaultThemeFallbacks returns the partials used when a theme does not
// override them: the embedded component templates.
func DefaultThemeFallbacks() map[string]string {
	return map[string]string{
		components.PartialCard:  components.CardTemplate,
		components.PartialAlert: components.AlertTemplate,
	}
}

// SelectTheme resolves a theme through the configured selector. Empty name
// and variant fall back to the kit defaults. Without a selector it returns
// nil and no error; components then render with their built-in classes and
// embedded templates.
func (k *Kit) SelectTheme(name, variant string) (*theme.RendererConfig, error) {
	if k.selector == nil {
		return nil, nil
	}
	if strings.TrimSpace(name) == "" {
		name = k.defaultTheme
	}
	if strings.TrimSpace(variant) == "" {
		variant = k.defaultVariant
	}
	selection, err := k.selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("kit: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil, fmt.Errorf("kit: select theme %q: empty selection", name)
	}
	cfg := RendererConfig(selection, k.fallbacks)
	k.logger.Debug().
		Str("theme", cfg.Theme).
		Str("variant", cfg.Variant).
		Int("partials", len(cfg.Partials)).
		Msg("theme selected")
	return cfg, nil
}

// RendererConfig flattens a selection into renderer configuration. Partials
// layer fallbacks, then manifest templates, then variant templates. Variant
// tokens override manifest tokens and every token is exposed as a CSS custom
// property ("--" + key). Asset keys resolve against the variant files first.
func RendererConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil {
		return nil
	}
	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: maps.Clone(fallbacks),
	}
	if cfg.Partials == nil {
		cfg.Partials = make(map[string]string)
	}

	manifest := selection.Manifest
	if manifest == nil {
		cfg.Tokens = map[string]string{}
		cfg.CSSVars = map[string]string{}
		cfg.AssetURL = func(string) string { return "" }
		return cfg
	}
	if cfg.Theme == "" {
		cfg.Theme = manifest.Name
	}

	var variant theme.Variant
	if manifest.Variants != nil {
		variant = manifest.Variants[selection.Variant]
	}

	maps.Copy(cfg.Partials, manifest.Templates)
	maps.Copy(cfg.Partials, variant.Templates)

	cfg.Tokens = make(map[string]string, len(manifest.Tokens)+len(variant.Tokens))
	maps.Copy(cfg.Tokens, manifest.Tokens)
	maps.Copy(cfg.Tokens, variant.Tokens)

	cfg.CSSVars = make(map[string]string, len(cfg.Tokens))
	for key, value := range cfg.Tokens {
		cfg.CSSVars[cssVarName(key)] = value
	}

	cfg.AssetURL = assetResolver(manifest.Assets, variant.Assets)
	return cfg
}

func assetResolver(base, variant theme.Assets) func(string) string {
	files := make(map[string]string, len(base.Files)+len(variant.Files))
	maps.Copy(files, base.Files)
	maps.Copy(files, variant.Files)

	prefix := base.Prefix
	if strings.TrimSpace(variant.Prefix) != "" {
		prefix = variant.Prefix
	}
	prefix = strings.TrimRight(prefix, "/")

	return func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if prefix == "" || isAbsoluteURL(file) {
			return file
		}
		return prefix + "/" + strings.TrimLeft(file, "/")
	}
}

func isAbsoluteURL(path string) bool {
	return strings.HasPrefix(path, "/") ||
		strings.HasPrefix(path, "http://") ||
		strings.HasPrefix(path, "https://") ||
		strings.HasPrefix(path, "//")
}

func cssVarName(key string) string {
	key = strings.TrimSpace(key)
	if strings.HasPrefix(key, "--") {
		return key
	}
	return "--" + key
}

// CSSVarsStyle renders vars as a sorted :root block for a <style> element.
func CSSVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
