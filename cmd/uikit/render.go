package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-uikit/pkg/kit"
)

type renderOptions struct {
	output  string
	values  string
	theme   string
	variant string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <page.yaml>",
		Short: "Render a YAML page of components and fields to HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write HTML to a file instead of stdout")
	cmd.Flags().StringVar(&opts.values, "values", "", "YAML file with form values that override the page values")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme name (overrides the page and config)")
	cmd.Flags().StringVar(&opts.variant, "variant", "", "Theme variant (overrides the page and config)")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, opts *renderOptions, path string) error {
	a, err := newApp(cmd, root)
	if err != nil {
		return err
	}

	page, err := readPage(path)
	if err != nil {
		return newCommandError("render", "loading page "+path, err, "Pages need a body list of components or a form with fields.")
	}
	if opts.values != "" {
		if err := mergeValues(&page, opts.values); err != nil {
			return newCommandError("render", "loading values "+opts.values, err, "The values file must be a YAML mapping of field names.")
		}
	}
	applyThemeFlags(&page, opts.theme, opts.variant)

	var out bytes.Buffer
	if err := a.kit.RenderPage(&out, page, nil); err != nil {
		return newCommandError("render", "rendering page "+path, err, "Run with --log-level debug for details.")
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(out.Bytes())
		return err
	}
	if err := os.WriteFile(opts.output, out.Bytes(), 0o644); err != nil {
		return newCommandError("render", "writing "+opts.output, err, "Check that the directory exists and is writable.")
	}
	a.logger.Info().Str("output", opts.output).Int("bytes", out.Len()).Msg("page written")
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Page written to %s\n", opts.output)
	return err
}

func readPage(path string) (kit.Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return kit.Page{}, err
	}
	return kit.ParsePage(data)
}

func mergeValues(page *kit.Page, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return err
	}
	if page.Form == nil {
		return nil
	}
	if page.Form.Values == nil {
		page.Form.Values = make(map[string]any, len(values))
	}
	for key, value := range values {
		page.Form.Values[key] = value
	}
	return nil
}

func applyThemeFlags(page *kit.Page, theme, variant string) {
	if theme != "" {
		page.Theme = theme
	}
	if variant != "" {
		page.Variant = variant
	}
}
