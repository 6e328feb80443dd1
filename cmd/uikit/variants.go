package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-uikit/pkg/components"
	"github.com/goliatone/go-uikit/pkg/variants"
)

type variantsOptions struct {
	jsonOutput bool
	set        []string
	class      string
}

func newVariantsCmd(root *rootFlags) *cobra.Command {
	opts := &variantsOptions{}

	cmd := &cobra.Command{
		Use:   "variants [name]",
		Short: "List variant specs, or show and resolve one spec",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVariants(cmd, root, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "Resolve with axis=value (repeatable)")
	cmd.Flags().StringVar(&opts.class, "class", "", "Override classes appended when resolving")

	return cmd
}

func runVariants(cmd *cobra.Command, root *rootFlags, opts *variantsOptions, args []string) error {
	a, err := newApp(cmd, root)
	if err != nil {
		return err
	}
	specs := specIndex(a.catalog)

	if len(args) == 0 {
		return listSpecs(cmd, specs, opts.jsonOutput)
	}

	spec, ok := specs[strings.ToLower(strings.TrimSpace(args[0]))]
	if !ok {
		return newCommandError("variants", "looking up "+args[0], fmt.Errorf("unknown spec %q", args[0]), "Run 'uikit variants' to list the available specs.")
	}

	if len(opts.set) > 0 || opts.class != "" {
		choices, err := parseChoices(opts.set)
		if err != nil {
			return newCommandError("variants", "parsing --set", err, "Use --set axis=value.")
		}
		class, err := variants.NewResolver(variants.WithLogger(a.logger)).ResolveE(spec, choices, opts.class)
		if err != nil {
			return newCommandError("variants", "resolving "+spec.Name, err, "Run 'uikit variants "+spec.Name+"' to see the allowed values.")
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), class)
		return err
	}

	return showSpec(cmd, spec, opts.jsonOutput)
}

// specIndex merges the built-in specs with catalog overrides by name.
func specIndex(catalog *variants.Catalog) map[string]variants.Spec {
	index := make(map[string]variants.Spec)
	for _, spec := range components.BuiltinSpecs() {
		index[spec.Name] = spec
	}
	if catalog != nil {
		for _, name := range catalog.Names() {
			if spec, ok := catalog.Spec(name); ok {
				index[spec.Name] = spec
			}
		}
	}
	return index
}

func listSpecs(cmd *cobra.Command, specs map[string]variants.Spec, jsonOutput bool) error {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	if jsonOutput {
		ordered := make([]variants.Spec, 0, len(names))
		for _, name := range names {
			ordered = append(ordered, specs[name])
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(ordered)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tAXES")
	for _, name := range names {
		axes := specs[name].AxisNames()
		label := "-"
		if len(axes) > 0 {
			label = strings.Join(axes, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\n", name, label)
	}
	return w.Flush()
}

func showSpec(cmd *cobra.Command, spec variants.Spec, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(spec)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\nbase: %s\n\n", spec.Name, spec.Base)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "AXIS\tVALUE\tDEFAULT\tCLASS")
	for _, axis := range spec.AxisNames() {
		def := spec.Axes[axis].Default
		for _, value := range spec.Values(axis) {
			marker := ""
			if value == def {
				marker = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", axis, value, marker, spec.Axes[axis].Values[value])
		}
	}
	return w.Flush()
}

func parseChoices(pairs []string) (variants.Choices, error) {
	choices := make(variants.Choices, len(pairs))
	for _, pair := range pairs {
		axis, value, ok := strings.Cut(pair, "=")
		axis = strings.TrimSpace(axis)
		if !ok || axis == "" {
			return nil, fmt.Errorf("invalid choice %q", pair)
		}
		choices[axis] = strings.TrimSpace(value)
	}
	return choices, nil
}
