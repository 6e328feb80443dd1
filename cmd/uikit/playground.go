package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-uikit/internal/prompt"
	"github.com/goliatone/go-uikit/pkg/form"
)

// newDriver is swapped in tests for a scripted driver.
var newDriver = func(out io.Writer) prompt.Driver {
	return prompt.NewSurveyDriver(out)
}

type playgroundOptions struct {
	html     string
	attempts int
	theme    string
	variant  string
}

func newPlaygroundCmd(root *rootFlags) *cobra.Command {
	opts := &playgroundOptions{}

	cmd := &cobra.Command{
		Use:   "playground <page.yaml>",
		Short: "Fill a page form in the terminal and validate it like the browser would",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlayground(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.html, "html", "", "Also render the filled page to this HTML file")
	cmd.Flags().IntVar(&opts.attempts, "attempts", prompt.DefaultAttempts, "Tries per field before giving up")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme name for --html")
	cmd.Flags().StringVar(&opts.variant, "variant", "", "Theme variant for --html")

	return cmd
}

func runPlayground(cmd *cobra.Command, root *rootFlags, opts *playgroundOptions, path string) error {
	a, err := newApp(cmd, root)
	if err != nil {
		return err
	}
	page, err := readPage(path)
	if err != nil {
		return newCommandError("playground", "loading page "+path, err, "Pages need a body list of components or a form with fields.")
	}
	if page.Form == nil || len(page.Form.Fields) == 0 {
		return newCommandError("playground", "loading page "+path, errors.New("page has no form fields"), "Add a form section with fields to the page.")
	}
	applyThemeFlags(&page, opts.theme, opts.variant)

	view, err := a.kit.View(page.Theme, page.Variant)
	if err != nil {
		return newCommandError("playground", "selecting theme", err, "Check the themes file and the theme name.")
	}
	store, err := view.NewPageForm(page)
	if err != nil {
		return newCommandError("playground", "preparing form", err, "Check the field rules in the page.")
	}

	out := cmd.OutOrStdout()
	filler := prompt.NewFiller(newDriver(out), view.Fields(store),
		prompt.WithAttempts(opts.attempts),
		prompt.WithLogger(a.logger),
	)
	if err := filler.Fill(cmd.Context(), page.Form.Fields); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			return err
		}
		return newCommandError("playground", "filling the form", err, "Answer each field so its rules pass.")
	}

	submitErr := store.Submit(func(values map[string]any) error {
		fmt.Fprintln(out, "Submitted values:")
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(values); err != nil {
			return err
		}
		return enc.Close()
	})
	if errors.Is(submitErr, form.ErrInvalid) {
		writeFieldErrors(out, store)
	}

	if opts.html != "" {
		file, err := os.Create(opts.html)
		if err != nil {
			return newCommandError("playground", "creating "+opts.html, err, "Check that the directory exists and is writable.")
		}
		defer file.Close()
		if err := view.RenderPage(file, page, store); err != nil {
			return newCommandError("playground", "rendering page", err, "Run with --log-level debug for details.")
		}
		fmt.Fprintf(out, "Page written to %s\n", opts.html)
	}
	return submitErr
}

func writeFieldErrors(out io.Writer, store *form.Store) {
	errs := store.Errors()
	names := make([]string, 0, len(errs))
	for name := range errs {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(out, "Validation failed:")
	for _, name := range names {
		fmt.Fprintf(out, "  %s: %s\n", name, errs[name].Message)
	}
}
