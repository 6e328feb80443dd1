package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-uikit/pkg/components"
	"github.com/goliatone/go-uikit/pkg/kit"
)

func newExportCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "export <dir>",
		Short: "Copy the embedded templates and stylesheet into a directory",
		Long: "Copy the embedded component partials, the page shell and the stylesheet into a directory, " +
			"as a starting point for theme overrides or for the native go-template engine.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			var written int
			sources := []struct {
				files  fs.FS
				prefix string
			}{
				{files: components.TemplatesFS()},
				{files: kit.PageTemplatesFS()},
				{files: components.AssetsFS(), prefix: "assets"},
			}
			for _, src := range sources {
				n, err := exportFS(src.files, filepath.Join(dir, src.prefix), force)
				if err != nil {
					return newCommandError("export", "writing "+dir, err, "Pass --force to overwrite existing files.")
				}
				written += n
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Exported %d files to %s\n", written, dir)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return cmd
}

func exportFS(files fs.FS, dir string, force bool) (int, error) {
	var written int
	err := fs.WalkDir(files, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		target := filepath.Join(dir, filepath.FromSlash(path))
		if entry.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !force {
			if _, err := os.Stat(target); err == nil {
				return fmt.Errorf("%s already exists", target)
			}
		}
		data, err := fs.ReadFile(files, path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return err
		}
		written++
		return nil
	})
	return written, err
}
