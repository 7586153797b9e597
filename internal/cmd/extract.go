package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/logicossoftware/go-pak"
	"github.com/spf13/cobra"
)

// NewExtractCmd creates the extract subcommand, which writes entries
// out to a directory.
func NewExtractCmd() *cobra.Command {
	var (
		outDir    string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "extract ARCHIVE [NAME...]",
		Short: "Extract entries from a PACK archive",
		Long: `Extract entries from a PACK archive into a directory.

With no NAME arguments every entry is extracted. Entry names become
paths relative to the output directory; names that would escape it are
rejected.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settingsFromCmd(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("out") {
				outDir = cfg.OutputDir
			}
			if !cmd.Flags().Changed("overwrite") {
				overwrite = cfg.Overwrite
			}
			return runExtract(args[0], args[1:], outDir, overwrite)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace existing files")

	return cmd
}

func runExtract(path string, names []string, outDir string, overwrite bool) error {
	a, err := pak.ReadFile(path)
	if err != nil {
		return err
	}

	var entries []*pak.Entry
	if len(names) == 0 {
		for e := range a.Entries() {
			entries = append(entries, e)
		}
	} else {
		for _, name := range names {
			e, ok := a.FindByName(name)
			if !ok {
				return fmt.Errorf("no entry named %q", name)
			}
			entries = append(entries, e)
		}
	}

	for _, e := range entries {
		rel := filepath.FromSlash(e.Name())
		if !filepath.IsLocal(rel) {
			return fmt.Errorf("entry name %q escapes the output directory", e.Name())
		}
		dest := filepath.Join(outDir, rel)
		if !overwrite {
			if _, err := os.Stat(dest); err == nil {
				return fmt.Errorf("%s already exists (use --overwrite)", dest)
			}
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(dest, e.Data(), 0o644); err != nil {
			return err
		}
	}
	return nil
}
