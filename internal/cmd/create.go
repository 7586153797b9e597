package cmd

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/logicossoftware/go-pak"
	"github.com/spf13/cobra"
)

// NewCreateCmd creates the create subcommand, which builds an archive
// from one or more directory trees.
func NewCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create ARCHIVE DIR...",
		Short: "Build a PACK archive from directory trees",
		Long: `Build a PACK archive from the files under one or more directories.

Each file is stored under its path relative to the directory it was
found in, with forward slashes. The archive is written atomically: a
partial write never replaces an existing archive.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(args[0], args[1:])
		},
	}
}

func runCreate(out string, dirs []string) error {
	a := pak.NewArchive()
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			e, err := pak.NewEntry(filepath.ToSlash(rel), data)
			if err != nil {
				return err
			}
			a.Append(e)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return pak.WriteFile(out, a)
}
