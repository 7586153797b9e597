package cmd

import (
	"fmt"

	"github.com/logicossoftware/go-pak"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list subcommand, which prints archive entries
// in directory order.
func NewListCmd() *cobra.Command {
	var (
		ext  string
		long bool
	)

	cmd := &cobra.Command{
		Use:   "list ARCHIVE",
		Short: "List the entries of a PACK archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settingsFromCmd(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("long") {
				long = cfg.Long
			}
			return runList(args[0], ext, long)
		},
	}

	cmd.Flags().StringVarP(&ext, "ext", "e", "", `only list entries with this extension (e.g. ".bsp")`)
	cmd.Flags().BoolVarP(&long, "long", "l", false, "include entry sizes")

	return cmd
}

func runList(path, ext string, long bool) error {
	a, err := pak.ReadFile(path)
	if err != nil {
		return err
	}

	seq := a.Entries()
	if ext != "" {
		seq = a.EntriesByExtension(ext)
	}
	for e := range seq {
		if long {
			fmt.Printf("%10d  %s\n", e.Size(), e.Name())
		} else {
			fmt.Println(e.Name())
		}
	}
	return nil
}
