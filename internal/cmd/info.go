package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/logicossoftware/go-pak"
	"github.com/spf13/cobra"
)

// NewInfoCmd creates the info subcommand, which prints archive
// statistics.
func NewInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info ARCHIVE",
		Short: "Print statistics about a PACK archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

func runInfo(path string) error {
	a, err := pak.ReadFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("entries:    %d\n", a.Len())
	fmt.Printf("total size: %d bytes\n", a.TotalSize())

	byExt := make(map[string]int)
	for e := range a.Entries() {
		ext := ""
		if i := strings.LastIndexByte(e.Name(), '.'); i >= 0 {
			ext = strings.ToLower(e.Name()[i+1:])
		}
		byExt[ext]++
	}
	exts := make([]string, 0, len(byExt))
	for ext := range byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	for _, ext := range exts {
		label := ext
		if label == "" {
			label = "(none)"
		}
		fmt.Printf("  %-8s %d\n", label, byExt[ext])
	}
	return nil
}
