package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInspectCmd())
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "List every command registered in this root's own registry",
		Long: `inspect boots an editor root with the built-in reference modules loaded
and prints every entry registered directly in its per-root registry.
Entries of chained registries (the process-wide global registry) are not
listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect()
		},
	}
}

func runInspect() error {
	r := newBuiltinRoot()
	if err := r.LoadModule("doc-line"); err != nil {
		return fmt.Errorf("loading doc-line: %w", err)
	}

	entries := r.Registry().Entries()

	if jsonOut {
		type row struct {
			Kind string `json:"kind"`
			Key  string `json:"key"`
			Lo   string `json:"lo,omitempty"`
			Hi   string `json:"hi,omitempty"`
		}
		rows := make([]row, len(entries))
		for i, e := range entries {
			rows[i] = row{Kind: e.Kind.String(), Key: e.Key, Lo: e.Lo, Hi: e.Hi}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	t := table.NewWriter()
	t.SetTitle("Registered commands")
	t.AppendHeader(table.Row{"Kind", "Key", "Lo", "Hi"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.Kind.String(), e.Key, e.Lo, e.Hi})
	}
	fmt.Println(t.Render())
	return nil
}
