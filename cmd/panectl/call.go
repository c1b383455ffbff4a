package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/panekit/command"
)

var (
	callStr  string
	callNum  int
	callNum2 int
)

func init() {
	cmd := &cobra.Command{
		Use:   "call <key>",
		Short: "Dispatch one command against a freshly booted root and print the status",
		Long: `call boots an editor root with the built-in modules loaded, then invokes
the named command directly on the root pane (Home and Focus both set to the
root) with the given arguments, and reports the resulting status code.

This exercises the same call(ctx) path key_handle and pane_refresh use, a
convenience for scripting and debugging a module without a full TUI.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(args[0])
		},
	}
	cmd.Flags().StringVar(&callStr, "str", "", "ctx.Str argument")
	cmd.Flags().IntVar(&callNum, "num", 0, "ctx.Num argument")
	cmd.Flags().IntVar(&callNum2, "num2", 0, "ctx.Num2 argument")
	rootCmd.AddCommand(cmd)
}

func runCall(key string) error {
	r := newBuiltinRoot()
	if err := r.LoadModule("doc-line"); err != nil {
		return fmt.Errorf("loading doc-line: %w", err)
	}

	ctx := &command.Context{
		Key:   key,
		Home:  r.Pane(),
		Focus: r.Pane(),
		Str:   callStr,
		Num:   callNum,
		Num2:  callNum2,
	}
	status := r.Pane().Call(ctx)
	fmt.Printf("status: %s\n", status)
	if ctx.Str2 != "" {
		fmt.Printf("str2: %s\n", ctx.Str2)
	}
	if status.IsError() {
		return fmt.Errorf("call failed: %s", status)
	}
	return nil
}
