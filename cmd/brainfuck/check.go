package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/remind-me-later/brainfuck/parser"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Parse a brainfuck source file and report warnings without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			source := string(src)

			res, err := parser.Parse(source)
			if err != nil {
				return reportParseError(source, err)
			}

			for _, w := range res.Warnings {
				fmt.Fprintf(os.Stdout, "%s: %v\n", position(source, w.Begin), w)
			}
			fmt.Fprintf(os.Stdout, "ok: %d instructions, %d warnings\n", len(res.Program), len(res.Warnings))
			return nil
		},
	}
	return cmd
}
