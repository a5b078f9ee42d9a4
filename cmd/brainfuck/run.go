package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/remind-me-later/brainfuck/parser"
	"github.com/remind-me-later/brainfuck/vm"
)

func newRunCmd() *cobra.Command {
	var stats bool
	var dump bool

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Parse and execute a brainfuck source file",
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
				log.Debug("no-op run", "at", position(source, w.Begin), "source", w.SourceBytes)
			}

			out := bufio.NewWriter(os.Stdout)
			m := vm.New(res.Program)

			start := time.Now()
			runErr := m.Run(out, bufio.NewReader(os.Stdin))
			out.Flush()
			elapsed := time.Since(start)

			if dump {
				dumpTape(os.Stderr, m)
			}
			if stats {
				fmt.Fprintf(os.Stderr, "executed %d instructions in %v\n", m.Steps(), elapsed)
			}
			if runErr != nil {
				if debug {
					return fmt.Errorf("%+v", runErr)
				}
				return runErr
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stats, "stats", false, "print instruction count and elapsed time on exit")
	cmd.Flags().BoolVar(&dump, "dump", false, "dump tape contents to stderr on exit")
	return cmd
}

func reportParseError(source string, err error) error {
	if fe, ok := err.(*parser.FatalError); ok {
		return fmt.Errorf("%v at %s", fe, position(source, fe.Offset))
	}
	return err
}
