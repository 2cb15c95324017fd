package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"dlist/internal/linkedlist"
	"dlist/internal/logger"
	"dlist/internal/script"
)

type flags struct {
	file     string
	logLevel string
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	f := new(flags)
	cmd := &cobra.Command{
		Use:   "dlist [-f script] [seed values...]",
		Short: "Run a list operation script against a doubly linked list.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f, args, stdin, stdout, stderr)
		},
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	fs.StringVarP(&f.file, "file", "f", "-", "script file, - for stdin")
	fs.StringVar(&f.logLevel, "log-level", "info", "log level")
	return cmd
}

func run(f *flags, seed []string, stdin io.Reader, stdout, stderr io.Writer) error {
	log := logger.New(stderr, f.logLevel)

	in := stdin
	if f.file != "-" {
		file, err := os.Open(f.file)
		if err != nil {
			return fmt.Errorf("failed to open script, %w", err)
		}
		defer file.Close()
		in = file
	}

	cmds, err := script.Parse(in)
	if err != nil {
		return fmt.Errorf("failed to parse script, %w", err)
	}

	list := linkedlist.New(seed...)
	log.Debug().Int("seed", len(seed)).Int("commands", len(cmds)).Msg("running script")

	if err := script.Run(list, cmds, stdout); err != nil {
		log.Error().Err(err).Int("size", list.Size()).Msg("script failed")
		return err
	}

	log.Debug().Int("commands", len(cmds)).Int("size", list.Size()).Msg("script finished")
	return nil
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
