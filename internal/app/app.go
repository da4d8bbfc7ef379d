// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"motifscan/internal/cli"
	"motifscan/internal/cmdutil"
	"motifscan/internal/config"
	"motifscan/internal/scan"
	"motifscan/internal/writers"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitUsage       = 2
	ExitFailure     = 3
	ExitInterrupted = 130
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	cmd := cli.NewCommand("motifscan", config.New(), func(cmd *cobra.Command, o cli.Options) error {
		logger := cmdutil.NewLogger(stderr, o.Settings)
		st, err := scan.Run(cmd.Context(), scan.Config{
			Input:  o.Input,
			Output: o.Output,
			Stdout: stdout,
		}, logger)
		if err != nil {
			return err
		}
		if o.Settings.Summary {
			logger.Info("scan complete", "records", st.Records, "matches", st.Matches, "output", o.Output)
		}
		return nil
	})
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(parent)
	switch {
	case err == nil, writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case cli.IsUsage(err):
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		_, _ = fmt.Fprint(stderr, cmd.UsageString())
		return ExitUsage
	default:
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitFailure
	}
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
