// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"motifscan/internal/config"
	"motifscan/internal/version"
)

// Options holds the positional arguments and resolved settings of a run.
type Options struct {
	Input      string
	Output     string
	ConfigFile string

	Settings config.Settings
}

// UsageError marks bad invocations (argument count, flags, settings).
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// IsUsage reports whether err came from argument or flag handling.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

const long = `Flag each FASTA record that contains the GGA spacer motif

  GGA[ACGT]{4,70}GGA[ACGT]{2,12}

and write "<description>\t<Y|N>" per record to <output>, in input order.
<input> may be "-" for stdin and may be gzip-compressed; <output> "-" is stdout.`

// NewCommand returns the root command. run is called once the two
// positionals are present and settings have been resolved from v.
func NewCommand(name string, v *viper.Viper, run func(*cobra.Command, Options) error) *cobra.Command {
	var opt Options

	cmd := &cobra.Command{
		Use:     name + " <input_fasta> <output>",
		Short:   "Label FASTA records by presence of the GGA spacer motif",
		Long:    long,
		Version: version.Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return &UsageError{fmt.Errorf("expected 2 arguments <input_fasta> <output>, got %d", len(args))}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opt.Input, opt.Output = args[0], args[1]
			s, err := config.Load(v, opt.ConfigFile)
			if err != nil {
				return &UsageError{err}
			}
			opt.Settings = s
			return run(cmd, opt)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{err}
	})

	f := cmd.Flags()
	f.StringVar(&opt.ConfigFile, "config", "", "settings file (yaml, toml or json)")
	f.String(config.KeyLogLevel, "warn", "log level: debug | info | warn | error")
	f.BoolP(config.KeyQuiet, "q", false, "only report errors")
	f.Bool(config.KeySummary, false, "log record and match counts when done")

	for _, k := range []string{config.KeyLogLevel, config.KeyQuiet, config.KeySummary} {
		_ = v.BindPFlag(k, f.Lookup(k))
	}
	return cmd
}
