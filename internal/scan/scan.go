// Package scan runs the motif over every record of a FASTA file and writes
// one Y/N label line per record, in input order.
package scan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"motifscan/internal/fasta"
	"motifscan/internal/motif"
	"motifscan/internal/writers"
)

// ErrOutput wraps failures to create, write or close the label file.
var ErrOutput = errors.New("output unwritable")

// Config names the two files of a run. "-" selects stdin / stdout.
type Config struct {
	Input  string
	Output string

	// Stdout receives labels when Output is "-"; nil means os.Stdout.
	Stdout io.Writer
}

// Stats summarises a completed run.
type Stats struct {
	Records int
	Matches int
}

// Run scans cfg.Input and writes labels to cfg.Output, which is created or
// truncated before any record is read. The output is closed on every path;
// a partially written file is left in place on error.
func Run(ctx context.Context, cfg Config, logger *log.Logger) (st Stats, err error) {
	out, err := createOutput(cfg)
	if err != nil {
		return st, fmt.Errorf("%w: %s: %w", ErrOutput, cfg.Output, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %s: %w", ErrOutput, cfg.Output, cerr)
		}
	}()

	return Labels(ctx, cfg.Input, out, logger)
}

// Labels is Run with the destination already open. It flushes but does not
// close out.
func Labels(ctx context.Context, input string, out io.Writer, logger *log.Logger) (Stats, error) {
	var st Stats
	lw := writers.NewLabelWriter(out)

	err := fasta.ForEach(ctx, input, func(r fasta.Record) error {
		start, end, ok := motif.Find(r.Seq)
		if ok {
			st.Matches++
			logger.Debug("motif", "record", r.Description, "start", start, "end", end)
		}
		if err := lw.Write(r.Description, ok); err != nil {
			return fmt.Errorf("%w: %w", ErrOutput, err)
		}
		st.Records++
		return nil
	})
	if ferr := lw.Flush(); ferr != nil && err == nil {
		err = fmt.Errorf("%w: %w", ErrOutput, ferr)
	}
	return st, err
}

func createOutput(cfg Config) (io.WriteCloser, error) {
	if cfg.Output == "-" {
		if cfg.Stdout == nil {
			return nopCloser{os.Stdout}, nil
		}
		return nopCloser{cfg.Stdout}, nil
	}
	return os.Create(cfg.Output)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
