package writers

import (
	"bufio"
	"io"

	"motifscan/internal/motif"
)

// LabelWriter writes one "<description>\t<flag>\n" line per record.
// There is no header row.
type LabelWriter struct {
	w *bufio.Writer
}

// NewLabelWriter buffers writes to out; call Flush before closing out.
func NewLabelWriter(out io.Writer) *LabelWriter {
	return &LabelWriter{w: bufio.NewWriter(out)}
}

// Write emits the line for a single record.
func (lw *LabelWriter) Write(description string, matched bool) error {
	if _, err := lw.w.WriteString(description); err != nil {
		return err
	}
	if err := lw.w.WriteByte('\t'); err != nil {
		return err
	}
	if _, err := lw.w.WriteString(motif.Flag(matched)); err != nil {
		return err
	}
	if err := lw.w.WriteByte('\n'); err != nil {
		return err
	}
	return nil
}

func (lw *LabelWriter) Flush() error { return lw.w.Flush() }
