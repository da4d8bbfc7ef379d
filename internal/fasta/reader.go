// internal/fasta/reader.go
package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/biogo/biogo/alphabet"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

var (
	// ErrInput wraps failures to open or read the input file.
	ErrInput = errors.New("input unreadable")
	// ErrMalformed wraps records the parser cannot interpret.
	ErrMalformed = errors.New("malformed FASTA")
)

// Record is one parsed FASTA entry.
type Record struct {
	// Description is the full header line without the leading '>'.
	Description string
	Seq         []byte
}

// ForEach parses path and calls emit for every record in file order.
// Parsing is lazy; nothing is retained after emit returns. A non-nil error
// from emit stops the scan and is returned unchanged.
func ForEach(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInput, path, err)
	}
	defer rc.Close()

	return Scan(ctx, rc, path, emit)
}

// Scan is ForEach over an already open reader; name is used in errors.
func Scan(ctx context.Context, r io.Reader, name string, emit func(Record) error) error {
	tap := &sepTap{r: r}
	fr := biofasta.NewReader(tap, linear.NewSeq("", nil, alphabet.DNA))
	for n := 1; ; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		s, err := fr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return classify(err, name, n)
		}
		ls, ok := s.(*linear.Seq)
		if !ok {
			return fmt.Errorf("%w: %s: record %d: unexpected sequence type %T", ErrMalformed, name, n, s)
		}
		rec := Record{
			Description: description(ls.Name(), ls.Description(), tap.next()),
			Seq:         alphabet.LettersToBytes(ls.Seq),
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
}

// classify separates read failures of the underlying stream from parse
// failures reported by the FASTA reader.
func classify(err error, name string, n int) error {
	var pe *fs.PathError
	if errors.As(err, &pe) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, gzip.ErrChecksum) ||
		errors.Is(err, gzip.ErrHeader) {
		return fmt.Errorf("%w: %s: %w", ErrInput, name, err)
	}
	return fmt.Errorf("%w: %s: record %d: %w", ErrMalformed, name, n, err)
}
