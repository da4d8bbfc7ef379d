// Package writers serializes per-record scan results.
//
// Writers own the output format only; parsing and matching live in
// internal/fasta and internal/motif.
package writers
