// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"motifscan/internal/app"
)

func write(t *testing.T, fn, data string) string {
	t.Helper()
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestEndToEnd(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, filepath.Join(dir, "itest.fa"), ">seq1\nGGAACGTGGAAC\n>seq2\nAAAACCCCGGGG\n")
	labels := filepath.Join(dir, "labels.tsv")

	code, stdout, stderr := run(t, fa, labels)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, stderr)
	}
	if stdout != "" || stderr != "" {
		t.Fatalf("expected a silent run, stdout=%q stderr=%q", stdout, stderr)
	}
	got, err := os.ReadFile(labels)
	if err != nil {
		t.Fatalf("read labels: %v", err)
	}
	if string(got) != "seq1\tY\nseq2\tN\n" {
		t.Fatalf("labels: %q", got)
	}
}

func TestRepeatedRunsAreIdentical(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, filepath.Join(dir, "in.fa"), ">a x\nGGA"+strings.Repeat("C", 70)+"GGA"+strings.Repeat("T", 12)+"\n>b\nGGACCCGGAAA\n")
	labels := filepath.Join(dir, "labels.tsv")

	read := func() string {
		if code, _, stderr := run(t, fa, labels); code != 0 {
			t.Fatalf("exit %d err %s", code, stderr)
		}
		b, err := os.ReadFile(labels)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		return string(b)
	}
	first, second := read(), read()
	if first != second {
		t.Fatalf("outputs differ\nfirst: %q\nsecond:%q", first, second)
	}
	if first != "a x\tY\nb\tN\n" {
		t.Fatalf("labels: %q", first)
	}
}

func TestEmptyInput(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, filepath.Join(dir, "empty.fa"), "")
	labels := filepath.Join(dir, "labels.tsv")

	if code, _, stderr := run(t, fa, labels); code != 0 {
		t.Fatalf("exit %d err %s", code, stderr)
	}
	fi, err := os.Stat(labels)
	if err != nil {
		t.Fatalf("output should exist: %v", err)
	}
	if fi.Size() != 0 {
		t.Fatalf("output should be empty, size=%d", fi.Size())
	}
}

func TestStdoutOutput(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, filepath.Join(dir, "in.fa"), ">seq1\nGGAACGTGGAAC\n")

	code, stdout, stderr := run(t, fa, "-")
	if code != 0 {
		t.Fatalf("exit %d err %s", code, stderr)
	}
	if stdout != "seq1\tY\n" {
		t.Fatalf("stdout: %q", stdout)
	}
}

func TestSummary(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, filepath.Join(dir, "in.fa"), ">seq1\nGGAACGTGGAAC\n>seq2\nACGT\n")

	code, _, stderr := run(t, "--summary", fa, filepath.Join(dir, "o.tsv"))
	if code != 0 {
		t.Fatalf("exit %d err %s", code, stderr)
	}
	if !strings.Contains(stderr, "records=2") || !strings.Contains(stderr, "matches=1") {
		t.Fatalf("summary missing from stderr: %q", stderr)
	}
}

func TestFailures(t *testing.T) {
	dir := t.TempDir()
	good := write(t, filepath.Join(dir, "in.fa"), ">s\nACGT\n")
	bad := write(t, filepath.Join(dir, "bad.fa"), "ACGT\n>s\nACGT\n")

	cases := []struct {
		name string
		argv []string
		code int
	}{
		{"no args", []string{}, app.ExitUsage},
		{"one arg", []string{good}, app.ExitUsage},
		{"missing input", []string{filepath.Join(dir, "nope.fa"), filepath.Join(dir, "o1")}, app.ExitFailure},
		{"unwritable output", []string{good, filepath.Join(dir, "missing", "o2")}, app.ExitFailure},
		{"malformed input", []string{bad, filepath.Join(dir, "o3")}, app.ExitFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, stderr := run(t, tc.argv...)
			if code != tc.code {
				t.Fatalf("want exit %d, got %d (stderr=%s)", tc.code, code, stderr)
			}
			if !strings.Contains(stderr, "error:") {
				t.Fatalf("expected an error message, got %q", stderr)
			}
		})
	}
}
