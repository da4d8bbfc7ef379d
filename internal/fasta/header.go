package fasta

import "io"

// sepTap watches the bytes handed to the FASTA parser and queues, per header
// line, the byte that ended the sequence name (' ' or '\t'; 0 when the
// header has no description). The parser drops that byte when it splits the
// header, so it is needed to give back the header as written.
type sepTap struct {
	r     io.Reader
	state tapState
	seps  []byte
}

type tapState int

const (
	atLineStart tapState = iota
	inName
	inLine
)

func (t *sepTap) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	for _, c := range p[:n] {
		t.observe(c)
	}
	return n, err
}

func (t *sepTap) observe(c byte) {
	switch t.state {
	case atLineStart:
		switch c {
		case '>':
			t.state = inName
		case ' ', '\t', '\r', '\n', '\v', '\f':
		default:
			t.state = inLine
		}
	case inName:
		switch c {
		case ' ', '\t':
			t.seps = append(t.seps, c)
			t.state = inLine
		case '\r':
			t.seps = append(t.seps, 0)
			t.state = inLine
		case '\n':
			t.seps = append(t.seps, 0)
			t.state = atLineStart
		}
	case inLine:
		if c == '\n' {
			t.state = atLineStart
		}
	}
}

// next pops the separator of the oldest unconsumed header.
func (t *sepTap) next() byte {
	if len(t.seps) == 0 {
		return 0
	}
	c := t.seps[0]
	t.seps = t.seps[1:]
	return c
}

// description rebuilds the header line the way it appeared in the file.
func description(id, desc string, sep byte) string {
	switch {
	case desc == "":
		return id
	case id == "":
		return desc
	case sep == '\t':
		return id + "\t" + desc
	default:
		return id + " " + desc
	}
}
