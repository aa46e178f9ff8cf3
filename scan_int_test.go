package scan

import (
	"io"
	"strings"
	"testing"
)

// next must reassemble tokens across as many refills as they span, and the
// cursor invariants must hold after every call.
func TestNextSpanningRefills(t *testing.T) {
	const in = "  abcdefghi\tjk l  "
	want := []string{"abcdefghi", "jk", "l"}
	s := NewSize(strings.NewReader(in), 2)
	for _, w := range want {
		tok, err := s.next()
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if string(tok) != w {
			t.Errorf("expected %q, got %q", w, tok)
		}
		if s.r > s.w || s.w > len(s.buf) {
			t.Fatalf("cursor invariant violated: r=%d w=%d cap=%d", s.r, s.w, len(s.buf))
		}
	}
	if _, err := s.next(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
	// end of stream is stable
	if _, err := s.next(); err != io.EOF {
		t.Errorf("expected io.EOF again, got %v", err)
	}
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) { return 0, nil }

// A zero-byte refill means the stream has ended, even without io.EOF.
func TestZeroByteRead(t *testing.T) {
	s := New(zeroReader{})
	if _, err := s.next(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestTokenPosition(t *testing.T) {
	s := NewSize(strings.NewReader("ab\ncd ef\n"), 4)
	data := []struct {
		tok  string
		off  int
		line int
	}{
		{"ab", 0, 1},
		{"cd", 3, 2},
		{"ef", 6, 2},
	}
	for _, td := range data {
		tok, err := s.next()
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if string(tok) != td.tok {
			t.Errorf("expected %q, got %q", td.tok, tok)
		}
		if s.tokOff != td.off || s.tokLine != td.line {
			t.Errorf("%s: expected offset %d line %d, got %d %d",
				td.tok, td.off, td.line, s.tokOff, s.tokLine)
		}
	}
}
