// Copyright 2025 Artem Voronov <avr0id@tuta.io>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package scan

import "fmt"

// A Kind classifies scanner failures.
type Kind int

// Failure kinds. Every *Error is final: the read it interrupted cannot be
// resumed.
const (
	// Stream means the source failed to supply bytes.
	Stream Kind = iota
	// EOS means the stream ended where a token was required.
	EOS
	// Convert means a token did not parse as the requested type.
	Convert
	// Range means a graph vertex id fell outside [1, n].
	Range
)

func (k Kind) String() string {
	switch k {
	case Stream:
		return "stream failure"
	case EOS:
		return "end of stream"
	case Convert:
		return "conversion failure"
	case Range:
		return "vertex out of range"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// An Error describes why a read operation failed. The fatal read operations
// panic with a *Error; their Try counterparts return the same value.
//
// Off and Line locate the offending token within the stream (for Stream and
// EOS kinds, the position where the stream ended). Off is a byte offset from
// the start of the stream, Line is 1-based.
type Error struct {
	Kind Kind
	Off  int
	Line int
	Tok  string // offending token text, if any
	Type string // requested target type, if any
	Err  error  // underlying cause, if any
}

func (e *Error) Error() string {
	pos := fmt.Sprintf("scan: line %d, offset %d", e.Line, e.Off)
	switch e.Kind {
	case Stream:
		return fmt.Sprintf("%s: read error: %v", pos, e.Err)
	case EOS:
		return fmt.Sprintf("%s: unexpected end of input, want %s", pos, e.Type)
	case Convert:
		return fmt.Sprintf("%s: cannot convert %q to %s: %v", pos, e.Tok, e.Type, e.Err)
	case Range:
		return fmt.Sprintf("%s: %v", pos, e.Err)
	}
	return pos + ": " + e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func (s *Scanner) errStream() *Error {
	return &Error{Kind: Stream, Off: s.tokOff, Line: s.tokLine, Err: s.ioErr}
}

func (s *Scanner) errEOS(typ string) *Error {
	return &Error{Kind: EOS, Off: s.tokOff, Line: s.tokLine, Type: typ}
}

func (s *Scanner) errConvert(tok, typ string, cause error) *Error {
	return &Error{Kind: Convert, Off: s.tokOff, Line: s.tokLine, Tok: tok, Type: typ, Err: cause}
}

func (s *Scanner) errRange(id, n int) *Error {
	return &Error{
		Kind: Range, Off: s.tokOff, Line: s.tokLine,
		Tok: fmt.Sprintf("%d", id),
		Err: fmt.Errorf("vertex %d out of range [1, %d]", id, n),
	}
}

// must converts a checked read into a fatal one.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
