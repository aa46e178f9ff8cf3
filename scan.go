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

import (
	"io"
)

// DefaultBufSize is the size of the internal buffer allocated by New.
const DefaultBufSize = 4 << 10

// A Scanner reads whitespace-delimited tokens from an io.Reader and converts
// them to caller-requested types on demand.
//
// A Scanner is not safe for concurrent use: every read mutates the internal
// cursor. Two Scanners must never share a source reader either, since they
// would race over the stream position.
type Scanner struct {
	src  io.Reader
	buf  []byte // byte buffer
	r, w int    // read cursor and valid length, 0 <= r <= w <= len(buf)
	off  int    // stream offset of buf[0]
	line int    // 1-based line count at the cursor
	tok  []byte // side accumulator for tokens spanning a refill

	// position of the last token returned by next; at end of stream,
	// position of the stream end.
	tokOff  int
	tokLine int

	ioErr error // sticky; any read failure other than io.EOF
}

// New returns a Scanner reading from r with a DefaultBufSize-byte buffer.
// The Scanner does not open or close anything: the lifetime of r belongs to
// the caller.
func New(r io.Reader) *Scanner {
	return NewSize(r, DefaultBufSize)
}

// NewSize returns a Scanner reading from r with a buffer of the given size.
// Tokens longer than the buffer are still read whole; the size only controls
// how often the source is consulted. Sizes below one byte are rounded up.
func NewSize(r io.Reader, size int) *Scanner {
	if size < 1 {
		size = 1
	}
	return &Scanner{src: r, buf: make([]byte, size), line: 1}
}

// space reports whether b separates tokens. The whitespace class is exactly
// space, tab, line feed and carriage return.
func space(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// fill slides consumed bytes out of the buffer and issues a single Read
// against the source. It reports whether any new bytes arrived; a zero-byte
// refill means the stream has ended. Read failures other than io.EOF latch
// into s.ioErr.
func (s *Scanner) fill() bool {
	if s.ioErr != nil {
		return false
	}
	if n := s.r; n > 0 {
		copy(s.buf, s.buf[n:s.w])
		s.off += n
		s.w -= n
		s.r = 0
	}
	n, err := s.src.Read(s.buf[s.w:])
	s.w += n
	if err != nil && err != io.EOF {
		s.ioErr = err
		return false
	}
	return n > 0
}

// next returns the next raw token. It skips leading whitespace, then
// accumulates the maximal run of non-whitespace bytes, refilling the buffer
// as many times as the token requires. It returns io.EOF if the stream ends
// before a token starts, or a *Error of kind Stream if the source fails.
//
// The returned slice aliases internal storage and is only valid until the
// next call.
func (s *Scanner) next() ([]byte, error) {
	for {
		if s.r == s.w && !s.fill() {
			s.tokOff, s.tokLine = s.off+s.r, s.line
			if s.ioErr != nil {
				return nil, s.errStream()
			}
			return nil, io.EOF
		}
		b := s.buf[s.r]
		if !space(b) {
			break
		}
		if b == '\n' {
			s.line++
		}
		s.r++
	}
	s.tokOff, s.tokLine = s.off+s.r, s.line
	s.tok = s.tok[:0]
	start := s.r
	for {
		for s.r < s.w && !space(s.buf[s.r]) {
			s.r++
		}
		if s.r < s.w {
			break
		}
		// The token runs past the valid bytes. Move it to the side
		// accumulator so the refill can slide it out of the buffer.
		s.tok = append(s.tok, s.buf[start:s.r]...)
		if !s.fill() {
			if s.ioErr != nil {
				return nil, s.errStream()
			}
			// stream ended exactly at the token's end
			return s.tok, nil
		}
		start = s.r
	}
	if len(s.tok) == 0 {
		return s.buf[start:s.r], nil
	}
	s.tok = append(s.tok, s.buf[start:s.r]...)
	return s.tok, nil
}

// TryText returns the next token as a string, or a *Error if the stream is
// exhausted or fails.
func (s *Scanner) TryText() (string, error) {
	t, err := s.next()
	if err != nil {
		if err == io.EOF {
			return "", s.errEOS("string")
		}
		return "", err
	}
	return string(t), nil
}

// Text returns the next token as a string. It panics with a *Error if the
// stream is exhausted or fails.
func (s *Scanner) Text() string {
	return must(s.TryText())
}

// TryChars returns the next token decomposed into its runes, in order.
func (s *Scanner) TryChars() ([]rune, error) {
	t, err := s.TryText()
	if err != nil {
		return nil, err
	}
	return []rune(t), nil
}

// Chars returns the next token decomposed into its runes, in order. It
// panics with a *Error if the stream is exhausted or fails.
func (s *Scanner) Chars() []rune {
	return must(s.TryChars())
}
