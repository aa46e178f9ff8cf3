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

/*
Package scan reads whitespace-delimited tokens from a byte stream and
converts them to requested types on demand. It is built for the kind of
rigidly formatted input found in programming contests and batch data files:
counts followed by that many values, matrices laid out row by row, edge
lists describing a graph.

A Scanner wraps any io.Reader behind its own buffer. Reads against the
source happen only when the buffer runs dry, one Read call per refill, and
tokens that straddle a refill are reassembled transparently, so there is no
limit on token length and no line-at-a-time restriction. Tokens are maximal
runs of bytes separated by any mix of spaces, tabs, line feeds and carriage
returns; no other structure is recognized.

# Typed reads

The scalar read is generic:

	s := scan.New(os.Stdin)
	n := scan.Token[int](s)
	x := scan.Token[float64](s)
	w := s.Text()

Aggregate reads compose it. Vec reads a counted sequence, Matrix a
rows×cols block in row-major order, Chars splits one token into runes, and
Graph reads an edge list into 1-based adjacency lists:

	n, m := scan.Token[int](s), scan.Token[int](s)
	adj := s.Graph(n, m, false)

All composite reads consume tokens in a fixed left-to-right, row-by-row,
edge-by-edge order. Callers may rely on the positional correspondence
between the input layout and the result.

# Failure model

The primary operations do not return errors: they panic with a *Error when
the stream ends early, the source reader fails, or a token does not parse
as the requested type. Contest input is trusted by contract, and a read
executed millions of times should not pay for error propagation it never
uses. The *Error carries the offending token, the requested type and the
token's line and byte offset, so the rare failure is still diagnosable.

Every operation also has a Try form (TryToken, TryVec, s.TryText, ...)
returning (value, error) for callers that do want a checked read. Both
forms report the same *Error value, and neither recovers: after any failure
the Scanner's position is unspecified and it should be discarded.

A Scanner is not safe for concurrent use, and two Scanners must not share
an underlying reader.
*/
package scan
