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
	"fmt"
	"io"
	"strconv"
)

// Value is the set of types a token can be converted to. Integers parse in
// base 10, floats accept the strconv.ParseFloat syntax, bools accept the
// strconv.ParseBool syntax, and string takes the token text verbatim.
type Value interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | bool | string
}

// parseValue converts token text to a T. The pointer type switch compiles to
// a direct branch per instantiation; there is no reflection on the read path.
func parseValue[T Value](tok string) (T, error) {
	var v T
	var err error
	switch p := any(&v).(type) {
	case *string:
		*p = tok
	case *int:
		var n int64
		n, err = strconv.ParseInt(tok, 10, strconv.IntSize)
		*p = int(n)
	case *int8:
		var n int64
		n, err = strconv.ParseInt(tok, 10, 8)
		*p = int8(n)
	case *int16:
		var n int64
		n, err = strconv.ParseInt(tok, 10, 16)
		*p = int16(n)
	case *int32:
		var n int64
		n, err = strconv.ParseInt(tok, 10, 32)
		*p = int32(n)
	case *int64:
		*p, err = strconv.ParseInt(tok, 10, 64)
	case *uint:
		var n uint64
		n, err = strconv.ParseUint(tok, 10, strconv.IntSize)
		*p = uint(n)
	case *uint8:
		var n uint64
		n, err = strconv.ParseUint(tok, 10, 8)
		*p = uint8(n)
	case *uint16:
		var n uint64
		n, err = strconv.ParseUint(tok, 10, 16)
		*p = uint16(n)
	case *uint32:
		var n uint64
		n, err = strconv.ParseUint(tok, 10, 32)
		*p = uint32(n)
	case *uint64:
		*p, err = strconv.ParseUint(tok, 10, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(tok, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(tok, 64)
	case *bool:
		*p, err = strconv.ParseBool(tok)
	}
	return v, err
}

// typeName returns the name of T for error reporting.
func typeName[T Value]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

// TryToken reads the next token and converts it to a T. It returns a *Error
// if the stream is exhausted, the source fails, or the token text is not a
// valid T.
func TryToken[T Value](s *Scanner) (T, error) {
	var zero T
	t, err := s.next()
	if err != nil {
		if err == io.EOF {
			return zero, s.errEOS(typeName[T]())
		}
		return zero, err
	}
	v, err := parseValue[T](string(t))
	if err != nil {
		return zero, s.errConvert(string(t), typeName[T](), err)
	}
	return v, nil
}

// Token reads the next token and converts it to a T. It panics with a
// *Error if the stream is exhausted, the source fails, or the token text is
// not a valid T. This is the primary read operation: input is trusted by
// contract, and the panic keeps the happy path free of error plumbing.
func Token[T Value](s *Scanner) T {
	return must(TryToken[T](s))
}

// TryVec reads n tokens as T values, in stream order.
func TryVec[T Value](s *Scanner, n int) ([]T, error) {
	if n < 0 {
		n = 0
	}
	vec := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := TryToken[T](s)
		if err != nil {
			return nil, err
		}
		vec = append(vec, v)
	}
	return vec, nil
}

// Vec reads n tokens as T values, in stream order. It panics with a *Error
// if fewer than n valid tokens remain.
func Vec[T Value](s *Scanner, n int) []T {
	return must(TryVec[T](s, n))
}

// TryMatrix reads rows×cols tokens as a row-major matrix of T values.
func TryMatrix[T Value](s *Scanner, rows, cols int) ([][]T, error) {
	if rows < 0 {
		rows = 0
	}
	m := make([][]T, 0, rows)
	for i := 0; i < rows; i++ {
		row, err := TryVec[T](s, cols)
		if err != nil {
			return nil, err
		}
		m = append(m, row)
	}
	return m, nil
}

// Matrix reads rows×cols tokens as a row-major matrix of T values. Element
// [i][j] is the (i·cols+j)-th token of the stream. It panics with a *Error
// if fewer than rows×cols valid tokens remain.
func Matrix[T Value](s *Scanner, rows, cols int) [][]T {
	return must(TryMatrix[T](s, rows, cols))
}
