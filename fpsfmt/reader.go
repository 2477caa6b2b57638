// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fpsfmt reads frame-rate sample files.
//
// A sample file is a sequence of floating-point numbers separated by
// white space, including newlines. A "#" starts a comment that runs to
// the end of the line. Values must be finite. This is the format written by the demo's
// frame-time recorder (one value per line) and by most ad-hoc
// measurement scripts.
package fpsfmt

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// A Reader reads sample values from a sample file.
//
// Its API is modeled on bufio.Scanner. To construct a new Reader,
// either call NewReader, or call Reset on a zeroed Reader.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	line     int

	// fields holds the unconsumed tokens of the current line.
	fields []string

	value float64
	err   error
}

// A SyntaxError represents a malformed token on a particular line of
// a sample file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// NewReader constructs a reader for the sample values in r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// maxLine bounds the length of one line of a sample file. Recorders
// may write every value on a single line.
const maxLine = 1 << 30

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	r.s.Buffer(make([]byte, 0, 64<<10), maxLine)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.line = 0
	r.fields = r.fields[:0]
	r.value = 0
	r.err = nil
}

// Scan advances the reader to the next value and reports whether a
// value was read. The caller should use the Value method to get it.
// If Scan reaches EOF, hits a malformed token, or an I/O error occurs,
// it returns false, in which case the caller should use the Err
// method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	for len(r.fields) == 0 {
		if !r.s.Scan() {
			r.err = r.s.Err()
			return false
		}
		r.line++
		text := r.s.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		r.fields = strings.Fields(text)
	}

	tok := r.fields[0]
	r.fields = r.fields[1:]
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		r.err = &SyntaxError{r.fileName, r.line, fmt.Sprintf("invalid sample %q", tok)}
		return false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		r.err = &SyntaxError{r.fileName, r.line, fmt.Sprintf("non-finite sample %q", tok)}
		return false
	}
	r.value = v
	return true
}

// Value returns the value that was just read by Scan.
func (r *Reader) Value() float64 {
	return r.value
}

// Err returns the first error encountered by the Reader.
// Reaching the end of the input is not an error.
func (r *Reader) Err() error {
	return r.err
}

// Parse reads every value from r. It returns either all of the values
// or an error; it never returns a prefix of the input.
func Parse(r io.Reader, fileName string) ([]float64, error) {
	values := []float64{}
	reader := NewReader(r, fileName)
	for reader.Scan() {
		values = append(values, reader.Value())
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// ReadFile reads every value from the named file.
func ReadFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, path)
}
