// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
)

var (
	// ErrMalformedInput is returned for a token that is not a valid number
	// or a shape that is not a positive integer.
	ErrMalformedInput = errors.New("textio: malformed input")

	// ErrUnexpectedEOF is returned when the stream ends inside a matrix.
	ErrUnexpectedEOF = errors.New("textio: unexpected end of input")

	// ErrNonFinite is returned for NaN or ±Inf values.
	ErrNonFinite = errors.New("textio: non-finite value")
)

// maxTokenSize bounds a single whitespace-separated token.
const maxTokenSize = 1 << 16

// TokenReader splits a stream into whitespace-separated tokens.
type TokenReader struct {
	sc    *bufio.Scanner
	count int // tokens consumed so far, for diagnostics
}

// NewTokenReader wraps r.
func NewTokenReader(r io.Reader) *TokenReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxTokenSize)
	sc.Split(bufio.ScanWords)

	return &TokenReader{sc: sc}
}

// next returns the next token, ErrUnexpectedEOF at end of stream, or the
// underlying read error.
func (tr *TokenReader) next() (string, error) {
	if !tr.sc.Scan() {
		if err := tr.sc.Err(); err != nil {
			return "", fmt.Errorf("token %d: %w", tr.count+1, err)
		}
		return "", fmt.Errorf("token %d: %w", tr.count+1, ErrUnexpectedEOF)
	}
	tr.count++

	return tr.sc.Text(), nil
}

func (tr *TokenReader) readDim(what string) (int, error) {
	tok, err := tr.next()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", what, err)
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s %q at token %d: %w", what, tok, tr.count, ErrMalformedInput)
	}

	return n, nil
}

func (tr *TokenReader) readComponent() (float64, error) {
	tok, err := tr.next()
	if err != nil {
		return 0, err
	}
	f, err := scalar.Parse(tok)
	if err != nil {
		return 0, fmt.Errorf("token %d: %w: %w", tr.count, ErrMalformedInput, err)
	}

	return f, nil
}

// ReadMatrix reads one matrix: a row count, a column count, then
// rows*cols scalars in row-major order. No partial matrix is ever returned.
// Complexity: O(rows*cols).
func ReadMatrix[T scalar.Scalar](tr *TokenReader) (*matrix.Dense[T], error) {
	rows, err := tr.readDim("rows")
	if err != nil {
		return nil, err
	}
	cols, err := tr.readDim("cols")
	if err != nil {
		return nil, err
	}

	width := scalar.DomainOf[T]().Width()
	data := make([]T, rows*cols)
	var (
		parts [2]float64
		k, p  int
	)
	for k = range data {
		for p = 0; p < width; p++ {
			if parts[p], err = tr.readComponent(); err != nil {
				return nil, fmt.Errorf("value (%d,%d): %w", k/cols, k%cols, err)
			}
		}
		data[k] = scalar.FromParts[T](parts[0], parts[1])
	}

	m, err := matrix.NewFromSlice(rows, cols, data)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateFinite(m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNonFinite, err)
	}

	return m, nil
}

// ReadSystem reads A followed by b from the same stream.
func ReadSystem[T scalar.Scalar](r io.Reader) (a, b *matrix.Dense[T], err error) {
	tr := NewTokenReader(r)
	if a, err = ReadMatrix[T](tr); err != nil {
		return nil, nil, fmt.Errorf("reading A: %w", err)
	}
	if b, err = ReadMatrix[T](tr); err != nil {
		return nil, nil, fmt.Errorf("reading b: %w", err)
	}

	return a, b, nil
}
