// SPDX-License-Identifier: MIT

package textio

import (
	"strings"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
)

// FormatScalar renders one value. See scalar.Format for the rules.
func FormatScalar[T scalar.Scalar](v T) string {
	return scalar.Format(v)
}

// FormatMatrix renders m as "<name> = " followed by one line per row; each
// line starts with a tab and every value is followed by a single space.
func FormatMatrix[T scalar.Scalar](name string, m matrix.Reader[T]) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString(" = ")
	for i := 0; i < m.Rows(); i++ {
		sb.WriteByte('\t')
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j) // i, j within Rows/Cols
			sb.WriteString(scalar.Format(v))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// FormatVector renders each entry of a column vector on its own line.
func FormatVector[T scalar.Scalar](v matrix.Reader[T]) string {
	var sb strings.Builder
	for i := 0; i < v.Rows(); i++ {
		x, _ := v.At(i, 0)
		sb.WriteString(scalar.Format(x))
		sb.WriteByte('\n')
	}

	return sb.String()
}
