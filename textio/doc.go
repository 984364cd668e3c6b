// Package textio reads matrices from, and renders them to, line-oriented text.
//
// Input format (whitespace separated, line breaks insignificant):
//
//	rows cols
//	v(0,0) v(0,1) ... v(rows-1,cols-1)
//
// For the complex domain every value is two numbers, real part then
// imaginary part. Several matrices may follow one another on the same
// stream; a TokenReader keeps its position between ReadMatrix calls.
//
// Output follows scalar.Format: three decimals, "0" for zero, and
// "a + bi" / "a - bi" / "bi" for complex values.
package textio
