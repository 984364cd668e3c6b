// SPDX-License-Identifier: MIT
// Command linsolve reads a linear system A·x = b from text and solves it by
// Gauss–Jordan elimination with partial pivoting.
//
// Input (stdin or --input): A then b, each as "rows cols" followed by the
// values in row-major order. With --complex every value is a pair
// "re im".
//
// Example:
//
//	$ printf '2 2\n2 1\n1 3\n2 1\n5\n10\n' | linsolve
//	=== BEFORE ===
//	...
//	x =
//	1.000
//	3.000
//
// Any error is reported as a single line on stderr with exit status 1.
package main

import "log"

func main() {
	log.SetFlags(0)
	log.SetPrefix("linsolve: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
