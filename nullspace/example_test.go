// SPDX-License-Identifier: MIT
package nullspace_test

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/fieldsolve/nullspace"
)

// ExampleDependencies combines sieve relations into a square.
// Exponent parities over the factor base {2, 3, 5}:
//
//	10 = 2·5   → {2, 5}
//	15 = 3·5   → {3, 5}
//	 6 = 2·3   → {2, 3}
//
// and 10·15·6 = 900 = 30².
func ExampleDependencies() {
	rows := []*bitset.BitSet{
		bitset.New(3).Set(0).Set(2),
		bitset.New(3).Set(1).Set(2),
		bitset.New(3).Set(0).Set(1),
	}
	deps, _ := nullspace.Dependencies(rows, 3)
	for _, d := range deps {
		fmt.Println(d.String())
	}

	// Output:
	// {0,1,2}
}
