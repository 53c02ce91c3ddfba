// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvmat/matrix"
)

// ExampleInverse inverts a 2×2 matrix and checks the product against I.
func ExampleInverse() {
	a, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 4}})
	inv, _ := matrix.Inverse(a)
	fmt.Print(inv)

	prod, _ := matrix.Mul(a, inv)
	ok, _ := matrix.IsIdentity(prod)
	fmt.Println("identity:", ok)

	// Output:
	// [0.5, 0]
	// [0, 0.25]
	// identity: true
}

// ExampleAdjugate shows the classical adjoint of a 2×2 matrix.
func ExampleAdjugate() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	adj, _ := matrix.Adjugate(a)
	det, _ := matrix.Determinant(a)
	fmt.Print(adj)
	fmt.Println("det:", det)

	// Output:
	// [4, -2]
	// [-3, 1]
	// det: -2
}
