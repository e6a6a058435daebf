package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// ExampleNewDefaultDense shows the zero-filled 3×3 default matrix.
func ExampleNewDefaultDense() {
	m := matrix.NewDefaultDense()
	fmt.Print(m)

	// Output:
	// [0, 0, 0]
	// [0, 0, 0]
	// [0, 0, 0]
}

// ExampleMul multiplies a 2×3 by a 3×2 matrix.
func ExampleMul() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	b, _ := matrix.NewDenseFromRows([][]float64{
		{7, 8},
		{9, 10},
		{11, 12},
	})

	p, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(p)

	// Output:
	// [58, 64]
	// [139, 154]
}

// ExampleDeterminant expands a 3×3 matrix along its first row.
func ExampleDeterminant() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{3, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	d, _ := matrix.Determinant(m)
	fmt.Println(d)

	// Output:
	// -6
}

// ExampleInverse computes adj(A)/det(A) and reports singular input.
func ExampleInverse() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{2, 5, 7},
		{6, 3, 4},
		{5, -2, -3},
	})
	inv, _ := matrix.Inverse(m)
	fmt.Print(inv)

	_, err := matrix.Inverse(matrix.NewDefaultDense())
	fmt.Println(errors.Is(err, matrix.ErrSingularMatrix))

	// Output:
	// [1, -1, 1]
	// [-38, 41, -34]
	// [27, -29, 24]
	// true
}

// ExampleDense_Resize grows both axes at once and keeps the overlap.
func ExampleDense_Resize() {
	m, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	_ = m.Resize(3, 3)
	fmt.Print(m)

	// Output:
	// [1, 2, 0]
	// [3, 4, 0]
	// [0, 0, 0]
}

// ExampleDense_Move transfers the buffer; the source becomes 0×0.
func ExampleDense_Move() {
	m, _ := matrix.NewDenseFromRows([][]float64{{1, 2}})
	n := m.Move()
	fmt.Println(n.Rows(), n.Cols(), m.Rows(), m.Cols())

	_, err := matrix.Transpose(m)
	fmt.Println(errors.Is(err, matrix.ErrInvalidDimensions))

	// Output:
	// 1 2 0 0
	// true
}
