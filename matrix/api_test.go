// Package matrix_test contains unit tests for the constructor facades and aliases.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewZeros(t *testing.T) {
	z, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, z)

	_, err = matrix.NewZeros(-1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestLikeConstructors(t *testing.T) {
	m := RandFilledDense(t, 2, 5, 3)

	z, err := matrix.ZerosLike(m)
	require.NoError(t, err)
	require.Equal(t, 2, z.Rows())
	require.Equal(t, 5, z.Cols())

	_, err = matrix.IdentityLike(m)
	require.ErrorIs(t, err, matrix.ErrNotSquare)

	I, err := matrix.IdentityLike(MustDense(t, 4, 4))
	require.NoError(t, err)
	require.True(t, matrix.Equal(I, IdentityDense(t, 4)))

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCloneMatrix_Independent(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}})
	c := matrix.CloneMatrix(m)
	MustSet(t, m, 0, 0, 9)
	CompareExact(t, [][]float64{{1, 2}}, c)
}

func TestAliases_DelegateToKernels(t *testing.T) {
	a := RandFilledDense(t, 3, 3, 1)
	b := RandFilledDense(t, 3, 3, 2)

	s1, err := matrix.Sum(a, b)
	require.NoError(t, err)
	s2, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(s1, s2, 0))

	d1, err := matrix.Diff(a, b)
	require.NoError(t, err)
	d2, err := matrix.Sub(a, b)
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(d1, d2, 0))

	p1, err := matrix.Product(a, b)
	require.NoError(t, err)
	p2, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(p1, p2, 0))

	t1, err := matrix.T(a)
	require.NoError(t, err)
	t2, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(t1, t2, 0))
}
