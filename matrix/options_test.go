// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// 1) Defaults match the documented constants.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf)
	require.False(t, o.ValidateNaNInf, "scaling must never fail by default")

	require.Equal(t, 1e-6, matrix.Epsilon)
	require.Equal(t, 3, matrix.DefaultRows)
	require.Equal(t, 3, matrix.DefaultCols)
}

// 2) Last writer wins; nil setters are skipped.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.False(t, o.ValidateNaNInf)

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithNoValidateNaNInf(), nil, matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf)

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf)
}

// 3) The policy is captured at construction and follows copies and moves.
func TestOptions_PolicyTravelsWithDense(t *testing.T) {
	m, err := matrix.NewDense(2, 2, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.True(t, matrix.PolicyOf_TestOnly(m))

	c, err := m.Copy()
	require.NoError(t, err)
	require.True(t, matrix.PolicyOf_TestOnly(c))
	require.ErrorIs(t, c.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	moved := m.Move()
	require.True(t, matrix.PolicyOf_TestOnly(moved))
	require.ErrorIs(t, moved.Set(1, 1, math.Inf(-1)), matrix.ErrNaNInf)

	// kernel results use the defaults
	sum, err := matrix.Add(c, c)
	require.NoError(t, err)
	require.NoError(t, sum.Set(0, 0, math.NaN()))
}

// 4) With the policy off, scaling by ±Inf succeeds.
func TestOptions_DefaultScaleNeverFails(t *testing.T) {
	m := MustRows(t, [][]float64{{1, -1}})
	s, err := matrix.Scale(m, math.Inf(1))
	require.NoError(t, err)
	require.True(t, math.IsInf(MustAt(t, s, 0, 0), 1))
	require.True(t, math.IsInf(MustAt(t, s, 0, 1), -1))
}
