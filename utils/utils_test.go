package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMaxAbs(t *testing.T) {
	require.Equal(t, 1, Min(1, 2))
	require.Equal(t, 2, Max(1, 2))
	require.Equal(t, 1.5, Abs(-1.5))
	require.Equal(t, 3, Abs(3))
}

func TestAlias1D(t *testing.T) {
	a := make([]float64, 8)
	b := a[:4]
	c := make([]float64, 8)
	require.True(t, Alias1D(a, b))
	require.False(t, Alias1D(a, c))
}

func TestGetSortedKeys(t *testing.T) {
	m := map[int]string{3: "c", 1: "a", 2: "b"}
	require.Equal(t, []int{1, 2, 3}, GetSortedKeys(m))
}

func TestGetDistincts(t *testing.T) {
	d := GetDistincts([]int{1, 1, 2, 3, 3, 3})
	require.ElementsMatch(t, []int{1, 2, 3}, d)
}
