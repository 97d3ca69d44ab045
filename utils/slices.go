package utils

import (
	"golang.org/x/exp/constraints"
)

// MaxSlice returns the maximum value in the slice, or the zero value of V
// for an empty slice.
func MaxSlice[V constraints.Ordered](slice []V) (max V) {
	for i, c := range slice {
		if i == 0 || c > max {
			max = c
		}
	}
	return
}

// PadSlice returns s extended with zero values of V up to length n.
// The input is returned unchanged if it is already at least n long.
func PadSlice[V any](s []V, n int) []V {
	if len(s) >= n {
		return s
	}
	return append(s, make([]V, n-len(s))...)
}
