// Package models groups the concrete cyclotomic rings of the library, one sub-package per
// prime field. Each sub-package binds a modulus, a ring degree and a precomputed NTT table,
// and exports the aliases Fp, Config, RqPoly and RqNTT.
//
//	babybear    q = 15*2^27+1,           N = 64
//	goldilocks  q = 2^64-2^32+1,         N = 64
//	frog        q = 15912092521325583641, N = 16 (incomplete NTT, blocks of 4)
//	starkprime  q = 2^251+17*2^192+1,    N = 16
//	pow2        user-chosen q and N, for debugging
package models

import (
	"fmt"

	"github.com/latticefold/starkrings/ring"
)

// MustNTTTable returns the NTT table of F[X]/(X^N+1).
// Panics if the table cannot be built, which only happens on invalid hard-coded parameters.
func MustNTTTable[F ring.Convertible[F]](N int) *ring.NTTTable[F] {
	table, err := ring.NewNTTTable[F](N)
	if err != nil {
		panic(fmt.Errorf("cannot MustNTTTable: %w", err))
	}
	return table
}
