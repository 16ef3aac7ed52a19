// Package usecase contains the reservation flow: search, mocked availability,
// fares, seat selection and payment. Every operation on a booking takes the
// session it acts on; the package keeps no per-user state of its own.
package usecase

import "unicode/utf16"

// lcgModulus is 2^31.
const lcgModulus = 1 << 31

// LCG parameters.
const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
)

// Generator returns pseudo-random values in [0, 1).
type Generator func() float64

// GeneratorFactory builds a Generator from a seed.
type GeneratorFactory func(seed uint32) Generator

// SeedFromString hashes s with h = h*31 + c over its UTF-16 code units,
// wrapping at 32 bits.
func SeedFromString(s string) uint32 {
	var h uint32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + uint32(c)
	}
	return h
}

// NewLCG returns a linear congruential generator:
// h = (1103515245*h + 12345) mod 2^31, yielding h / 2^31.
// The arithmetic is exact, so a seed always gives the same sequence.
func NewLCG(seed uint32) Generator {
	h := uint64(seed)
	return func() float64 {
		h = (lcgMultiplier*h + lcgIncrement) % lcgModulus
		return float64(h) / lcgModulus
	}
}

// NewSeededGenerator returns an LCG seeded from s.
func NewSeededGenerator(s string) Generator {
	return NewLCG(SeedFromString(s))
}
