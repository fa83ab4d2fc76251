package random

import (
	"encoding/binary"
	"math"
	"math/big"

	"github.com/katalvlaran/dpgraph/core"
)

// maxGeometricExponentTrials bounds the Downey exponent draw: the
// probability of exceeding it is 2^-maxGeometricExponentTrials, far below
// any realistic failure budget.
const maxGeometricExponentTrials = 1100

// SampleUniform draws a float64 uniform on [lo, hi).
//
// exact selects the Downey construction: a geometric random exponent
// biases small magnitudes to occur with the correct exponentially
// decaying density, 52 random bits fill the mantissa, and the [0,1)
// result is affine-mapped into [lo,hi) with arbitrary-precision
// arithmetic so float64 double-rounding cannot leak sampling bits. When
// exact is false, a single 64-bit draw is reinterpreted and scaled with
// ordinary float64 arithmetic; callers may only select this mode when
// PrivacyDefinition.ProtectFloatingPoint is false.
func SampleUniform(src Source, lo, hi float64, exact, constantTime bool) (float64, error) {
	if hi <= lo {
		return 0, core.NewError(core.InvalidParameter, "sample_uniform: hi must be greater than lo")
	}
	if !exact {
		return sampleUniformFast(src, lo, hi)
	}
	u, err := sampleUniformUnit(src, constantTime)
	if err != nil {
		return 0, err
	}
	return affineMap(u, lo, hi), nil
}

func sampleUniformFast(src Source, lo, hi float64) (float64, error) {
	var buf [8]byte
	if err := src.FillBytes(buf[:]); err != nil {
		return 0, err
	}
	bits := binary.BigEndian.Uint64(buf[:])
	u := float64(bits>>11) / float64(uint64(1)<<53)
	return lo + u*(hi-lo), nil
}

// sampleUniformUnit draws an IEEE-754 double uniform on [0,1) via the
// Downey construction.
func sampleUniformUnit(src Source, constantTime bool) (float64, error) {
	// Both modes bound the loop at maxGeometricExponentTrials; constantTime
	// only changes whether the loop keeps drawing bits after the first
	// success (below) instead of stopping there. This is a
	// best-effort approximation of constant time in portable Go, not a
	// branchless silicon-level guarantee.
	trials := maxGeometricExponentTrials

	exponent := -1
	found := false
	for i := 0; i < trials; i++ {
		bit, err := SampleBit(src)
		if err != nil {
			return 0, err
		}
		if !found && bit == 1 {
			found = true
			if !constantTime {
				break
			}
		}
		if !found {
			exponent--
		}
	}
	if !found {
		exponent = -1023
	}

	mantissa, err := SampleMantissaBits(src, 52)
	if err != nil {
		return 0, err
	}
	return recomposePositive(int16(exponent), mantissa), nil
}

// recomposePositive assembles a non-negative IEEE-754 double from an
// unbiased exponent and a 52-bit mantissa. This mirrors package noise's
// Recompose/RecomposeRaw exactly, duplicated here (rather than imported)
// so package random does not depend on package noise, which itself
// depends on random for its distributional samplers.
func recomposePositive(exponent int16, mantissa uint64) float64 {
	biased := uint64(exponent+1023) & 0x7FF
	bits := biased<<52 | (mantissa & ((uint64(1) << 52) - 1))
	return math.Float64frombits(bits)
}

// affineMap maps u in [0,1) into [lo,hi) using arbitrary-precision
// arithmetic so the float64 result is not perturbed by double-rounding.
func affineMap(u, lo, hi float64) float64 {
	const prec = 200
	bu := new(big.Float).SetPrec(prec).SetFloat64(u)
	width := new(big.Float).SetPrec(prec).SetFloat64(hi - lo)
	scaled := new(big.Float).SetPrec(prec).Mul(bu, width)
	shifted := new(big.Float).SetPrec(prec).Add(scaled, new(big.Float).SetPrec(prec).SetFloat64(lo))
	result, _ := shifted.Float64()
	if result >= hi {
		result = math.Nextafter(hi, lo)
	}
	return result
}
