package abi

import (
	"github.com/katalvlaran/dpgraph/mechanism"
	"github.com/katalvlaran/dpgraph/random"
)

// src is the process-wide source every ABI call draws from, matching the
// original boundary's implicit global RNG (there is no per-call source
// parameter in direct_api.rs).
var src = random.Default()

// mustFloat panics on error, the ABI boundary's equivalent of Rust's
// .unwrap() at the same call sites in direct_api.rs.
func mustFloat(v float64, err error) float64 {
	if err != nil {
		panic(err)
	}
	return v
}

func mustInt(v int64, err error) int64 {
	if err != nil {
		panic(err)
	}
	return v
}

// Laplace adds Laplace noise scaled by sensitivity/epsilon to value.
func Laplace(value, epsilon, sensitivity float64, enforceConstantTime bool) float64 {
	return mustFloat(mechanism.Laplace(src, value, epsilon, sensitivity, enforceConstantTime))
}

// Gaussian adds Gaussian noise to value under (epsilon, delta)-DP, using
// the analytic calibration of Balle & Wang when analytic is true.
func Gaussian(value, epsilon, delta, sensitivity float64, analytic, enforceConstantTime bool) float64 {
	return mustFloat(mechanism.Gaussian(src, value, epsilon, delta, sensitivity, analytic, enforceConstantTime))
}

// SimpleGeometric adds two-sided geometric noise to an integer count,
// clamped to [min, max].
func SimpleGeometric(value int64, epsilon, sensitivity float64, min, max int64, enforceConstantTime bool) int64 {
	return mustInt(mechanism.SimpleGeometric(src, value, epsilon, sensitivity, min, max, enforceConstantTime))
}

// Snapping releases value under Mironov's snapping mechanism, rounding
// the noised value to the nearest representable grid point before
// clamping to [min, max].
func Snapping(value, epsilon, sensitivity, min, max float64, enforceConstantTime bool) float64 {
	return mustFloat(mechanism.Snapping(src, value, epsilon, sensitivity, min, max, enforceConstantTime))
}

// SnappingBinding is Snapping with an explicit binding probability, the
// probability that the final clip binds; epsilon is scaled down by
// (1 - bindingProbability) before the noise is drawn.
func SnappingBinding(value, epsilon, sensitivity, min, max, bindingProbability float64, enforceConstantTime bool) float64 {
	return mustFloat(mechanism.SnappingBinding(src, value, epsilon, sensitivity, min, max, bindingProbability, enforceConstantTime))
}
