// Package noise implements the bit-exact and distributional primitives
// shared by every DP mechanism: IEEE-754 decompose/recompose, the
// snapping-lattice rounding helper get_closest_multiple_of_lambda, and the
// Laplace/truncated-Gaussian/Gumbel samplers built on top of package
// random's uniform draws.
//
// Everything here is a pure function of its inputs and a random.Source; no
// primitive in this package retains state between calls.
package noise
