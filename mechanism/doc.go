// Package mechanism implements the scalar release kernels: Laplace,
// Gaussian (classic and analytic), Simple Geometric, Exponential, and
// Snapping. Each kernel is a pure function of its arguments and a
// random.Source, returning (value, error); privacy-usage bookkeeping and
// per-column broadcasting are the array adapter's job (package arrayop),
// not this package's.
package mechanism
