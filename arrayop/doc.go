// Package arrayop is the array adapter every mechanism node passes
// through before its scalar kernel runs: it determines num_columns,
// standardizes per-column arguments (a scalar broadcasts to every
// column; an array must match num_columns exactly), and iterates data
// row-major, column then cell, invoking the scalar kernel once per
// element. Mechanisms are stateless, so this iteration order is an
// implementation choice, not an observable guarantee.
package arrayop
