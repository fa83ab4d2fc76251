// Package transform supplies the minimal, concretely wired data
// transformations and aggregators a DP pipeline needs upstream of a
// mechanism node: Clamp, Impute (continuous and categorical), the
// row-wise Min/Max reducers, and a Mean aggregator implementing
// core.Sensitivity so a mechanism node has a declared sensitivity to
// validate and expand against.
package transform
