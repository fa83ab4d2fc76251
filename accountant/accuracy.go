package accountant

import (
	"math"

	"github.com/katalvlaran/dpgraph/core"
)

// LaplaceAccuracyToUsage returns the epsilon that bounds the Laplace
// mechanism's error by accuracy with confidence 1-alpha:
// epsilon = ln(1/alpha) * sensitivity / accuracy.
func LaplaceAccuracyToUsage(accuracy, sensitivity, alpha float64) (float64, error) {
	if err := checkAccuracyArgs(accuracy, sensitivity, alpha); err != nil {
		return 0, err
	}
	return math.Log(1/alpha) * sensitivity / accuracy, nil
}

// LaplaceUsageToAccuracy is the inverse of LaplaceAccuracyToUsage; the
// formula is self-inverse, so accuracy_to_usage(usage_to_accuracy(e)) ==
// e within floating-point rounding (testable property #8).
func LaplaceUsageToAccuracy(epsilon, sensitivity, alpha float64) (float64, error) {
	if epsilon <= 0 {
		return 0, core.NewError(core.InvalidParameter, "laplace_usage_to_accuracy: epsilon must be positive")
	}
	if sensitivity < 0 {
		return 0, core.NewError(core.InvalidParameter, "laplace_usage_to_accuracy: sensitivity must be non-negative")
	}
	if alpha <= 0 || alpha >= 1 {
		return 0, core.NewError(core.InvalidParameter, "laplace_usage_to_accuracy: alpha must be in (0, 1)")
	}
	return math.Log(1/alpha) * sensitivity / epsilon, nil
}

// GaussianAccuracyToUsage returns the epsilon such that the classic
// Gaussian mechanism's error stays within accuracy with confidence
// 1-alpha, inverting sigma(epsilon, delta, sensitivity).
func GaussianAccuracyToUsage(accuracy, delta, sensitivity, alpha float64) (float64, error) {
	if err := checkAccuracyArgs(accuracy, sensitivity, alpha); err != nil {
		return 0, err
	}
	if delta <= 0 || delta >= 1 {
		return 0, core.NewError(core.InvalidParameter, "gaussian_accuracy_to_usage: delta must be in (0, 1)")
	}
	sigma := accuracy / zScore(alpha)
	return sensitivity * math.Sqrt(2*math.Log(1.25/delta)) / sigma, nil
}

// GaussianUsageToAccuracy is the inverse of GaussianAccuracyToUsage.
func GaussianUsageToAccuracy(epsilon, delta, sensitivity, alpha float64) (float64, error) {
	if epsilon <= 0 {
		return 0, core.NewError(core.InvalidParameter, "gaussian_usage_to_accuracy: epsilon must be positive")
	}
	if sensitivity < 0 {
		return 0, core.NewError(core.InvalidParameter, "gaussian_usage_to_accuracy: sensitivity must be non-negative")
	}
	if alpha <= 0 || alpha >= 1 {
		return 0, core.NewError(core.InvalidParameter, "gaussian_usage_to_accuracy: alpha must be in (0, 1)")
	}
	if delta <= 0 || delta >= 1 {
		return 0, core.NewError(core.InvalidParameter, "gaussian_usage_to_accuracy: delta must be in (0, 1)")
	}
	sigma := sensitivity * math.Sqrt(2*math.Log(1.25/delta)) / epsilon
	return zScore(alpha) * sigma, nil
}

// zScore returns the two-sided standard-normal critical value z such
// that Pr[|Z| > z] = alpha.
func zScore(alpha float64) float64 {
	return math.Sqrt2 * math.Erfinv(1-alpha)
}

func checkAccuracyArgs(accuracy, sensitivity, alpha float64) error {
	if accuracy <= 0 {
		return core.NewError(core.InvalidParameter, "accuracy must be positive")
	}
	if sensitivity < 0 {
		return core.NewError(core.InvalidParameter, "sensitivity must be non-negative")
	}
	if alpha <= 0 || alpha >= 1 {
		return core.NewError(core.InvalidParameter, "alpha must be in (0, 1)")
	}
	return nil
}
