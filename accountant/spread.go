package accountant

import "github.com/katalvlaran/dpgraph/core"

// Spread replicates a single scalar privacy usage across n columns, the
// shape a mechanism node's ReleaseNode.PrivacyUsages must take regardless
// of how many columns its caller declared the usage for.
func Spread(usage core.PrivacyUsage, n int64) []core.PrivacyUsage {
	usages := make([]core.PrivacyUsage, n)
	for i := range usages {
		usages[i] = usage
	}
	return usages
}
