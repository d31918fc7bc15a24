package domain

const (
	// DefaultMaxTargets is the reference cap on distinct targets in a graph.
	DefaultMaxTargets = 20
	// DefaultMaxDependencies is the reference cap on dependencies per target.
	DefaultMaxDependencies = 10
)

// Limits holds the optional capacity caps of a graph. A zero field means unbounded.
type Limits struct {
	MaxTargets      int
	MaxDependencies int
}

// DefaultLimits returns the reference limits.
func DefaultLimits() Limits {
	return Limits{
		MaxTargets:      DefaultMaxTargets,
		MaxDependencies: DefaultMaxDependencies,
	}
}

// Unlimited returns limits that never reject a declaration.
func Unlimited() Limits {
	return Limits{}
}

// allows reports whether count more items fit next to used items under limit.
func allows(limit, used, count int) bool {
	return limit <= 0 || used+count <= limit
}
