package window

// Resolver resolves windows under a fixed policy. It holds no mutable state
// and is safe for concurrent use.
type Resolver struct {
	policy Policy
}

// New returns a Resolver using pol.
func New(pol Policy) Resolver {
	return Resolver{policy: pol}
}

// Policy returns the resolver's policy.
func (r Resolver) Policy() Policy {
	return r.policy
}

// Resolve normalizes p and derives the constrained window.
func (r Resolver) Resolve(p Params) Resolved {
	n := Normalize(p, r.policy)

	length := EffectiveLength(n, r.policy)
	center := ConstrainCenter(n, r.policy)
	lower, upper := Boundaries(n, center, length)

	res := Resolved{
		ConstrainedCenter: center,
		EffectiveLength:   length,
		LowerBoundary:     lower,
		UpperBoundary:     upper,
		Params:            n,
		Status:            Classify(n, length),
	}
	res.Issues = Diagnose(res)
	return res
}

// Resolve resolves p with the default policy.
func Resolve(p Params) Resolved {
	return New(DefaultPolicy()).Resolve(p)
}
