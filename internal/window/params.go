// Package window resolves a constrained viewing window over a bounded integer
// range. Given a requested center and length, soft limits and a total extent,
// it derives a clamped center, an effective length and window boundaries that
// stay inside both the limits and the extent.
//
// Everything here is a pure function of its inputs. Callers own the Params
// value, mutate it on every input event and call Resolve again.
package window

// Bound identifies one of the two soft limits.
type Bound int

const (
	BoundNone Bound = iota
	BoundLower
	BoundUpper
)

// Params holds the caller-owned inputs of a resolution.
type Params struct {
	ViewportCenter  int `json:"viewport_center"`  // Unconstrained, user requested center
	RequestedLength int `json:"requested_length"` // Desired window length
	LowerLimit      int `json:"lower_limit"`
	UpperLimit      int `json:"upper_limit"`
	TotalExtent     int `json:"total_extent"` // Valid domain is [0, TotalExtent]

	// Edited is the limit the caller changed last. Only the collapse repair
	// looks at it.
	Edited Bound `json:"-"`
}

// Resolved is the derived window. It is recomputed from Params and never
// mutated on its own.
type Resolved struct {
	ConstrainedCenter int `json:"constrained_center"`
	EffectiveLength   int `json:"effective_length"`
	LowerBoundary     int `json:"lower_boundary"`
	UpperBoundary     int `json:"upper_boundary"`

	// Params are the normalized parameters the window was computed from.
	Params Params  `json:"params"`
	Status Status  `json:"status"`
	Issues []Issue `json:"issues"`
}

// Band is the feasible interval [Lower, Upper] the window must stay in.
type Band struct {
	Lower int
	Upper int
}

// Width returns the room inside the band, never negative.
func (b Band) Width() int {
	if b.Upper < b.Lower {
		return 0
	}
	return b.Upper - b.Lower
}

// FeasibleBand returns [max(0, LowerLimit), min(UpperLimit, TotalExtent)].
func FeasibleBand(p Params) Band {
	return Band{
		Lower: max(0, p.LowerLimit),
		Upper: min(p.UpperLimit, p.TotalExtent),
	}
}

// Length returns UpperBoundary - LowerBoundary.
func (r Resolved) Length() int {
	return r.UpperBoundary - r.LowerBoundary
}

// CenterMoved reports whether the constrained center differs from the
// requested one.
func (r Resolved) CenterMoved() bool {
	return r.ConstrainedCenter != r.Params.ViewportCenter
}

// LengthReduced reports whether the requested length had to be capped.
func (r Resolved) LengthReduced() bool {
	return r.EffectiveLength != r.Params.RequestedLength
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// halfUp returns round(n/2) for n >= 0, with halves rounding up.
func halfUp(n int) int {
	return n/2 + n%2
}
