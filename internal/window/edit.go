package window

// The helpers below apply a single interactive change to a Params value and
// return the result. They mirror how the timeline controls push one limit
// along with the other, and leave all clamping to Resolve.

// SetLowerLimit moves the lower limit to v. An upper limit below v follows it.
func SetLowerLimit(p Params, v int) Params {
	if v > p.UpperLimit {
		p.UpperLimit = v
	}
	p.LowerLimit = v
	p.Edited = BoundLower
	return p
}

// SetUpperLimit moves the upper limit to v. A lower limit above v follows it.
func SetUpperLimit(p Params, v int) Params {
	if v < p.LowerLimit {
		p.LowerLimit = v
	}
	p.UpperLimit = v
	p.Edited = BoundUpper
	return p
}

// SetTotalExtent changes the extent. Limits and center are re-clamped by the
// next Resolve.
func SetTotalExtent(p Params, v int) Params {
	p.TotalExtent = max(0, v)
	return p
}

// SetViewportCenter moves the requested center.
func SetViewportCenter(p Params, v int) Params {
	p.ViewportCenter = v
	return p
}

// SetRequestedLength changes the requested window length.
func SetRequestedLength(p Params, v int) Params {
	p.RequestedLength = max(0, v)
	return p
}

// LengthFromBoundary handles dragging a window edge of r to v: v is clamped
// into [0, TotalExtent] and the requested length becomes twice its distance
// from the constrained center, capped by the total extent.
func LengthFromBoundary(p Params, r Resolved, v int) Params {
	extent := max(0, p.TotalExtent)
	v = clamp(v, 0, extent)

	d := v - r.ConstrainedCenter
	if d < 0 {
		d = -d
	}
	if d > extent/2 {
		// d*2 would exceed the extent, and may overflow for huge extents.
		p.RequestedLength = extent
		return p
	}
	p.RequestedLength = d * 2
	return p
}
