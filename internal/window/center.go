package window

// ConstrainCenter projects the viewport center into the feasible band
// according to pol.CenterPolicy. p must be normalized.
func ConstrainCenter(p Params, pol Policy) int {
	band := FeasibleBand(p)
	if band.Upper < band.Lower {
		// Unreachable after Normalize.
		return band.Lower
	}

	if pol.CenterPolicy == CenterClamp {
		return clamp(p.ViewportCenter, band.Lower, band.Upper)
	}

	// The margin is reserved from the requested length, not the effective
	// one: a window that had to shrink collapses onto the midpoint.
	if band.Width() < p.RequestedLength {
		return band.Lower + halfUp(band.Upper-band.Lower)
	}

	margin := halfUp(p.RequestedLength)
	lo, hi := band.Lower+margin, band.Upper-margin
	if lo > hi {
		return clamp(p.ViewportCenter, band.Lower, band.Upper)
	}
	return clamp(p.ViewportCenter, lo, hi)
}
