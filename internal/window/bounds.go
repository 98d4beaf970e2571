package window

// Boundaries places a window of the given length as close as possible to
// center, inside the feasible band of p. When the ideal window overflows one
// side it is shifted, never shrunk. An odd length puts the extra unit above
// the center.
//
// length must not exceed MaxLength(p) and center must lie in the band.
func Boundaries(p Params, center, length int) (lower, upper int) {
	if length <= 0 {
		return center, center
	}
	band := FeasibleBand(p)

	below := length / 2
	above := length - below

	// Compare on differences, center +/- length can overflow near the int
	// limits.
	switch {
	case above > band.Upper-center:
		return band.Upper - length, band.Upper
	case below > center-band.Lower:
		return band.Lower, band.Lower + length
	}
	return center - below, center + above
}

// overflow reports which sides of band the ideal window center +/- length/2
// would cross. For odd lengths the half is fractional; halfUp(length) > d is
// the integer form of length/2 > d on both sides.
func overflow(band Band, center, length int) (lowerHit, upperHit bool) {
	half := halfUp(length)
	return half > center-band.Lower, half > band.Upper-center
}
