package window

// MaxLength returns the largest window that fits between the limits and
// inside the extent. p must be normalized.
func MaxLength(p Params) int {
	return max(0, min(p.UpperLimit-p.LowerLimit, p.TotalExtent))
}

// EffectiveLength caps the requested length by the available room. With
// ParityEven the result is rounded down to an even number. p must be
// normalized.
func EffectiveLength(p Params, pol Policy) int {
	if p.RequestedLength <= 0 {
		return 0
	}
	n := min(p.RequestedLength, MaxLength(p))
	if pol.Parity == ParityEven {
		n -= n % 2
	}
	return n
}
