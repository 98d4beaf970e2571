package window

// Normalize repairs p into a well formed state: non-negative extent and
// length, ordered limits, and limits and viewport center inside
// [0, TotalExtent]. The input is not modified.
func Normalize(p Params, pol Policy) Params {
	if p.TotalExtent < 0 {
		p.TotalExtent = 0
	}
	if p.RequestedLength < 0 {
		p.RequestedLength = 0
	}

	p = repairLimits(p, pol.LimitRepair)

	p.LowerLimit = clamp(p.LowerLimit, 0, p.TotalExtent)
	p.UpperLimit = clamp(p.UpperLimit, 0, p.TotalExtent)
	p.ViewportCenter = clamp(p.ViewportCenter, 0, p.TotalExtent)

	// Clamping keeps the order of ordered limits, but run the repair once
	// more so an ordered result never depends on that.
	return repairLimits(p, pol.LimitRepair)
}

func repairLimits(p Params, repair LimitRepair) Params {
	if p.LowerLimit <= p.UpperLimit {
		return p
	}
	switch repair {
	case RepairCollapse:
		if p.Edited == BoundUpper {
			p.LowerLimit = p.UpperLimit
		} else {
			p.UpperLimit = p.LowerLimit
		}
	default:
		p.LowerLimit, p.UpperLimit = p.UpperLimit, p.LowerLimit
	}
	return p
}
