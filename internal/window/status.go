package window

import (
	"encoding/json"
	"fmt"
)

// Behavior classifies how the ideal window relates to the feasible band.
type Behavior int

const (
	BehaviorZeroLength Behavior = iota
	BehaviorCentered
	BehaviorUpperCompensating
	BehaviorLowerCompensating
	BehaviorBothCompensating
)

func (b Behavior) String() string {
	switch b {
	case BehaviorZeroLength:
		return "Zero Length"
	case BehaviorCentered:
		return "Centered normally"
	case BehaviorUpperCompensating:
		return "Upper side compensating"
	case BehaviorLowerCompensating:
		return "Lower side compensating"
	case BehaviorBothCompensating:
		return "Both sides compensating"
	}
	return fmt.Sprintf("Behavior(%d)", int(b))
}

// Status is the display label of a resolution. It never feeds back into the
// computation.
type Status struct {
	Behavior      Behavior
	LengthReduced bool
}

func (s Status) String() string {
	if s.Behavior == BehaviorZeroLength {
		return s.Behavior.String()
	}
	if s.LengthReduced {
		return s.Behavior.String() + " + Length reduced"
	}
	return s.Behavior.String()
}

// MarshalJSON encodes the status as its label.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Classify labels the window of the given effective length. The ideal edges
// are taken around the viewport center, not the constrained one, so the label
// tells which side the user pushed against. p must be normalized.
func Classify(p Params, length int) Status {
	if length == 0 {
		return Status{Behavior: BehaviorZeroLength}
	}

	lowerHit, upperHit := overflow(FeasibleBand(p), p.ViewportCenter, length)

	s := Status{LengthReduced: length != p.RequestedLength}
	switch {
	case lowerHit && upperHit:
		s.Behavior = BehaviorBothCompensating
	case upperHit:
		s.Behavior = BehaviorUpperCompensating
	case lowerHit:
		s.Behavior = BehaviorLowerCompensating
	default:
		s.Behavior = BehaviorCentered
	}
	return s
}

// IssueCode identifies a constraint violation.
type IssueCode string

const (
	IssueCenterBelowLowerLimit IssueCode = "center_below_lower_limit"
	IssueCenterAboveUpperLimit IssueCode = "center_above_upper_limit"
	IssueLowerBelowZero        IssueCode = "lower_below_zero"
	IssueUpperAboveExtent      IssueCode = "upper_above_extent"
	IssueWidthMismatch         IssueCode = "width_mismatch"
)

// Issue is an advisory diagnostic about a resolved window.
type Issue struct {
	Code    IssueCode `json:"code"`
	Message string    `json:"message"`
}

func (i Issue) String() string {
	return i.Message
}

// Diagnose checks r against the bands it should respect. The list is empty
// for every window produced by Resolve; it is computed anyway so that callers
// which assemble a Resolved by hand get the same checks.
func Diagnose(r Resolved) []Issue {
	p := r.Params
	issues := []Issue{}

	if r.ConstrainedCenter < p.LowerLimit {
		issues = append(issues, Issue{
			Code:    IssueCenterBelowLowerLimit,
			Message: fmt.Sprintf("center %d is below lower limit %d", r.ConstrainedCenter, p.LowerLimit),
		})
	}
	if r.ConstrainedCenter > p.UpperLimit {
		issues = append(issues, Issue{
			Code:    IssueCenterAboveUpperLimit,
			Message: fmt.Sprintf("center %d is above upper limit %d", r.ConstrainedCenter, p.UpperLimit),
		})
	}
	if r.LowerBoundary < 0 {
		issues = append(issues, Issue{
			Code:    IssueLowerBelowZero,
			Message: fmt.Sprintf("lower boundary %d is below 0", r.LowerBoundary),
		})
	}
	if r.UpperBoundary > p.TotalExtent {
		issues = append(issues, Issue{
			Code:    IssueUpperAboveExtent,
			Message: fmt.Sprintf("upper boundary %d is above total extent %d", r.UpperBoundary, p.TotalExtent),
		})
	}
	if r.Length() != r.EffectiveLength {
		issues = append(issues, Issue{
			Code:    IssueWidthMismatch,
			Message: fmt.Sprintf("window width %d differs from effective length %d", r.Length(), r.EffectiveLength),
		})
	}
	return issues
}
