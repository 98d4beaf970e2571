package window

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPolicy is returned when a policy name cannot be parsed.
var ErrUnknownPolicy = errors.New("unknown policy")

// LimitRepair selects how inverted limits are repaired.
type LimitRepair int

const (
	// RepairSwap exchanges the two limits.
	RepairSwap LimitRepair = iota
	// RepairCollapse moves the bound that was not edited last onto the other,
	// leaving a zero width band.
	RepairCollapse
)

// CenterPolicy selects how the constrained center is derived.
type CenterPolicy int

const (
	// CenterMargin keeps half of the requested length between the center and
	// each limit, collapsing to the midpoint when there is not enough room.
	CenterMargin CenterPolicy = iota
	// CenterClamp clamps the viewport center into the feasible band.
	CenterClamp
)

// Parity selects which effective lengths are allowed.
type Parity int

const (
	ParityAny Parity = iota
	// ParityEven rounds the effective length down to an even number so the
	// window splits evenly around the center.
	ParityEven
)

// Policy bundles the three choices on which the known variants disagree.
type Policy struct {
	LimitRepair  LimitRepair  `json:"limit_repair"`
	CenterPolicy CenterPolicy `json:"center"`
	Parity       Parity       `json:"parity"`
}

// VariantA swaps inverted limits, reserves a margin around the center and
// allows odd lengths. It is the default policy.
func VariantA() Policy {
	return Policy{LimitRepair: RepairSwap, CenterPolicy: CenterMargin, Parity: ParityAny}
}

// VariantB collapses inverted limits, clamps the center and keeps lengths even.
func VariantB() Policy {
	return Policy{LimitRepair: RepairCollapse, CenterPolicy: CenterClamp, Parity: ParityEven}
}

// DefaultPolicy returns VariantA.
func DefaultPolicy() Policy {
	return VariantA()
}

// ParsePreset returns the policy for a preset name ("a" or "b").
func ParsePreset(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "a", "variant-a":
		return VariantA(), nil
	case "b", "variant-b":
		return VariantB(), nil
	}
	return Policy{}, fmt.Errorf("%w: preset %q", ErrUnknownPolicy, name)
}

func (r LimitRepair) String() string {
	switch r {
	case RepairSwap:
		return "swap"
	case RepairCollapse:
		return "collapse"
	}
	return fmt.Sprintf("LimitRepair(%d)", int(r))
}

// ParseLimitRepair parses "swap" or "collapse".
func ParseLimitRepair(s string) (LimitRepair, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "swap":
		return RepairSwap, nil
	case "collapse":
		return RepairCollapse, nil
	}
	return 0, fmt.Errorf("%w: limit repair %q", ErrUnknownPolicy, s)
}

func (c CenterPolicy) String() string {
	switch c {
	case CenterMargin:
		return "margin"
	case CenterClamp:
		return "clamp"
	}
	return fmt.Sprintf("CenterPolicy(%d)", int(c))
}

// ParseCenterPolicy parses "margin" or "clamp".
func ParseCenterPolicy(s string) (CenterPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "margin":
		return CenterMargin, nil
	case "clamp":
		return CenterClamp, nil
	}
	return 0, fmt.Errorf("%w: center policy %q", ErrUnknownPolicy, s)
}

func (p Parity) String() string {
	switch p {
	case ParityAny:
		return "any"
	case ParityEven:
		return "even"
	}
	return fmt.Sprintf("Parity(%d)", int(p))
}

// ParseParity parses "any" or "even".
func ParseParity(s string) (Parity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "any":
		return ParityAny, nil
	case "even":
		return ParityEven, nil
	}
	return 0, fmt.Errorf("%w: parity %q", ErrUnknownPolicy, s)
}

// MarshalText implements encoding.TextMarshaler.
func (r LimitRepair) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *LimitRepair) UnmarshalText(b []byte) error {
	v, err := ParseLimitRepair(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c CenterPolicy) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CenterPolicy) UnmarshalText(b []byte) error {
	v, err := ParseCenterPolicy(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Parity) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Parity) UnmarshalText(b []byte) error {
	v, err := ParseParity(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p Policy) String() string {
	return fmt.Sprintf("repair=%s center=%s parity=%s", p.LimitRepair, p.CenterPolicy, p.Parity)
}
