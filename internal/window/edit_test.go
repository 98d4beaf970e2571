package window

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLowerLimit_PushesUpper(t *testing.T) {
	p := baseParams()

	p = SetLowerLimit(p, 120)
	assert.Equal(t, 120, p.LowerLimit)
	assert.Equal(t, 148, p.UpperLimit)

	p = SetLowerLimit(p, 200)
	assert.Equal(t, 200, p.LowerLimit)
	assert.Equal(t, 200, p.UpperLimit)
	assert.Equal(t, BoundLower, p.Edited)
}

func TestSetUpperLimit_PushesLower(t *testing.T) {
	p := baseParams()

	p = SetUpperLimit(p, 50)
	assert.Equal(t, 50, p.LowerLimit)
	assert.Equal(t, 50, p.UpperLimit)
	assert.Equal(t, BoundUpper, p.Edited)

	got := Resolve(p)
	assert.Equal(t, 50, got.ConstrainedCenter)
	assert.Equal(t, "Zero Length", got.Status.String())
}

func TestSetters_ClampNegatives(t *testing.T) {
	p := baseParams()
	assert.Equal(t, 0, SetTotalExtent(p, -1).TotalExtent)
	assert.Equal(t, 0, SetRequestedLength(p, -10).RequestedLength)
	assert.Equal(t, 77, SetViewportCenter(p, 77).ViewportCenter)
}

func TestLengthFromBoundary(t *testing.T) {
	p := baseParams()
	r := Resolve(p)
	assert.Equal(t, 123, r.ConstrainedCenter)

	tests := []struct {
		name  string
		value int
		want  int
	}{
		{name: "above center", value: 133, want: 20},
		{name: "below center", value: 100, want: 46},
		{name: "on center", value: 123, want: 0},
		{name: "capped by extent", value: 2000, want: 321},
		{name: "below zero clamps to zero", value: -1 << 40, want: 246},
		{name: "min int", value: math.MinInt, want: 246},
		{name: "max int", value: math.MaxInt, want: 321},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LengthFromBoundary(p, r, tt.value)
			assert.Equal(t, tt.want, got.RequestedLength)
		})
	}
}

func TestLengthFromBoundary_ClampsValue(t *testing.T) {
	p := Params{TotalExtent: 100, LowerLimit: 0, UpperLimit: 100, RequestedLength: 10}

	r := Resolved{ConstrainedCenter: 0}
	assert.Equal(t, 0, LengthFromBoundary(p, r, math.MinInt).RequestedLength)
	assert.Equal(t, 100, LengthFromBoundary(p, r, math.MaxInt).RequestedLength)

	r = Resolved{ConstrainedCenter: 80}
	assert.Equal(t, 100, LengthFromBoundary(p, r, math.MinInt).RequestedLength)
	assert.Equal(t, 40, LengthFromBoundary(p, r, 500).RequestedLength)

	p.TotalExtent = 0
	assert.Equal(t, 0, LengthFromBoundary(p, r, 7).RequestedLength)
}

func TestNormalize_CollapseWithoutEdit(t *testing.T) {
	p := Params{TotalExtent: 100, LowerLimit: 70, UpperLimit: 30}
	got := Normalize(p, VariantB())
	assert.Equal(t, 70, got.LowerLimit)
	assert.Equal(t, 70, got.UpperLimit)
}

func TestNormalize_ClampsBeforeOrdering(t *testing.T) {
	p := Params{TotalExtent: 100, LowerLimit: 500, UpperLimit: -20, ViewportCenter: 101}
	got := Normalize(p, VariantA())
	assert.Equal(t, 0, got.LowerLimit)
	assert.Equal(t, 100, got.UpperLimit)
	assert.Equal(t, 100, got.ViewportCenter)
}
