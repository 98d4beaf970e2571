package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surge-downloader/winres/internal/scenario"
	"github.com/surge-downloader/winres/internal/window"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func exampleParams() window.Params {
	return window.Params{TotalExtent: 321, LowerLimit: 99, UpperLimit: 148, ViewportCenter: 145, RequestedLength: 20}
}

func TestText(t *testing.T) {
	pol := window.VariantA()
	out := Text(pol, window.New(pol).Resolve(exampleParams()))

	for _, want := range []string{
		"Window",
		"repair=swap center=margin parity=any",
		"99 .. 148",
		"145",
		"138",
		"128 .. 148",
		"Upper side compensating",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Issues")
}

func TestText_ShowsIssues(t *testing.T) {
	r := window.Resolve(exampleParams())
	r.UpperBoundary = 400
	r.Issues = window.Diagnose(r)
	require.NotEmpty(t, r.Issues)

	out := Text(window.VariantA(), r)
	assert.Contains(t, out, "Issues")
	assert.Contains(t, out, "upper boundary 400 is above total extent 321")
}

func TestWriteJSON(t *testing.T) {
	pol := window.VariantB()
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, pol, window.New(pol).Resolve(exampleParams())))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "repair=collapse center=clamp parity=even", got["policy"])
	assert.Equal(t, float64(145), got["constrained_center"])
	assert.Equal(t, float64(20), got["effective_length"])
	assert.Equal(t, float64(128), got["lower_boundary"])
	assert.Equal(t, float64(148), got["upper_boundary"])
	assert.Equal(t, "Upper side compensating", got["status"])
	assert.Equal(t, []any{}, got["issues"])

	params, ok := got["params"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(321), params["total_extent"])
	assert.NotContains(t, params, "Edited")
}

func TestMarshalJSON(t *testing.T) {
	s, err := MarshalJSON(window.VariantA(), window.Resolve(exampleParams()))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, "{"))
	assert.Contains(t, s, `"status": "Upper side compensating"`)
}

func TestWriteResults(t *testing.T) {
	results := []scenario.Result{
		{File: "a.yaml", Name: "ok"},
		{File: "a.yaml", Name: "bad", Policy: window.VariantA(), Diff: "-want\n+got\n"},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, results))

	out := buf.String()
	assert.Contains(t, out, "PASS a.yaml: ok")
	assert.Contains(t, out, "FAIL a.yaml: bad (repair=swap center=margin parity=any)")
	assert.Contains(t, out, "    -want\n    +got\n")
	assert.Contains(t, out, "1 passed, 1 failed")
}
