package clipboard

import (
	"errors"
	"strings"
	"testing"

	"github.com/surge-downloader/winres/internal/window"
)

func TestNewParser(t *testing.T) {
	p := NewParser()
	if p == nil {
		t.Fatal("NewParser() returned nil")
	}
	for _, k := range []string{"extent", "lower", "upper", "center", "length"} {
		if _, ok := p.keys[k]; !ok {
			t.Errorf("NewParser() does not know key %q", k)
		}
	}
}

func TestParser_Extract(t *testing.T) {
	p := NewParser()
	base := window.Params{TotalExtent: 10, LowerLimit: 1, UpperLimit: 9, ViewportCenter: 5, RequestedLength: 2}

	tests := []struct {
		name     string
		input    string
		expected window.Params
		wantErr  error
	}{
		{
			name:     "all keys",
			input:    "extent=321 lower=99 upper=148 center=123 length=20",
			expected: window.Params{TotalExtent: 321, LowerLimit: 99, UpperLimit: 148, ViewportCenter: 123, RequestedLength: 20},
		},
		{
			name:     "aliases and commas",
			input:    "IT=50, LimL=2, LimU=40, IC=7, WinN=4",
			expected: window.Params{TotalExtent: 50, LowerLimit: 2, UpperLimit: 40, ViewportCenter: 7, RequestedLength: 4},
		},
		{
			name:     "colon separators",
			input:    "center:8\nlength:6",
			expected: window.Params{TotalExtent: 10, LowerLimit: 1, UpperLimit: 9, ViewportCenter: 8, RequestedLength: 6},
		},
		{
			name:     "partial keeps base",
			input:    "center=8;length=6",
			expected: window.Params{TotalExtent: 10, LowerLimit: 1, UpperLimit: 9, ViewportCenter: 8, RequestedLength: 6},
		},
		{
			name:     "single lower limit is an edit",
			input:    "lower=12",
			expected: window.Params{TotalExtent: 10, LowerLimit: 12, UpperLimit: 9, ViewportCenter: 5, RequestedLength: 2, Edited: window.BoundLower},
		},
		{
			name:     "single upper limit is an edit",
			input:    "limu=0",
			expected: window.Params{TotalExtent: 10, LowerLimit: 1, UpperLimit: 0, ViewportCenter: 5, RequestedLength: 2, Edited: window.BoundUpper},
		},
		{
			name:     "inverted limits kept as given",
			input:    "lower=8 upper=3",
			expected: window.Params{TotalExtent: 10, LowerLimit: 8, UpperLimit: 3, ViewportCenter: 5, RequestedLength: 2},
		},
		{
			name:     "unknown keys ignored",
			input:    "zoom=3 center=4",
			expected: window.Params{TotalExtent: 10, LowerLimit: 1, UpperLimit: 9, ViewportCenter: 4, RequestedLength: 2},
		},
		{
			name:     "nothing recognised",
			input:    "https://example.com",
			expected: base,
			wantErr:  ErrNoParams,
		},
		{
			name:     "empty",
			input:    "   ",
			expected: base,
			wantErr:  ErrNoParams,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Extract(tt.input, base)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Extract(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("Extract(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Extract(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParser_ExtractLimitOrder(t *testing.T) {
	p := NewParser()
	base := window.Params{TotalExtent: 321, LowerLimit: 99, UpperLimit: 148, ViewportCenter: 123, RequestedLength: 20}

	a, err := p.Extract("lower=150 upper=100", base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := p.Extract("upper=100 lower=150", base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Fatalf("key order changed the result: %+v vs %+v", a, b)
	}

	got := window.New(window.VariantA()).Resolve(a)
	if got.Params.LowerLimit != 100 || got.Params.UpperLimit != 150 {
		t.Errorf("limits = %d..%d, want 100..150", got.Params.LowerLimit, got.Params.UpperLimit)
	}
	if got.EffectiveLength != 20 {
		t.Errorf("EffectiveLength = %d, want 20", got.EffectiveLength)
	}
}

func TestParser_ExtractBadNumber(t *testing.T) {
	_, err := NewParser().Extract("extent=big", window.Params{})
	if err == nil || !strings.Contains(err.Error(), "extent") {
		t.Fatalf("expected error naming the key, got %v", err)
	}
}

func TestParser_ExtractTooLong(t *testing.T) {
	_, err := NewParser().Extract("center=1 "+strings.Repeat("x", maxClipboardLength), window.Params{})
	if err == nil {
		t.Fatal("expected error for oversized text")
	}
}

func TestReadParams(t *testing.T) {
	original := clipboardReadAll
	t.Cleanup(func() {
		clipboardReadAll = original
	})

	t.Run("clipboard read error", func(t *testing.T) {
		clipboardReadAll = func() (string, error) {
			return "", errors.New("no clipboard")
		}
		if _, err := ReadParams(window.Params{}); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("clipboard text has params", func(t *testing.T) {
		clipboardReadAll = func() (string, error) {
			return "extent=100 center=30", nil
		}
		got, err := ReadParams(window.Params{RequestedLength: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := window.Params{TotalExtent: 100, ViewportCenter: 30, RequestedLength: 10}
		if got != want {
			t.Errorf("ReadParams() = %+v, want %+v", got, want)
		}
	})
}

func TestWrite(t *testing.T) {
	original := clipboardWriteAll
	t.Cleanup(func() {
		clipboardWriteAll = original
	})

	var written string
	clipboardWriteAll = func(s string) error {
		written = s
		return nil
	}
	if err := Write("hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if written != "hello" {
		t.Errorf("Write stored %q", written)
	}

	clipboardWriteAll = func(string) error { return errors.New("denied") }
	if err := Write("x"); err == nil {
		t.Fatal("expected error")
	}
}
