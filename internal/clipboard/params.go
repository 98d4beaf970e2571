package clipboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/surge-downloader/winres/internal/window"
)

// ErrNoParams is returned when a text contains no recognised parameter.
var ErrNoParams = errors.New("no window parameters found")

var (
	clipboardReadAll   = clipboard.ReadAll
	clipboardWriteAll  = clipboard.WriteAll
	maxClipboardLength = 4096
)

type field int

const (
	fieldExtent field = iota
	fieldLower
	fieldUpper
	fieldCenter
	fieldLength
)

// Parser extracts window parameters from free text such as
// "extent=321 lower=99 upper=148 center=123 length=20".
type Parser struct {
	keys map[string]field
}

func NewParser() *Parser {
	return &Parser{
		keys: map[string]field{
			"extent": fieldExtent, "it": fieldExtent,
			"lower": fieldLower, "liml": fieldLower,
			"upper": fieldUpper, "limu": fieldUpper,
			"center": fieldCenter, "ic": fieldCenter, "ic_viewport": fieldCenter,
			"length": fieldLength, "winn": fieldLength,
		},
	}
}

// Extract overlays every recognised key=value pair of text onto base.
// Pairs may be separated by whitespace, commas or semicolons. Unknown keys are
// skipped; a recognised key with a non-integer value is an error.
//
// Limits are taken as given, whatever their order in the text. Inverted limits
// are left for the resolver's repair policy; when only one limit is present it
// is marked as the edited one.
func (p *Parser) Extract(text string, base window.Params) (window.Params, error) {
	text = strings.TrimSpace(text)
	if len(text) > maxClipboardLength {
		return base, fmt.Errorf("clipboard text too long (%d bytes)", len(text))
	}

	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	found := false
	lowerSet, upperSet := false, false
	out := base
	for _, tok := range tokens {
		key, value, ok := strings.Cut(tok, "=")
		if !ok {
			key, value, ok = strings.Cut(tok, ":")
		}
		if !ok {
			continue
		}
		f, known := p.keys[strings.ToLower(strings.TrimSpace(key))]
		if !known {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return base, fmt.Errorf("parameter %s: %w", key, err)
		}
		switch f {
		case fieldExtent:
			out.TotalExtent = n
		case fieldLower:
			out.LowerLimit = n
			lowerSet = true
		case fieldUpper:
			out.UpperLimit = n
			upperSet = true
		case fieldCenter:
			out.ViewportCenter = n
		case fieldLength:
			out.RequestedLength = n
		}
		found = true
	}

	if !found {
		return base, ErrNoParams
	}

	switch {
	case lowerSet && upperSet:
		out.Edited = window.BoundNone
	case lowerSet:
		out.Edited = window.BoundLower
	case upperSet:
		out.Edited = window.BoundUpper
	}
	return out, nil
}

// ReadParams reads the clipboard and extracts parameters on top of base.
func ReadParams(base window.Params) (window.Params, error) {
	text, err := clipboardReadAll()
	if err != nil {
		return base, fmt.Errorf("read clipboard: %w", err)
	}
	return NewParser().Extract(text, base)
}

// Write copies text to the clipboard.
func Write(text string) error {
	if err := clipboardWriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
