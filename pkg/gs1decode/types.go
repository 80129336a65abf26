// Package gs1decode is the top-level entry point: it normalizes a raw
// scanned element string, tokenizes it, falls back to the beam-search
// reconstructor when the fast path can't resolve AI boundaries on its
// own, and runs every recovered element through the AI dictionary's
// declared syntax and the independent validators in pkg/gs1validate.
package gs1decode

import "github.com/mohammedfouly1/PharmaInventory/pkg/aidict"

// Code identifies the kind of problem a Diagnostic reports. Values
// mirror the decoder's documented error taxonomy.
type Code string

const (
	CodeMissingSeparator  Code = "MISSING_SEPARATOR"
	CodeAmbiguousParse    Code = "AMBIGUOUS_PARSE"
	CodeUnknownAI         Code = "UNKNOWN_AI"
	CodeInvalidLength     Code = "INVALID_LENGTH"
	CodeInvalidFormat     Code = "INVALID_FORMAT"
	CodeInvalidCheckDigit Code = "INVALID_CHECK_DIGIT"
	CodeInvalidDate       Code = "INVALID_DATE"
	CodeExtraSeparator    Code = "EXTRA_SEPARATOR"
	CodeInvalidCharacters Code = "INVALID_CHARACTERS"
	CodeTruncatedData     Code = "TRUNCATED_DATA"
)

// Diagnostic is one error or warning surfaced anywhere during decode:
// tokenization, dictionary lookup, or element validation.
type Diagnostic struct {
	Code    Code
	Message string
	AtIndex int
	AI      string
}

// DecodedElement is one AI/value pair after validation.
type DecodedElement struct {
	AI         string
	Name       string
	RawValue   string
	Value      any // float64 for decimal-position AIs, string otherwise
	Valid      bool
	Errors     []string
	Warnings   []string
	Meta       map[string]any
	StartIndex int
	EndIndex   int
}

// AltElement is one element of a non-winning reconstruction, kept only
// for explanation, not validated as thoroughly as the winning parse.
type AltElement struct {
	AI       string
	Name     string
	RawValue string
	Valid    bool
}

// Alternative is a non-winning candidate parse from the beam-search
// reconstructor, surfaced when the decode is ambiguous.
type Alternative struct {
	Confidence float64
	Elements   []AltElement
	Notes      []string
}

// DecodeResult is the outcome of decoding one element string.
type DecodeResult struct {
	Raw                 string
	Normalized          string
	SymbologyIdentifier string
	GSSeen              bool
	UsedReconstructor   bool
	Elements            []DecodedElement
	Errors              []Diagnostic
	Warnings            []Diagnostic
	Alternatives        []Alternative
	Confidence          float64
}

// HasErrorCode reports whether any Diagnostic in Errors carries code.
func (r DecodeResult) HasErrorCode(code Code) bool {
	for _, e := range r.Errors {
		if e.Code == code {
			return true
		}
	}
	return false
}

// elementContext bundles the pieces buildElement needs to
// turn a raw AI/value pair into a DecodedElement, independent of
// whether it came from the tokenizer or the reconstructor.
type elementContext struct {
	ai         string
	value      string
	startIndex int
	endIndex   int
	spec       *aidict.Spec // nil if the AI is unrecognized by the full dictionary
}
