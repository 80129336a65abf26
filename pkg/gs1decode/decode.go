package gs1decode

import (
	"strings"

	"github.com/mohammedfouly1/PharmaInventory/pkg/aidict"
	"github.com/mohammedfouly1/PharmaInventory/pkg/gs1beam"
	"github.com/mohammedfouly1/PharmaInventory/pkg/gs1normalize"
	"github.com/mohammedfouly1/PharmaInventory/pkg/gs1token"
)

// Decode normalizes raw, then recovers and validates its AI/value
// elements. A clean, fully-separated string takes the fast tokenizer
// path in full; anything the tokenizer can't resolve on its own (no
// separators at all, or a separator-bearing string with an unresolved
// boundary) is handed to the beam-search reconstructor instead.
func Decode(raw string, opts Options) DecodeResult {
	dict := opts.Dictionary
	if dict == nil {
		dict = aidict.Default
	}
	centuryPivot := opts.CenturyPivot
	if centuryPivot == 0 {
		centuryPivot = 51
	}

	stripped, symbology := gs1normalize.StripSymbology(raw)
	normalized := gs1normalize.Normalize(stripped, opts.GSCharacters)

	result := DecodeResult{
		Raw:                 raw,
		Normalized:          normalized,
		SymbologyIdentifier: symbology,
	}

	if normalized == "" {
		result.Errors = append(result.Errors, Diagnostic{
			Code:    CodeInvalidFormat,
			Message: "empty input after normalization",
		})
		return result
	}

	gsSeen := strings.IndexByte(normalized, gs1normalize.GroupSeparator) >= 0
	result.GSSeen = gsSeen

	if !gsSeen {
		return decodeWithReconstructor(result, normalized, dict, opts, centuryPivot)
	}

	tokRes := gs1token.Tokenize(normalized, 0, gsSeen, dict)
	diagnostics := tokenDiagnostics(tokRes)

	if !tokRes.NeedsSolver {
		result.Elements = buildElementsFromTokens(tokRes, centuryPivot)
		result.Errors = diagnostics
		result.Confidence = fastPathConfidence(result.Elements, diagnostics)
		return result
	}

	if !opts.AllowAmbiguous {
		result.Elements = buildElementsFromTokens(tokRes, centuryPivot)
		result.Errors = diagnostics
		result.Confidence = 0.5
		return result
	}

	return decodeWithReconstructor(result, normalized, dict, opts, centuryPivot)
}

func tokenDiagnostics(tokRes gs1token.Result) []Diagnostic {
	diags := make([]Diagnostic, 0, len(tokRes.Errors))
	for _, e := range tokRes.Errors {
		diags = append(diags, Diagnostic{Code: Code(e.Code), Message: e.Message, AtIndex: e.AtIndex, AI: e.AI})
	}
	return diags
}

func buildElementsFromTokens(tokRes gs1token.Result, centuryPivot int) []DecodedElement {
	elements := make([]DecodedElement, 0, len(tokRes.Elements))
	for _, e := range tokRes.Elements {
		elements = append(elements, buildElement(elementContext{
			ai:         e.AI,
			value:      e.RawValue,
			startIndex: e.StartIndex,
			endIndex:   e.EndIndex,
			spec:       e.Spec,
		}, centuryPivot))
	}
	return elements
}

func fastPathConfidence(elements []DecodedElement, errors []Diagnostic) float64 {
	confidence := 1.0
	if len(errors) > 0 {
		confidence = 0.9 - float64(len(errors))*0.05
	}
	if len(elements) > 0 {
		validCount := 0
		for _, e := range elements {
			if e.Valid {
				validCount++
			}
		}
		confidence *= 0.8 + 0.2*(float64(validCount)/float64(len(elements)))
	}
	if confidence < 0 {
		confidence = 0
	}
	return confidence
}

// decodeWithReconstructor hands normalized to the beam-search
// reconstructor, the single unified path for both a fully
// separator-free string and a separator-bearing one whose boundaries
// the fast-path scan couldn't resolve on its own.
func decodeWithReconstructor(result DecodeResult, normalized string, dict *aidict.Dictionary, opts Options, centuryPivot int) DecodeResult {
	result.UsedReconstructor = true

	beamResult := gs1beam.Parse(normalized, opts.beamOptions())
	result.Confidence = beamResult.Confidence

	for _, flag := range beamResult.Flags {
		code := Code(flag)
		msg := "reconstructed AI boundaries from a string with no usable separators"
		if flag == "AMBIGUOUS_PARSE" {
			msg = "multiple plausible reconstructions found; returning the highest-scoring one with alternatives"
		}
		if flag == "NO_VALID_PARSE" {
			code = CodeInvalidFormat
			msg = "no valid reconstruction found"
		}
		result.Errors = append(result.Errors, Diagnostic{Code: code, Message: msg})
	}
	for _, w := range beamResult.Warnings {
		result.Warnings = append(result.Warnings, Diagnostic{Code: CodeInvalidFormat, Message: w})
	}

	if len(beamResult.Best) == 0 {
		return result
	}

	elements := make([]DecodedElement, 0, len(beamResult.Best))
	for _, pe := range beamResult.Best {
		elements = append(elements, buildElement(elementContext{
			ai:         pe.AI,
			value:      pe.RawValue,
			startIndex: pe.StartPos,
			endIndex:   pe.EndPos,
			spec:       dict.Get(pe.AI),
		}, centuryPivot))
	}
	result.Elements = elements

	maxAlt := opts.MaxAlternatives
	if maxAlt <= 0 {
		maxAlt = 5
	}
	for i, alt := range beamResult.Alternatives {
		if i >= maxAlt {
			break
		}
		altElements := make([]AltElement, 0, len(alt.Elements))
		for _, pe := range alt.Elements {
			name := ""
			if spec := dict.Get(pe.AI); spec != nil {
				name = spec.Title
			}
			altElements = append(altElements, AltElement{
				AI:       pe.AI,
				Name:     name,
				RawValue: pe.RawValue,
				Valid:    pe.Valid,
			})
		}
		result.Alternatives = append(result.Alternatives, Alternative{
			Confidence: relativeConfidence(alt.Score, beamResult.BestScore),
			Elements:   altElements,
			Notes:      alt.Reasoning,
		})
	}

	return result
}

// relativeConfidence scales an alternative's raw beam score against
// the winning path's, since only the winner gets the calibrated
// score-gap confidence formula.
func relativeConfidence(score, bestScore float64) float64 {
	if bestScore <= 0 {
		return 0
	}
	c := score / bestScore
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
