// Package gs1token implements the fast-path tokenizer: a single
// left-to-right scan that splits a normalized, separator-bearing
// element string into AI/value pairs in O(n). It walks a small state
// machine — Start, ReadAI, FixedValue, VariableValue, Separator, End —
// and falls into AmbiguityDetected whenever a variable-length value
// runs to end-of-string without a trailing separator while another
// known AI could plausibly start inside what it just consumed; that
// signal tells the caller to hand the string to the beam-search
// reconstructor instead of trusting this scan's boundaries.
package gs1token

import (
	"fmt"
	"strings"

	"github.com/mohammedfouly1/PharmaInventory/pkg/aidict"
)

const groupSeparator = '\x1d'

// Element is one AI/value pair recovered by the fast-path scan.
type Element struct {
	AI               string
	Spec             *aidict.Spec
	RawValue         string
	StartIndex       int
	EndIndex         int
	SeparatorRequired bool // carried for the next iteration's superfluous-GS check
}

// Error is a diagnostic raised during tokenization. Code mirrors the
// decoder's error taxonomy (MISSING_SEPARATOR, UNKNOWN_AI, ...) as a
// plain string so this package stays independent of pkg/gs1decode.
type Error struct {
	Code    string
	Message string
	AtIndex int
	AI      string
}

// Result is the outcome of one fast-path scan.
type Result struct {
	Elements    []Element
	Errors      []Error
	NeedsSolver bool
}

// Tokenize scans text (already normalized: separators canonicalized to
// 0x1D) from start, matching AIs against dict. gsSeen tells the scan
// whether the input carried any separator at all, which only affects
// whether a detected ambiguity is also reported as an explicit error
// (a string with no separators anywhere is expected to need the
// reconstructor, so it is not itself an error).
func Tokenize(text string, start int, gsSeen bool, dict *aidict.Dictionary) Result {
	var res Result
	pos := start

	for pos < len(text) {
		if text[pos] == groupSeparator {
			if len(res.Elements) > 0 && !res.Elements[len(res.Elements)-1].SeparatorRequired {
				nextPos := pos + 1
				var nextSpec *aidict.Spec
				if nextPos < len(text) {
					nextSpec, _ = dict.FindLongestMatch(text, nextPos)
				}
				if nextPos >= len(text) || nextSpec == nil {
					res.Errors = append(res.Errors, Error{
						Code:    "EXTRA_SEPARATOR",
						Message: "superfluous GS after fixed-length AI",
						AtIndex: pos,
					})
				}
			}
			pos++
			continue
		}

		spec, aiLen := dict.FindLongestMatch(text, pos)
		if spec == nil {
			end := pos + 4
			if end > len(text) {
				end = len(text)
			}
			res.Errors = append(res.Errors, Error{
				Code:    "UNKNOWN_AI",
				Message: fmt.Sprintf("unknown AI at position %d: %s", pos, text[pos:end]),
				AtIndex: pos,
				AI:      text[pos:end],
			})
			nextGS := strings.IndexByte(text[pos:], groupSeparator)
			if nextGS == -1 {
				pos = len(text)
			} else {
				pos = pos + nextGS + 1
			}
			continue
		}

		aiStart := pos
		pos += aiLen

		var value string
		if spec.FixedLength {
			dataLen := spec.MaxLength
			if pos+dataLen > len(text) {
				res.Errors = append(res.Errors, Error{
					Code:    "TRUNCATED_DATA",
					Message: fmt.Sprintf("truncated data for AI %s", spec.AI),
					AtIndex: pos,
					AI:      spec.AI,
				})
				dataLen = len(text) - pos
			}
			value = text[pos : pos+dataLen]
			pos += dataLen
		} else {
			nextGS := strings.IndexByte(text[pos:], groupSeparator)
			if nextGS != -1 {
				value = text[pos : pos+nextGS]
				pos = pos + nextGS + 1
			} else {
				remaining := text[pos:]
				foundNextAI := false
				maxCheck := spec.MaxLength
				if maxCheck > len(remaining) {
					maxCheck = len(remaining)
				}
				for checkLen := spec.MinLength; checkLen < maxCheck; checkLen++ {
					potentialNext := remaining[checkLen:]
					if len(potentialNext) >= 2 {
						if nextSpec, _ := dict.FindLongestMatch(potentialNext, 0); nextSpec != nil {
							res.NeedsSolver = true
							foundNextAI = true
							break
						}
					}
				}

				if foundNextAI {
					if gsSeen {
						res.Errors = append(res.Errors, Error{
							Code:    "MISSING_SEPARATOR",
							Message: fmt.Sprintf("AI(%s) variable-length followed by another AI without GS", spec.AI),
							AtIndex: pos,
							AI:      spec.AI,
						})
					}
					dataLen := spec.MaxLength
					if dataLen > len(remaining) {
						dataLen = len(remaining)
					}
					value = remaining[:dataLen]
					pos += dataLen
				} else {
					value = remaining
					pos = len(text)
				}
			}
		}

		res.Elements = append(res.Elements, Element{
			AI:                spec.AI,
			Spec:              spec,
			RawValue:          value,
			StartIndex:        aiStart,
			EndIndex:          pos,
			SeparatorRequired: !spec.FixedLength,
		})
	}

	return res
}
