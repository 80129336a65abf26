package gs1beam

import (
	"sort"
	"strings"

	"github.com/mohammedfouly1/PharmaInventory/pkg/aidict"
)

// Parse reconstructs AI boundaries in input, an element string with no
// (or unreliable) group separators, by beam-searching over candidate
// splits and scoring each with Options.Weights.
func Parse(input string, opts Options) Result {
	candidates := beamSearch(input, opts)

	if len(candidates) == 0 {
		return Result{
			InputString: input,
			BestScore:   negInf,
			Confidence:  0,
			Flags:       []string{"NO_VALID_PARSE"},
			Warnings:    []string{"no valid parse found"},
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })
	best := candidates[0]

	var confidence float64
	switch {
	case len(best.elements) == 0:
		confidence = 0
	case len(candidates) > 1:
		scoreDiff := best.score - candidates[1].score
		confidence = clamp(1.0/(1.0+50.0/(scoreDiff+1)), 0.5, 1.0)
	default:
		confidence = 0.95
	}

	flags := []string{"MISSING_SEPARATOR"}
	if len(best.elements) == 0 {
		flags = append(flags, "NO_VALID_PARSE")
	}
	if len(candidates) > 1 && (best.score-candidates[1].score) < 40 {
		flags = append(flags, "AMBIGUOUS_PARSE")
	}

	var alternatives []Alternative
	limit := opts.MaxAlternatives + 1
	if limit > len(candidates) {
		limit = len(candidates)
	}
	for _, c := range candidates[1:limit] {
		alternatives = append(alternatives, Alternative{Elements: c.elements, Score: c.score, Reasoning: c.reasoning})
	}

	return Result{
		InputString:  input,
		Best:         best.elements,
		BestScore:    best.score,
		Alternatives: alternatives,
		Confidence:   confidence,
		Flags:        flags,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// beamSearch iteratively widens a beam of partial candidate parses
// until every surviving candidate has consumed the whole input or the
// iteration safety cap is hit, returning every candidate that reached
// the end of input.
func beamSearch(input string, opts Options) []candidate {
	beam := []candidate{{}}
	var complete []candidate

	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = 20
	}

	for iteration := 0; len(beam) > 0 && iteration < maxIter; iteration++ {
		var newBeam []candidate
		for _, cand := range beam {
			if cand.position >= len(input) {
				complete = append(complete, cand)
				continue
			}
			newBeam = append(newBeam, extensions(input, cand, opts)...)
		}

		sort.SliceStable(newBeam, func(i, j int) bool { return newBeam[i].score > newBeam[j].score })
		if len(newBeam) > opts.BeamWidth {
			newBeam = newBeam[:opts.BeamWidth]
		}
		beam = newBeam
	}

	return complete
}

// extensions enumerates every way to extend cand by matching one AI at
// its current position, scoring each resulting candidate.
// groupSeparator is tolerated, not required: a partially-separated
// string that still needs reconstruction (some boundaries marked,
// others not) can hand the whole thing to the beam search, which
// treats a separator byte as a free, mandatory skip rather than
// something it needs an AI match to consume.
const groupSeparator = '\x1d'

func extensions(input string, cand candidate, opts Options) []candidate {
	var out []candidate
	pos := cand.position
	remaining := input[pos:]

	if len(remaining) > 0 && remaining[0] == groupSeparator {
		skip := cand.clone()
		skip.position = pos + 1
		skip.score += 5
		skip.reasoning = append(skip.reasoning, "+separator present, skipped")
		return append(out, skip)
	}

	for _, ai := range sortedCatalogKeys() {
		def := catalog[ai]
		if !strings.HasPrefix(remaining, ai) {
			continue
		}
		dataStart := pos + len(ai)

		if def.isFixed() {
			dataEnd := dataStart + def.fixedLength
			if dataEnd > len(input) {
				continue
			}
			value := input[dataStart:dataEnd]
			elem, valid := validateElement(def, value, pos, dataEnd)
			if !valid && def.checkDigit {
				continue
			}
			next := cand.clone()
			next.elements = append(next.elements, elem)
			next.position = dataEnd
			scoreExtension(&next, elem, input, opts.Weights, opts.VendorWhitelist)
			out = append(out, next)
			continue
		}

		for _, dataLen := range variableLengthsToTry(input, dataStart, def) {
			dataEnd := dataStart + dataLen
			if dataEnd > len(input) {
				continue
			}
			value := input[dataStart:dataEnd]
			elem, _ := validateElement(def, value, pos, dataEnd)
			next := cand.clone()
			next.elements = append(next.elements, elem)
			next.position = dataEnd
			scoreExtension(&next, elem, input, opts.Weights, opts.VendorWhitelist)
			out = append(out, next)
		}
	}

	return out
}

// variableLengthsToTry prunes the candidate lengths for a
// variable-length AI. A value never runs past a group separator, so
// the longest length tried ends at the next separator (or the end of
// input). Internal AIs (90-99) only try the first ten lengths, while
// core AIs (10, 21) try every length whose boundary lands on a
// recognizable AI prefix, plus the longest available length.
func variableLengthsToTry(input string, dataStart int, def aiDef) []int {
	maxLen := def.maxLength
	if remain := len(input) - dataStart; remain < maxLen {
		maxLen = remain
	}
	if gs := strings.IndexByte(input[dataStart:], groupSeparator); gs >= 0 && gs < maxLen {
		maxLen = gs
	}
	minLen := def.minLength
	if maxLen < minLen {
		return nil
	}

	if def.priority == aidict.PriorityInternal {
		upper := minLen + 10
		if upper > maxLen+1 {
			upper = maxLen + 1
		}
		lengths := make([]int, 0, upper-minLen)
		for l := minLen; l < upper; l++ {
			lengths = append(lengths, l)
		}
		return lengths
	}

	var lengths []int
	for length := minLen; length <= maxLen; length++ {
		nextPos := dataStart + length
		if nextPos >= len(input) {
			lengths = append(lengths, length)
			continue
		}
		remainingAfter := input[nextPos:]
		couldBeAI := false
		for _, prefix := range knownAIPrefixes {
			if strings.HasPrefix(remainingAfter, prefix) {
				couldBeAI = true
				break
			}
		}
		if couldBeAI {
			lengths = append(lengths, length)
		} else if length == maxLen {
			lengths = append(lengths, length)
		}
	}

	if len(lengths) == 0 {
		for length := minLen; length <= maxLen; length++ {
			lengths = append(lengths, length)
		}
	}
	return lengths
}

// sortedCatalogKeys returns AI codes in a fixed order so that, for a
// fixed input, candidate generation (and therefore beam truncation
// ties) are deterministic across runs.
func sortedCatalogKeys() []string {
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
