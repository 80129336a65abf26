package gs1beam

import (
	"fmt"
	"regexp"

	"github.com/mohammedfouly1/PharmaInventory/pkg/aidict"
	"github.com/mohammedfouly1/PharmaInventory/pkg/gs1validate"
)

var embeddedExpiryPattern = regexp.MustCompile(`17(\d{6})10`)

// scoreExtension applies the calibrated scoring rules for appending
// elem to cand, mutating cand.score and cand.reasoning in place. A
// candidate whose GTIN check digit fails is scored to negative
// infinity; extensions already drops such a branch before scoring, so
// no parse with an invalid GTIN reaches the result.
func scoreExtension(cand *candidate, elem ParsedElement, fullInput string, w Weights, whitelist map[string]bool) {
	ai := elem.AI

	if ai == "01" {
		if elem.Valid && elem.Meta["check_digit_valid"] == true {
			cand.score += w.ValidGTIN
			cand.reasoning = append(cand.reasoning, "+GTIN: valid check digit")
		} else {
			cand.score = negInf
			cand.reasoning = append(cand.reasoning, "-inf: invalid GTIN check digit")
			return
		}
	}

	if ai == "17" && elem.Valid {
		if elem.Meta["unknown_day"] != true {
			cand.score += w.ValidExpiry
			cand.reasoning = append(cand.reasoning, "+expiry: valid date")
		} else {
			cand.score += w.ValidExpiryUnknownDay
			cand.reasoning = append(cand.reasoning, "+expiry: valid date, day unspecified")
		}
	}

	if n := len(cand.elements); n >= 3 {
		lastThree := [3]string{cand.elements[n-3].AI, cand.elements[n-2].AI, cand.elements[n-1].AI}
		if lastThree == [3]string{"17", "10", "21"} {
			cand.score += w.Pattern17_10_21
			cand.reasoning = append(cand.reasoning, "+pattern: (17)(10)(21)")
		}
		if lastThree == [3]string{"21", "17", "10"} {
			cand.score += w.Pattern21_17_10
			cand.reasoning = append(cand.reasoning, "+pattern: (21)(17)(10)")
		}
	}

	if ai == "21" {
		if m := embeddedExpiryPattern.FindStringSubmatch(elem.RawValue); m != nil {
			dateResult := gs1validate.Date(m[1], aidict.DateYYMMDD, gs1validate.DefaultCenturyPivot)
			if dateResult.Valid {
				cand.score += w.EmbeddedExpiryInSerial
				cand.reasoning = append(cand.reasoning, "+embedded expiry inside serial; consider splitting")
			}
		}
	}

	if n := len(cand.elements); n >= 2 {
		aiSeq := aiSequence(cand.elements)
		if len(aiSeq) == 2 && aiSeq[0] == "01" && aiSeq[1] == "17" {
			cand.score += w.StartPattern01_17
			cand.reasoning = append(cand.reasoning, "+start pattern (01)(17)")
		}
		if n >= 4 {
			last4 := aiSeq[n-4:]
			if equalSeq(last4, []string{"01", "17", "10", "21"}) {
				cand.score += w.Pattern01_17_10_21
				cand.reasoning = append(cand.reasoning, "+standard pharma order (01)(17)(10)(21)")
			} else if equalSeq(last4, []string{"01", "21", "17", "10"}) {
				cand.score += w.Pattern01_21_17_10
				cand.reasoning = append(cand.reasoning, "+alternative pharma order (01)(21)(17)(10)")
			}
		}
	}

	if ai == "10" {
		lotLen := len(elem.RawValue)
		if lotLen >= 2 && lotLen <= 10 {
			cand.score += w.LotLengthCommon
			cand.reasoning = append(cand.reasoning, fmt.Sprintf("+lot length %d in common range", lotLen))
		}
	}

	if ai == "21" {
		serialLen := len(elem.RawValue)
		if serialLen >= 6 && serialLen <= 20 {
			cand.score += w.SerialLengthCommon
			cand.reasoning = append(cand.reasoning, fmt.Sprintf("+serial length %d in common range", serialLen))
		}
	}

	if isInternalAI(ai) && !whitelist[ai] {
		if n := len(cand.elements); n >= 2 {
			prev := cand.elements[n-2]
			if prev.AI == "10" || prev.AI == "21" {
				combinedLen := len(prev.RawValue) + len(ai) + len(elem.RawValue)
				if combinedLen <= catalog[prev.AI].maxLength {
					cand.score += w.InternalAbsorption
					cand.reasoning = append(cand.reasoning, fmt.Sprintf("-absorption: internal AI(%s) could extend AI(%s)", ai, prev.AI))
				}
			}
		}
	}

	aiSeq := aiSequence(cand.elements)
	if ai == "10" && countAI(aiSeq, "10") > 1 {
		cand.score += w.RepeatedLot
		cand.reasoning = append(cand.reasoning, "-repeated AI(10)")
	}
	if ai == "21" && countAI(aiSeq, "21") > 1 {
		cand.score += w.RepeatedSerial
		cand.reasoning = append(cand.reasoning, "-repeated AI(21)")
	}

	if isInternalAI(ai) {
		hasLot := countAI(aiSeq, "10") > 0
		hasSerial := countAI(aiSeq, "21") > 0
		if hasLot && hasSerial {
			cand.score += w.SplitWhenBothLotSerial
			cand.reasoning = append(cand.reasoning, fmt.Sprintf("-splitting rare AI(%s) when (10) and (21) both present", ai))
		}
	}

	if ai == "10" && len(elem.RawValue) > 12 {
		cand.score += w.LongLot
		cand.reasoning = append(cand.reasoning, "-long lot value")
	}
	if ai == "21" && len(elem.RawValue) < 4 {
		cand.score += w.ShortSerial
		cand.reasoning = append(cand.reasoning, "-short serial value")
	}

	if cand.position >= len(fullInput) && len(cand.elements) <= 4 {
		cand.score += w.ConciseParse
		cand.reasoning = append(cand.reasoning, fmt.Sprintf("+concise parse with %d elements", len(cand.elements)))
	}
}

const negInf = -1e308

func isInternalAI(ai string) bool {
	switch ai {
	case "90", "91", "92", "93", "94", "95", "96", "97", "98", "99":
		return true
	}
	return false
}

func aiSequence(elements []ParsedElement) []string {
	seq := make([]string, len(elements))
	for i, e := range elements {
		seq[i] = e.AI
	}
	return seq
}

func countAI(seq []string, ai string) int {
	n := 0
	for _, s := range seq {
		if s == ai {
			n++
		}
	}
	return n
}

func equalSeq(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
