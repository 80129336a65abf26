// Package gs1beam implements the beam-search reconstructor: when an
// element string carries no (or insufficient) group separators, the
// boundaries between AIs are ambiguous and must be recovered by
// scoring candidate splits rather than scanned deterministically.
//
// The catalog here is deliberately narrower than the full AI
// dictionary in pkg/aidict — it holds only the AIs that plausibly
// appear, unlabeled, in pharmaceutical secondary packaging (GTIN,
// expiry date, batch/lot, serial, and the internal company AIs), since
// scoring a reconstruction against the full catalogue (several hundred
// AI codes once the n-suffixed families are expanded) would
// both be slower and invite spurious matches on data that was never
// meant to look like an AI.
package gs1beam

import "github.com/mohammedfouly1/PharmaInventory/pkg/aidict"

// aiDef describes one Application Identifier's syntax for the purposes
// of beam-search candidate generation and scoring.
type aiDef struct {
	ai          string
	title       string
	fixedLength int // 0 means variable length
	minLength   int
	maxLength   int
	dataType    string // "N" numeric, "X" alphanumeric
	checkDigit  bool
	dateFormat  aidict.DateFormat
	priority    aidict.PriorityClass
}

func (d aiDef) isFixed() bool { return d.fixedLength > 0 }

// catalog is the fixed set of AIs the reconstructor will try to match
// at each position: 01 (GTIN), 17 (expiry), 10 (batch/lot), 21
// (serial), and 90-99 (internal company assigned).
var catalog = buildCatalog()

// knownAIPrefixes is the same small set, used to decide whether a
// trial boundary plausibly lands on the start of another AI.
var knownAIPrefixes = []string{"01", "10", "17", "21", "90", "91", "92", "93", "94", "95", "96", "97", "98", "99"}

func buildCatalog() map[string]aiDef {
	c := map[string]aiDef{
		"01": {ai: "01", title: "GTIN", fixedLength: 14, minLength: 14, maxLength: 14, dataType: "N", checkDigit: true, priority: aidict.PriorityCore},
		"17": {ai: "17", title: "USE BY or EXPIRY", fixedLength: 6, minLength: 6, maxLength: 6, dataType: "N", dateFormat: aidict.DateYYMMDD, priority: aidict.PriorityCore},
		"10": {ai: "10", title: "BATCH/LOT", minLength: 1, maxLength: 20, dataType: "X", priority: aidict.PriorityCore},
		"21": {ai: "21", title: "SERIAL", minLength: 1, maxLength: 20, dataType: "X", priority: aidict.PriorityCore},
	}
	for i := 90; i < 100; i++ {
		ai := itoa2(i)
		c[ai] = aiDef{ai: ai, title: "INTERNAL " + ai, minLength: 1, maxLength: 30, dataType: "X", priority: aidict.PriorityInternal}
	}
	return c
}

func itoa2(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}
