package gs1beam

// ParsedElement is one AI/value pair recovered by the reconstructor.
type ParsedElement struct {
	AI               string
	RawValue         string
	NormalizedValue  string
	Valid            bool
	ValidationErrors []string
	Meta             map[string]any
	StartPos         int
	EndPos           int
}

// candidate is one partial (or, once Position reaches the input
// length, complete) parse path carried through the beam.
type candidate struct {
	elements  []ParsedElement
	score     float64
	position  int
	reasoning []string
}

func (c candidate) clone() candidate {
	elems := make([]ParsedElement, len(c.elements))
	copy(elems, c.elements)
	reasoning := make([]string, len(c.reasoning))
	copy(reasoning, c.reasoning)
	return candidate{elements: elems, score: c.score, position: c.position, reasoning: reasoning}
}

// Weights are the calibrated scoring adjustments the reconstructor
// applies while extending a candidate parse. They default to the
// values calibrated against real pharmaceutical barcode samples, but
// every adjustment is exposed so a caller can retune for a different
// product population without touching the search itself.
type Weights struct {
	ValidGTIN              float64 // AI 01 present with correct mod-10 check digit
	ValidExpiry             float64 // AI 17 a valid calendar date with a specified day
	ValidExpiryUnknownDay   float64 // AI 17 valid but day digits are "00" (legacy unknown-day)
	Pattern17_10_21         float64 // three-element run (17)(10)(21)
	Pattern21_17_10         float64 // three-element run (21)(17)(10)
	EmbeddedExpiryInSerial  float64 // AI 21's value contains an embedded, valid "17YYMMDD10" run
	StartPattern01_17       float64 // parse begins (01)(17)
	Pattern01_17_10_21      float64 // four-element run (01)(17)(10)(21)
	Pattern01_21_17_10      float64 // four-element run (01)(21)(17)(10)
	LotLengthCommon         float64 // AI 10 value length in [2,10]
	SerialLengthCommon      float64 // AI 21 value length in [6,20]
	InternalAbsorption      float64 // penalty: AI 90-99 used where it could extend a preceding 10/21
	RepeatedLot             float64 // penalty: AI 10 appears more than once
	RepeatedSerial          float64 // penalty: AI 21 appears more than once
	SplitWhenBothLotSerial  float64 // penalty: AI 90-99 used when both 10 and 21 already present
	LongLot                 float64 // penalty: AI 10 value longer than 12
	ShortSerial             float64 // penalty: AI 21 value shorter than 4
	ConciseParse            float64 // complete parse with at most 4 elements
}

// DefaultWeights reproduces the scoring table calibrated against real
// pharmaceutical barcode samples.
func DefaultWeights() Weights {
	return Weights{
		ValidGTIN:             1000,
		ValidExpiry:           250,
		ValidExpiryUnknownDay: 190,
		Pattern17_10_21:       120,
		Pattern21_17_10:       120,
		EmbeddedExpiryInSerial: 90,
		StartPattern01_17:     15,
		Pattern01_17_10_21:    30,
		Pattern01_21_17_10:    30,
		LotLengthCommon:       20,
		SerialLengthCommon:    15,
		InternalAbsorption:    -200,
		RepeatedLot:           -150,
		RepeatedSerial:        -120,
		SplitWhenBothLotSerial: -80,
		LongLot:               -50,
		ShortSerial:           -50,
		ConciseParse:          10,
	}
}

// Options configures the beam search.
type Options struct {
	BeamWidth        int
	MaxAlternatives  int
	MaxIterations    int
	VendorWhitelist  map[string]bool // internal AIs (90-99) exempt from the absorption penalty
	Weights          Weights
}

// DefaultOptions returns the reconstructor's calibrated defaults:
// a beam width of 200, up to 5 alternatives, a 20-iteration safety cap.
func DefaultOptions() Options {
	return Options{
		BeamWidth:       200,
		MaxAlternatives: 5,
		MaxIterations:   20,
		VendorWhitelist: map[string]bool{},
		Weights:         DefaultWeights(),
	}
}

// Alternative is one non-winning complete parse, kept for explanation.
type Alternative struct {
	Elements  []ParsedElement
	Score     float64
	Reasoning []string
}

// Result is the outcome of reconstructing element boundaries for an
// input string with no usable separators.
type Result struct {
	InputString  string
	Best         []ParsedElement
	BestScore    float64
	Alternatives []Alternative
	Confidence   float64
	Flags        []string
	Warnings     []string
}

// HasFlag reports whether code is present in Result.Flags.
func (r Result) HasFlag(code string) bool {
	for _, f := range r.Flags {
		if f == code {
			return true
		}
	}
	return false
}
