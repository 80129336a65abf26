package gs1decode

import (
	"github.com/mohammedfouly1/PharmaInventory/pkg/aidict"
	"github.com/mohammedfouly1/PharmaInventory/pkg/gs1beam"
)

// Options configures one Decode call. The zero value is not directly
// usable; callers should start from DefaultOptions (or pkg/gs1config's
// loader, which fills Options from the environment or a JSON file).
type Options struct {
	Dictionary      *aidict.Dictionary
	GSCharacters    []string
	CenturyPivot    int
	AllowAmbiguous  bool
	MaxAlternatives int
	BeamWidth       int
	MaxIterations   int
	VendorWhitelist []string
	Weights         *gs1beam.Weights // nil uses gs1beam.DefaultWeights
}

// DefaultOptions returns the calibrated defaults: the full AI
// dictionary, the standard separator stand-ins, a century pivot of 51,
// ambiguous parses allowed through (surfaced as AMBIGUOUS_PARSE rather
// than rejected), and the reconstructor's own default beam parameters.
func DefaultOptions() Options {
	return Options{
		Dictionary:      aidict.Default,
		GSCharacters:    nil, // nil defers to gs1normalize.DefaultGSCharacters
		CenturyPivot:    51,
		AllowAmbiguous:  true,
		MaxAlternatives: 5,
		BeamWidth:       200,
		MaxIterations:   20,
	}
}

func (o Options) beamOptions() gs1beam.Options {
	weights := gs1beam.DefaultWeights()
	if o.Weights != nil {
		weights = *o.Weights
	}
	whitelist := make(map[string]bool, len(o.VendorWhitelist))
	for _, ai := range o.VendorWhitelist {
		whitelist[ai] = true
	}
	return gs1beam.Options{
		BeamWidth:       orDefault(o.BeamWidth, 200),
		MaxAlternatives: orDefault(o.MaxAlternatives, 5),
		MaxIterations:   orDefault(o.MaxIterations, 20),
		VendorWhitelist: whitelist,
		Weights:         weights,
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
