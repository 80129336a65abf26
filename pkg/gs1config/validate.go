package gs1config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/mohammedfouly1/PharmaInventory/pkg/gs1decode"
)

// ValidateJSONAgainstSchema validates data against schemaMap.
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("decode-options.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("decode-options.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("decode options do not match schema: %w", err)
	}
	return nil
}

// decodeOptionsDocument is the on-disk shape of an operator-supplied
// decode-options file, matching BuildDecodeOptionsJSONSchema.
type decodeOptionsDocument struct {
	CenturyPivot    *int     `json:"century_pivot"`
	AllowAmbiguous  *bool    `json:"allow_ambiguous"`
	MaxAlternatives *int     `json:"max_alternatives"`
	BeamWidth       *int     `json:"beam_width"`
	MaxIterations   *int     `json:"max_iterations"`
	VendorWhitelist []string `json:"vendor_whitelist"`
	GSCharacters    []string `json:"gs_characters"`
}

// LoadOptionsFile reads, schema-validates, and decodes path into
// gs1decode.Options, layered over base (an already-built Options,
// typically gs1decode.DefaultOptions() or one built from LoadConfig).
func LoadOptionsFile(path string, base gs1decode.Options) (gs1decode.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read decode options file: %w", err)
	}
	if err := ValidateJSONAgainstSchema(BuildDecodeOptionsJSONSchema(), data); err != nil {
		return base, err
	}

	var doc decodeOptionsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return base, fmt.Errorf("unmarshal decode options: %w", err)
	}

	opts := base
	if doc.CenturyPivot != nil {
		opts.CenturyPivot = *doc.CenturyPivot
	}
	if doc.AllowAmbiguous != nil {
		opts.AllowAmbiguous = *doc.AllowAmbiguous
	}
	if doc.MaxAlternatives != nil {
		opts.MaxAlternatives = *doc.MaxAlternatives
	}
	if doc.BeamWidth != nil {
		opts.BeamWidth = *doc.BeamWidth
	}
	if doc.MaxIterations != nil {
		opts.MaxIterations = *doc.MaxIterations
	}
	if doc.VendorWhitelist != nil {
		opts.VendorWhitelist = doc.VendorWhitelist
	}
	if doc.GSCharacters != nil {
		opts.GSCharacters = doc.GSCharacters
	}
	return opts, nil
}

// ToDecodeOptions converts a Config's decoder section into a
// gs1decode.Options, starting from gs1decode.DefaultOptions so
// unset-by-this-Config fields (the AI dictionary, separator table)
// keep their calibrated defaults.
func (c *Config) ToDecodeOptions() gs1decode.Options {
	opts := gs1decode.DefaultOptions()
	opts.CenturyPivot = c.Decoder.CenturyPivot
	opts.AllowAmbiguous = c.Decoder.AllowAmbiguous
	opts.MaxAlternatives = c.Decoder.MaxAlternatives
	opts.BeamWidth = c.Decoder.BeamWidth
	opts.MaxIterations = c.Decoder.MaxIterations
	opts.VendorWhitelist = c.Decoder.VendorWhitelist
	return opts
}
