// ABOUTME: Tests for environment-loaded config and schema-validated options files
// ABOUTME: Covers env-var defaults/overrides and JSON-Schema rejection of malformed options

package gs1config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	if cfg.Decoder.CenturyPivot != 51 {
		t.Errorf("century pivot = %d, want 51", cfg.Decoder.CenturyPivot)
	}
	if !cfg.Decoder.AllowAmbiguous {
		t.Errorf("expected allow_ambiguous default true")
	}
	if cfg.Decoder.BeamWidth != 200 {
		t.Errorf("beam width = %d, want 200", cfg.Decoder.BeamWidth)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("GS1_CENTURY_PIVOT", "70")
	t.Setenv("GS1_ALLOW_AMBIGUOUS", "false")
	t.Setenv("GS1_VENDOR_WHITELIST", "90,91,92")

	cfg := LoadConfig()
	if cfg.Decoder.CenturyPivot != 70 {
		t.Errorf("century pivot = %d, want 70", cfg.Decoder.CenturyPivot)
	}
	if cfg.Decoder.AllowAmbiguous {
		t.Errorf("expected allow_ambiguous overridden to false")
	}
	if len(cfg.Decoder.VendorWhitelist) != 3 {
		t.Errorf("vendor whitelist = %+v, want 3 entries", cfg.Decoder.VendorWhitelist)
	}
}

func TestValidateJSONAgainstSchemaRejectsUnknownField(t *testing.T) {
	schema := BuildDecodeOptionsJSONSchema()
	err := ValidateJSONAgainstSchema(schema, []byte(`{"not_a_real_field": 1}`))
	if err == nil {
		t.Fatalf("expected schema validation to reject an unknown field")
	}
}

func TestValidateJSONAgainstSchemaRejectsOutOfRangePivot(t *testing.T) {
	schema := BuildDecodeOptionsJSONSchema()
	err := ValidateJSONAgainstSchema(schema, []byte(`{"century_pivot": 200}`))
	if err == nil {
		t.Fatalf("expected schema validation to reject century_pivot out of [0,99]")
	}
}

func TestLoadOptionsFileAppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "decode-options.json")
	content := `{"century_pivot": 60, "beam_width": 50, "vendor_whitelist": ["90", "91"]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write options file: %v", err)
	}

	base := LoadConfig().ToDecodeOptions()
	opts, err := LoadOptionsFile(path, base)
	if err != nil {
		t.Fatalf("LoadOptionsFile: %v", err)
	}
	if opts.CenturyPivot != 60 {
		t.Errorf("century pivot = %d, want 60", opts.CenturyPivot)
	}
	if opts.BeamWidth != 50 {
		t.Errorf("beam width = %d, want 50", opts.BeamWidth)
	}
	if len(opts.VendorWhitelist) != 2 {
		t.Errorf("vendor whitelist = %+v, want 2 entries", opts.VendorWhitelist)
	}
}

func TestLoadOptionsFileRejectsInvalidDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad-options.json")
	if err := os.WriteFile(path, []byte(`{"beam_width": -5}`), 0o644); err != nil {
		t.Fatalf("write options file: %v", err)
	}

	base := LoadConfig().ToDecodeOptions()
	if _, err := LoadOptionsFile(path, base); err == nil {
		t.Fatalf("expected validation error for negative beam_width")
	}
}
