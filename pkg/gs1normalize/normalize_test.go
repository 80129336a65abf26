// ABOUTME: Tests for symbology-prefix stripping and separator normalization
// ABOUTME: Covers the recognized AIM prefixes and every configured GS stand-in

package gs1normalize

import "testing"

func TestStripSymbologyRecognized(t *testing.T) {
	cases := []struct {
		raw, wantStripped, wantSymbology string
	}{
		{"]d201061180000221072", "01061180000221072", "GS1 DataMatrix"},
		{"]C10106118000022107", "0106118000022107", "GS1-128"},
		{"]Q301234", "01234", "GS1 QR Code"},
	}
	for _, c := range cases {
		stripped, symbology := StripSymbology(c.raw)
		if stripped != c.wantStripped || symbology != c.wantSymbology {
			t.Errorf("StripSymbology(%q) = (%q, %q), want (%q, %q)", c.raw, stripped, symbology, c.wantStripped, c.wantSymbology)
		}
	}
}

func TestStripSymbologyUnrecognizedPassesThrough(t *testing.T) {
	stripped, symbology := StripSymbology("0106118000022107")
	if stripped != "0106118000022107" || symbology != "" {
		t.Errorf("StripSymbology with no prefix = (%q, %q)", stripped, symbology)
	}
}

func TestNormalizeCanonicalizesEveryGSStandIn(t *testing.T) {
	cases := []string{
		"01ABC\x1d1017",
		"01ABC<GS>1017",
		"01ABC~1017",
		"01ABC|1017",
		"01ABC^1017",
	}
	want := "01ABC\x1d1017"
	for _, raw := range cases {
		if got := Normalize(raw, nil); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestNormalizeTrimsWhitespace(t *testing.T) {
	if got := Normalize("  0106118000022107  ", nil); got != "0106118000022107" {
		t.Errorf("Normalize did not trim whitespace: %q", got)
	}
}

func TestNormalizeCustomGSCharacters(t *testing.T) {
	got := Normalize("01ABC#1017", []string{"#"})
	if got != "01ABC\x1d1017" {
		t.Errorf("Normalize with custom GS characters = %q", got)
	}
}
