// ABOUTME: Tests for the top-level Decode orchestration
// ABOUTME: Covers the canonical scenario strings and the round-trip/ambiguity properties

package gs1decode

import (
	"strings"
	"testing"
)

func elementByAI(elements []DecodedElement, ai string) *DecodedElement {
	for i := range elements {
		if elements[i].AI == ai {
			return &elements[i]
		}
	}
	return nil
}

func TestDecodeS1CanonicalPharmaOrder(t *testing.T) {
	raw := "01062867400002491728043010GB2C2171490437969853"
	result := Decode(raw, DefaultOptions())

	if !result.UsedReconstructor {
		t.Fatalf("expected the reconstructor for a separator-free string")
	}
	if len(result.Elements) != 4 {
		t.Fatalf("expected 4 elements, got %d: %+v", len(result.Elements), result.Elements)
	}

	gtin := elementByAI(result.Elements, "01")
	if gtin == nil || gtin.RawValue != "06286740000249" || !gtin.Valid {
		t.Errorf("gtin element = %+v", gtin)
	}
	expiry := elementByAI(result.Elements, "17")
	if expiry == nil || expiry.RawValue != "280430" || !expiry.Valid {
		t.Errorf("expiry element = %+v", expiry)
	}
	lot := elementByAI(result.Elements, "10")
	if lot == nil || lot.RawValue != "GB2C" {
		t.Errorf("lot element = %+v", lot)
	}
	serial := elementByAI(result.Elements, "21")
	if serial == nil || serial.RawValue != "71490437969853" {
		t.Errorf("serial element = %+v", serial)
	}
	if result.Confidence < 0.8 {
		t.Errorf("confidence = %f, want >= 0.8", result.Confidence)
	}
}

func TestDecodeS2ShortLotCode(t *testing.T) {
	raw := "01062850960028771726033110HN8X2172869453519267"
	result := Decode(raw, DefaultOptions())

	if gtin := elementByAI(result.Elements, "01"); gtin == nil || gtin.RawValue != "06285096002877" {
		t.Errorf("gtin = %+v", gtin)
	}
	if expiry := elementByAI(result.Elements, "17"); expiry == nil || expiry.RawValue != "260331" {
		t.Errorf("expiry = %+v", expiry)
	}
	if lot := elementByAI(result.Elements, "10"); lot == nil || lot.RawValue != "HN8X" {
		t.Errorf("lot = %+v", lot)
	}
	if serial := elementByAI(result.Elements, "21"); serial == nil || serial.RawValue != "72869453519267" {
		t.Errorf("serial = %+v", serial)
	}
}

func TestDecodeS3EmbeddedDatePattern(t *testing.T) {
	raw := "01062911037315552164SSI54CE688QZ1727021410C601"
	result := Decode(raw, DefaultOptions())

	if !result.UsedReconstructor {
		t.Fatalf("expected reconstructor for a fully separator-free string")
	}
	if gtin := elementByAI(result.Elements, "01"); gtin == nil || gtin.RawValue != "06291103731555" {
		t.Errorf("gtin = %+v", gtin)
	}
	if serial := elementByAI(result.Elements, "21"); serial == nil || serial.RawValue != "64SSI54CE688QZ" {
		t.Errorf("serial = %+v", serial)
	}
	if expiry := elementByAI(result.Elements, "17"); expiry == nil || expiry.RawValue != "270214" {
		t.Errorf("expiry = %+v", expiry)
	}
	if lot := elementByAI(result.Elements, "10"); lot == nil || lot.RawValue != "C601" {
		t.Errorf("lot = %+v", lot)
	}
}

func TestDecodeS4TrailingDigitsAbsorbedIntoSerial(t *testing.T) {
	raw := "010622300001036517270903103056442130564439945626"
	result := Decode(raw, DefaultOptions())

	if serial := elementByAI(result.Elements, "21"); serial == nil || serial.RawValue != "30564439945626" {
		t.Errorf("serial = %+v, want trailing digits absorbed whole, not split as an internal AI", serial)
	}
	for _, ai := range []string{"90", "91", "92", "93", "94", "95", "96", "97", "98", "99"} {
		if e := elementByAI(result.Elements, ai); e != nil {
			t.Errorf("unexpected internal AI %s split out of the serial: %+v", ai, e)
		}
	}
}

func TestDecodeS5LegacyDayUnspecified(t *testing.T) {
	raw := "010625115902606717290400104562202106902409792902"
	result := Decode(raw, DefaultOptions())

	expiry := elementByAI(result.Elements, "17")
	if expiry == nil || expiry.RawValue != "290400" {
		t.Fatalf("expiry = %+v", expiry)
	}
	if unspecified, _ := expiry.Meta["day_unspecified"].(bool); !unspecified {
		t.Errorf("expected day_unspecified meta flag, got %+v", expiry.Meta)
	}
}

func TestDecodeS6SymbologyPrefixAndInvalidCheckDigit(t *testing.T) {
	raw := "]d2010611800002210721SERIAL123" + "<GS>" + "17270301"
	result := Decode(raw, DefaultOptions())

	if result.SymbologyIdentifier != "GS1 DataMatrix" {
		t.Errorf("symbology = %q, want GS1 DataMatrix", result.SymbologyIdentifier)
	}

	gtin := elementByAI(result.Elements, "01")
	if gtin == nil || gtin.RawValue != "06118000022107" {
		t.Fatalf("gtin = %+v", gtin)
	}
	if gtin.Valid {
		t.Errorf("expected gtin with invalid mod-10 to be emitted with valid=false")
	}

	serial := elementByAI(result.Elements, "21")
	if serial == nil || serial.RawValue != "SERIAL123" {
		t.Errorf("serial = %+v", serial)
	}
	expiry := elementByAI(result.Elements, "17")
	if expiry == nil || expiry.RawValue != "270301" {
		t.Errorf("expiry = %+v", expiry)
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	result := Decode("   ", DefaultOptions())
	if len(result.Elements) != 0 {
		t.Fatalf("expected no elements for empty input, got %+v", result.Elements)
	}
	if !result.HasErrorCode(CodeInvalidFormat) {
		t.Errorf("expected INVALID_FORMAT error, got %+v", result.Errors)
	}
	if result.Confidence != 0 {
		t.Errorf("confidence = %f, want 0", result.Confidence)
	}
}

func TestDecodeUnknownAIReportedNotPanicked(t *testing.T) {
	raw := "01" + "00000000000017" + "\x1d" + "77UNKNOWNVALUE"
	result := Decode(raw, DefaultOptions())
	if !result.HasErrorCode(CodeUnknownAI) {
		t.Errorf("expected UNKNOWN_AI error, got %+v", result.Errors)
	}
}

// TestRoundTripWellFormedSeparated checks property (a): a well-formed,
// fully separator-bearing string round-trips to the same AI list,
// values, and order.
func TestRoundTripWellFormedSeparated(t *testing.T) {
	cases := []struct {
		ai, value string
	}{
		{"01", "06286740000249"},
		{"17", "280430"},
		{"10", "LOT42"},
		{"21", "SER99"},
	}
	var b strings.Builder
	for i, c := range cases {
		if i > 0 {
			b.WriteByte('\x1d')
		}
		b.WriteString(c.ai)
		b.WriteString(c.value)
	}

	result := Decode(b.String(), DefaultOptions())
	if len(result.Elements) != len(cases) {
		t.Fatalf("expected %d elements, got %d: %+v", len(cases), len(result.Elements), result.Elements)
	}
	for i, c := range cases {
		if result.Elements[i].AI != c.ai || result.Elements[i].RawValue != c.value {
			t.Errorf("element %d = %+v, want ai=%s value=%s", i, result.Elements[i], c.ai, c.value)
		}
	}
}

// TestRoundTripFixedLengthNoSeparator checks property (b)'s fixed-length
// half: removing sentinels between two fixed-length AIs still
// round-trips exactly, since no ambiguity is possible.
func TestRoundTripFixedLengthNoSeparator(t *testing.T) {
	raw := "01" + "06286740000249" + "17" + "280430"
	result := Decode(raw, DefaultOptions())

	if len(result.Elements) != 2 {
		t.Fatalf("expected 2 elements, got %d: %+v", len(result.Elements), result.Elements)
	}
	if result.Elements[0].AI != "01" || result.Elements[0].RawValue != "06286740000249" {
		t.Errorf("element 0 = %+v", result.Elements[0])
	}
	if result.Elements[1].AI != "17" || result.Elements[1].RawValue != "280430" {
		t.Errorf("element 1 = %+v", result.Elements[1])
	}
}

// TestRoundTripVariableLengthNoSeparatorNeverSilentlyWrong checks
// property (b)'s variable-length half: removing sentinels around a
// variable-length AI either round-trips exactly or is flagged
// AMBIGUOUS_PARSE/MISSING_SEPARATOR — it never silently returns a
// different element list without any diagnostic at all.
func TestRoundTripVariableLengthNoSeparatorNeverSilentlyWrong(t *testing.T) {
	raw := "01" + "06286740000249" + "10" + "LOT4217" + "280430"
	result := Decode(raw, DefaultOptions())

	exactRoundTrip := len(result.Elements) == 3 &&
		result.Elements[1].AI == "10" && result.Elements[1].RawValue == "LOT42" &&
		result.Elements[2].AI == "17" && result.Elements[2].RawValue == "280430"

	flagged := result.HasErrorCode(CodeAmbiguousParse) || result.HasErrorCode(CodeMissingSeparator)

	if !exactRoundTrip && !flagged {
		t.Fatalf("neither round-tripped nor flagged ambiguous: %+v / errors %+v", result.Elements, result.Errors)
	}
}
