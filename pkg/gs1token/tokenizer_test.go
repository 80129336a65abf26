// ABOUTME: Tests for the fast-path tokenizer state machine
// ABOUTME: Covers fixed/variable-length scanning, group separators and ambiguity detection

package gs1token

import (
	"testing"

	"github.com/mohammedfouly1/PharmaInventory/pkg/aidict"
)

func TestTokenizeWellFormed(t *testing.T) {
	// (01)<14 digits><GS>(10)ABC123<GS>(21)XYZ
	text := "0100000000000017" + "\x1d" + "10ABC123" + "\x1d" + "21XYZ"
	res := Tokenize(text, 0, true, aidict.Default)

	if res.NeedsSolver {
		t.Fatalf("unexpected NeedsSolver: %+v", res.Errors)
	}
	if len(res.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d: %+v", len(res.Elements), res.Elements)
	}
	if res.Elements[0].AI != "01" || res.Elements[0].RawValue != "00000000000017" {
		t.Errorf("element 0 = %+v", res.Elements[0])
	}
	if res.Elements[1].AI != "10" || res.Elements[1].RawValue != "ABC123" {
		t.Errorf("element 1 = %+v", res.Elements[1])
	}
	if res.Elements[2].AI != "21" || res.Elements[2].RawValue != "XYZ" {
		t.Errorf("element 2 = %+v", res.Elements[2])
	}
}

func TestTokenizeFixedLengthNoSeparatorNeeded(t *testing.T) {
	// Two back-to-back fixed-length AIs need no separator between them.
	text := "01" + "00000000000017" + "11" + "290101"
	res := Tokenize(text, 0, false, aidict.Default)
	if res.NeedsSolver {
		t.Fatalf("unexpected NeedsSolver: %+v", res.Errors)
	}
	if len(res.Elements) != 2 {
		t.Fatalf("expected 2 elements, got %d: %+v", len(res.Elements), res.Elements)
	}
}

func TestTokenizeUnknownAI(t *testing.T) {
	res := Tokenize("77UNKNOWN", 0, false, aidict.Default)
	if len(res.Errors) == 0 {
		t.Fatalf("expected an UNKNOWN_AI error")
	}
	if res.Errors[0].Code != "UNKNOWN_AI" {
		t.Errorf("error code = %s, want UNKNOWN_AI", res.Errors[0].Code)
	}
}

func TestTokenizeAmbiguousVariableLength(t *testing.T) {
	// AI 10 (variable X..20) runs right into a valid-looking "21" AI
	// with no separator, and the string continues past min length.
	text := "10ABCD21SERIALVALUE12"
	res := Tokenize(text, 0, true, aidict.Default)
	if !res.NeedsSolver {
		t.Fatalf("expected NeedsSolver to be set for ambiguous trailing variable field")
	}
}
