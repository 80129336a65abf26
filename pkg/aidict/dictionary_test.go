// ABOUTME: Tests for the GS1 AI dictionary and trie lookup
// ABOUTME: Verifies exact lookup, longest-prefix matching, and the 31n-39n decimal-position expansion

package aidict

import "testing"

func TestGetKnownAIs(t *testing.T) {
	tests := []struct {
		ai          string
		dataType    string
		fixedLength bool
		minLen      int
		maxLen      int
	}{
		{"00", "N", true, 18, 18},
		{"01", "N", true, 14, 14},
		{"10", "X", false, 1, 20},
		{"17", "N", true, 6, 6},
		{"21", "X", false, 1, 20},
		{"90", "X", false, 1, 30},
	}

	for _, tc := range tests {
		spec := Default.Get(tc.ai)
		if spec == nil {
			t.Fatalf("AI %s: expected entry, got nil", tc.ai)
		}
		if spec.DataType != tc.dataType {
			t.Errorf("AI %s: data type = %s, want %s", tc.ai, spec.DataType, tc.dataType)
		}
		if spec.FixedLength != tc.fixedLength {
			t.Errorf("AI %s: fixed length = %v, want %v", tc.ai, spec.FixedLength, tc.fixedLength)
		}
		if spec.MinLength != tc.minLen || spec.MaxLength != tc.maxLen {
			t.Errorf("AI %s: length = [%d,%d], want [%d,%d]", tc.ai, spec.MinLength, spec.MaxLength, tc.minLen, tc.maxLen)
		}
	}
}

func TestGetUnknownAI(t *testing.T) {
	if spec := Default.Get("77"); spec != nil {
		t.Fatalf("AI 77: expected nil, got %+v", spec)
	}
}

func TestDecimalPositionExpansion(t *testing.T) {
	// 310n expands to 3100-3109, each with decimal_position = n
	for n := 0; n < 10; n++ {
		ai := "310" + string(rune('0'+n))
		spec := Default.Get(ai)
		if spec == nil {
			t.Fatalf("AI %s: expected entry, got nil", ai)
		}
		if !spec.HasDecimalPos || spec.DecimalPos != n {
			t.Errorf("AI %s: decimal pos = %d (has=%v), want %d", ai, spec.DecimalPos, spec.HasDecimalPos, n)
		}
		if spec.DataType != "N" || spec.MinLength != 6 || spec.MaxLength != 6 {
			t.Errorf("AI %s: unexpected spec %+v", ai, spec)
		}
	}
}

func TestFindLongestMatch(t *testing.T) {
	tests := []struct {
		text    string
		start   int
		wantAI  string
		wantLen int
	}{
		{"0101234567890123", 0, "01", 2},
		{"10LOT123", 0, "10", 2},
		{"310012345612345", 0, "3100", 4},
		{"9912345", 0, "99", 2},
		{"", 0, "", 0},
	}

	for _, tc := range tests {
		spec, n := Default.FindLongestMatch(tc.text, tc.start)
		gotAI := ""
		if spec != nil {
			gotAI = spec.AI
		}
		if gotAI != tc.wantAI || n != tc.wantLen {
			t.Errorf("FindLongestMatch(%q, %d) = (%q, %d), want (%q, %d)", tc.text, tc.start, gotAI, n, tc.wantAI, tc.wantLen)
		}
	}
}

func TestFindLongestMatchPrefersDeepest(t *testing.T) {
	// "23" is not an AI but "235" is: the walk must keep going past a
	// non-terminal node and return the deeper 3-digit match.
	spec, n := Default.FindLongestMatch("235ABC", 0)
	if spec == nil || spec.AI != "235" || n != 3 {
		t.Fatalf("FindLongestMatch(235...) = (%v, %d)", spec, n)
	}
}

func TestAllCodesSortedAndNonEmpty(t *testing.T) {
	codes := Default.AllCodes()
	if len(codes) < 200 {
		t.Fatalf("expected a large catalogue, got %d entries", len(codes))
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("AllCodes not sorted at index %d: %s >= %s", i, codes[i-1], codes[i])
		}
	}
}

func TestPriorityClassification(t *testing.T) {
	if Default.Get("01").Priority != PriorityCore {
		t.Errorf("AI 01 should be PriorityCore")
	}
	if Default.Get("90").Priority != PriorityInternal {
		t.Errorf("AI 90 should be PriorityInternal")
	}
	if Default.Get("8200").Priority != PriorityOther {
		t.Errorf("AI 8200 should be PriorityOther")
	}
}
