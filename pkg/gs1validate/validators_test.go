// ABOUTME: Tests for check digit, date, character-set and decimal validators
// ABOUTME: Covers the GTIN/SSCC mod-10 algorithm and the YYMMDD/YYMMD0/YYYYMMDD/YYMMDDHH date formats

package gs1validate

import (
	"testing"

	"github.com/mohammedfouly1/PharmaInventory/pkg/aidict"
)

func TestMod10CheckDigit(t *testing.T) {
	tests := []struct {
		digits string
		want   int
	}{
		{"000000000000", 0},
		{"000000000001", 7}, // sum = 3, check = (10-3)%10 = 7
	}
	for _, tc := range tests {
		got, err := Mod10CheckDigit(tc.digits)
		if err != nil {
			t.Fatalf("Mod10CheckDigit(%q) error: %v", tc.digits, err)
		}
		if got != tc.want {
			t.Errorf("Mod10CheckDigit(%q) = %d, want %d", tc.digits, got, tc.want)
		}
	}
}

func TestCheckDigitRoundTrip(t *testing.T) {
	base := "400638133393"
	cd, err := Mod10CheckDigit(base)
	if err != nil {
		t.Fatal(err)
	}
	value := base + string(rune('0'+cd))
	r := CheckDigit(value)
	if !r.Valid {
		t.Fatalf("CheckDigit(%q) invalid: %v", value, r.Errors)
	}
}

func TestCheckDigitMismatch(t *testing.T) {
	r := CheckDigit("40063813339310") // wrong trailing digit
	if r.Valid {
		t.Fatalf("expected invalid check digit")
	}
}

func TestDateYYMMDD(t *testing.T) {
	r := Date("291231", aidict.DateYYMMDD, DefaultCenturyPivot)
	if !r.Valid {
		t.Fatalf("unexpected errors: %v", r.Errors)
	}
	if r.Meta["iso_date"] != "2029-12-31" {
		t.Errorf("iso_date = %v, want 2029-12-31", r.Meta["iso_date"])
	}
}

func TestDateYYMMD0DayUnspecified(t *testing.T) {
	r := Date("290100", aidict.DateYYMMD0, DefaultCenturyPivot)
	if !r.Valid {
		t.Fatalf("unexpected errors: %v", r.Errors)
	}
	if r.Meta["day_unspecified"] != true {
		t.Errorf("expected day_unspecified = true")
	}
	if r.Meta["iso_date"] != "2029-01-31" {
		t.Errorf("iso_date = %v, want 2029-01-31 (last day of month)", r.Meta["iso_date"])
	}
}

func TestDateCenturyPivot(t *testing.T) {
	r := Date("511231", aidict.DateYYMMDD, DefaultCenturyPivot)
	if !r.Valid {
		t.Fatalf("unexpected errors: %v", r.Errors)
	}
	if r.Meta["year"] != 1951 {
		t.Errorf("year = %v, want 1951", r.Meta["year"])
	}

	r2 := Date("501231", aidict.DateYYMMDD, DefaultCenturyPivot)
	if r2.Meta["year"] != 2050 {
		t.Errorf("year = %v, want 2050", r2.Meta["year"])
	}
}

func TestDateInvalidMonth(t *testing.T) {
	r := Date("291331", aidict.DateYYMMDD, DefaultCenturyPivot)
	if r.Valid {
		t.Fatalf("expected invalid month to fail")
	}
}

func TestNumericLength(t *testing.T) {
	if r := Numeric("12345", 0, 0, 6); r.Valid {
		t.Errorf("expected fixed-length mismatch to fail")
	}
	if r := Numeric("abc123", 0, 10, -1); r.Valid {
		t.Errorf("expected non-numeric to fail")
	}
	if r := Numeric("123", 1, 20, -1); !r.Valid {
		t.Errorf("expected valid variable-length numeric")
	}
}

func TestAlphanumericCharset(t *testing.T) {
	if r := Alphanumeric("LOT-123", 1, 20, -1, false); !r.Valid {
		t.Errorf("expected CSET82 value to validate: %v", r.Errors)
	}
	if r := Alphanumeric("lot-123", 1, 20, -1, true); r.Valid {
		t.Errorf("expected lowercase to fail CSET39")
	}
}

func TestDecodeDecimal(t *testing.T) {
	f, s, err := DecodeDecimal("001234", 2)
	if err != nil {
		t.Fatal(err)
	}
	if s != "12.34" || f != 12.34 {
		t.Errorf("DecodeDecimal = (%v, %q), want (12.34, \"12.34\")", f, s)
	}
}

func TestDecodeDecimalShortValue(t *testing.T) {
	f, s, err := DecodeDecimal("5", 2)
	if err != nil {
		t.Fatal(err)
	}
	if s != "0.05" || f != 0.05 {
		t.Errorf("DecodeDecimal = (%v, %q), want (0.05, \"0.05\")", f, s)
	}
}

func TestDecodeDecimalZero(t *testing.T) {
	f, s, err := DecodeDecimal("123", 0)
	if err != nil {
		t.Fatal(err)
	}
	if s != "123" || f != 123 {
		t.Errorf("DecodeDecimal = (%v, %q), want (123, \"123\")", f, s)
	}
}
