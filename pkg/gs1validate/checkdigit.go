package gs1validate

import (
	"fmt"
	"strconv"
)

// Mod10CheckDigit computes the GS1 mod-10 check digit for a numeric
// string that does not yet include it: working right to left, digits
// alternate weight 3 and 1 starting at weight 3 for the rightmost
// digit; the check digit makes the weighted sum a multiple of 10.
func Mod10CheckDigit(digits string) (int, error) {
	if digits == "" {
		return 0, fmt.Errorf("gs1validate: input must be a non-empty numeric string")
	}
	total := 0
	for i := 0; i < len(digits); i++ {
		c := digits[len(digits)-1-i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("gs1validate: input must be a non-empty numeric string")
		}
		multiplier := 1
		if i%2 == 0 {
			multiplier = 3
		}
		total += int(c-'0') * multiplier
	}
	return (10 - (total % 10)) % 10, nil
}

// CheckDigit validates that value's trailing digit is the correct
// mod-10 check digit over the digits preceding it. value must be all
// digits and at least two characters long.
func CheckDigit(value string) Result {
	if value == "" || !isAllDigits(value) {
		return fail("value must be numeric for check digit validation")
	}
	if len(value) < 2 {
		return fail("value too short for check digit validation")
	}

	dataDigits := value[:len(value)-1]
	providedCheck := int(value[len(value)-1] - '0')
	calculated, err := Mod10CheckDigit(dataDigits)
	if err != nil {
		return fail(err.Error())
	}

	r := ok()
	r.Meta["calculated_check_digit"] = calculated
	r.Meta["provided_check_digit"] = providedCheck
	r.Meta["check_digit_valid"] = providedCheck == calculated

	if providedCheck != calculated {
		r.addError("check digit mismatch: expected " + strconv.Itoa(calculated) + ", got " + strconv.Itoa(providedCheck))
	}
	return r
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
