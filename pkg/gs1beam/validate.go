package gs1beam

import (
	"fmt"

	"github.com/mohammedfouly1/PharmaInventory/pkg/aidict"
	"github.com/mohammedfouly1/PharmaInventory/pkg/gs1validate"
)

func matchesPattern(def aiDef, value string) bool {
	if value == "" {
		return false
	}
	switch def.dataType {
	case "N":
		for i := 0; i < len(value); i++ {
			if value[i] < '0' || value[i] > '9' {
				return false
			}
		}
		return true
	default:
		if def.priority == aidict.PriorityInternal {
			return true // internal AIs accept any non-empty value
		}
		for i := 0; i < len(value); i++ {
			c := value[i]
			switch {
			case c >= '0' && c <= '9':
			case c >= 'A' && c <= 'Z':
			case c >= 'a' && c <= 'z':
			case c == '-' || c == '/':
			default:
				return false
			}
		}
		return true
	}
}

// validateElement checks value against def's pattern, check digit and
// date rules, returning the resulting element and whether it is valid.
func validateElement(def aiDef, value string, startPos, endPos int) (ParsedElement, bool) {
	var errs []string
	meta := map[string]any{}
	normalized := value
	valid := true

	if !matchesPattern(def, value) {
		errs = append(errs, fmt.Sprintf("value does not match pattern for AI(%s)", def.ai))
		valid = false
	}

	if def.checkDigit {
		if len(value) == def.fixedLength && isAllDigits(value) {
			cd := gs1validate.CheckDigit(value)
			if !cd.Valid {
				errs = append(errs, cd.Errors...)
				valid = false
			} else {
				meta["check_digit_valid"] = true
			}
		} else {
			errs = append(errs, "invalid format for check digit validation")
			valid = false
		}
	}

	if def.dateFormat == aidict.DateYYMMDD && len(value) == 6 {
		if value[4:6] == "00" {
			r := gs1validate.Date(value, aidict.DateYYMMD0, gs1validate.DefaultCenturyPivot)
			if r.Valid {
				for k, v := range r.Meta {
					meta[k] = v
				}
				meta["unknown_day"] = true
				year, _ := meta["year"].(int)
				month, _ := meta["month"].(int)
				normalized = fmt.Sprintf("%04d-%02d-XX", year, month)
			} else {
				errs = append(errs, r.Errors...)
				valid = false
			}
		} else {
			r := gs1validate.Date(value, aidict.DateYYMMDD, gs1validate.DefaultCenturyPivot)
			if r.Valid {
				for k, v := range r.Meta {
					meta[k] = v
				}
				if iso, ok := r.Meta["iso_date"].(string); ok {
					normalized = iso
				}
			} else {
				errs = append(errs, r.Errors...)
				valid = false
			}
		}
	}

	return ParsedElement{
		AI:               def.ai,
		RawValue:         value,
		NormalizedValue:  normalized,
		Valid:            valid,
		ValidationErrors: errs,
		Meta:             meta,
		StartPos:         startPos,
		EndPos:           endPos,
	}, valid
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
