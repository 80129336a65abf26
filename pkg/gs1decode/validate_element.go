package gs1decode

import (
	"fmt"

	"github.com/mohammedfouly1/PharmaInventory/pkg/aidict"
	"github.com/mohammedfouly1/PharmaInventory/pkg/gs1validate"
)

// validatedElement is the outcome of running one AI/value pair through
// every applicable validator: length, data type, check digit, date,
// and decimal-position decoding, in that order, each layering onto the
// same Meta map and accumulating onto the same error list rather than
// stopping at the first failure.
type validatedElement struct {
	value  any
	valid  bool
	errors []string
	meta   map[string]any
}

// validateElement is the Go analogue of running an AI's declared
// syntax against a raw scanned value: it never trusts the tokenizer or
// reconstructor's own notion of "valid" and re-derives it from spec.
func validateElement(spec *aidict.Spec, value string, centuryPivot int) validatedElement {
	ve := validatedElement{value: value, valid: true, meta: map[string]any{}}

	if spec.FixedLength {
		if len(value) != spec.MaxLength {
			ve.valid = false
			ve.errors = append(ve.errors, fmt.Sprintf("length must be %d, got %d", spec.MaxLength, len(value)))
		}
	} else {
		if len(value) < spec.MinLength {
			ve.valid = false
			ve.errors = append(ve.errors, fmt.Sprintf("length %d below minimum %d", len(value), spec.MinLength))
		}
		if spec.MaxLength > 0 && len(value) > spec.MaxLength {
			ve.valid = false
			ve.errors = append(ve.errors, fmt.Sprintf("length %d exceeds maximum %d", len(value), spec.MaxLength))
		}
	}

	switch spec.DataType {
	case "N":
		if r := gs1validate.Numeric(value, 0, 0, -1); !r.Valid {
			ve.valid = false
			ve.errors = append(ve.errors, r.Errors...)
		}
	default:
		cset39 := spec.DataType == "Y"
		if r := gs1validate.Alphanumeric(value, 0, 0, -1, cset39); !r.Valid {
			ve.valid = false
			ve.errors = append(ve.errors, r.Errors...)
		}
	}

	if spec.CheckDigit && isAllDigits(value) && len(value) >= 2 {
		r := gs1validate.CheckDigit(value)
		if !r.Valid {
			ve.valid = false
			ve.errors = append(ve.errors, r.Errors...)
		}
		mergeMeta(ve.meta, r.Meta)
	}

	if spec.DateFormat != aidict.DateNone {
		r := gs1validate.Date(value, spec.DateFormat, centuryPivot)
		if !r.Valid {
			ve.valid = false
			ve.errors = append(ve.errors, r.Errors...)
		}
		mergeMeta(ve.meta, r.Meta)
		if r.Valid {
			if ddmmyyyy, ok := r.Meta["date_ddmmyyyy"]; ok {
				ve.value = ddmmyyyy
			}
		}
	}

	if spec.HasDecimalPos && isAllDigits(value) {
		f, formatted, err := gs1validate.DecodeDecimal(value, spec.DecimalPos)
		if err != nil {
			ve.errors = append(ve.errors, "decimal decode error: "+err.Error())
		} else {
			ve.meta["decimal_value"] = f
			ve.meta["decimal_formatted"] = formatted
			ve.meta["decimal_positions"] = spec.DecimalPos
			ve.value = f
		}
	}

	return ve
}

func mergeMeta(dst, src map[string]any) {
	for k, v := range src {
		dst[k] = v
	}
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

// buildElement runs validateElement and wraps the outcome as a
// DecodedElement, the shape callers of Decode actually see.
func buildElement(ctx elementContext, centuryPivot int) DecodedElement {
	if ctx.spec == nil {
		return DecodedElement{
			AI:         ctx.ai,
			RawValue:   ctx.value,
			Value:      ctx.value,
			Valid:      false,
			Errors:     []string{"unknown AI: " + ctx.ai},
			Meta:       map[string]any{},
			StartIndex: ctx.startIndex,
			EndIndex:   ctx.endIndex,
		}
	}

	ve := validateElement(ctx.spec, ctx.value, centuryPivot)
	return DecodedElement{
		AI:         ctx.ai,
		Name:       ctx.spec.Title,
		RawValue:   ctx.value,
		Value:      ve.value,
		Valid:      ve.valid,
		Errors:     ve.errors,
		Meta:       ve.meta,
		StartIndex: ctx.startIndex,
		EndIndex:   ctx.endIndex,
	}
}
