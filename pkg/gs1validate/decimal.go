package gs1validate

import (
	"fmt"
	"strconv"
	"strings"
)

// DecodeDecimal applies an AI's implied decimal-point position to a
// numeric value, as used by the weight/measure/price AI families
// (310n..369n, 392n..395n). AI 3102 with value "001234" decodes to
// 12.34. Values shorter than decimalPositions are zero-padded on the
// left first.
func DecodeDecimal(value string, decimalPositions int) (float64, string, error) {
	if !isAllDigits(value) {
		return 0, "", fmt.Errorf("gs1validate: value must be numeric")
	}
	if decimalPositions == 0 {
		f, err := strconv.ParseFloat(value, 64)
		return f, value, err
	}

	if len(value) <= decimalPositions {
		value = strings.Repeat("0", decimalPositions+1-len(value)) + value
	}

	intPart := strings.TrimLeft(value[:len(value)-decimalPositions], "0")
	decPart := value[len(value)-decimalPositions:]
	if intPart == "" {
		intPart = "0"
	}

	formatted := intPart + "." + decPart
	f, err := strconv.ParseFloat(formatted, 64)
	if err != nil {
		return 0, "", err
	}
	return f, formatted, nil
}
