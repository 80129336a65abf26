package gs1format

import "fmt"

// DDMMYYYY formats a calendar date as GS1's common display form,
// dd/mm/yyyy. When dayUnspecified is true (a YYMMD0 value whose day
// digits were "00"), the day field is rendered "XX" instead of the
// resolved last-day-of-month, signalling to a human reader that the
// original barcode did not actually specify a day.
func DDMMYYYY(year, month, day int, dayUnspecified bool) string {
	if dayUnspecified {
		return fmt.Sprintf("XX/%02d/%04d", month, year)
	}
	return fmt.Sprintf("%02d/%02d/%04d", day, month, year)
}
