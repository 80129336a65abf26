package gs1validate

import (
	"fmt"
	"time"

	"github.com/mohammedfouly1/PharmaInventory/pkg/aidict"
)

// DefaultCenturyPivot is the two-digit-year cutoff GS1 uses when no
// explicit pivot is configured: YY >= 51 means 19YY, YY < 51 means 20YY.
const DefaultCenturyPivot = 51

// Date validates a GS1 date field. format selects YYMMDD, YYMMD0,
// YYYYMMDD or YYMMDDHH; centuryPivot resolves the two-digit-year
// formats' century. On success Meta carries "year", "month", "day"
// (and "hour" for YYMMDDHH), plus "iso_date"/"iso_datetime" and
// "date_ddmmyyyy" formatted strings. YYMMD0 additionally sets
// "day_unspecified" = true when the day digits are "00", resolving the
// day to the last day of the month.
func Date(value string, format aidict.DateFormat, centuryPivot int) Result {
	if value == "" || !isAllDigits(value) {
		return fail("date must be numeric")
	}

	switch format {
	case aidict.DateYYMMDD:
		return validateYYMMDD(value, centuryPivot)
	case aidict.DateYYMMD0:
		return validateYYMMD0(value, centuryPivot)
	case aidict.DateYYYYMMDD:
		return validateYYYYMMDD(value)
	case aidict.DateYYMMDDHH:
		return validateYYMMDDHH(value, centuryPivot)
	default:
		return fail(fmt.Sprintf("unknown date format: %s", format))
	}
}

func resolveCentury(yy, pivot int) int {
	if yy >= pivot {
		return 1900 + yy
	}
	return 2000 + yy
}

func lastDayOfMonth(year, month int) int {
	firstOfNext := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	lastOfMonth := firstOfNext.AddDate(0, 0, -1)
	return lastOfMonth.Day()
}

func validMonth(mm int) bool { return mm >= 1 && mm <= 12 }

func setDateMeta(r *Result, year, month, day int) {
	r.Meta["year"] = year
	r.Meta["month"] = month
	r.Meta["day"] = day
	r.Meta["iso_date"] = fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	r.Meta["date_ddmmyyyy"] = fmt.Sprintf("%02d/%02d/%04d", day, month, year)
}

func validateYYMMDD(value string, pivot int) Result {
	if len(value) != 6 {
		return fail(fmt.Sprintf("YYMMDD date must be 6 digits, got %d", len(value)))
	}
	yy := atoi2(value[0:2])
	mm := atoi2(value[2:4])
	dd := atoi2(value[4:6])
	year := resolveCentury(yy, pivot)

	if !validMonth(mm) {
		return fail(fmt.Sprintf("invalid month: %d", mm))
	}
	if dd < 1 || dd > 31 {
		return fail(fmt.Sprintf("invalid day: %d", dd))
	}
	if maxDay := lastDayOfMonth(year, mm); dd > maxDay {
		return fail(fmt.Sprintf("day %d invalid for month %d in year %d", dd, mm, year))
	}

	r := ok()
	setDateMeta(&r, year, mm, dd)
	return r
}

func validateYYMMD0(value string, pivot int) Result {
	if len(value) != 6 {
		return fail(fmt.Sprintf("YYMMD0 date must be 6 digits, got %d", len(value)))
	}
	yy := atoi2(value[0:2])
	mm := atoi2(value[2:4])
	dd := atoi2(value[4:6])
	year := resolveCentury(yy, pivot)

	if !validMonth(mm) {
		return fail(fmt.Sprintf("invalid month: %d", mm))
	}

	r := ok()
	if dd == 0 {
		r.Meta["day_unspecified"] = true
		dd = lastDayOfMonth(year, mm)
	} else if dd < 1 || dd > 31 {
		return fail(fmt.Sprintf("invalid day: %d", dd))
	} else if maxDay := lastDayOfMonth(year, mm); dd > maxDay {
		return fail(fmt.Sprintf("day %d invalid for month %d", dd, mm))
	}

	setDateMeta(&r, year, mm, dd)
	return r
}

func validateYYYYMMDD(value string) Result {
	if len(value) != 8 {
		return fail(fmt.Sprintf("YYYYMMDD date must be 8 digits, got %d", len(value)))
	}
	year := atoi4(value[0:4])
	mm := atoi2(value[4:6])
	dd := atoi2(value[6:8])

	if !validMonth(mm) {
		return fail(fmt.Sprintf("invalid month: %d", mm))
	}
	if dd < 1 || dd > 31 {
		return fail(fmt.Sprintf("invalid day: %d", dd))
	}
	if maxDay := lastDayOfMonth(year, mm); dd > maxDay {
		return fail(fmt.Sprintf("day %d invalid for month %d", dd, mm))
	}

	r := ok()
	setDateMeta(&r, year, mm, dd)
	return r
}

func validateYYMMDDHH(value string, pivot int) Result {
	if len(value) < 8 {
		return fail("YYMMDDHH date must be at least 8 digits")
	}
	yy := atoi2(value[0:2])
	mm := atoi2(value[2:4])
	dd := atoi2(value[4:6])
	hh := atoi2(value[6:8])
	year := resolveCentury(yy, pivot)

	if !validMonth(mm) {
		return fail(fmt.Sprintf("invalid month: %d", mm))
	}
	if dd < 1 || dd > 31 {
		return fail(fmt.Sprintf("invalid day: %d", dd))
	}
	if hh < 0 || hh > 23 {
		return fail(fmt.Sprintf("invalid hour: %d", hh))
	}

	r := ok()
	r.Meta["year"] = year
	r.Meta["month"] = mm
	r.Meta["day"] = dd
	r.Meta["hour"] = hh
	r.Meta["iso_datetime"] = fmt.Sprintf("%04d-%02d-%02dT%02d:00:00", year, mm, dd, hh)
	r.Meta["date_ddmmyyyy"] = fmt.Sprintf("%02d/%02d/%04d", dd, mm, year)
	return r
}

func atoi2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}

func atoi4(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
