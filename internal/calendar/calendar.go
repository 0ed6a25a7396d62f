// Package calendar holds the Gregorian calendar math and month layout used by
// the grid renderer.
//
// Every function here is total: out-of-range months produce sentinel values
// (0 days, InvalidMonthName) instead of errors.
package calendar

// DaysInYear returns 366 for Gregorian leap years and 365 otherwise.
func DaysInYear(year int) int {
	switch {
	case year%400 == 0:
		return 366
	case year%100 == 0:
		return 365
	case year%4 == 0:
		return 366
	default:
		return 365
	}
}

// IsLeapYear reports whether year has 366 days.
func IsLeapYear(year int) bool {
	return DaysInYear(year) == 366
}

// DaysInMonth returns the number of days in month (1-12) of year.
// Months outside 1-12 return 0.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// ValidMonth reports whether month is in 1-12.
func ValidMonth(month int) bool {
	return month >= 1 && month <= 12
}
