package calendar

import "time"

// Month is the laid-out grid for one calendar month.
type Month struct {
	Year   int
	Month  int
	Days   int
	Offset int // weekday of the 1st, counted from Sunday (0-6)
	Today  int // day of month that is today, or 0
}

// Cell is one slot of the 7-column grid. Day is 0 for leading blanks.
type Cell struct {
	Day     int          `json:"day"`
	Weekday time.Weekday `json:"weekday"`
	Sunday  bool         `json:"sunday,omitempty"`
	Today   bool         `json:"today,omitempty"`
}

// Blank reports whether c is padding before the 1st.
func (c Cell) Blank() bool { return c.Day == 0 }

// NewMonth lays out month of year. today marks the current day when it falls
// inside that month. An invalid month yields an empty grid.
func NewMonth(year, month int, today time.Time) Month {
	m := Month{
		Year:  year,
		Month: month,
		Days:  DaysInMonth(year, month),
	}
	if m.Days == 0 {
		return m
	}
	m.Offset = int(Weekday(year, month, 1))
	if today.Year() == year && int(today.Month()) == month {
		m.Today = today.Day()
	}
	return m
}

// Current lays out the month containing now.
func Current(now time.Time) Month {
	return NewMonth(now.Year(), int(now.Month()), now)
}

// Next returns the layout of the following month, keeping the same today.
func (m Month) Next(today time.Time) Month {
	y, mo := shift(m.Year, m.Month, 1)
	return NewMonth(y, mo, today)
}

// Prev returns the layout of the preceding month, keeping the same today.
func (m Month) Prev(today time.Time) Month {
	y, mo := shift(m.Year, m.Month, -1)
	return NewMonth(y, mo, today)
}

func shift(year, month, delta int) (int, int) {
	if !ValidMonth(month) {
		month = 1
	}
	n := year*12 + (month - 1) + delta
	return floorDiv(n, 12), floorMod(n, 12) + 1
}

// Cells returns the leading blanks followed by one cell per day.
func (m Month) Cells() []Cell {
	if m.Days == 0 {
		return nil
	}
	cells := make([]Cell, 0, m.Offset+m.Days)
	for i := 0; i < m.Offset; i++ {
		cells = append(cells, Cell{Weekday: time.Weekday(i)})
	}
	for d := 1; d <= m.Days; d++ {
		wd := time.Weekday((m.Offset + d - 1) % 7)
		cells = append(cells, Cell{
			Day:     d,
			Weekday: wd,
			Sunday:  wd == time.Sunday,
			Today:   d == m.Today,
		})
	}
	return cells
}

// Weeks chunks Cells into rows of seven. The last row may be short.
func (m Month) Weeks() [][]Cell {
	cells := m.Cells()
	var weeks [][]Cell
	for len(cells) > 0 {
		n := min(7, len(cells))
		weeks = append(weeks, cells[:n])
		cells = cells[n:]
	}
	return weeks
}

// Weekday returns the day of week of a Gregorian date, proleptic for any year.
// An invalid month yields time.Sunday.
func Weekday(year, month, day int) time.Weekday {
	if !ValidMonth(month) {
		return time.Sunday
	}
	// Sakamoto's method with floored division so negative years work.
	t := [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}
	if month < 3 {
		year--
	}
	n := year + floorDiv(year, 4) - floorDiv(year, 100) + floorDiv(year, 400) + t[month-1] + day
	return time.Weekday(floorMod(n, 7))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
