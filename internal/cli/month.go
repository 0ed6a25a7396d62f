package cli

import "calgrid/internal/calendar"

type monthPayload struct {
	Year     int               `json:"year"`
	Month    int               `json:"month"`
	Name     string            `json:"name"`
	Days     int               `json:"days"`
	Offset   int               `json:"offset"`
	Today    int               `json:"today,omitempty"`
	LeapYear bool              `json:"leapYear"`
	Weekdays []string          `json:"weekdays"`
	Weeks    [][]calendar.Cell `json:"weeks"`
}

func newMonthPayload(m calendar.Month, lang calendar.Lang) monthPayload {
	wd := lang.Weekdays()
	weeks := m.Weeks()
	if weeks == nil {
		weeks = [][]calendar.Cell{}
	}
	return monthPayload{
		Year:     m.Year,
		Month:    m.Month,
		Name:     lang.MonthName(m.Month),
		Days:     m.Days,
		Offset:   m.Offset,
		Today:    m.Today,
		LeapYear: calendar.IsLeapYear(m.Year),
		Weekdays: wd[:],
		Weeks:    weeks,
	}
}
