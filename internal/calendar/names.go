package calendar

import "strings"

// Lang selects the label set used for month and weekday names.
type Lang string

const (
	English    Lang = "en"
	Portuguese Lang = "pt"
)

// InvalidMonthName is returned by MonthName for months outside 1-12.
const InvalidMonthName = "Invalid month"

type labels struct {
	months   [12]string
	invalid  string
	weekdays [7]string // Sunday first
}

var labelSets = map[Lang]labels{
	English: {
		months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		invalid:  InvalidMonthName,
		weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	},
	Portuguese: {
		months: [12]string{
			"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
			"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
		},
		invalid:  "Mês Inválido",
		weekdays: [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sab"},
	},
}

// ParseLang maps user input to a supported Lang. Unknown values fall back to English.
func ParseLang(s string) Lang {
	s = strings.ToLower(strings.TrimSpace(s))
	// Accept locale-ish values like "pt_BR" or "pt-BR".
	if i := strings.IndexAny(s, "_-."); i > 0 {
		s = s[:i]
	}
	if _, ok := labelSets[Lang(s)]; ok {
		return Lang(s)
	}
	return English
}

func (l Lang) labels() labels {
	if ls, ok := labelSets[l]; ok {
		return ls
	}
	return labelSets[English]
}

// MonthName returns the English name of month, or InvalidMonthName.
func MonthName(month int) string {
	return English.MonthName(month)
}

// MonthName returns the localized name of month, or the language's invalid label.
func (l Lang) MonthName(month int) string {
	ls := l.labels()
	if !ValidMonth(month) {
		return ls.invalid
	}
	return ls.months[month-1]
}

// Weekdays returns the seven weekday abbreviations, Sunday first.
func (l Lang) Weekdays() [7]string {
	return l.labels().weekdays
}
