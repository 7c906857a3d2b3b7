package entity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var monthNames = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4, "may": 5, "june": 6,
	"july": 7, "august": 8, "september": 9, "october": 10, "november": 11, "december": 12,
}

// MonthFromName devuelve el número de mes (1-12) para un nombre en inglés, sin distinguir mayúsculas.
// cases.Caser no es seguro entre goroutines: se crea uno por llamada.
func MonthFromName(name string) (int, bool) {
	m, ok := monthNames[cases.Lower(language.English).String(strings.TrimSpace(name))]
	return m, ok
}
