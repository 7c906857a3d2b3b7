package entity

import "time"

// DateLayout es el formato de las columnas DATE (sin hora).
const DateLayout = "2006-01-02"

// DateOnly trunca t a medianoche UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate interpreta una fecha YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
