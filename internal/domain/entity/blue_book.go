package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// NoteKind identifica una colección hija del BlueBook.
type NoteKind string

const (
	NoteItem86           NoteKind = "item86"
	NoteWin              NoteKind = "win"
	NoteMiss             NoteKind = "miss"
	NoteStaff            NoteKind = "staff_note"
	NoteMisc             NoteKind = "misc_note"
	NoteCallOut          NoteKind = "call_out"
	NoteMaintenanceIssue NoteKind = "maintenance_issue"
)

// NoteKinds en orden estable.
var NoteKinds = []NoteKind{
	NoteItem86, NoteWin, NoteMiss, NoteStaff, NoteMisc, NoteCallOut, NoteMaintenanceIssue,
}

// Valid indica si k es una colección conocida.
func (k NoteKind) Valid() bool {
	for _, n := range NoteKinds {
		if n == k {
			return true
		}
	}
	return false
}

// BlueBookNote es un comentario de una colección hija.
type BlueBookNote struct {
	ID         string
	BlueBookID string
	Kind       NoteKind
	Comment    string
	Position   int // índice dentro de la colección, define el orden de lectura
	IsActive   bool
	CreatedAt  time.Time
}

// BlueBook es la bitácora diaria de operación; solo una activa por (restaurant_id, date).
type BlueBook struct {
	ID                 string
	RestaurantID       string
	UserID             string
	Date               time.Time
	Weather            string
	BreakfastSales     decimal.Decimal
	BreakfastGuests    int
	LunchSales         decimal.Decimal
	LunchGuests        int
	DinnerSales        decimal.Decimal
	DinnerGuests       int
	TotalSales         decimal.Decimal
	TotalSalesLastYear decimal.Decimal
	FoodSales          decimal.Decimal
	LBWSales           decimal.Decimal
	HourlyLabor        decimal.Decimal
	HourlyLaborPercent decimal.Decimal
	HoursWorked        decimal.Decimal
	SPLH               decimal.Decimal
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Notes map[NoteKind][]*BlueBookNote
}
