package dto

import (
	"time"

	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// NoteInput comentario de una colección hija.
type NoteInput struct {
	Comment string `json:"comment" validate:"required,max=2000"`
}

// BlueBookNotesInput colecciones hijas; nil = no se envió (en update queda intacta).
type BlueBookNotesInput struct {
	Item86s           *[]NoteInput `json:"item86" validate:"omitempty,dive"`
	Wins              *[]NoteInput `json:"wins" validate:"omitempty,dive"`
	Misses            *[]NoteInput `json:"misses" validate:"omitempty,dive"`
	StaffNotes        *[]NoteInput `json:"staff_notes" validate:"omitempty,dive"`
	MiscNotes         *[]NoteInput `json:"misc_notes" validate:"omitempty,dive"`
	CallOuts          *[]NoteInput `json:"call_outs" validate:"omitempty,dive"`
	MaintenanceIssues *[]NoteInput `json:"maintenance_issues" validate:"omitempty,dive"`
}

// Supplied devuelve solo las colecciones enviadas, como lista de comentarios.
func (n BlueBookNotesInput) Supplied() map[entity.NoteKind][]string {
	out := map[entity.NoteKind][]string{}
	add := func(kind entity.NoteKind, in *[]NoteInput) {
		if in == nil {
			return
		}
		comments := make([]string, 0, len(*in))
		for _, c := range *in {
			comments = append(comments, c.Comment)
		}
		out[kind] = comments
	}
	add(entity.NoteItem86, n.Item86s)
	add(entity.NoteWin, n.Wins)
	add(entity.NoteMiss, n.Misses)
	add(entity.NoteStaff, n.StaffNotes)
	add(entity.NoteMisc, n.MiscNotes)
	add(entity.NoteCallOut, n.CallOuts)
	add(entity.NoteMaintenanceIssue, n.MaintenanceIssues)
	return out
}

// CreateBlueBookRequest body para POST /blue-book.
type CreateBlueBookRequest struct {
	RestaurantID       string          `json:"restaurant_id" validate:"required,uuid"`
	Date               string          `json:"date" validate:"required,datetime=2006-01-02"`
	Weather            string          `json:"weather" validate:"omitempty,max=100"`
	BreakfastSales     decimal.Decimal `json:"breakfast_sales"`
	BreakfastGuests    int             `json:"breakfast_guests" validate:"min=0"`
	LunchSales         decimal.Decimal `json:"lunch_sales"`
	LunchGuests        int             `json:"lunch_guests" validate:"min=0"`
	DinnerSales        decimal.Decimal `json:"dinner_sales"`
	DinnerGuests       int             `json:"dinner_guests" validate:"min=0"`
	TotalSales         decimal.Decimal `json:"total_sales"`
	TotalSalesLastYear decimal.Decimal `json:"total_sales_last_year"`
	FoodSales          decimal.Decimal `json:"food_sales"`
	LBWSales           decimal.Decimal `json:"lbw_sales"`
	HourlyLabor        decimal.Decimal `json:"hourly_labor"`
	HourlyLaborPercent decimal.Decimal `json:"hourly_labor_percent"`
	HoursWorked        decimal.Decimal `json:"hours_worked"`
	SPLH               decimal.Decimal `json:"splh"`
	BlueBookNotesInput
}

// UpdateBlueBookRequest campos editables; restaurant_id y date no cambian.
type UpdateBlueBookRequest struct {
	Weather            *string          `json:"weather" validate:"omitempty,max=100"`
	BreakfastSales     *decimal.Decimal `json:"breakfast_sales"`
	BreakfastGuests    *int             `json:"breakfast_guests" validate:"omitempty,min=0"`
	LunchSales         *decimal.Decimal `json:"lunch_sales"`
	LunchGuests        *int             `json:"lunch_guests" validate:"omitempty,min=0"`
	DinnerSales        *decimal.Decimal `json:"dinner_sales"`
	DinnerGuests       *int             `json:"dinner_guests" validate:"omitempty,min=0"`
	TotalSales         *decimal.Decimal `json:"total_sales"`
	TotalSalesLastYear *decimal.Decimal `json:"total_sales_last_year"`
	FoodSales          *decimal.Decimal `json:"food_sales"`
	LBWSales           *decimal.Decimal `json:"lbw_sales"`
	HourlyLabor        *decimal.Decimal `json:"hourly_labor"`
	HourlyLaborPercent *decimal.Decimal `json:"hourly_labor_percent"`
	HoursWorked        *decimal.Decimal `json:"hours_worked"`
	SPLH               *decimal.Decimal `json:"splh"`
	BlueBookNotesInput
}

// NoteResponse comentario en respuestas.
type NoteResponse struct {
	ID      string `json:"id"`
	Comment string `json:"comment"`
}

// BlueBookResponse entrada con todas sus colecciones.
type BlueBookResponse struct {
	ID                 string          `json:"id"`
	RestaurantID       string          `json:"restaurant_id"`
	UserID             string          `json:"user_id"`
	Date               string          `json:"date"`
	Weather            string          `json:"weather"`
	BreakfastSales     decimal.Decimal `json:"breakfast_sales"`
	BreakfastGuests    int             `json:"breakfast_guests"`
	LunchSales         decimal.Decimal `json:"lunch_sales"`
	LunchGuests        int             `json:"lunch_guests"`
	DinnerSales        decimal.Decimal `json:"dinner_sales"`
	DinnerGuests       int             `json:"dinner_guests"`
	TotalSales         decimal.Decimal `json:"total_sales"`
	TotalSalesLastYear decimal.Decimal `json:"total_sales_last_year"`
	FoodSales          decimal.Decimal `json:"food_sales"`
	LBWSales           decimal.Decimal `json:"lbw_sales"`
	HourlyLabor        decimal.Decimal `json:"hourly_labor"`
	HourlyLaborPercent decimal.Decimal `json:"hourly_labor_percent"`
	HoursWorked        decimal.Decimal `json:"hours_worked"`
	SPLH               decimal.Decimal `json:"splh"`
	IsActive           bool            `json:"is_active"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`

	Item86s           []NoteResponse `json:"item86"`
	Wins              []NoteResponse `json:"wins"`
	Misses            []NoteResponse `json:"misses"`
	StaffNotes        []NoteResponse `json:"staff_notes"`
	MiscNotes         []NoteResponse `json:"misc_notes"`
	CallOuts          []NoteResponse `json:"call_outs"`
	MaintenanceIssues []NoteResponse `json:"maintenance_issues"`
}

// BlueBookListResponse lista paginada (sin colecciones hijas).
type BlueBookListResponse struct {
	Items []BlueBookResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
