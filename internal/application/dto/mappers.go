package dto

import (
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
)

// Conversión entidad → respuesta. Las fechas DATE salen como YYYY-MM-DD.

func NewCompanyResponse(c *entity.Company) CompanyResponse {
	return CompanyResponse{
		ID:                  c.ID,
		Name:                c.Name,
		Email:               c.Email,
		Phone:               c.Phone,
		Location:            c.Location,
		NumberOfRestaurants: c.NumberOfRestaurants,
		IsOnboarded:         c.IsOnboarded,
		IsActive:            c.IsActive,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func NewRestaurantResponse(r *entity.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:        r.ID,
		CompanyID: r.CompanyID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Location:  r.Location,
		State:     r.State,
		Zipcode:   r.Zipcode,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// NewRestaurantResponses convierte una lista; nunca devuelve nil.
func NewRestaurantResponses(list []*entity.Restaurant) []RestaurantResponse {
	out := make([]RestaurantResponse, 0, len(list))
	for _, r := range list {
		out = append(out, NewRestaurantResponse(r))
	}
	return out
}

func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		CompanyID: u.CompanyIDValue(),
		IsActive:  u.IsActive,
		IsBlocked: u.IsBlocked,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func NewRevenueResponse(r *entity.Revenue) RevenueResponse {
	return RevenueResponse{
		ID:            r.ID,
		RestaurantID:  r.RestaurantID,
		UserID:        r.UserID,
		CreatedBy:     r.CreatedBy,
		BeginningDate: r.BeginningDate.Format(entity.DateLayout),
		EndingDate:    r.EndingDate.Format(entity.DateLayout),
		TotalAmount:   r.TotalAmount,
		FOHLabour:     r.FOHLabour,
		BOHLabour:     r.BOHLabour,
		OtherLabour:   r.OtherLabour,
		FoodSale:      r.FoodSale,
		BeerSale:      r.BeerSale,
		LiquorSale:    r.LiquorSale,
		WineSale:      r.WineSale,
		BeverageSale:  r.BeverageSale,
		OtherSale:     r.OtherSale,
		TotalGuest:    r.TotalGuest,
		Notes:         r.Notes,
		IsActive:      r.IsActive,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func NewExpenseResponse(e *entity.Expense) ExpenseResponse {
	out := ExpenseResponse{
		ID:            e.ID,
		RestaurantID:  e.RestaurantID,
		UserID:        e.UserID,
		Category:      e.Category,
		VendorName:    e.VendorName,
		InvoiceNumber: e.InvoiceNumber,
		Date:          e.Date.Format(entity.DateLayout),
		Amount:        e.Amount,
		Description:   e.Description,
		IsActive:      e.IsActive,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	for _, inv := range e.Invoices {
		out.Invoices = append(out.Invoices, InvoiceResponse{
			ID:              inv.ID,
			SalesCategoryID: inv.SalesCategoryID,
			Date:            inv.Date.Format(entity.DateLayout),
			Quantity:        inv.Quantity,
			UnitPrice:       inv.UnitPrice,
			TaxPrice:        inv.TaxPrice,
			Total:           inv.Total(),
		})
	}
	return out
}

func NewBlueBookResponse(b *entity.BlueBook) BlueBookResponse {
	notes := func(kind entity.NoteKind) []NoteResponse {
		out := []NoteResponse{}
		for _, n := range b.Notes[kind] {
			out = append(out, NoteResponse{ID: n.ID, Comment: n.Comment})
		}
		return out
	}
	return BlueBookResponse{
		ID:                 b.ID,
		RestaurantID:       b.RestaurantID,
		UserID:             b.UserID,
		Date:               b.Date.Format(entity.DateLayout),
		Weather:            b.Weather,
		BreakfastSales:     b.BreakfastSales,
		BreakfastGuests:    b.BreakfastGuests,
		LunchSales:         b.LunchSales,
		LunchGuests:        b.LunchGuests,
		DinnerSales:        b.DinnerSales,
		DinnerGuests:       b.DinnerGuests,
		TotalSales:         b.TotalSales,
		TotalSalesLastYear: b.TotalSalesLastYear,
		FoodSales:          b.FoodSales,
		LBWSales:           b.LBWSales,
		HourlyLabor:        b.HourlyLabor,
		HourlyLaborPercent: b.HourlyLaborPercent,
		HoursWorked:        b.HoursWorked,
		SPLH:               b.SPLH,
		IsActive:           b.IsActive,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
		Item86s:            notes(entity.NoteItem86),
		Wins:               notes(entity.NoteWin),
		Misses:             notes(entity.NoteMiss),
		StaffNotes:         notes(entity.NoteStaff),
		MiscNotes:          notes(entity.NoteMisc),
		CallOuts:           notes(entity.NoteCallOut),
		MaintenanceIssues:  notes(entity.NoteMaintenanceIssue),
	}
}

func NewForecastResponse(f *entity.Forecast) ForecastResponse {
	return ForecastResponse{Year: f.Year, Month: f.Month, Amount: f.Amount}
}

func NewTargetResponse(t *entity.Target) *TargetResponse {
	if t == nil {
		return nil
	}
	return &TargetResponse{
		Year:                  t.Year,
		Month:                 t.Month,
		OverallLaborTarget:    t.OverallLaborTarget,
		FOHTarget:             t.FOHTarget,
		BOHTarget:             t.BOHTarget,
		FOHCombinedSalaried:   t.FOHCombinedSalaried,
		BOHCombinedSalaried:   t.BOHCombinedSalaried,
		OtherCombinedSalaried: t.OtherCombinedSalaried,
		IncludesSalaries:      t.IncludesSalaries,
		COGSTarget:            t.COGSTarget,
		Food:                  t.Food,
		Pastry:                t.Pastry,
		Beer:                  t.Beer,
		Wine:                  t.Wine,
		Liquor:                t.Liquor,
		NABev:                 t.NABev,
		Smallwares:            t.Smallwares,
		Others:                t.Others,
		PrimePercentage:       t.PrimePercentage,
	}
}
