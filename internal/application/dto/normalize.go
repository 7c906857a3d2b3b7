package dto

// Aliases traduce nombres de campo del frontend al nombre canónico del DTO.
// Cada endpoint tiene su tabla; si llegan ambos nombres gana el canónico.
type Aliases map[string]string

// Tablas por endpoint.
var (
	PageAliases = Aliases{
		"pageSize": "page_size",
		"limit":    "page_size",
	}

	ExpenseAliases = Aliases{
		"expense_date":  "date",
		"type":          "category",
		"restaurantId":  "restaurant_id",
		"vendorName":    "vendor_name",
		"vendor":        "vendor_name",
		"invoiceNumber": "invoice_number",
		"salaryAmount":  "salary_amount",
	}

	RevenueAliases = Aliases{
		"restaurantId":  "restaurant_id",
		"beginningDate": "beginning_date",
		"endingDate":    "ending_date",
		"totalAmount":   "total_amount",
		"totalGuest":    "total_guest",
	}

	BlueBookAliases = Aliases{
		"restaurantId":      "restaurant_id",
		"item86s":           "item86",
		"miscNotes":         "misc_notes",
		"staffNotes":        "staff_notes",
		"callOuts":          "call_outs",
		"maintenanceIssues": "maintenance_issues",
	}

	LocationAliases = Aliases{
		"restaurantsData": "restaurant",
		"forecastsData":   "forecasts",
		"targetsData":     "target",
	}

	DashboardAliases = Aliases{
		"restaurant_id": "restaurant_ids",
		"restaurantIds": "restaurant_ids",
		"startDate":     "start_date",
		"endDate":       "end_date",
	}

	AddUserAliases = Aliases{
		"user_first_name": "first_name",
		"user_last_name":  "last_name",
		"user_email":      "email",
		"user_phone_no":   "phone",
		"phone_number":    "phone",
	}
)

// Apply devuelve una copia de body con las claves renombradas.
func (a Aliases) Apply(body map[string]any) map[string]any {
	out := make(map[string]any, len(body))
	for k, v := range body {
		if _, isAlias := a[k]; !isAlias {
			out[k] = v
		}
	}
	for k, v := range body {
		canonical, isAlias := a[k]
		if !isAlias {
			continue
		}
		if _, exists := out[canonical]; !exists {
			out[canonical] = v
		}
	}
	return out
}

// ApplyQuery igual que Apply para parámetros de query.
func (a Aliases) ApplyQuery(query map[string]string) map[string]string {
	out := make(map[string]string, len(query))
	for k, v := range query {
		if _, isAlias := a[k]; !isAlias {
			out[k] = v
		}
	}
	for k, v := range query {
		canonical, isAlias := a[k]
		if !isAlias {
			continue
		}
		if _, exists := out[canonical]; !exists {
			out[canonical] = v
		}
	}
	return out
}

// Merge combina tablas; las posteriores pisan a las anteriores.
func Merge(tables ...Aliases) Aliases {
	out := Aliases{}
	for _, t := range tables {
		for k, v := range t {
			out[k] = v
		}
	}
	return out
}
