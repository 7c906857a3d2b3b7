package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
	"github.com/jhoicas/bluebook-api/pkg/logger"
)

// BlueBookUseCase gestiona la bitácora diaria: una entrada activa por restaurante y fecha,
// con siete colecciones de notas.
type BlueBookUseCase struct {
	repo   repository.BlueBookRepository
	tx     repository.TxRunner
	scopes ScopeResolver
	log    *logger.Logger
}

// NewBlueBookUseCase construye el caso de uso.
func NewBlueBookUseCase(repo repository.BlueBookRepository, tx repository.TxRunner, scopes ScopeResolver, log *logger.Logger) *BlueBookUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &BlueBookUseCase{repo: repo, tx: tx, scopes: scopes, log: log.Named("blue_book")}
}

// Create registra la entrada del día con sus notas. Una entrada activa previa para
// (restaurant_id, date) devuelve domain.ErrDuplicateBlueBook.
func (uc *BlueBookUseCase) Create(ctx context.Context, caller access.Caller, in dto.CreateBlueBookRequest) (*dto.BlueBookResponse, error) {
	if _, err := uc.scopes.Authorize(ctx, caller, in.RestaurantID); err != nil {
		return nil, err
	}
	date, err := parseDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	ts := now()
	book := &entity.BlueBook{
		ID:                 uuid.New().String(),
		RestaurantID:       in.RestaurantID,
		UserID:             caller.UserID,
		Date:               date,
		Weather:            in.Weather,
		BreakfastSales:     in.BreakfastSales,
		BreakfastGuests:    in.BreakfastGuests,
		LunchSales:         in.LunchSales,
		LunchGuests:        in.LunchGuests,
		DinnerSales:        in.DinnerSales,
		DinnerGuests:       in.DinnerGuests,
		TotalSales:         in.TotalSales,
		TotalSalesLastYear: in.TotalSalesLastYear,
		FoodSales:          in.FoodSales,
		LBWSales:           in.LBWSales,
		HourlyLabor:        in.HourlyLabor,
		HourlyLaborPercent: in.HourlyLaborPercent,
		HoursWorked:        in.HoursWorked,
		SPLH:               in.SPLH,
		IsActive:           true,
		CreatedAt:          ts,
		UpdatedAt:          ts,
	}
	if err := validateBlueBook(book); err != nil {
		return nil, err
	}

	err = uc.tx.Run(ctx, func(r repository.Repos) error {
		if _, err := r.BlueBooks.GetActiveByDate(ctx, book.RestaurantID, book.Date); err == nil {
			return domain.ErrDuplicateBlueBook
		} else if !isNotFound(err) {
			return err
		}
		if err := r.BlueBooks.Create(ctx, book); err != nil {
			return err
		}
		return writeNotes(ctx, r.BlueBooks, book, in.Supplied())
	})
	if err != nil {
		return nil, err
	}
	out := dto.NewBlueBookResponse(book)
	return &out, nil
}

// GetByDate devuelve la entrada activa del restaurante en la fecha, con todas sus notas.
func (uc *BlueBookUseCase) GetByDate(ctx context.Context, caller access.Caller, restaurantID, date string) (*dto.BlueBookResponse, error) {
	if _, err := uc.scopes.Authorize(ctx, caller, restaurantID); err != nil {
		return nil, err
	}
	day, err := parseDate("date", date)
	if err != nil {
		return nil, err
	}
	book, err := uc.repo.GetActiveByDate(ctx, restaurantID, day)
	if err != nil {
		return nil, err
	}
	return uc.withNotes(ctx, book)
}

// GetByID devuelve la entrada por id, con todas sus notas.
func (uc *BlueBookUseCase) GetByID(ctx context.Context, caller access.Caller, id string, includeInactive bool) (*dto.BlueBookResponse, error) {
	book, err := uc.get(ctx, caller, id, includeInactive)
	if err != nil {
		return nil, err
	}
	return uc.withNotes(ctx, book)
}

// List pagina las entradas visibles (sin notas), fecha desc.
func (uc *BlueBookUseCase) List(ctx context.Context, caller access.Caller, q dto.RecordListQuery) (*dto.BlueBookListResponse, error) {
	q.Category = ""
	filter, err := recordFilter(ctx, uc.scopes, caller, &q)
	if err != nil {
		return nil, err
	}
	items := []dto.BlueBookResponse{}
	if filter.Scope.IsEmpty() {
		return &dto.BlueBookListResponse{Items: items, Page: dto.NewPageResponse(0, q.PageRequest)}, nil
	}
	list, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, b := range list {
		items = append(items, dto.NewBlueBookResponse(b))
	}
	return &dto.BlueBookListResponse{Items: items, Page: dto.NewPageResponse(total, q.PageRequest)}, nil
}

// Update aplica los campos editables y reemplaza solo las colecciones enviadas.
func (uc *BlueBookUseCase) Update(ctx context.Context, caller access.Caller, id string, in dto.UpdateBlueBookRequest) (*dto.BlueBookResponse, error) {
	book, err := uc.get(ctx, caller, id, false)
	if err != nil {
		return nil, err
	}
	setString(&book.Weather, in.Weather)
	setDecimal(&book.BreakfastSales, in.BreakfastSales)
	setInt(&book.BreakfastGuests, in.BreakfastGuests)
	setDecimal(&book.LunchSales, in.LunchSales)
	setInt(&book.LunchGuests, in.LunchGuests)
	setDecimal(&book.DinnerSales, in.DinnerSales)
	setInt(&book.DinnerGuests, in.DinnerGuests)
	setDecimal(&book.TotalSales, in.TotalSales)
	setDecimal(&book.TotalSalesLastYear, in.TotalSalesLastYear)
	setDecimal(&book.FoodSales, in.FoodSales)
	setDecimal(&book.LBWSales, in.LBWSales)
	setDecimal(&book.HourlyLabor, in.HourlyLabor)
	setDecimal(&book.HourlyLaborPercent, in.HourlyLaborPercent)
	setDecimal(&book.HoursWorked, in.HoursWorked)
	setDecimal(&book.SPLH, in.SPLH)
	book.UpdatedAt = now()
	if err := validateBlueBook(book); err != nil {
		return nil, err
	}

	err = uc.tx.Run(ctx, func(r repository.Repos) error {
		if err := r.BlueBooks.Update(ctx, book); err != nil {
			return err
		}
		if err := writeNotes(ctx, r.BlueBooks, book, in.Supplied()); err != nil {
			return err
		}
		notes, err := r.BlueBooks.ListNotes(ctx, book.ID)
		book.Notes = notes
		return err
	})
	if err != nil {
		return nil, err
	}
	out := dto.NewBlueBookResponse(book)
	return &out, nil
}

// Delete desactiva la entrada; la fecha queda libre para una nueva.
func (uc *BlueBookUseCase) Delete(ctx context.Context, caller access.Caller, id string) error {
	if _, err := uc.get(ctx, caller, id, false); err != nil {
		return err
	}
	return uc.repo.SoftDelete(ctx, id)
}

func (uc *BlueBookUseCase) get(ctx context.Context, caller access.Caller, id string, includeInactive bool) (*entity.BlueBook, error) {
	book, err := uc.repo.GetByID(ctx, id, includeInactive)
	if err != nil {
		return nil, err
	}
	if err := checkScope(ctx, uc.scopes, caller, book.RestaurantID); err != nil {
		return nil, err
	}
	return book, nil
}

func (uc *BlueBookUseCase) withNotes(ctx context.Context, book *entity.BlueBook) (*dto.BlueBookResponse, error) {
	notes, err := uc.repo.ListNotes(ctx, book.ID)
	if err != nil {
		return nil, err
	}
	book.Notes = notes
	out := dto.NewBlueBookResponse(book)
	return &out, nil
}

// writeNotes reemplaza cada colección enviada y deja el resultado en book.Notes.
func writeNotes(ctx context.Context, repo repository.BlueBookRepository, book *entity.BlueBook, supplied map[entity.NoteKind][]string) error {
	for _, kind := range entity.NoteKinds {
		comments, ok := supplied[kind]
		if !ok {
			continue
		}
		if err := repo.ReplaceNotes(ctx, book.ID, kind, comments); err != nil {
			return err
		}
	}
	notes, err := repo.ListNotes(ctx, book.ID)
	if err != nil {
		return err
	}
	book.Notes = notes
	return nil
}

func validateBlueBook(b *entity.BlueBook) error {
	err := nonNegative(map[string]decimal.Decimal{
		"breakfast_sales":       b.BreakfastSales,
		"lunch_sales":           b.LunchSales,
		"dinner_sales":          b.DinnerSales,
		"total_sales":           b.TotalSales,
		"total_sales_last_year": b.TotalSalesLastYear,
		"food_sales":            b.FoodSales,
		"lbw_sales":             b.LBWSales,
		"hourly_labor":          b.HourlyLabor,
		"hours_worked":          b.HoursWorked,
	})
	if err != nil {
		return err
	}
	for name, v := range map[string]int{
		"breakfast_guests": b.BreakfastGuests,
		"lunch_guests":     b.LunchGuests,
		"dinner_guests":    b.DinnerGuests,
	} {
		if err := nonNegativeInt(name, v); err != nil {
			return err
		}
	}
	return nil
}
