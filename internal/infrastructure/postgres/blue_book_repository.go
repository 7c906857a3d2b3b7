package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
)

var _ repository.BlueBookRepository = (*BlueBookRepo)(nil)

// noteTables mapea cada colección a su tabla; los nombres son fijos, nunca vienen del cliente.
var noteTables = map[entity.NoteKind]string{
	entity.NoteItem86:           "item86s",
	entity.NoteWin:              "wins",
	entity.NoteMiss:             "misses",
	entity.NoteStaff:            "staff_notes",
	entity.NoteMisc:             "misc_notes",
	entity.NoteCallOut:          "call_outs",
	entity.NoteMaintenanceIssue: "maintenance_issues",
}

const blueBookColumns = `id, restaurant_id, user_id, date, weather,
	breakfast_sales, breakfast_guests, lunch_sales, lunch_guests, dinner_sales, dinner_guests,
	total_sales, total_sales_last_year, food_sales, lbw_sales, hourly_labor, hourly_labor_percent,
	hours_worked, splh, is_active, created_at, updated_at`

// BlueBookRepo implementación del puerto BlueBookRepository sobre PostgreSQL.
type BlueBookRepo struct {
	q Querier
}

// NewBlueBookRepository construye el adaptador de persistencia para blue books.
func NewBlueBookRepository(q Querier) *BlueBookRepo {
	return &BlueBookRepo{q: q}
}

func scanBlueBook(row pgx.Row) (*entity.BlueBook, error) {
	var b entity.BlueBook
	err := row.Scan(&b.ID, &b.RestaurantID, &b.UserID, &b.Date, &b.Weather,
		&b.BreakfastSales, &b.BreakfastGuests, &b.LunchSales, &b.LunchGuests, &b.DinnerSales, &b.DinnerGuests,
		&b.TotalSales, &b.TotalSalesLastYear, &b.FoodSales, &b.LBWSales, &b.HourlyLabor, &b.HourlyLaborPercent,
		&b.HoursWorked, &b.SPLH, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create persiste la cabecera; un duplicado activo en (restaurant_id, date) se traduce a DUPLICATE_BLUE_BOOK.
func (r *BlueBookRepo) Create(ctx context.Context, b *entity.BlueBook) error {
	query := `
		INSERT INTO blue_books (` + blueBookColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.RestaurantID, b.UserID, b.Date, b.Weather,
		b.BreakfastSales, b.BreakfastGuests, b.LunchSales, b.LunchGuests, b.DinnerSales, b.DinnerGuests,
		b.TotalSales, b.TotalSalesLastYear, b.FoodSales, b.LBWSales, b.HourlyLabor, b.HourlyLaborPercent,
		b.HoursWorked, b.SPLH, b.IsActive, b.CreatedAt, b.UpdatedAt,
	)
	return mapErr(err, nil, domain.ErrDuplicateBlueBook, "insert blue book")
}

// GetByID obtiene la cabecera por ID (sin colecciones).
func (r *BlueBookRepo) GetByID(ctx context.Context, id string, includeInactive bool) (*entity.BlueBook, error) {
	query := `SELECT ` + blueBookColumns + ` FROM blue_books WHERE id = $1` + activeClause(includeInactive)
	b, err := scanBlueBook(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapErr(err, domain.ErrBlueBookNotFound, nil, "get blue book")
	}
	return b, nil
}

// GetActiveByDate obtiene la entrada activa de un restaurante en una fecha.
func (r *BlueBookRepo) GetActiveByDate(ctx context.Context, restaurantID string, date time.Time) (*entity.BlueBook, error) {
	query := `SELECT ` + blueBookColumns + ` FROM blue_books WHERE restaurant_id = $1 AND date = $2 AND is_active = TRUE`
	b, err := scanBlueBook(r.q.QueryRow(ctx, query, restaurantID, date))
	if err != nil {
		return nil, mapErr(err, domain.ErrBlueBookNotFound, nil, "get blue book by date")
	}
	return b, nil
}

// Update actualiza la cabecera de una entrada activa.
func (r *BlueBookRepo) Update(ctx context.Context, b *entity.BlueBook) error {
	query := `
		UPDATE blue_books SET date = $2, weather = $3,
			breakfast_sales = $4, breakfast_guests = $5, lunch_sales = $6, lunch_guests = $7,
			dinner_sales = $8, dinner_guests = $9, total_sales = $10, total_sales_last_year = $11,
			food_sales = $12, lbw_sales = $13, hourly_labor = $14, hourly_labor_percent = $15,
			hours_worked = $16, splh = $17, updated_at = $18
		WHERE id = $1 AND is_active = TRUE`
	tag, err := r.q.Exec(ctx, query,
		b.ID, b.Date, b.Weather,
		b.BreakfastSales, b.BreakfastGuests, b.LunchSales, b.LunchGuests,
		b.DinnerSales, b.DinnerGuests, b.TotalSales, b.TotalSalesLastYear,
		b.FoodSales, b.LBWSales, b.HourlyLabor, b.HourlyLaborPercent,
		b.HoursWorked, b.SPLH, b.UpdatedAt,
	)
	if err != nil {
		return mapErr(err, nil, domain.ErrDuplicateBlueBook, "update blue book")
	}
	return expectOne(tag, domain.ErrBlueBookNotFound)
}

// SoftDelete marca la entrada como inactiva; libera la fecha para una nueva entrada.
func (r *BlueBookRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `UPDATE blue_books SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active = TRUE`, id)
	if err != nil {
		return fmt.Errorf("delete blue book: %w", err)
	}
	return expectOne(tag, domain.ErrBlueBookNotFound)
}

// List lista entradas activas del alcance, más recientes primero.
func (r *BlueBookRepo) List(ctx context.Context, fl repository.RecordFilter) ([]*entity.BlueBook, int, error) {
	f := &filter{}
	f.where("is_active = TRUE")
	f.scope("restaurant_id", fl.Scope)
	f.dateRange("date", fl.Range)
	total, err := count(ctx, r.q, "blue_books", f)
	if err != nil {
		return nil, 0, fmt.Errorf("count blue books: %w", err)
	}
	query := `SELECT ` + blueBookColumns + ` FROM blue_books` + f.clause() + ` ORDER BY date DESC` + f.page(fl.Page)
	rows, err := r.q.Query(ctx, query, f.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list blue books: %w", err)
	}
	defer rows.Close()
	var list []*entity.BlueBook
	for rows.Next() {
		b, err := scanBlueBook(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan blue book: %w", err)
		}
		list = append(list, b)
	}
	return list, total, rows.Err()
}

// ReplaceNotes borra la colección kind y la vuelve a crear con comments.
func (r *BlueBookRepo) ReplaceNotes(ctx context.Context, blueBookID string, kind entity.NoteKind, comments []string) error {
	table, ok := noteTables[kind]
	if !ok {
		return domain.Validation("INVALID_NOTE_KIND", fmt.Sprintf("colección desconocida: %s", kind))
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM `+table+` WHERE blue_book_id = $1`, blueBookID); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	now := time.Now().UTC()
	for i, c := range comments {
		_, err := r.q.Exec(ctx,
			`INSERT INTO `+table+` (id, blue_book_id, comment, position, is_active, created_at) VALUES ($1, $2, $3, $4, TRUE, $5)`,
			uuid.New().String(), blueBookID, c, i, now,
		)
		if err != nil {
			return fmt.Errorf("insert %s: %w", table, err)
		}
	}
	return nil
}

// ListNotes devuelve todas las colecciones activas de la entrada.
func (r *BlueBookRepo) ListNotes(ctx context.Context, blueBookID string) (map[entity.NoteKind][]*entity.BlueBookNote, error) {
	out := make(map[entity.NoteKind][]*entity.BlueBookNote, len(entity.NoteKinds))
	for _, kind := range entity.NoteKinds {
		table := noteTables[kind]
		rows, err := r.q.Query(ctx,
			`SELECT id, blue_book_id, comment, position, is_active, created_at FROM `+table+
				` WHERE blue_book_id = $1 AND is_active = TRUE ORDER BY position, created_at`, blueBookID)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", table, err)
		}
		notes := []*entity.BlueBookNote{}
		for rows.Next() {
			n := entity.BlueBookNote{Kind: kind}
			if err := rows.Scan(&n.ID, &n.BlueBookID, &n.Comment, &n.Position, &n.IsActive, &n.CreatedAt); err != nil {
				rows.Close()
				return nil, fmt.Errorf("scan %s: %w", table, err)
			}
			notes = append(notes, &n)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("list %s: %w", table, err)
		}
		out[kind] = notes
	}
	return out, nil
}
