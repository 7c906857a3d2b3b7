package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
)

var (
	_ repository.RevenueRepository  = (*RevenueRepo)(nil)
	_ repository.ExpenseRepository  = (*ExpenseRepo)(nil)
	_ repository.InvoiceRepository  = (*InvoiceRepo)(nil)
	_ repository.BlueBookRepository = (*BlueBookRepo)(nil)
)

// ── Revenue ──────────────────────────────────────────────────────────────────

// RevenueRepo ingresos en memoria.
type RevenueRepo struct{ h handle }

func (r *RevenueRepo) Create(_ context.Context, x *entity.Revenue) error {
	return r.h.do(func(d *data) error {
		if _, ok := d.restaurants[x.RestaurantID]; !ok {
			return domain.ErrRestaurantNotFound
		}
		d.revenues[x.ID] = *x
		return nil
	})
}

func (r *RevenueRepo) GetByID(_ context.Context, id string, includeInactive bool) (*entity.Revenue, error) {
	var out *entity.Revenue
	err := r.h.do(func(d *data) error {
		x, ok := d.revenues[id]
		if !ok || (!includeInactive && !x.IsActive) {
			return domain.ErrRevenueNotFound
		}
		out = &x
		return nil
	})
	return out, err
}

func (r *RevenueRepo) Update(_ context.Context, x *entity.Revenue) error {
	return r.h.do(func(d *data) error {
		cur, ok := d.revenues[x.ID]
		if !ok || !cur.IsActive {
			return domain.ErrRevenueNotFound
		}
		upd := *x
		upd.RestaurantID, upd.UserID, upd.CreatedBy = cur.RestaurantID, cur.UserID, cur.CreatedBy
		upd.IsActive, upd.CreatedAt = cur.IsActive, cur.CreatedAt
		d.revenues[x.ID] = upd
		return nil
	})
}

func (r *RevenueRepo) SoftDelete(_ context.Context, id string) error {
	return r.h.do(func(d *data) error {
		x, ok := d.revenues[id]
		if !ok || !x.IsActive {
			return domain.ErrRevenueNotFound
		}
		x.IsActive = false
		d.revenues[id] = x
		return nil
	})
}

func (r *RevenueRepo) List(_ context.Context, f repository.RecordFilter) ([]*entity.Revenue, int, error) {
	var list []*entity.Revenue
	err := r.h.do(func(d *data) error {
		for _, x := range d.revenues {
			if x.IsActive && f.Scope.Contains(x.RestaurantID) && inRange(x.BeginningDate, f.Range) {
				x := x
				list = append(list, &x)
			}
		}
		return nil
	})
	sortByTimeDesc(list, func(x *entity.Revenue) time.Time { return x.BeginningDate }, func(x *entity.Revenue) time.Time { return x.CreatedAt })
	return paginate(list, f.Page), len(list), err
}

// ── Expense ──────────────────────────────────────────────────────────────────

// ExpenseRepo gastos en memoria.
type ExpenseRepo struct{ h handle }

func (r *ExpenseRepo) Create(_ context.Context, x *entity.Expense) error {
	return r.h.do(func(d *data) error {
		if _, ok := d.restaurants[x.RestaurantID]; !ok {
			return domain.ErrRestaurantNotFound
		}
		stored := *x
		stored.Invoices = nil
		d.expenses[x.ID] = stored
		return nil
	})
}

func (r *ExpenseRepo) GetByID(_ context.Context, id string, includeInactive bool) (*entity.Expense, error) {
	var out *entity.Expense
	err := r.h.do(func(d *data) error {
		x, ok := d.expenses[id]
		if !ok || (!includeInactive && !x.IsActive) {
			return domain.ErrExpenseNotFound
		}
		out = &x
		return nil
	})
	return out, err
}

func (r *ExpenseRepo) Update(_ context.Context, x *entity.Expense) error {
	return r.h.do(func(d *data) error {
		cur, ok := d.expenses[x.ID]
		if !ok || !cur.IsActive {
			return domain.ErrExpenseNotFound
		}
		upd := *x
		upd.Invoices = nil
		upd.RestaurantID, upd.UserID = cur.RestaurantID, cur.UserID
		upd.IsActive, upd.CreatedAt = cur.IsActive, cur.CreatedAt
		d.expenses[x.ID] = upd
		return nil
	})
}

func (r *ExpenseRepo) SoftDelete(_ context.Context, id string) error {
	return r.h.do(func(d *data) error {
		x, ok := d.expenses[id]
		if !ok || !x.IsActive {
			return domain.ErrExpenseNotFound
		}
		x.IsActive = false
		d.expenses[id] = x
		return nil
	})
}

func (r *ExpenseRepo) List(_ context.Context, f repository.RecordFilter) ([]*entity.Expense, int, error) {
	var list []*entity.Expense
	err := r.h.do(func(d *data) error {
		for _, x := range d.expenses {
			if !x.IsActive || !f.Scope.Contains(x.RestaurantID) || !inRange(x.Date, f.Range) {
				continue
			}
			if f.Category != "" && x.Category != f.Category {
				continue
			}
			x := x
			list = append(list, &x)
		}
		return nil
	})
	sortByTimeDesc(list, func(x *entity.Expense) time.Time { return x.Date }, func(x *entity.Expense) time.Time { return x.CreatedAt })
	return paginate(list, f.Page), len(list), err
}

// InvoiceRepo facturas en memoria.
type InvoiceRepo struct{ h handle }

func (r *InvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	return r.h.do(func(d *data) error {
		if _, ok := d.expenses[inv.ExpenseID]; !ok {
			return domain.ErrExpenseNotFound
		}
		if _, ok := d.categories[inv.SalesCategoryID]; !ok {
			return domain.ErrSalesCategoryNotFound
		}
		d.invoices[inv.ID] = *inv
		return nil
	})
}

func (r *InvoiceRepo) ListByExpense(_ context.Context, expenseID string) ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	err := r.h.do(func(d *data) error {
		for _, inv := range d.invoices {
			if inv.IsActive && inv.ExpenseID == expenseID {
				inv := inv
				list = append(list, &inv)
			}
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
	return list, err
}

func (r *InvoiceRepo) DeactivateByExpense(_ context.Context, expenseID string) error {
	return r.h.do(func(d *data) error {
		for id, inv := range d.invoices {
			if inv.ExpenseID == expenseID && inv.IsActive {
				inv.IsActive = false
				d.invoices[id] = inv
			}
		}
		return nil
	})
}

// ── BlueBook ─────────────────────────────────────────────────────────────────

// BlueBookRepo blue books en memoria; replica el índice único parcial (restaurant_id, date) WHERE is_active.
type BlueBookRepo struct{ h handle }

func activeOnDate(d *data, restaurantID string, date time.Time, exceptID string) bool {
	for _, b := range d.blueBooks {
		if b.IsActive && b.ID != exceptID && b.RestaurantID == restaurantID && b.Date.Equal(date) {
			return true
		}
	}
	return false
}

func (r *BlueBookRepo) Create(_ context.Context, b *entity.BlueBook) error {
	return r.h.do(func(d *data) error {
		if _, ok := d.restaurants[b.RestaurantID]; !ok {
			return domain.ErrRestaurantNotFound
		}
		if b.IsActive && activeOnDate(d, b.RestaurantID, b.Date, "") {
			return domain.ErrDuplicateBlueBook
		}
		stored := *b
		stored.Notes = nil
		d.blueBooks[b.ID] = stored
		return nil
	})
}

func (r *BlueBookRepo) GetByID(_ context.Context, id string, includeInactive bool) (*entity.BlueBook, error) {
	var out *entity.BlueBook
	err := r.h.do(func(d *data) error {
		b, ok := d.blueBooks[id]
		if !ok || (!includeInactive && !b.IsActive) {
			return domain.ErrBlueBookNotFound
		}
		out = &b
		return nil
	})
	return out, err
}

func (r *BlueBookRepo) GetActiveByDate(_ context.Context, restaurantID string, date time.Time) (*entity.BlueBook, error) {
	var out *entity.BlueBook
	err := r.h.do(func(d *data) error {
		for _, b := range d.blueBooks {
			if b.IsActive && b.RestaurantID == restaurantID && b.Date.Equal(date) {
				b := b
				out = &b
				return nil
			}
		}
		return domain.ErrBlueBookNotFound
	})
	return out, err
}

func (r *BlueBookRepo) Update(_ context.Context, b *entity.BlueBook) error {
	return r.h.do(func(d *data) error {
		cur, ok := d.blueBooks[b.ID]
		if !ok || !cur.IsActive {
			return domain.ErrBlueBookNotFound
		}
		if activeOnDate(d, cur.RestaurantID, b.Date, b.ID) {
			return domain.ErrDuplicateBlueBook
		}
		upd := *b
		upd.Notes = nil
		upd.RestaurantID, upd.UserID = cur.RestaurantID, cur.UserID
		upd.IsActive, upd.CreatedAt = cur.IsActive, cur.CreatedAt
		d.blueBooks[b.ID] = upd
		return nil
	})
}

func (r *BlueBookRepo) SoftDelete(_ context.Context, id string) error {
	return r.h.do(func(d *data) error {
		b, ok := d.blueBooks[id]
		if !ok || !b.IsActive {
			return domain.ErrBlueBookNotFound
		}
		b.IsActive = false
		d.blueBooks[id] = b
		return nil
	})
}

func (r *BlueBookRepo) List(_ context.Context, f repository.RecordFilter) ([]*entity.BlueBook, int, error) {
	var list []*entity.BlueBook
	err := r.h.do(func(d *data) error {
		for _, b := range d.blueBooks {
			if b.IsActive && f.Scope.Contains(b.RestaurantID) && inRange(b.Date, f.Range) {
				b := b
				list = append(list, &b)
			}
		}
		return nil
	})
	sortByTimeDesc(list, func(b *entity.BlueBook) time.Time { return b.Date }, func(b *entity.BlueBook) time.Time { return b.CreatedAt })
	return paginate(list, f.Page), len(list), err
}

func (r *BlueBookRepo) ReplaceNotes(_ context.Context, blueBookID string, kind entity.NoteKind, comments []string) error {
	if !kind.Valid() {
		return domain.Validation("INVALID_NOTE_KIND", "colección desconocida: "+string(kind))
	}
	return r.h.do(func(d *data) error {
		if _, ok := d.blueBooks[blueBookID]; !ok {
			return domain.ErrBlueBookNotFound
		}
		for id, n := range d.notes {
			if n.BlueBookID == blueBookID && n.Kind == kind {
				delete(d.notes, id)
			}
		}
		now := time.Now().UTC()
		for i, c := range comments {
			id := uuid.New().String()
			d.notes[id] = entity.BlueBookNote{
				ID: id, BlueBookID: blueBookID, Kind: kind, Comment: c, Position: i, IsActive: true,
				CreatedAt: now,
			}
		}
		return nil
	})
}

func (r *BlueBookRepo) ListNotes(_ context.Context, blueBookID string) (map[entity.NoteKind][]*entity.BlueBookNote, error) {
	out := make(map[entity.NoteKind][]*entity.BlueBookNote, len(entity.NoteKinds))
	for _, k := range entity.NoteKinds {
		out[k] = []*entity.BlueBookNote{}
	}
	err := r.h.do(func(d *data) error {
		for _, n := range d.notes {
			if n.BlueBookID == blueBookID && n.IsActive {
				n := n
				out[n.Kind] = append(out[n.Kind], &n)
			}
		}
		return nil
	})
	for _, notes := range out {
		sort.Slice(notes, func(i, j int) bool { return notes[i].Position < notes[j].Position })
	}
	return out, err
}
