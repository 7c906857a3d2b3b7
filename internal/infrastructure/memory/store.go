// Package memory implementa todos los puertos de repository en memoria, con transacciones reales
// (copia al iniciar, reemplazo al confirmar). Se usa en tests de casos de uso y handlers.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
)

var _ repository.TxRunner = (*Store)(nil)

type data struct {
	companies       map[string]entity.Company
	restaurants     map[string]entity.Restaurant
	users           map[string]entity.User
	userRestaurants map[string]map[string]time.Time // user_id -> restaurant_id -> created_at
	revenues        map[string]entity.Revenue
	expenses        map[string]entity.Expense
	invoices        map[string]entity.Invoice
	blueBooks       map[string]entity.BlueBook
	notes           map[string]entity.BlueBookNote
	categories      map[string]entity.SalesCategory
	forecasts       map[string]entity.Forecast
	targets         map[string]entity.Target
	pos             map[string]entity.Pos // restaurant_id -> pos
}

func newData() *data {
	return &data{
		companies:       map[string]entity.Company{},
		restaurants:     map[string]entity.Restaurant{},
		users:           map[string]entity.User{},
		userRestaurants: map[string]map[string]time.Time{},
		revenues:        map[string]entity.Revenue{},
		expenses:        map[string]entity.Expense{},
		invoices:        map[string]entity.Invoice{},
		blueBooks:       map[string]entity.BlueBook{},
		notes:           map[string]entity.BlueBookNote{},
		categories:      map[string]entity.SalesCategory{},
		forecasts:       map[string]entity.Forecast{},
		targets:         map[string]entity.Target{},
		pos:             map[string]entity.Pos{},
	}
}

func cloneMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (d *data) clone() *data {
	links := make(map[string]map[string]time.Time, len(d.userRestaurants))
	for u, set := range d.userRestaurants {
		links[u] = cloneMap(set)
	}
	return &data{
		companies:       cloneMap(d.companies),
		restaurants:     cloneMap(d.restaurants),
		users:           cloneMap(d.users),
		userRestaurants: links,
		revenues:        cloneMap(d.revenues),
		expenses:        cloneMap(d.expenses),
		invoices:        cloneMap(d.invoices),
		blueBooks:       cloneMap(d.blueBooks),
		notes:           cloneMap(d.notes),
		categories:      cloneMap(d.categories),
		forecasts:       cloneMap(d.forecasts),
		targets:         cloneMap(d.targets),
		pos:             cloneMap(d.pos),
	}
}

// handle da acceso a un snapshot: el del store (con lock) o el de una transacción en curso.
type handle interface {
	do(fn func(d *data) error) error
}

type storeHandle struct{ s *Store }

func (h storeHandle) do(fn func(d *data) error) error {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	return fn(h.s.d)
}

type txHandle struct{ d *data }

func (h txHandle) do(fn func(d *data) error) error { return fn(h.d) }

// Store es el almacenamiento en memoria. Las transacciones se serializan entre sí.
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex
	d    *data
}

// New crea un store vacío.
func New() *Store {
	return &Store{d: newData()}
}

// Repos devuelve los repositorios fuera de transacción.
func (s *Store) Repos() repository.Repos {
	return newRepos(storeHandle{s: s})
}

// Analytics devuelve el repositorio de lectura del dashboard.
func (s *Store) Analytics() *AnalyticsRepo {
	return &AnalyticsRepo{h: storeHandle{s: s}}
}

// Run ejecuta fn sobre una copia de los datos; solo si fn devuelve nil la copia reemplaza al estado.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repos) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.d.clone()
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fn(newRepos(txHandle{d: snapshot})); err != nil {
		return err
	}

	s.mu.Lock()
	s.d = snapshot
	s.mu.Unlock()
	return nil
}

// Counts devuelve la cantidad de filas por tabla (aserciones de atomicidad en tests).
func (s *Store) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	links := 0
	for _, set := range s.d.userRestaurants {
		links += len(set)
	}
	return map[string]int{
		"companies":        len(s.d.companies),
		"restaurants":      len(s.d.restaurants),
		"users":            len(s.d.users),
		"user_restaurants": links,
		"revenues":         len(s.d.revenues),
		"expenses":         len(s.d.expenses),
		"invoices":         len(s.d.invoices),
		"blue_books":       len(s.d.blueBooks),
		"blue_book_notes":  len(s.d.notes),
		"sales_categories": len(s.d.categories),
		"forecasts":        len(s.d.forecasts),
		"targets":          len(s.d.targets),
		"pos":              len(s.d.pos),
	}
}

func newRepos(h handle) repository.Repos {
	return repository.Repos{
		Companies:       &CompanyRepo{h: h},
		Restaurants:     &RestaurantRepo{h: h},
		Users:           &UserRepo{h: h},
		UserRestaurants: &UserRestaurantRepo{h: h},
		Revenues:        &RevenueRepo{h: h},
		Expenses:        &ExpenseRepo{h: h},
		Invoices:        &InvoiceRepo{h: h},
		BlueBooks:       &BlueBookRepo{h: h},
		SalesCategories: &SalesCategoryRepo{h: h},
		Forecasts:       &ForecastRepo{h: h},
		Targets:         &TargetRepo{h: h},
		Pos:             &PosRepo{h: h},
	}
}

// paginate aplica LIMIT/OFFSET sobre una lista ya ordenada.
func paginate[T any](list []T, p repository.Page) []T {
	if p.Offset > 0 {
		if p.Offset >= len(list) {
			return []T{}
		}
		list = list[p.Offset:]
	}
	if p.Limit > 0 && p.Limit < len(list) {
		list = list[:p.Limit]
	}
	return list
}

func inRange(t time.Time, r repository.DateRange) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

func sortByTimeDesc[T any](list []*T, key func(*T) time.Time, tie func(*T) time.Time) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := key(list[i]), key(list[j])
		if !a.Equal(b) {
			return a.After(b)
		}
		return tie(list[i]).After(tie(list[j]))
	})
}
