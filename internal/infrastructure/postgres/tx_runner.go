package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// NewRepos construye todos los repositorios sobre q (pool o tx).
func NewRepos(q Querier) repository.Repos {
	return repository.Repos{
		Companies:       NewCompanyRepository(q),
		Restaurants:     NewRestaurantRepository(q),
		Users:           NewUserRepository(q),
		UserRestaurants: NewUserRestaurantRepository(q),
		Revenues:        NewRevenueRepository(q),
		Expenses:        NewExpenseRepository(q),
		Invoices:        NewInvoiceRepository(q),
		BlueBooks:       NewBlueBookRepository(q),
		SalesCategories: NewSalesCategoryRepository(q),
		Forecasts:       NewForecastRepository(q),
		Targets:         NewTargetRepository(q),
		Pos:             NewPosRepository(q),
	}
}
