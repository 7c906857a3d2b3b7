package postgres

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
)

func TestMapErr(t *testing.T) {
	notFound := domain.NotFound("X_NOT_FOUND", "x")

	assert.NoError(t, mapErr(nil, notFound, nil, "op"))
	assert.ErrorIs(t, mapErr(pgx.ErrNoRows, notFound, nil, "op"), notFound)

	unique := &pgconn.PgError{Code: "23505"}
	assert.ErrorIs(t, mapErr(fmt.Errorf("wrap: %w", unique), nil, domain.ErrDuplicateBlueBook, "op"), domain.ErrDuplicateBlueBook)

	badUUID := &pgconn.PgError{Code: "22P02", Message: `invalid input syntax for type uuid: "abc"`}
	err := mapErr(fmt.Errorf("wrap: %w", badUUID), notFound, nil, "get x")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	other := errors.New("boom")
	err = mapErr(other, notFound, domain.ErrConflict, "insert x")
	assert.ErrorIs(t, err, other)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
}

func TestFilter_BuildsPositionalClauses(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f := &filter{}
	f.where("is_active = TRUE")
	f.scope("restaurant_id", access.Restricted([]string{"r1"}))
	f.dateRange("date", repository.DateRange{From: &from})
	page := f.page(repository.Page{Limit: 10, Offset: 20})

	assert.Equal(t, " WHERE is_active = TRUE AND restaurant_id = ANY($1::uuid[]) AND date >= $2", f.clause())
	assert.Equal(t, " LIMIT $3 OFFSET $4", page)
	assert.Len(t, f.args, 4)
}

func TestFilter_AllScopeAddsNothing(t *testing.T) {
	f := &filter{}
	f.scope("restaurant_id", access.All())
	assert.Equal(t, "", f.clause())
	assert.Equal(t, "", f.page(repository.Page{}))
}
