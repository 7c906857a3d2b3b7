package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/application/usecase"
	"github.com/jhoicas/bluebook-api/internal/domain"
)

func newBlueBookUC(f *fixture) *usecase.BlueBookUseCase {
	return usecase.NewBlueBookUseCase(f.store.Repos().BlueBooks, f.store, f.resolver, nil)
}

func notes(comments ...string) *[]dto.NoteInput {
	out := make([]dto.NoteInput, 0, len(comments))
	for _, c := range comments {
		out = append(out, dto.NoteInput{Comment: c})
	}
	return &out
}

func TestBlueBookCreate_WithNotes(t *testing.T) {
	f := newFixture(t)
	uc := newBlueBookUC(f)
	ctx := context.Background()

	out, err := uc.Create(ctx, f.emp, dto.CreateBlueBookRequest{
		RestaurantID: "r1",
		Date:         "2024-05-10",
		Weather:      "Sunny",
		TotalSales:   dec("4200"),
		LunchGuests:  80,
		BlueBookNotesInput: dto.BlueBookNotesInput{
			Item86s: notes("salmon"),
			Wins:    notes("récord de almuerzo", "buena reseña"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-10", out.Date)
	require.Len(t, out.Item86s, 1)
	assert.Equal(t, "salmon", out.Item86s[0].Comment)
	assert.Len(t, out.Wins, 2)
	assert.NotNil(t, out.Misses)
	assert.Empty(t, out.Misses)

	got, err := uc.GetByDate(ctx, f.ca1, "r1", "2024-05-10")
	require.NoError(t, err)
	assert.Equal(t, out.ID, got.ID)
	assert.Len(t, got.Wins, 2)
}

func TestBlueBookCreate_DuplicateDate(t *testing.T) {
	f := newFixture(t)
	uc := newBlueBookUC(f)
	ctx := context.Background()
	in := dto.CreateBlueBookRequest{RestaurantID: "r1", Date: "2024-05-10", BlueBookNotesInput: dto.BlueBookNotesInput{Wins: notes("a")}}

	first, err := uc.Create(ctx, f.emp, in)
	require.NoError(t, err)

	_, err = uc.Create(ctx, f.ca1, in)
	assert.ErrorIs(t, err, domain.ErrDuplicateBlueBook)
	assert.Equal(t, 1, f.store.Counts()["blue_book_notes"], "el intento duplicado no deja notas")

	other := in
	other.RestaurantID = "r2"
	_, err = uc.Create(ctx, f.ca1, other)
	require.NoError(t, err, "misma fecha en otro restaurante")

	require.NoError(t, uc.Delete(ctx, f.ca1, first.ID))
	_, err = uc.Create(ctx, f.emp, in)
	require.NoError(t, err, "la fecha queda libre tras el borrado")
}

func TestBlueBookUpdate_ReplacesOnlySuppliedCollections(t *testing.T) {
	f := newFixture(t)
	uc := newBlueBookUC(f)
	ctx := context.Background()
	created, err := uc.Create(ctx, f.emp, dto.CreateBlueBookRequest{
		RestaurantID: "r1",
		Date:         "2024-05-10",
		BlueBookNotesInput: dto.BlueBookNotesInput{
			Wins:     notes("w1", "w2"),
			CallOuts: notes("c1"),
		},
	})
	require.NoError(t, err)

	empty := []dto.NoteInput{}
	updated, err := uc.Update(ctx, f.emp, created.ID, dto.UpdateBlueBookRequest{
		Weather: ptr("Rain"),
		BlueBookNotesInput: dto.BlueBookNotesInput{
			Wins:              notes("w3"),
			CallOuts:          &empty,
			MaintenanceIssues: notes("fuga en cocina"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Rain", updated.Weather)
	require.Len(t, updated.Wins, 1)
	assert.Equal(t, "w3", updated.Wins[0].Comment)
	assert.Empty(t, updated.CallOuts, "colección enviada vacía se vacía")
	assert.Len(t, updated.MaintenanceIssues, 1)

	again, err := uc.Update(ctx, f.emp, created.ID, dto.UpdateBlueBookRequest{LunchGuests: ptr(10)})
	require.NoError(t, err)
	assert.Len(t, again.Wins, 1, "colecciones no enviadas quedan intactas")
	assert.Equal(t, 10, again.LunchGuests)
}

func TestBlueBook_ScopeAndValidation(t *testing.T) {
	f := newFixture(t)
	uc := newBlueBookUC(f)
	ctx := context.Background()

	_, err := uc.Create(ctx, f.emp, dto.CreateBlueBookRequest{RestaurantID: "r2", Date: "2024-05-10"})
	assert.ErrorIs(t, err, domain.ErrRestaurantForbidden)

	_, err = uc.Create(ctx, f.emp, dto.CreateBlueBookRequest{RestaurantID: "r1", Date: "2024-05-10", DinnerGuests: -2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GetByDate(ctx, f.emp, "r1", "2024-05-11")
	assert.ErrorIs(t, err, domain.ErrBlueBookNotFound)

	_, err = uc.Create(ctx, f.sa, dto.CreateBlueBookRequest{RestaurantID: "r3", Date: "2024-05-10"})
	require.NoError(t, err)
	list, err := uc.List(ctx, f.ca1, dto.RecordListQuery{})
	require.NoError(t, err)
	assert.Empty(t, list.Items)

	list, err = uc.List(ctx, f.sa, dto.RecordListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Page.TotalCount)
}
