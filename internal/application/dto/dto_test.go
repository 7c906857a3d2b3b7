package dto_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
)

func TestPageRequest_Defaults(t *testing.T) {
	p := dto.PageRequest{}
	p.DefaultPage()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 0, p.Offset())

	p = dto.PageRequest{Page: 3, PageSize: 500}
	p.DefaultPage()
	assert.Equal(t, 100, p.PageSize)
	assert.Equal(t, 200, p.Offset())
}

func TestNewPageResponse_TotalPagesIsCeil(t *testing.T) {
	p := dto.PageRequest{Page: 1, PageSize: 10}
	assert.Equal(t, 3, dto.NewPageResponse(21, p).TotalPages)
	assert.Equal(t, 2, dto.NewPageResponse(20, p).TotalPages)
	assert.Equal(t, 0, dto.NewPageResponse(0, p).TotalPages)
}

func TestAliases_CanonicalWins(t *testing.T) {
	body := map[string]any{
		"expense_date": "2024-01-01",
		"type":         "Food",
		"category":     "Invoice",
		"amount":       10,
	}
	out := dto.ExpenseAliases.Apply(body)

	assert.Equal(t, "2024-01-01", out["date"])
	assert.Equal(t, "Invoice", out["category"])
	assert.Equal(t, 10, out["amount"])
	assert.NotContains(t, out, "expense_date")
	assert.NotContains(t, out, "type")
}

func TestAliases_ApplyQuery(t *testing.T) {
	out := dto.Merge(dto.PageAliases, dto.ExpenseAliases).ApplyQuery(map[string]string{
		"pageSize": "5",
		"type":     "Food",
	})
	assert.Equal(t, map[string]string{"page_size": "5", "category": "Food"}, out)
}

func TestAmountMap_AcceptsObjectAndString(t *testing.T) {
	var a struct {
		Amounts dto.AmountMap `json:"amounts"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"amounts":{"Food":"10.5","Beer":4}}`), &a))
	assert.True(t, a.Amounts.Total().Equal(decimal.RequireFromString("14.5")))

	require.NoError(t, json.Unmarshal([]byte(`{"amounts":"{\"Wine\":3}"}`), &a))
	assert.True(t, a.Amounts["Wine"].Equal(decimal.NewFromInt(3)))

	require.Error(t, json.Unmarshal([]byte(`{"amounts":"not json"}`), &a))
}

func TestBlueBookNotesInput_SuppliedOnly(t *testing.T) {
	var req dto.UpdateBlueBookRequest
	require.NoError(t, json.Unmarshal([]byte(`{"wins":[{"comment":"full house"}],"misses":[]}`), &req))

	got := req.Supplied()
	assert.Len(t, got, 2)
	assert.Equal(t, []string{"full house"}, got[entity.NoteWin])
	assert.Empty(t, got[entity.NoteMiss])
	assert.NotContains(t, got, entity.NoteItem86)
}
