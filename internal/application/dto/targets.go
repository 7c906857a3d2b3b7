package dto

import (
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bluebook-api/internal/domain/entity"
)

// MonthAmount monto de un mes ya validado.
type MonthAmount struct {
	Month  int
	Amount decimal.Decimal
}

// MonthAmounts filtra un mapa nombre de mes → monto. Nombres desconocidos y montos
// no numéricos se descartan sin error. El resultado va ordenado por mes.
func MonthAmounts(in map[string]any) []MonthAmount {
	out := make([]MonthAmount, 0, len(in))
	for name, raw := range in {
		month, ok := entity.MonthFromName(name)
		if !ok {
			continue
		}
		amount, ok := parseAmount(raw)
		if !ok {
			continue
		}
		out = append(out, MonthAmount{Month: month, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

func parseAmount(raw any) (decimal.Decimal, bool) {
	switch v := raw.(type) {
	case float64:
		return decimal.NewFromFloat(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		return d, err == nil
	case decimal.Decimal:
		return v, true
	default:
		return decimal.Zero, false
	}
}

// ApplyLabor copia los objetivos de labor sobre t; nil no modifica nada.
func ApplyLabor(t *entity.Target, in *LaborTargetInput) {
	if in == nil {
		return
	}
	t.OverallLaborTarget = in.OverallLaborTarget
	t.FOHTarget = in.FOHTarget
	t.BOHTarget = in.BOHTarget
	t.FOHCombinedSalaried = in.FOHCombinedSalaried
	t.BOHCombinedSalaried = in.BOHCombinedSalaried
	t.OtherCombinedSalaried = in.OtherCombinedSalaried
	t.IncludesSalaries = in.IncludesSalaries
}

// ApplyCOGS copia los objetivos de costo sobre t; nil no modifica nada.
func ApplyCOGS(t *entity.Target, in *COGSTargetInput) {
	if in == nil {
		return
	}
	t.COGSTarget = in.COGSTarget
	t.Food = in.Food
	t.Pastry = in.Pastry
	t.Beer = in.Beer
	t.Wine = in.Wine
	t.Liquor = in.Liquor
	t.NABev = in.NABev
	t.Smallwares = in.Smallwares
	t.Others = in.Others
	t.PrimePercentage = in.PrimePercentage
}
