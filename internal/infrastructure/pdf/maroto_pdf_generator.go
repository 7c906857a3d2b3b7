// Package pdf genera el reporte PDF del dashboard financiero.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título                     │  Período + Rol         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ingresos | Gastos | Utilidad neta                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Restaurante | Ingresos | Gastos | Utilidad           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TENDENCIA: Fecha | Ingresos | Gastos | Utilidad             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorNegative = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa analytics.ReportRenderer usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador; author queda en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// RenderDashboard genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) RenderDashboard(ctx context.Context, title string, stats *dto.DashboardStatsDTO) ([]byte, error) {
	if stats == nil {
		return nil, fmt.Errorf("pdf: stats vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(stats.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Desglose por restaurante
	m.AddRows(sectionRow("DESGLOSE POR RESTAURANTE"))
	m.AddRows(tableHeaderRow("Restaurante"))
	if len(stats.Breakdown) == 0 {
		m.AddRows(emptyRow())
	}
	for _, b := range stats.Breakdown {
		m.AddRows(amountRow(b.RestaurantName, b.Revenue, b.Expense, b.NetProfit))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Tendencia diaria
	m.AddRows(line.NewRow(3))
	m.AddRows(sectionRow("TENDENCIA DIARIA"))
	m.AddRows(tableHeaderRow("Fecha"))
	if len(stats.Trend) == 0 {
		m.AddRows(emptyRow())
	}
	for _, p := range stats.Trend {
		m.AddRows(amountRow(p.Date, p.Revenue, p.Expense, p.NetProfit))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y período + rol (der).
func headerRow(title string, stats *dto.DashboardStatsDTO) core.Row {
	period := "Todo el histórico"
	if stats.Period.Start != "" || stats.Period.End != "" {
		period = nonEmpty(stats.Period.Start, "…") + " a " + nonEmpty(stats.Period.End, "…")
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Período: "+period, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Rol: "+nonEmpty(stats.Role, "-"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// summaryRow: tres bloques con los totales.
func summaryRow(s dto.DashboardSummaryDTO) core.Row {
	block := func(label string, v decimal.Decimal) core.Col {
		color := colorPrimary
		if v.IsNegative() {
			color = colorNegative
		}
		return col.New(4).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
			text.New(formatMoney(v), props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Center, Color: color, Top: 8,
			}),
		)
	}
	return row.New(20).Add(
		block("INGRESOS", s.TotalRevenue),
		block("GASTOS", s.TotalExpense),
		block("UTILIDAD NETA", s.NetProfit),
	)
}

func sectionRow(label string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

// tableHeaderRow: cabecera de las tablas de montos.
func tableHeaderRow(first string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h(first, 6, align.Left),
		h("Ingresos", 2, align.Right),
		h("Gastos", 2, align.Right),
		h("Utilidad", 2, align.Right),
	)
}

func amountRow(label string, revenue, expense, net decimal.Decimal) core.Row {
	cell := func(v decimal.Decimal) core.Col {
		p := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
		if v.IsNegative() {
			p.Color = colorNegative
		}
		return col.New(2).Add(text.New(formatMoney(v), p))
	}
	return row.New(6).Add(
		col.New(6).Add(text.New(label, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		cell(revenue),
		cell(expense),
		cell(net),
	)
}

func emptyRow() core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("Sin movimientos en el período", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea con separador de miles y dos decimales.
// Ej: 1234567.5 → "$1,234,567.50", -30 → "-$30.00"
func formatMoney(v decimal.Decimal) string {
	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Neg()
	}
	fixed := v.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + "$" + string(buf) + "." + frac
}
