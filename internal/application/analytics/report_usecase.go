package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
)

// ReportRenderer genera la representación PDF del dashboard (implementado en infrastructure/pdf).
type ReportRenderer interface {
	RenderDashboard(ctx context.Context, title string, stats *dto.DashboardStatsDTO) ([]byte, error)
}

// ReportUseCase exporta las mismas métricas de GetStats como documento PDF.
type ReportUseCase struct {
	dashboard *DashboardUseCase
	renderer  ReportRenderer
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(dashboard *DashboardUseCase, renderer ReportRenderer) *ReportUseCase {
	return &ReportUseCase{dashboard: dashboard, renderer: renderer}
}

// ExportPDF devuelve (pdfBytes, filename).
func (uc *ReportUseCase) ExportPDF(
	ctx context.Context,
	scope access.Scope,
	dateRange repository.DateRange,
) ([]byte, string, error) {
	stats, err := uc.dashboard.GetStats(ctx, scope, dateRange)
	if err != nil {
		return nil, "", err
	}
	title := "Dashboard financiero"
	filename := "dashboard.pdf"
	if stats.Period.Start != "" || stats.Period.End != "" {
		title = fmt.Sprintf("Dashboard financiero %s a %s", stats.Period.Start, stats.Period.End)
		filename = fmt.Sprintf("dashboard_%s_%s.pdf", stats.Period.Start, stats.Period.End)
	}
	doc, err := uc.renderer.RenderDashboard(ctx, title, stats)
	if err != nil {
		return nil, "", domain.Internal("generar pdf", err)
	}
	return doc, filename, nil
}
