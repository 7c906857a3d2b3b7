package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/bluebook-api/internal/application/analytics"
	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
)

// scopeRequester resuelve el alcance pedido por el caller (lo implementa *access.Resolver).
type scopeRequester interface {
	Requested(ctx context.Context, caller access.Caller, restaurantIDs []string) (access.Scope, error)
}

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc     *appanalytics.DashboardUseCase
	report *appanalytics.ReportUseCase
	scopes scopeRequester
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, report *appanalytics.ReportUseCase, scopes scopeRequester) *DashboardHandler {
	return &DashboardHandler{uc: uc, report: report, scopes: scopes}
}

// GetStats godoc
// @Summary      Totales, desglose por restaurante y tendencia diaria
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        restaurant_ids  query  string  false  "IDs separados por coma (vacío = todo el alcance)"
// @Param        start_date      query  string  false  "YYYY-MM-DD"
// @Param        end_date        query  string  false  "YYYY-MM-DD (por defecto hoy si solo llega start_date)"
// @Success      200             {object}  dto.DashboardStatsDTO
// @Failure      400             {object}  dto.ErrorResponse
// @Router       /api/v1/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	caller := GetCaller(c)
	scope, dateRange, err := h.parse(c, caller)
	if err != nil {
		return err
	}
	stats, err := h.uc.GetStats(c.Context(), scope, dateRange)
	if err != nil {
		return err
	}
	out := *stats
	out.Role = caller.Role
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar el dashboard en PDF
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Param        restaurant_ids  query  string  false  "IDs separados por coma"
// @Param        start_date      query  string  false  "YYYY-MM-DD"
// @Param        end_date        query  string  false  "YYYY-MM-DD"
// @Success      200             {file}    binary
// @Failure      403             {object}  dto.ErrorResponse
// @Router       /api/v1/dashboard/export [get]
func (h *DashboardHandler) Export(c *fiber.Ctx) error {
	scope, dateRange, err := h.parse(c, GetCaller(c))
	if err != nil {
		return err
	}
	doc, filename, err := h.report.ExportPDF(c.Context(), scope, dateRange)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}

func (h *DashboardHandler) parse(c *fiber.Ctx, caller access.Caller) (access.Scope, repository.DateRange, error) {
	var q dto.DashboardQuery
	if err := parseQuery(c, dto.DashboardAliases, &q); err != nil {
		return access.Scope{}, repository.DateRange{}, err
	}
	dateRange, err := q.DateRangeQuery.Parse()
	if err != nil {
		return access.Scope{}, repository.DateRange{}, err
	}
	ids, err := parseIDs("restaurant_ids", q.RestaurantIDs)
	if err != nil {
		return access.Scope{}, repository.DateRange{}, err
	}
	scope, err := h.scopes.Requested(c.Context(), caller, ids)
	if err != nil {
		return access.Scope{}, repository.DateRange{}, err
	}
	return scope, dateRange, nil
}
