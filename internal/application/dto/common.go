package dto

import (
	"math"
	"time"

	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// PageRequest paginación para listados (page empieza en 1).
type PageRequest struct {
	Page     int `query:"page" json:"page" validate:"omitempty,min=1"`
	PageSize int `query:"page_size" json:"page_size" validate:"omitempty,min=1"`
}

// DefaultPage aplica valores por defecto: page=1, page_size=10, máximo 100.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
}

// Limit y Offset traducen la página a la ventana del repositorio.
func (p PageRequest) Limit() int { return p.PageSize }

func (p PageRequest) Offset() int { return (p.Page - 1) * p.PageSize }

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	TotalCount int `json:"total_count"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// NewPageResponse calcula total_pages = ceil(total_count / page_size).
func NewPageResponse(total int, p PageRequest) PageResponse {
	pages := 0
	if p.PageSize > 0 {
		pages = int(math.Ceil(float64(total) / float64(p.PageSize)))
	}
	return PageResponse{TotalCount: total, Page: p.Page, PageSize: p.PageSize, TotalPages: pages}
}

// DateRangeQuery filtro opcional de fechas YYYY-MM-DD (ambos inclusivos).
type DateRangeQuery struct {
	StartDate string `query:"start_date" json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// Parse convierte el filtro en un repository.DateRange; fechas mal formadas son error de validación.
func (q DateRangeQuery) Parse() (repository.DateRange, error) {
	var out repository.DateRange
	parse := func(field, v string) (*time.Time, error) {
		if v == "" {
			return nil, nil
		}
		t, err := entity.ParseDate(v)
		if err != nil {
			return nil, domain.Validation("INVALID_DATE", field+" debe tener formato YYYY-MM-DD")
		}
		return &t, nil
	}
	var err error
	if out.From, err = parse("start_date", q.StartDate); err != nil {
		return out, err
	}
	if out.To, err = parse("end_date", q.EndDate); err != nil {
		return out, err
	}
	if out.From != nil && out.To != nil && out.From.After(*out.To) {
		return out, domain.Validation("INVALID_DATE_RANGE", "start_date no puede ser posterior a end_date")
	}
	return out, nil
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo para operaciones sin datos de retorno.
type MessageResponse struct {
	Message string `json:"message"`
}
