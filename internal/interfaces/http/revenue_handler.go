package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/application/usecase"
)

// RevenueHandler maneja las peticiones HTTP para Revenue (protegido).
type RevenueHandler struct {
	uc *usecase.RevenueUseCase
}

// NewRevenueHandler construye el handler.
func NewRevenueHandler(uc *usecase.RevenueUseCase) *RevenueHandler {
	return &RevenueHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar ingreso
// @Tags         revenue
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRevenueRequest  true  "Ingreso del período"
// @Success      201   {object}  dto.RevenueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/v1/revenue [post]
func (h *RevenueHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRevenueRequest
	if err := parseBody(c, dto.RevenueAliases, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.Context(), GetCaller(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ingresos
// @Tags         revenue
// @Security     Bearer
// @Produce      json
// @Param        restaurant_id  query  string  false  "Uno o varios IDs separados por coma"
// @Param        start_date     query  string  false  "YYYY-MM-DD"
// @Param        end_date       query  string  false  "YYYY-MM-DD"
// @Param        page           query  int     false  "Página"
// @Param        page_size      query  int     false  "Tamaño de página"
// @Success      200            {object}  dto.RevenueListResponse
// @Router       /api/v1/revenue [get]
func (h *RevenueHandler) List(c *fiber.Ctx) error {
	var q dto.RecordListQuery
	if err := parseQuery(c, dto.Merge(dto.PageAliases, dto.RevenueAliases), &q); err != nil {
		return err
	}
	if _, err := parseIDs("restaurant_id", q.RestaurantID); err != nil {
		return err
	}
	out, err := h.uc.List(c.Context(), GetCaller(c), q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ingreso
// @Tags         revenue
// @Security     Bearer
// @Produce      json
// @Param        id                path   string  true   "ID del ingreso"
// @Param        include_inactive  query  bool    false  "Incluir eliminados"
// @Success      200               {object}  dto.RevenueResponse
// @Failure      403               {object}  dto.ErrorResponse
// @Failure      404               {object}  dto.ErrorResponse
// @Router       /api/v1/revenue/{id} [get]
func (h *RevenueHandler) GetByID(c *fiber.Ctx) error {
	id, err := requireID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.Context(), GetCaller(c), id, c.QueryBool("include_inactive", false))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar ingreso
// @Tags         revenue
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del ingreso"
// @Param        body  body  dto.UpdateRevenueRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.RevenueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/revenue/{id} [put]
func (h *RevenueHandler) Update(c *fiber.Ctx) error {
	id, err := requireID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateRevenueRequest
	if err := parseBody(c, dto.RevenueAliases, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.Context(), GetCaller(c), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ingreso (soft delete)
// @Tags         revenue
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ingreso"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/revenue/{id} [delete]
func (h *RevenueHandler) Delete(c *fiber.Ctx) error {
	id, err := requireID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), GetCaller(c), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "ingreso eliminado"})
}
