package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/application/usecase"
)

// ExpenseHandler maneja gastos; la categoría "Invoice" genera facturas por categoría de venta.
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar gasto
// @Tags         expense
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseRequest  true  "Gasto; amounts por categoría cuando category=Invoice"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/v1/expense [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := parseBody(c, dto.ExpenseAliases, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.Context(), GetCaller(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar gastos
// @Tags         expense
// @Security     Bearer
// @Produce      json
// @Param        restaurant_id  query  string  false  "Uno o varios IDs separados por coma"
// @Param        category       query  string  false  "Categoría"
// @Param        start_date     query  string  false  "YYYY-MM-DD"
// @Param        end_date       query  string  false  "YYYY-MM-DD"
// @Param        page           query  int     false  "Página"
// @Param        page_size      query  int     false  "Tamaño de página"
// @Success      200            {object}  dto.ExpenseListResponse
// @Router       /api/v1/expense [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	var q dto.RecordListQuery
	if err := parseQuery(c, dto.Merge(dto.PageAliases, dto.ExpenseAliases), &q); err != nil {
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
// @Summary      Obtener gasto con sus facturas
// @Tags         expense
// @Security     Bearer
// @Produce      json
// @Param        id                path   string  true   "ID del gasto"
// @Param        include_inactive  query  bool    false  "Incluir eliminados"
// @Success      200               {object}  dto.ExpenseResponse
// @Failure      403               {object}  dto.ErrorResponse
// @Failure      404               {object}  dto.ErrorResponse
// @Router       /api/v1/expense/{id} [get]
func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar gasto
// @Tags         expense
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del gasto"
// @Param        body  body  dto.UpdateExpenseRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/expense/{id} [put]
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	id, err := requireID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateExpenseRequest
	if err := parseBody(c, dto.ExpenseAliases, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.Context(), GetCaller(c), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar gasto y sus facturas (soft delete)
// @Tags         expense
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del gasto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/expense/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	id, err := requireID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), GetCaller(c), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "gasto eliminado"})
}
