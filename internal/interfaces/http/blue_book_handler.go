package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/application/usecase"
)

// BlueBookHandler maneja la bitácora diaria y sus notas.
type BlueBookHandler struct {
	uc *usecase.BlueBookUseCase
}

// NewBlueBookHandler construye el handler.
func NewBlueBookHandler(uc *usecase.BlueBookUseCase) *BlueBookHandler {
	return &BlueBookHandler{uc: uc}
}

// Create godoc
// @Summary      Crear entrada del día
// @Tags         blue-book
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBlueBookRequest  true  "Entrada y colecciones de notas"
// @Success      201   {object}  dto.BlueBookResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/blue-book [post]
func (h *BlueBookHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBlueBookRequest
	if err := parseBody(c, dto.BlueBookAliases, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.Context(), GetCaller(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar entradas
// @Tags         blue-book
// @Security     Bearer
// @Produce      json
// @Param        restaurant_id  query  string  false  "Uno o varios IDs separados por coma"
// @Param        start_date     query  string  false  "YYYY-MM-DD"
// @Param        end_date       query  string  false  "YYYY-MM-DD"
// @Param        page           query  int     false  "Página"
// @Param        page_size      query  int     false  "Tamaño de página"
// @Success      200            {object}  dto.BlueBookListResponse
// @Router       /api/v1/blue-book [get]
func (h *BlueBookHandler) List(c *fiber.Ctx) error {
	var q dto.RecordListQuery
	if err := parseQuery(c, dto.Merge(dto.PageAliases, dto.BlueBookAliases), &q); err != nil {
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

// GetByDate godoc
// @Summary      Entrada de un restaurante en una fecha
// @Tags         blue-book
// @Security     Bearer
// @Produce      json
// @Param        restaurantId  path  string  true  "ID del restaurante"
// @Param        date          path  string  true  "YYYY-MM-DD"
// @Success      200           {object}  dto.BlueBookResponse
// @Failure      403           {object}  dto.ErrorResponse
// @Failure      404           {object}  dto.ErrorResponse
// @Router       /api/v1/blue-book/restaurant/{restaurantId}/date/{date} [get]
func (h *BlueBookHandler) GetByDate(c *fiber.Ctx) error {
	restaurantID, err := requireID(c, "restaurantId")
	if err != nil {
		return err
	}
	date, err := requireParam(c, "date")
	if err != nil {
		return err
	}
	out, err := h.uc.GetByDate(c.Context(), GetCaller(c), restaurantID, date)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener entrada con sus notas
// @Tags         blue-book
// @Security     Bearer
// @Produce      json
// @Param        id                path   string  true   "ID de la entrada"
// @Param        include_inactive  query  bool    false  "Incluir eliminadas"
// @Success      200               {object}  dto.BlueBookResponse
// @Failure      404               {object}  dto.ErrorResponse
// @Router       /api/v1/blue-book/{id} [get]
func (h *BlueBookHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar entrada; las colecciones enviadas se reemplazan
// @Tags         blue-book
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la entrada"
// @Param        body  body  dto.UpdateBlueBookRequest  true  "Campos y colecciones"
// @Success      200   {object}  dto.BlueBookResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/blue-book/{id} [put]
func (h *BlueBookHandler) Update(c *fiber.Ctx) error {
	id, err := requireID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateBlueBookRequest
	if err := parseBody(c, dto.BlueBookAliases, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.Context(), GetCaller(c), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar entrada (soft delete)
// @Tags         blue-book
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/blue-book/{id} [delete]
func (h *BlueBookHandler) Delete(c *fiber.Ctx) error {
	id, err := requireID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), GetCaller(c), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "entrada eliminada"})
}
