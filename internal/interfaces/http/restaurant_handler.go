package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/application/usecase"
)

// RestaurantHandler maneja restaurantes y la actualización combinada de location.
type RestaurantHandler struct {
	uc       *usecase.RestaurantUseCase
	location *usecase.LocationUseCase
}

// NewRestaurantHandler construye el handler.
func NewRestaurantHandler(uc *usecase.RestaurantUseCase, location *usecase.LocationUseCase) *RestaurantHandler {
	return &RestaurantHandler{uc: uc, location: location}
}

// Create godoc
// @Summary      Crear restaurante
// @Tags         restaurants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRestaurantRequest  true  "Datos del restaurante"
// @Success      201   {object}  dto.RestaurantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/v1/restaurants [post]
func (h *RestaurantHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRestaurantRequest
	if err := parseBody(c, nil, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.Context(), GetCaller(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar restaurantes visibles
// @Tags         restaurants
// @Security     Bearer
// @Produce      json
// @Param        company_id  query  string  false  "Filtrar por empresa"
// @Param        page        query  int     false  "Página"
// @Param        page_size   query  int     false  "Tamaño de página"
// @Success      200         {object}  dto.RestaurantListResponse
// @Router       /api/v1/restaurants [get]
func (h *RestaurantHandler) List(c *fiber.Ctx) error {
	var q dto.RestaurantListQuery
	if err := parseQuery(c, dto.PageAliases, &q); err != nil {
		return err
	}
	out, err := h.uc.List(c.Context(), GetCaller(c), q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener restaurante
// @Tags         restaurants
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del restaurante"
// @Success      200  {object}  dto.RestaurantResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/restaurants/{id} [get]
func (h *RestaurantHandler) GetByID(c *fiber.Ctx) error {
	id, err := requireID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.Context(), GetCaller(c), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar restaurante
// @Tags         restaurants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del restaurante"
// @Param        body  body  dto.UpdateRestaurantRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.RestaurantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/v1/restaurants/{id} [put]
func (h *RestaurantHandler) Update(c *fiber.Ctx) error {
	id, err := requireID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateRestaurantRequest
	if err := parseBody(c, nil, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.Context(), GetCaller(c), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desactivar restaurante
// @Tags         restaurants
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del restaurante"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/restaurants/{id} [delete]
func (h *RestaurantHandler) Delete(c *fiber.Ctx) error {
	id, err := requireID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), GetCaller(c), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "restaurante eliminado"})
}

// UpdateLocation godoc
// @Summary      Actualizar datos, forecasts y objetivo de un restaurante
// @Tags         location
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LocationUpdateRequest  true  "id, restaurant, forecasts, target"
// @Success      200   {object}  dto.LocationUpdateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/v1/location [put]
func (h *RestaurantHandler) UpdateLocation(c *fiber.Ctx) error {
	var in dto.LocationUpdateRequest
	if err := parseBody(c, dto.LocationAliases, &in); err != nil {
		return err
	}
	out, err := h.location.Update(c.Context(), GetCaller(c), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
