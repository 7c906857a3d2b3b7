package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empresa (queda pendiente de aprobación)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := parseBody(c, nil, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener empresa por ID (incluye restaurantes)
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
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

// List godoc
// @Summary      Listar empresas aprobadas
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        page       query  int  false  "Página"          default(1)
// @Param        page_size  query  int  false  "Tamaño de página" default(10)
// @Success      200        {object}  dto.CompanyListResponse
// @Router       /api/v1/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	var q dto.PageRequest
	if err := parseQuery(c, dto.PageAliases, &q); err != nil {
		return err
	}
	out, err := h.uc.List(c.Context(), GetCaller(c), q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empresa
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id, err := requireID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateCompanyRequest
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
// @Summary      Desactivar empresa
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id, err := requireID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "empresa eliminada"})
}

// Approve godoc
// @Summary      Aprobar empresa pendiente
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{id}/approve [patch]
func (h *CompanyHandler) Approve(c *fiber.Ctx) error {
	id, err := requireID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Approve(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar empresa pendiente
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{id}/reject [patch]
func (h *CompanyHandler) Reject(c *fiber.Ctx) error {
	id, err := requireID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Reject(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "empresa rechazada"})
}
