package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/application/usecase"
)

// UserHandler maneja usuarios creados por administradores y sus asignaciones.
type UserHandler struct {
	uc    *usecase.UserUseCase
	roles *usecase.RoleUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, roles *usecase.RoleUseCase) *UserHandler {
	return &UserHandler{uc: uc, roles: roles}
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := parseBody(c, dto.AddUserAliases, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.Context(), GetCaller(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        company_id  query  string  false  "Empresa (solo Super_Admin)"
// @Param        role        query  string  false  "Rol"
// @Param        page        query  int     false  "Página"
// @Param        page_size   query  int     false  "Tamaño de página"
// @Success      200         {object}  dto.UserListResponse
// @Failure      403         {object}  dto.ErrorResponse
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var q dto.UserListQuery
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
// @Summary      Obtener usuario
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/v1/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := requireID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateUserRequest
	if err := parseBody(c, dto.AddUserAliases, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.Context(), GetCaller(c), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desactivar usuario
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := requireID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), GetCaller(c), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "usuario eliminado"})
}

// ToggleBlock godoc
// @Summary      Bloquear / desbloquear usuario
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/users/{id}/block [patch]
func (h *UserHandler) ToggleBlock(c *fiber.Ctx) error {
	id, err := requireID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.ToggleBlock(c.Context(), GetCaller(c), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Restaurants godoc
// @Summary      Restaurantes que puede operar el usuario
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserRestaurantsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/users/{id}/restaurants [get]
func (h *UserHandler) Restaurants(c *fiber.Ctx) error {
	id, err := requireID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Restaurants(c.Context(), GetCaller(c), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// AssignRestaurants godoc
// @Summary      Reemplazar asignaciones de restaurantes
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID del usuario"
// @Param        body  body  dto.AssignRestaurantsRequest  true  "restaurant_ids"
// @Success      200   {object}  dto.UserRestaurantsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/v1/users/{id}/restaurants [put]
func (h *UserHandler) AssignRestaurants(c *fiber.Ctx) error {
	id, err := requireID(c, "id")
	if err != nil {
		return err
	}
	var in dto.AssignRestaurantsRequest
	if err := parseBody(c, nil, &in); err != nil {
		return err
	}
	out, err := h.uc.AssignRestaurants(c.Context(), GetCaller(c), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListRoles godoc
// @Summary      Catálogo de roles visible para quien llama
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RoleListResponse
// @Router       /api/v1/roles [get]
func (h *UserHandler) ListRoles(c *fiber.Ctx) error {
	return c.JSON(h.roles.List(GetCaller(c)))
}

// RoleByName godoc
// @Summary      Obtener rol con sus permisos
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        name  path  string  true  "Nombre del rol"
// @Success      200   {object}  dto.RoleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/roles/{name} [get]
func (h *UserHandler) RoleByName(c *fiber.Ctx) error {
	name, err := requireParam(c, "name")
	if err != nil {
		return err
	}
	out, err := h.roles.GetByName(name)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
