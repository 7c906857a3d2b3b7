package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bluebook-api/internal/application/auth"
	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/application/onboarding"
	"github.com/jhoicas/bluebook-api/internal/domain/access"
)

// AuthHandler maneja login, identidad actual y onboarding (rutas públicas salvo /me).
type AuthHandler struct {
	uc         *auth.AuthUseCase
	onboarding *onboarding.Service
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, onboard *onboarding.Service) *AuthHandler {
	return &AuthHandler{uc: uc, onboarding: onboard}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseBody(c, nil, &in); err != nil {
		return err
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// MeResponse identidad extraída del token.
type MeResponse struct {
	UserID      string   `json:"user_id"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	CompanyID   string   `json:"company_id,omitempty"`
	Permissions []string `json:"permissions"`
}

// Me godoc
// @Summary      Identidad del token
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  MeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	caller := GetCaller(c)
	return c.JSON(MeResponse{
		UserID:      caller.UserID,
		Email:       caller.Email,
		Role:        caller.Role,
		CompanyID:   caller.CompanyID,
		Permissions: access.PermissionsOf(caller.Role),
	})
}

// Onboard godoc
// @Summary      Alta self-service de empresa, restaurantes y administrador
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OnboardingRequest  true  "user, company, toast"
// @Success      201   {object}  dto.OnboardingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/onboarding [post]
func (h *AuthHandler) Onboard(c *fiber.Ctx) error {
	var in dto.OnboardingRequest
	if err := parseBody(c, nil, &in); err != nil {
		return err
	}
	out, err := h.onboarding.Onboard(c.Context(), &in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OnboardingResponse{Message: onboarding.SuccessMessage, Data: out})
}

// ListPending godoc
// @Summary      Empresas pendientes de aprobación
// @Tags         onboarding
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PendingCompaniesResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/companies/pending [get]
func (h *AuthHandler) ListPending(c *fiber.Ctx) error {
	out, err := h.onboarding.ListPending(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}
