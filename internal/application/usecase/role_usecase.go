package usecase

import (
	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
)

type roleInfo struct {
	id          int
	name        string
	description string
}

// catálogo fijo; el orden es el de los ids.
var roles = []roleInfo{
	{1, entity.RoleSuperAdmin, "System administrator with full access"},
	{2, entity.RoleCompanyAdmin, "Company administrator with company-wide access"},
	{3, entity.RoleRestaurantEmployee, "Restaurant employee with limited access"},
}

// RoleUseCase expone el catálogo estático de roles y sus permisos.
type RoleUseCase struct{}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase() *RoleUseCase { return &RoleUseCase{} }

// List devuelve los roles que quien llama puede asignar: Super_Admin todos,
// Company_Admin los de empresa y el resto solo el propio.
func (uc *RoleUseCase) List(caller access.Caller) dto.RoleListResponse {
	out := dto.RoleListResponse{Roles: []dto.RoleResponse{}}
	for _, r := range roles {
		if visibleRole(caller.Role, r.name) {
			out.Roles = append(out.Roles, roleResponse(r))
		}
	}
	return out
}

// GetByName devuelve un rol por nombre exacto.
func (uc *RoleUseCase) GetByName(name string) (*dto.RoleResponse, error) {
	for _, r := range roles {
		if r.name == name {
			out := roleResponse(r)
			return &out, nil
		}
	}
	return nil, domain.NotFound("ROLE_NOT_FOUND", "rol no encontrado")
}

func visibleRole(callerRole, role string) bool {
	switch callerRole {
	case entity.RoleSuperAdmin:
		return true
	case entity.RoleCompanyAdmin:
		return role != entity.RoleSuperAdmin
	default:
		return role == callerRole
	}
}

func roleResponse(r roleInfo) dto.RoleResponse {
	return dto.RoleResponse{
		ID:          r.id,
		Name:        r.name,
		Description: r.description,
		Permissions: access.PermissionsOf(r.name),
	}
}
