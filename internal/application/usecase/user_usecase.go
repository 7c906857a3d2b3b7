package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/bluebook-api/internal/application/auth"
	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
	"github.com/jhoicas/bluebook-api/pkg/logger"
)

// UserUseCase gestiona usuarios y sus asignaciones a restaurantes.
type UserUseCase struct {
	users           repository.UserRepository
	links           repository.UserRestaurantRepository
	restaurants     repository.RestaurantRepository
	tx              repository.TxRunner
	scopes          ScopeResolver
	defaultPassword string
	log             *logger.Logger
}

// NewUserUseCase construye el caso de uso. defaultPassword se usa cuando el alta no trae contraseña.
func NewUserUseCase(
	users repository.UserRepository,
	links repository.UserRestaurantRepository,
	restaurants repository.RestaurantRepository,
	tx repository.TxRunner,
	scopes ScopeResolver,
	defaultPassword string,
	log *logger.Logger,
) *UserUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UserUseCase{
		users:           users,
		links:           links,
		restaurants:     restaurants,
		tx:              tx,
		scopes:          scopes,
		defaultPassword: defaultPassword,
		log:             log.Named("user"),
	}
}

// Create crea un usuario. Rol por defecto Restaurant_Employee. Un Company_Admin solo crea
// usuarios de su empresa y nunca un Super_Admin.
func (uc *UserUseCase) Create(ctx context.Context, caller access.Caller, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleRestaurantEmployee
	}
	if !entity.ValidRole(role) {
		return nil, domain.Validation("INVALID_ROLE", "rol inválido")
	}

	companyID := in.CompanyID
	switch caller.Role {
	case entity.RoleSuperAdmin:
	case entity.RoleCompanyAdmin:
		if role == entity.RoleSuperAdmin {
			return nil, domain.Forbidden("ROLE_FORBIDDEN", "no puede crear usuarios Super_Admin")
		}
		if companyID != "" && companyID != caller.CompanyID {
			return nil, domain.Forbidden("COMPANY_FORBIDDEN", "no tiene acceso a esta empresa")
		}
		companyID = caller.CompanyID
	default:
		return nil, domain.Forbidden("FORBIDDEN", "no tiene permiso para crear usuarios")
	}

	restaurantIDs := in.RestaurantIDs
	if name := strings.TrimSpace(in.RestaurantName); name != "" && role != entity.RoleSuperAdmin {
		restaurant, err := uc.restaurantByName(ctx, companyID, name)
		if err != nil {
			return nil, err
		}
		companyID = restaurant.CompanyID
		restaurantIDs = append(restaurantIDs, restaurant.ID)
	}

	var company *string
	if role == entity.RoleSuperAdmin {
		restaurantIDs = nil
	} else {
		if companyID == "" {
			return nil, domain.Validation("COMPANY_REQUIRED", "company_id es obligatorio")
		}
		if err := uc.checkRestaurants(ctx, companyID, restaurantIDs); err != nil {
			return nil, err
		}
		company = &companyID
	}

	if _, err := uc.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if !isNotFound(err) {
		return nil, err
	}
	password := in.Password
	if password == "" {
		password = uc.defaultPassword
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, domain.Internal("hash password", err)
	}

	ts := now()
	user := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: hash,
		Phone:        strings.TrimSpace(in.Phone),
		Role:         role,
		CompanyID:    company,
		IsActive:     true,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	restaurantIDs = dedupe(restaurantIDs)
	err = uc.tx.Run(ctx, func(r repository.Repos) error {
		if err := r.Users.Create(ctx, user); err != nil {
			return err
		}
		if len(restaurantIDs) == 0 {
			return nil
		}
		return r.UserRestaurants.Link(ctx, user.ID, restaurantIDs)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Str("role", role).Msg("usuario creado")
	out := dto.NewUserResponse(user)
	out.RestaurantIDs = restaurantIDs
	return &out, nil
}

// GetByID devuelve el usuario con sus restaurantes asignados.
func (uc *UserUseCase) GetByID(ctx context.Context, caller access.Caller, id string) (*dto.UserResponse, error) {
	user, err := uc.visible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	ids, err := uc.links.ListRestaurantIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	out := dto.NewUserResponse(user)
	out.RestaurantIDs = ids
	return &out, nil
}

// List pagina usuarios. Company_Admin siempre filtrado a su empresa.
func (uc *UserUseCase) List(ctx context.Context, caller access.Caller, q dto.UserListQuery) (*dto.UserListResponse, error) {
	q.DefaultPage()
	filter := repository.UserFilter{
		CompanyID: q.CompanyID,
		Role:      q.Role,
		Page:      repository.Page{Limit: q.Limit(), Offset: q.Offset()},
	}
	switch caller.Role {
	case entity.RoleSuperAdmin:
	case entity.RoleCompanyAdmin:
		if caller.CompanyID == "" {
			return &dto.UserListResponse{Items: []dto.UserResponse{}, Page: dto.NewPageResponse(0, q.PageRequest)}, nil
		}
		filter.CompanyID = caller.CompanyID
	default:
		return nil, domain.Forbidden("FORBIDDEN", "no tiene permiso para listar usuarios")
	}
	list, total, err := uc.users.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, dto.NewUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Page: dto.NewPageResponse(total, q.PageRequest)}, nil
}

// Update aplica los campos editables. Solo un administrador cambia roles.
func (uc *UserUseCase) Update(ctx context.Context, caller access.Caller, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.visible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if in.Role != nil && *in.Role != user.Role {
		if err := uc.canAssignRole(caller, user, *in.Role); err != nil {
			return nil, err
		}
		user.Role = *in.Role
	}
	setString(&user.FirstName, in.FirstName)
	setString(&user.LastName, in.LastName)
	setString(&user.Phone, in.Phone)
	if user.FirstName == "" {
		return nil, domain.Validation("FIRST_NAME_REQUIRED", "first_name es obligatorio")
	}
	user.UpdatedAt = now()
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	out := dto.NewUserResponse(user)
	return &out, nil
}

// Delete desactiva un usuario. Nadie puede desactivarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, caller access.Caller, id string) error {
	if id == caller.UserID {
		return domain.Validation("SELF_DELETE", "no puede desactivar su propio usuario")
	}
	if _, err := uc.managed(ctx, caller, id); err != nil {
		return err
	}
	return uc.users.SoftDelete(ctx, id)
}

// ToggleBlock invierte is_blocked. Un usuario bloqueado no puede iniciar sesión.
func (uc *UserUseCase) ToggleBlock(ctx context.Context, caller access.Caller, id string) (*dto.UserResponse, error) {
	if id == caller.UserID {
		return nil, domain.Validation("SELF_BLOCK", "no puede bloquear su propio usuario")
	}
	user, err := uc.managed(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	user.IsBlocked = !user.IsBlocked
	user.UpdatedAt = now()
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", id).Bool("blocked", user.IsBlocked).Msg("bloqueo actualizado")
	out := dto.NewUserResponse(user)
	return &out, nil
}

// Restaurants devuelve los restaurantes que el usuario puede operar según su rol.
func (uc *UserUseCase) Restaurants(ctx context.Context, caller access.Caller, id string) (*dto.UserRestaurantsResponse, error) {
	user, err := uc.visible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	scope, err := uc.scopes.Resolve(ctx, callerOf(user))
	if err != nil {
		return nil, err
	}
	out := &dto.UserRestaurantsResponse{UserID: user.ID, Restaurants: []dto.RestaurantResponse{}}
	if scope.IsEmpty() {
		return out, nil
	}
	list, _, err := uc.restaurants.List(ctx, repository.RestaurantFilter{Scope: scope})
	if err != nil {
		return nil, err
	}
	out.Restaurants = dto.NewRestaurantResponses(list)
	return out, nil
}

// AssignRestaurants reemplaza las asignaciones del usuario por restaurantes de su empresa.
func (uc *UserUseCase) AssignRestaurants(ctx context.Context, caller access.Caller, id string, in dto.AssignRestaurantsRequest) (*dto.UserRestaurantsResponse, error) {
	user, err := uc.managed(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if user.Role == entity.RoleSuperAdmin {
		return nil, domain.Validation("INVALID_ASSIGNMENT", "un Super_Admin no se asigna a restaurantes")
	}
	ids := dedupe(in.RestaurantIDs)
	if err := uc.checkRestaurants(ctx, user.CompanyIDValue(), ids); err != nil {
		return nil, err
	}
	if err := uc.links.Replace(ctx, user.ID, ids); err != nil {
		return nil, err
	}
	return uc.Restaurants(ctx, caller, id)
}

// visible: Super_Admin ve todos, Company_Admin los de su empresa, el resto solo a sí mismo.
func (uc *UserUseCase) visible(ctx context.Context, caller access.Caller, id string) (*entity.User, error) {
	if caller.Role == entity.RoleRestaurantEmployee && caller.UserID != id {
		return nil, domain.Forbidden("FORBIDDEN", "no tiene acceso a este usuario")
	}
	user, err := uc.users.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if caller.Role == entity.RoleCompanyAdmin && user.CompanyIDValue() != caller.CompanyID {
		return nil, domain.Forbidden("FORBIDDEN", "no tiene acceso a este usuario")
	}
	return user, nil
}

// managed: como visible, pero solo administradores y nunca sobre un Super_Admin ajeno.
func (uc *UserUseCase) managed(ctx context.Context, caller access.Caller, id string) (*entity.User, error) {
	if caller.Role != entity.RoleSuperAdmin && caller.Role != entity.RoleCompanyAdmin {
		return nil, domain.Forbidden("FORBIDDEN", "no tiene permiso para administrar usuarios")
	}
	user, err := uc.visible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if caller.Role == entity.RoleCompanyAdmin && user.Role == entity.RoleSuperAdmin {
		return nil, domain.Forbidden("FORBIDDEN", "no tiene acceso a este usuario")
	}
	return user, nil
}

func (uc *UserUseCase) canAssignRole(caller access.Caller, user *entity.User, role string) error {
	if !entity.ValidRole(role) {
		return domain.Validation("INVALID_ROLE", "rol inválido")
	}
	switch caller.Role {
	case entity.RoleSuperAdmin:
	case entity.RoleCompanyAdmin:
		if role == entity.RoleSuperAdmin {
			return domain.Forbidden("ROLE_FORBIDDEN", "no puede asignar el rol Super_Admin")
		}
	default:
		return domain.Forbidden("ROLE_FORBIDDEN", "no puede cambiar roles")
	}
	if role != entity.RoleSuperAdmin && user.CompanyID == nil {
		return domain.Validation("COMPANY_REQUIRED", "el usuario no pertenece a ninguna empresa")
	}
	return nil
}

// restaurantByName busca un restaurante activo por nombre (sin distinguir mayúsculas),
// dentro de la empresa cuando se conoce.
func (uc *UserUseCase) restaurantByName(ctx context.Context, companyID, name string) (*entity.Restaurant, error) {
	list, _, err := uc.restaurants.List(ctx, repository.RestaurantFilter{Scope: access.All(), CompanyID: companyID})
	if err != nil {
		return nil, err
	}
	for _, r := range list {
		if strings.EqualFold(strings.TrimSpace(r.Name), name) {
			return r, nil
		}
	}
	return nil, domain.ErrRestaurantNotFound
}

// checkRestaurants exige que cada id sea un restaurante activo de companyID.
func (uc *UserUseCase) checkRestaurants(ctx context.Context, companyID string, ids []string) error {
	for _, id := range ids {
		r, err := uc.restaurants.GetByID(ctx, id, false)
		if err != nil {
			return err
		}
		if r.CompanyID != companyID {
			return domain.Validation("RESTAURANT_OTHER_COMPANY", "el restaurante "+id+" no pertenece a la empresa")
		}
	}
	return nil
}

func callerOf(u *entity.User) access.Caller {
	return access.Caller{UserID: u.ID, Role: u.Role, CompanyID: u.CompanyIDValue(), Email: u.Email}
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
