package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
)

var (
	_ repository.CompanyRepository        = (*CompanyRepo)(nil)
	_ repository.RestaurantRepository     = (*RestaurantRepo)(nil)
	_ repository.UserRepository           = (*UserRepo)(nil)
	_ repository.UserRestaurantRepository = (*UserRestaurantRepo)(nil)
)

// ── Company ──────────────────────────────────────────────────────────────────

// CompanyRepo empresas en memoria.
type CompanyRepo struct{ h handle }

func (r *CompanyRepo) Create(_ context.Context, c *entity.Company) error {
	return r.h.do(func(d *data) error {
		if _, ok := d.companies[c.ID]; ok {
			return domain.Conflict("COMPANY_EXISTS", "la empresa ya existe")
		}
		d.companies[c.ID] = *c
		return nil
	})
}

func (r *CompanyRepo) GetByID(_ context.Context, id string, includeInactive bool) (*entity.Company, error) {
	var out *entity.Company
	err := r.h.do(func(d *data) error {
		c, ok := d.companies[id]
		if !ok || (!includeInactive && !c.IsActive) {
			return domain.ErrCompanyNotFound
		}
		out = &c
		return nil
	})
	return out, err
}

func (r *CompanyRepo) Update(_ context.Context, c *entity.Company) error {
	return r.h.do(func(d *data) error {
		if _, ok := d.companies[c.ID]; !ok {
			return domain.ErrCompanyNotFound
		}
		d.companies[c.ID] = *c
		return nil
	})
}

func (r *CompanyRepo) SoftDelete(_ context.Context, id string) error {
	return r.h.do(func(d *data) error {
		c, ok := d.companies[id]
		if !ok || !c.IsActive {
			return domain.ErrCompanyNotFound
		}
		c.IsActive = false
		c.UpdatedAt = time.Now().UTC()
		d.companies[id] = c
		return nil
	})
}

func (r *CompanyRepo) List(_ context.Context, f repository.CompanyFilter) ([]*entity.Company, int, error) {
	var list []*entity.Company
	err := r.h.do(func(d *data) error {
		for _, c := range d.companies {
			if !c.IsActive || (f.Onboarded != nil && c.IsOnboarded != *f.Onboarded) {
				continue
			}
			c := c
			list = append(list, &c)
		}
		return nil
	})
	sortByTimeDesc(list, func(c *entity.Company) time.Time { return c.CreatedAt }, func(c *entity.Company) time.Time { return c.UpdatedAt })
	return paginate(list, f.Page), len(list), err
}

// ── Restaurant ───────────────────────────────────────────────────────────────

// RestaurantRepo restaurantes en memoria.
type RestaurantRepo struct{ h handle }

func (r *RestaurantRepo) Create(_ context.Context, x *entity.Restaurant) error {
	return r.h.do(func(d *data) error {
		if _, ok := d.companies[x.CompanyID]; !ok {
			return domain.ErrCompanyNotFound
		}
		d.restaurants[x.ID] = *x
		return nil
	})
}

func (r *RestaurantRepo) GetByID(_ context.Context, id string, includeInactive bool) (*entity.Restaurant, error) {
	var out *entity.Restaurant
	err := r.h.do(func(d *data) error {
		x, ok := d.restaurants[id]
		if !ok || (!includeInactive && !x.IsActive) {
			return domain.ErrRestaurantNotFound
		}
		out = &x
		return nil
	})
	return out, err
}

func (r *RestaurantRepo) Update(_ context.Context, x *entity.Restaurant) error {
	return r.h.do(func(d *data) error {
		cur, ok := d.restaurants[x.ID]
		if !ok || !cur.IsActive {
			return domain.ErrRestaurantNotFound
		}
		upd := *x
		upd.CompanyID = cur.CompanyID
		upd.IsActive = cur.IsActive
		upd.CreatedAt = cur.CreatedAt
		d.restaurants[x.ID] = upd
		return nil
	})
}

func (r *RestaurantRepo) SoftDelete(_ context.Context, id string) error {
	return r.h.do(func(d *data) error {
		x, ok := d.restaurants[id]
		if !ok || !x.IsActive {
			return domain.ErrRestaurantNotFound
		}
		x.IsActive = false
		d.restaurants[id] = x
		return nil
	})
}

func (r *RestaurantRepo) List(_ context.Context, f repository.RestaurantFilter) ([]*entity.Restaurant, int, error) {
	var list []*entity.Restaurant
	err := r.h.do(func(d *data) error {
		for _, x := range d.restaurants {
			if !x.IsActive || !f.Scope.Contains(x.ID) || (f.CompanyID != "" && x.CompanyID != f.CompanyID) {
				continue
			}
			x := x
			list = append(list, &x)
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return paginate(list, f.Page), len(list), err
}

func (r *RestaurantRepo) ListIDsByCompany(_ context.Context, companyID string) ([]string, error) {
	ids := []string{}
	err := r.h.do(func(d *data) error {
		for _, x := range d.restaurants {
			if x.IsActive && x.CompanyID == companyID {
				ids = append(ids, x.ID)
			}
		}
		return nil
	})
	sort.Strings(ids)
	return ids, err
}

// ── User ─────────────────────────────────────────────────────────────────────

// UserRepo usuarios en memoria; el email es único sin distinguir mayúsculas.
type UserRepo struct{ h handle }

func emailTaken(d *data, email, exceptID string) bool {
	for _, u := range d.users {
		if u.ID != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	return r.h.do(func(d *data) error {
		if emailTaken(d, u.Email, "") {
			return domain.ErrEmailAlreadyExists
		}
		d.users[u.ID] = *u
		return nil
	})
}

func (r *UserRepo) GetByID(_ context.Context, id string, includeInactive bool) (*entity.User, error) {
	var out *entity.User
	err := r.h.do(func(d *data) error {
		u, ok := d.users[id]
		if !ok || (!includeInactive && !u.IsActive) {
			return domain.ErrUserNotFound
		}
		out = &u
		return nil
	})
	return out, err
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	var out *entity.User
	err := r.h.do(func(d *data) error {
		for _, u := range d.users {
			if strings.EqualFold(u.Email, email) {
				u := u
				out = &u
				return nil
			}
		}
		return domain.ErrUserNotFound
	})
	return out, err
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	return r.h.do(func(d *data) error {
		cur, ok := d.users[u.ID]
		if !ok {
			return domain.ErrUserNotFound
		}
		if emailTaken(d, u.Email, u.ID) {
			return domain.ErrEmailAlreadyExists
		}
		upd := *u
		upd.CompanyID = cur.CompanyID
		upd.LastLogin = cur.LastLogin
		upd.CreatedAt = cur.CreatedAt
		d.users[u.ID] = upd
		return nil
	})
}

func (r *UserRepo) SoftDelete(_ context.Context, id string) error {
	return r.h.do(func(d *data) error {
		u, ok := d.users[id]
		if !ok || !u.IsActive {
			return domain.ErrUserNotFound
		}
		u.IsActive = false
		d.users[id] = u
		return nil
	})
}

func (r *UserRepo) List(_ context.Context, f repository.UserFilter) ([]*entity.User, int, error) {
	var list []*entity.User
	err := r.h.do(func(d *data) error {
		for _, u := range d.users {
			if !u.IsActive || (f.CompanyID != "" && u.CompanyIDValue() != f.CompanyID) || (f.Role != "" && u.Role != f.Role) {
				continue
			}
			u := u
			list = append(list, &u)
		}
		return nil
	})
	sortByTimeDesc(list, func(u *entity.User) time.Time { return u.CreatedAt }, func(u *entity.User) time.Time { return u.UpdatedAt })
	return paginate(list, f.Page), len(list), err
}

func (r *UserRepo) TouchLastLogin(_ context.Context, id string, at time.Time) error {
	return r.h.do(func(d *data) error {
		u, ok := d.users[id]
		if !ok {
			return domain.ErrUserNotFound
		}
		u.LastLogin = &at
		d.users[id] = u
		return nil
	})
}

// ── UserRestaurant ───────────────────────────────────────────────────────────

// UserRestaurantRepo asignaciones en memoria.
type UserRestaurantRepo struct{ h handle }

func (r *UserRestaurantRepo) Link(_ context.Context, userID string, restaurantIDs []string) error {
	return r.h.do(func(d *data) error {
		link(d, userID, restaurantIDs)
		return nil
	})
}

func link(d *data, userID string, restaurantIDs []string) {
	set, ok := d.userRestaurants[userID]
	if !ok {
		set = map[string]time.Time{}
		d.userRestaurants[userID] = set
	}
	for _, id := range restaurantIDs {
		if _, exists := set[id]; !exists {
			set[id] = time.Now().UTC()
		}
	}
}

func (r *UserRestaurantRepo) ListRestaurantIDs(_ context.Context, userID string) ([]string, error) {
	ids := []string{}
	err := r.h.do(func(d *data) error {
		for id := range d.userRestaurants[userID] {
			if x, ok := d.restaurants[id]; ok && x.IsActive {
				ids = append(ids, id)
			}
		}
		return nil
	})
	sort.Strings(ids)
	return ids, err
}

func (r *UserRestaurantRepo) Replace(_ context.Context, userID string, restaurantIDs []string) error {
	return r.h.do(func(d *data) error {
		delete(d.userRestaurants, userID)
		link(d, userID, restaurantIDs)
		return nil
	})
}
