package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
)

var (
	_ repository.SalesCategoryRepository = (*SalesCategoryRepo)(nil)
	_ repository.ForecastRepository      = (*ForecastRepo)(nil)
	_ repository.TargetRepository        = (*TargetRepo)(nil)
	_ repository.PosRepository           = (*PosRepo)(nil)
)

func periodKey(restaurantID string, year, month int) string {
	return fmt.Sprintf("%s/%d/%d", restaurantID, year, month)
}

// SalesCategoryRepo categorías en memoria; (restaurant_id, nombre sin mayúsculas) es único.
type SalesCategoryRepo struct{ h handle }

func (r *SalesCategoryRepo) Create(_ context.Context, c *entity.SalesCategory) error {
	return r.h.do(func(d *data) error {
		if _, ok := d.restaurants[c.RestaurantID]; !ok {
			return domain.ErrRestaurantNotFound
		}
		for _, cur := range d.categories {
			if cur.RestaurantID == c.RestaurantID && strings.EqualFold(cur.Name, c.Name) {
				return domain.Conflict("SALES_CATEGORY_EXISTS", "la categoría ya existe")
			}
		}
		d.categories[c.ID] = *c
		return nil
	})
}

func (r *SalesCategoryRepo) GetByName(_ context.Context, restaurantID, name string) (*entity.SalesCategory, error) {
	var out *entity.SalesCategory
	err := r.h.do(func(d *data) error {
		for _, c := range d.categories {
			if c.RestaurantID == restaurantID && strings.EqualFold(c.Name, name) {
				c := c
				out = &c
				return nil
			}
		}
		return domain.ErrSalesCategoryNotFound
	})
	return out, err
}

func (r *SalesCategoryRepo) ListByRestaurant(_ context.Context, restaurantID string) ([]*entity.SalesCategory, error) {
	var list []*entity.SalesCategory
	err := r.h.do(func(d *data) error {
		for _, c := range d.categories {
			if c.RestaurantID == restaurantID && c.IsActive {
				c := c
				list = append(list, &c)
			}
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, err
}

// ForecastRepo proyecciones en memoria, una por (restaurant_id, year, month).
type ForecastRepo struct{ h handle }

func (r *ForecastRepo) Upsert(_ context.Context, f *entity.Forecast) error {
	return r.h.do(func(d *data) error {
		key := periodKey(f.RestaurantID, f.Year, f.Month)
		stored := *f
		if cur, ok := d.forecasts[key]; ok {
			stored.ID, stored.CreatedAt = cur.ID, cur.CreatedAt
		}
		stored.IsActive = true
		d.forecasts[key] = stored
		return nil
	})
}

func (r *ForecastRepo) ListByRestaurant(_ context.Context, restaurantID string, year int) ([]*entity.Forecast, error) {
	var list []*entity.Forecast
	err := r.h.do(func(d *data) error {
		for _, f := range d.forecasts {
			if f.RestaurantID == restaurantID && f.Year == year && f.IsActive {
				f := f
				list = append(list, &f)
			}
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Month < list[j].Month })
	return list, err
}

// TargetRepo objetivos en memoria.
type TargetRepo struct{ h handle }

func (r *TargetRepo) Upsert(_ context.Context, t *entity.Target) error {
	return r.h.do(func(d *data) error {
		key := periodKey(t.RestaurantID, t.Year, t.Month)
		stored := *t
		if cur, ok := d.targets[key]; ok {
			stored.ID, stored.CreatedAt = cur.ID, cur.CreatedAt
		}
		stored.IsActive = true
		d.targets[key] = stored
		return nil
	})
}

func (r *TargetRepo) Get(_ context.Context, restaurantID string, year, month int) (*entity.Target, error) {
	var out *entity.Target
	err := r.h.do(func(d *data) error {
		t, ok := d.targets[periodKey(restaurantID, year, month)]
		if !ok || !t.IsActive {
			return domain.ErrTargetNotFound
		}
		out = &t
		return nil
	})
	return out, err
}

// PosRepo integraciones POS en memoria.
type PosRepo struct{ h handle }

func (r *PosRepo) Upsert(_ context.Context, p *entity.Pos) error {
	return r.h.do(func(d *data) error {
		stored := *p
		if cur, ok := d.pos[p.RestaurantID]; ok {
			stored.ID, stored.CreatedAt = cur.ID, cur.CreatedAt
		}
		stored.IsActive = true
		d.pos[p.RestaurantID] = stored
		return nil
	})
}

func (r *PosRepo) GetByRestaurant(_ context.Context, restaurantID string) (*entity.Pos, error) {
	var out *entity.Pos
	err := r.h.do(func(d *data) error {
		p, ok := d.pos[restaurantID]
		if !ok || !p.IsActive {
			return domain.ErrPosNotFound
		}
		out = &p
		return nil
	})
	return out, err
}
