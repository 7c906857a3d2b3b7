// Package usecase contiene los casos de uso CRUD con alcance por rol.
package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
)

// ScopeResolver resuelve el alcance de quien llama (implementado por application/access.Resolver).
type ScopeResolver interface {
	Resolve(ctx context.Context, caller access.Caller) (access.Scope, error)
	Authorize(ctx context.Context, caller access.Caller, restaurantID string) (*entity.Restaurant, error)
	Requested(ctx context.Context, caller access.Caller, restaurantIDs []string) (access.Scope, error)
}

// now es la hora de escritura de los registros.
func now() time.Time { return time.Now().UTC() }

// nonNegative valida que ningún monto sea negativo. El mensaje nombra el primer campo en orden alfabético.
func nonNegative(fields map[string]decimal.Decimal) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if fields[name].IsNegative() {
			return domain.Validation("NEGATIVE_AMOUNT", name+" no puede ser negativo")
		}
	}
	return nil
}

func nonNegativeInt(name string, v int) error {
	if v < 0 {
		return domain.Validation("NEGATIVE_AMOUNT", name+" no puede ser negativo")
	}
	return nil
}

// parseDate interpreta un campo DATE obligatorio.
func parseDate(field, v string) (time.Time, error) {
	t, err := entity.ParseDate(strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, domain.Validation("INVALID_DATE", field+" debe tener formato YYYY-MM-DD")
	}
	return t, nil
}

// splitIDs separa "a,b , c" en ids no vacíos.
func splitIDs(raw string) []string {
	var out []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}

// recordFilter arma el filtro de listados: alcance ∩ restaurant_id pedidos, rango y página.
func recordFilter(ctx context.Context, scopes ScopeResolver, caller access.Caller, q *dto.RecordListQuery) (repository.RecordFilter, error) {
	q.DefaultPage()
	scope, err := scopes.Requested(ctx, caller, splitIDs(q.RestaurantID))
	if err != nil {
		return repository.RecordFilter{}, err
	}
	dateRange, err := q.DateRangeQuery.Parse()
	if err != nil {
		return repository.RecordFilter{}, err
	}
	return repository.RecordFilter{
		Scope:    scope,
		Range:    dateRange,
		Category: strings.TrimSpace(q.Category),
		Page:     repository.Page{Limit: q.Limit(), Offset: q.Offset()},
	}, nil
}

// checkScope verifica que un registro ya leído pertenezca al alcance del caller.
func checkScope(ctx context.Context, scopes ScopeResolver, caller access.Caller, restaurantID string) error {
	scope, err := scopes.Resolve(ctx, caller)
	if err != nil {
		return err
	}
	if !scope.Contains(restaurantID) {
		return domain.ErrRestaurantForbidden
	}
	return nil
}

// sameCompany rechaza a un Company_Admin que opera sobre otra empresa.
func sameCompany(caller access.Caller, companyID string) error {
	if caller.Role == entity.RoleSuperAdmin {
		return nil
	}
	if caller.CompanyID == "" || caller.CompanyID != companyID {
		return domain.Forbidden("COMPANY_FORBIDDEN", "no tiene acceso a esta empresa")
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func setDecimal(dst *decimal.Decimal, v *decimal.Decimal) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
