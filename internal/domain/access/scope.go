// Package access define el alcance de datos visible para quien llama.
package access

import "sort"

// Caller es la identidad autenticada que realiza la operación (claims del token).
type Caller struct {
	UserID    string
	Role      string
	CompanyID string
	Email     string
}

// Scope es el conjunto de restaurantes que un Caller puede leer o escribir.
// El valor cero es un conjunto restringido vacío: nunca concede acceso total por accidente.
type Scope struct {
	all bool
	ids map[string]struct{}
}

// All devuelve el alcance sin filtro (Super_Admin).
func All() Scope {
	return Scope{all: true}
}

// Restricted devuelve un alcance limitado a ids; con ids vacío el alcance es vacío explícito.
func Restricted(ids []string) Scope {
	s := Scope{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		if id != "" {
			s.ids[id] = struct{}{}
		}
	}
	return s
}

// IsAll indica alcance total.
func (s Scope) IsAll() bool { return s.all }

// IsEmpty indica un alcance restringido sin restaurantes; los consumidores devuelven cero resultados.
func (s Scope) IsEmpty() bool { return !s.all && len(s.ids) == 0 }

// Contains indica si restaurantID está dentro del alcance.
func (s Scope) Contains(restaurantID string) bool {
	if s.all {
		return true
	}
	_, ok := s.ids[restaurantID]
	return ok
}

// IDs devuelve los ids ordenados; nil cuando el alcance es total.
func (s Scope) IDs() []string {
	if s.all {
		return nil
	}
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Intersect limita el alcance a los ids pedidos. Sin ids devuelve el mismo alcance.
func (s Scope) Intersect(ids []string) Scope {
	if len(ids) == 0 {
		return s
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if s.Contains(id) {
			out = append(out, id)
		}
	}
	return Restricted(out)
}

// Key es una representación estable del alcance (claves de caché).
func (s Scope) Key() string {
	if s.all {
		return "all"
	}
	key := ""
	for i, id := range s.IDs() {
		if i > 0 {
			key += ","
		}
		key += id
	}
	return key
}
