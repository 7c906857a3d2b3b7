package repository

import (
	"context"
	"time"

	"github.com/jhoicas/bluebook-api/internal/domain/entity"
)

// BlueBookRepository define el puerto de persistencia para BlueBook y sus colecciones hijas.
type BlueBookRepository interface {
	Create(ctx context.Context, book *entity.BlueBook) error
	GetByID(ctx context.Context, id string, includeInactive bool) (*entity.BlueBook, error)
	// GetActiveByDate devuelve la entrada activa del día o un error NotFound.
	GetActiveByDate(ctx context.Context, restaurantID string, date time.Time) (*entity.BlueBook, error)
	Update(ctx context.Context, book *entity.BlueBook) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, filter RecordFilter) ([]*entity.BlueBook, int, error)
	// ReplaceNotes reemplaza por completo la colección kind con comments; ListNotes conserva su orden.
	ReplaceNotes(ctx context.Context, blueBookID string, kind entity.NoteKind, comments []string) error
	ListNotes(ctx context.Context, blueBookID string) (map[entity.NoteKind][]*entity.BlueBookNote, error)
}
