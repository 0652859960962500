package repository

import (
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// DepthUpdate par (categoría, nueva profundidad) para la cascada de un Move.
type DepthUpdate struct {
	ID    string
	Depth int
}

// CategoryFilter filtros de lectura del árbol completo.
type CategoryFilter struct {
	IncludeInactive bool
	CategoryType    string // vacío = todos los tipos
}

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Toda operación está acotada por companyID: las categorías jamás se filtran
// entre tenants. El TxRunner entrega instancias atadas a una transacción para
// las mutaciones compuestas.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(companyID, id string) (*entity.Category, error)
	// ListChildren devuelve las hijas directas ordenadas por (sort_order, id).
	ListChildren(companyID, parentID string) ([]*entity.Category, error)
	FindSiblingByName(companyID, parentID, name string) (*entity.Category, error)
	CountChildren(companyID, id string) (int, error)
	ListByCompany(companyID string, filter CategoryFilter) ([]*entity.Category, error)
	// Save aplica un compare-and-swap explícito sobre version: si la versión
	// persistida no coincide con expectedVersion devuelve *domain.ConflictError
	// con la versión actual y el último editor; si coincide, incrementa version
	// y actualiza updated_at/last_modified_by.
	Save(category *entity.Category, expectedVersion int) error
	// SaveSortOrder reubica un solo hermano. Devuelve false si el id no
	// resuelve (el Reorder por lotes lo omite en silencio).
	SaveSortOrder(companyID, id, sortOrder, userID string) (bool, error)
	// UpdateDepths aplica en lote las profundidades recalculadas de un
	// subárbol movido; debe ejecutarse en la misma transacción que el Move.
	UpdateDepths(companyID string, updates []DepthUpdate) error
	// ListSubtreeIDs devuelve los ids del subárbol completo con raíz rootID
	// (incluida), padres antes que hijas.
	ListSubtreeIDs(companyID, rootID string) ([]string, error)
	DeleteMany(companyID string, ids []string) error
}
