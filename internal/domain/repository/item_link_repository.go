package repository

import "github.com/jhoicas/Cotizador-api/internal/domain/entity"

// ItemLinkRepository puerto de solo lectura/limpieza hacia el catálogo de
// ítems (colaborador externo). El árbol nunca crea ni edita ítems: solo
// cuenta referencias y, en un delete forzado, elimina los vínculos.
type ItemLinkRepository interface {
	StatsForCategory(companyID, categoryID string) (entity.ItemStats, error)
	// StatsByCategory devuelve las estadísticas de toda la empresa en una sola
	// consulta agrupada (para construir el árbol sin N+1).
	StatsByCategory(companyID string) (map[string]entity.ItemStats, error)
	// DeleteForCategories elimina los vínculos ítem→categoría del subárbol
	// borrado. Devuelve cuántos vínculos se eliminaron.
	DeleteForCategories(companyID string, categoryIDs []string) (int, error)
}
