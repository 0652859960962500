package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ItemLinkRepository = (*ItemLinkRepo)(nil)

// ItemLinkRepo implementación de ItemLinkRepository sobre PostgreSQL (usable con pool o tx).
// Lee la tabla de ítems de medida del catálogo; nunca los crea ni edita.
type ItemLinkRepo struct {
	q Querier
}

// NewItemLinkRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemLinkRepository(q Querier) *ItemLinkRepo {
	return &ItemLinkRepo{q: q}
}

// StatsForCategory cuenta los ítems vinculados directamente a una categoría
// y suma sus precios.
func (r *ItemLinkRepo) StatsForCategory(companyID, categoryID string) (entity.ItemStats, error) {
	query := `
		SELECT count(*), COALESCE(sum(price), 0)
		FROM measure_items
		WHERE company_id = $1 AND category_id = $2`
	var stats entity.ItemStats
	err := r.q.QueryRow(context.Background(), query, companyID, categoryID).Scan(&stats.Count, &stats.TotalPrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ItemStats{TotalPrice: decimal.Zero}, nil
		}
		return entity.ItemStats{}, fmt.Errorf("item stats: %w", err)
	}
	return stats, nil
}

// StatsByCategory agrupa conteo y suma de precios por categoría en una sola
// consulta (el árbol completo se arma sin N+1).
func (r *ItemLinkRepo) StatsByCategory(companyID string) (map[string]entity.ItemStats, error) {
	query := `
		SELECT category_id, count(*), COALESCE(sum(price), 0)
		FROM measure_items
		WHERE company_id = $1 AND category_id IS NOT NULL
		GROUP BY category_id`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("item stats by category: %w", err)
	}
	defer rows.Close()
	out := make(map[string]entity.ItemStats)
	for rows.Next() {
		var categoryID string
		var stats entity.ItemStats
		if err := rows.Scan(&categoryID, &stats.Count, &stats.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan item stats: %w", err)
		}
		out[categoryID] = stats
	}
	return out, rows.Err()
}

// DeleteForCategories elimina los vínculos ítem→categoría del subárbol
// borrado. Devuelve cuántos se eliminaron.
func (r *ItemLinkRepo) DeleteForCategories(companyID string, categoryIDs []string) (int, error) {
	if len(categoryIDs) == 0 {
		return 0, nil
	}
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM measure_items WHERE company_id = $1 AND category_id = ANY($2)`,
		companyID, categoryIDs,
	)
	if err != nil {
		return 0, fmt.Errorf("delete item links: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}
