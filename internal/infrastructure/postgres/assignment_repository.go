package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

// AssignmentRepo implementación de AssignmentRepository sobre PostgreSQL (usable con pool o tx).
type AssignmentRepo struct {
	q Querier
}

// NewAssignmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAssignmentRepository(q Querier) *AssignmentRepo {
	return &AssignmentRepo{q: q}
}

// InsertMissing inserta solo los pares que no existan (ON CONFLICT DO NOTHING).
// Devuelve cuántos se crearon realmente.
func (r *AssignmentRepo) InsertMissing(categoryID string, officeIDs []string) (int, error) {
	if len(officeIDs) == 0 {
		return 0, nil
	}
	cmd, err := r.q.Exec(context.Background(), `
		INSERT INTO category_office_assignments (category_id, office_id, created_at)
		SELECT $1, unnest($2::text[]), now()
		ON CONFLICT (category_id, office_id) DO NOTHING`,
		categoryID, officeIDs,
	)
	if err != nil {
		return 0, fmt.Errorf("insert assignments: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}

// Delete elimina el par; devuelve false si no existía.
func (r *AssignmentRepo) Delete(categoryID, officeID string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM category_office_assignments WHERE category_id = $1 AND office_id = $2`,
		categoryID, officeID,
	)
	if err != nil {
		return false, fmt.Errorf("delete assignment: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListOfficeIDs devuelve las oficinas asignadas a una categoría.
func (r *AssignmentRepo) ListOfficeIDs(categoryID string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT office_id FROM category_office_assignments WHERE category_id = $1 ORDER BY office_id`,
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DeleteForCategories limpia las asignaciones de un subárbol borrado.
func (r *AssignmentRepo) DeleteForCategories(categoryIDs []string) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM category_office_assignments WHERE category_id = ANY($1)`,
		categoryIDs,
	)
	if err != nil {
		return fmt.Errorf("delete assignments: %w", err)
	}
	return nil
}
