package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryColumns = `id, company_id, COALESCE(parent_id, ''), name, depth, sort_order,
		category_type, is_active, version, last_modified_by, created_at, updated_at`

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, company_id, parent_id, name, depth, sort_order,
			category_type, is_active, version, last_modified_by, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.CompanyID, category.ParentID, category.Name,
		category.Depth, category.SortOrder, category.CategoryType, category.IsActive,
		category.Version, category.LastModifiedBy, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID dentro de la empresa. Devuelve nil si no existe.
func (r *CategoryRepo) GetByID(companyID, id string) (*entity.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories WHERE company_id = $1 AND id = $2`
	c, err := scanCategory(r.q.QueryRow(context.Background(), query, companyID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// ListChildren devuelve las hijas directas ordenadas por (sort_order, id).
// parentID vacío lista las raíces.
func (r *CategoryRepo) ListChildren(companyID, parentID string) ([]*entity.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE company_id = $1 AND COALESCE(parent_id, '') = $2
		ORDER BY sort_order, id`
	rows, err := r.q.Query(context.Background(), query, companyID, parentID)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	defer rows.Close()
	return collectCategories(rows)
}

// FindSiblingByName busca una hermana ACTIVA con ese nombre exacto bajo el
// mismo padre. Devuelve nil si no hay colisión.
func (r *CategoryRepo) FindSiblingByName(companyID, parentID, name string) (*entity.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE company_id = $1 AND COALESCE(parent_id, '') = $2 AND name = $3 AND is_active`
	c, err := scanCategory(r.q.QueryRow(context.Background(), query, companyID, parentID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find sibling: %w", err)
	}
	return c, nil
}

// CountChildren cuenta las hijas directas (activas o no).
func (r *CategoryRepo) CountChildren(companyID, id string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM categories WHERE company_id = $1 AND parent_id = $2`,
		companyID, id,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count children: %w", err)
	}
	return n, nil
}

// ListByCompany devuelve todas las categorías de la empresa según el filtro,
// ordenadas por (sort_order, id) para preservar el orden de hermanos.
func (r *CategoryRepo) ListByCompany(companyID string, filter repository.CategoryFilter) ([]*entity.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE company_id = $1
		  AND ($2 OR is_active)
		  AND ($3 = '' OR category_type = $3)
		ORDER BY sort_order, id`
	rows, err := r.q.Query(context.Background(), query, companyID, filter.IncludeInactive, filter.CategoryType)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	return collectCategories(rows)
}

// Save aplica el compare-and-swap de concurrencia optimista: el UPDATE solo
// toca la fila si version coincide. Si no afecta filas, una lectura posterior
// distingue entre versión desfasada (*domain.ConflictError) y fila borrada
// (domain.ErrNotFound).
func (r *CategoryRepo) Save(category *entity.Category, expectedVersion int) error {
	query := `
		UPDATE categories
		SET parent_id = NULLIF($3, ''), name = $4, depth = $5, sort_order = $6,
			category_type = $7, is_active = $8, version = version + 1,
			last_modified_by = $9, updated_at = now()
		WHERE company_id = $1 AND id = $2 AND version = $10
		RETURNING version, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		category.CompanyID, category.ID, category.ParentID, category.Name,
		category.Depth, category.SortOrder, category.CategoryType, category.IsActive,
		category.LastModifiedBy, expectedVersion,
	).Scan(&category.Version, &category.UpdatedAt)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("save category: %w", err)
	}

	// CAS fallido: ¿versión desfasada o fila desaparecida?
	var currentVersion int
	var lastModifiedBy string
	err = r.q.QueryRow(context.Background(),
		`SELECT version, last_modified_by FROM categories WHERE company_id = $1 AND id = $2`,
		category.CompanyID, category.ID,
	).Scan(&currentVersion, &lastModifiedBy)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("save category (reread): %w", err)
	}
	return &domain.ConflictError{CurrentVersion: currentVersion, LastModifiedBy: lastModifiedBy}
}

// SaveSortOrder reubica un solo hermano; no pasa por el CAS porque el Reorder
// por lotes tolera ids desfasados. Devuelve false si el id no resolvió.
func (r *CategoryRepo) SaveSortOrder(companyID, id, sortOrder, userID string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE categories
		SET sort_order = $3, version = version + 1, last_modified_by = $4, updated_at = now()
		WHERE company_id = $1 AND id = $2`,
		companyID, id, sortOrder, userID,
	)
	if err != nil {
		return false, fmt.Errorf("save sort order: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// UpdateDepths aplica en lote las profundidades recalculadas de un subárbol
// movido (misma transacción que el Move).
func (r *CategoryRepo) UpdateDepths(companyID string, updates []repository.DepthUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	ids := make([]string, len(updates))
	depths := make([]int, len(updates))
	for i, u := range updates {
		ids[i] = u.ID
		depths[i] = u.Depth
	}
	// unnest empareja id ↔ depth posicionalmente: un solo UPDATE para toda la cascada.
	_, err := r.q.Exec(context.Background(), `
		UPDATE categories c
		SET depth = u.depth, updated_at = now()
		FROM unnest($2::text[], $3::int[]) AS u(id, depth)
		WHERE c.company_id = $1 AND c.id = u.id`,
		companyID, ids, depths,
	)
	if err != nil {
		return fmt.Errorf("update depths: %w", err)
	}
	return nil
}

// ListSubtreeIDs devuelve los ids del subárbol con raíz rootID (incluida),
// padres antes que hijas, vía CTE recursivo.
func (r *CategoryRepo) ListSubtreeIDs(companyID, rootID string) ([]string, error) {
	query := `
		WITH RECURSIVE subtree AS (
			SELECT id, 0 AS lvl FROM categories WHERE company_id = $1 AND id = $2
			UNION ALL
			SELECT c.id, s.lvl + 1
			FROM categories c
			JOIN subtree s ON c.parent_id = s.id
			WHERE c.company_id = $1
		)
		SELECT id FROM subtree ORDER BY lvl`
	rows, err := r.q.Query(context.Background(), query, companyID, rootID)
	if err != nil {
		return nil, fmt.Errorf("list subtree: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan subtree id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DeleteMany elimina un lote de categorías de la empresa.
func (r *CategoryRepo) DeleteMany(companyID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM categories WHERE company_id = $1 AND id = ANY($2)`,
		companyID, ids,
	)
	if err != nil {
		return fmt.Errorf("delete categories: %w", err)
	}
	return nil
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(
		&c.ID, &c.CompanyID, &c.ParentID, &c.Name, &c.Depth, &c.SortOrder,
		&c.CategoryType, &c.IsActive, &c.Version, &c.LastModifiedBy,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectCategories(rows pgx.Rows) ([]*entity.Category, error) {
	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
