package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

var _ repository.OfficeRepository = (*OfficeRepo)(nil)

// OfficeRepo implementación del puerto OfficeRepository sobre PostgreSQL.
type OfficeRepo struct {
	q Querier
}

// NewOfficeRepository construye el adaptador de persistencia para oficinas.
func NewOfficeRepository(q Querier) *OfficeRepo {
	return &OfficeRepo{q: q}
}

// Create persiste una nueva oficina.
func (r *OfficeRepo) Create(office *entity.Office) error {
	query := `
		INSERT INTO offices (id, company_id, name, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		office.ID, office.CompanyID, office.Name, office.Address,
		office.CreatedAt, office.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert office: %w", err)
	}
	return nil
}

// GetByID obtiene una oficina por ID.
func (r *OfficeRepo) GetByID(id string) (*entity.Office, error) {
	query := `
		SELECT id, company_id, name, address, created_at, updated_at
		FROM offices WHERE id = $1`
	var o entity.Office
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CompanyID, &o.Name, &o.Address, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get office: %w", err)
	}
	return &o, nil
}

// Update actualiza una oficina existente.
func (r *OfficeRepo) Update(office *entity.Office) error {
	query := `
		UPDATE offices SET name = $2, address = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		office.ID, office.Name, office.Address, office.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update office: %w", err)
	}
	return nil
}

// ListByCompany lista oficinas por empresa con paginación.
func (r *OfficeRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Office, error) {
	query := `
		SELECT id, company_id, name, address, created_at, updated_at
		FROM offices WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list offices: %w", err)
	}
	defer rows.Close()
	return collectOffices(rows)
}

// Delete elimina una oficina por ID.
func (r *OfficeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM offices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete office: %w", err)
	}
	return nil
}

// FindAll resuelve un lote de ids dentro de la empresa; los ids ajenos
// simplemente no aparecen.
func (r *OfficeRepo) FindAll(companyID string, ids []string) ([]*entity.Office, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, company_id, name, address, created_at, updated_at
		FROM offices WHERE company_id = $1 AND id = ANY($2) ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, companyID, ids)
	if err != nil {
		return nil, fmt.Errorf("find offices: %w", err)
	}
	defer rows.Close()
	return collectOffices(rows)
}

func collectOffices(rows pgx.Rows) ([]*entity.Office, error) {
	var list []*entity.Office
	for rows.Next() {
		var o entity.Office
		if err := rows.Scan(&o.ID, &o.CompanyID, &o.Name, &o.Address, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan office: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
