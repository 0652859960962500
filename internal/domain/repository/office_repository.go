package repository

import "github.com/jhoicas/Cotizador-api/internal/domain/entity"

// OfficeRepository define el puerto de persistencia para Office (DIP).
type OfficeRepository interface {
	Create(office *entity.Office) error
	GetByID(id string) (*entity.Office, error)
	Update(office *entity.Office) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Office, error)
	Delete(id string) error
	// FindAll resuelve un lote de ids dentro de la empresa; los ids que no
	// pertenecen a companyID simplemente no aparecen en el resultado.
	FindAll(companyID string, ids []string) ([]*entity.Office, error)
}
