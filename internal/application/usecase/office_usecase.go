package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// OfficeUseCase casos de uso CRUD para oficinas.
type OfficeUseCase struct {
	repo repository.OfficeRepository
}

// NewOfficeUseCase construye el caso de uso.
func NewOfficeUseCase(repo repository.OfficeRepository) *OfficeUseCase {
	return &OfficeUseCase{repo: repo}
}

// Create crea una nueva oficina.
func (uc *OfficeUseCase) Create(companyID string, in dto.CreateOfficeRequest) (*dto.OfficeResponse, error) {
	now := time.Now()
	office := &entity.Office{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(office); err != nil {
		return nil, err
	}
	return toOfficeResponse(office), nil
}

// GetByID obtiene una oficina por ID.
func (uc *OfficeUseCase) GetByID(id string) (*dto.OfficeResponse, error) {
	office, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if office == nil {
		return nil, nil
	}
	return toOfficeResponse(office), nil
}

// Update actualiza una oficina.
func (uc *OfficeUseCase) Update(id string, in dto.UpdateOfficeRequest) (*dto.OfficeResponse, error) {
	office, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if office == nil {
		return nil, nil
	}
	if in.Name != nil {
		office.Name = *in.Name
	}
	if in.Address != nil {
		office.Address = *in.Address
	}
	office.UpdatedAt = time.Now()
	if err := uc.repo.Update(office); err != nil {
		return nil, err
	}
	return toOfficeResponse(office), nil
}

// List lista oficinas por empresa con paginación.
func (uc *OfficeUseCase) List(companyID string, limit, offset int) (*dto.OfficeListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OfficeResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOfficeResponse(o))
	}
	return &dto.OfficeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una oficina por ID.
func (uc *OfficeUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toOfficeResponse(o *entity.Office) *dto.OfficeResponse {
	if o == nil {
		return nil
	}
	return &dto.OfficeResponse{
		ID:        o.ID,
		CompanyID: o.CompanyID,
		Name:      o.Name,
		Address:   o.Address,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
