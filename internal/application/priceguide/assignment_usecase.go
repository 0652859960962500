package priceguide

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// AssignmentUseCase maneja la visibilidad de raíces del catálogo por oficina.
// Es independiente de la mecánica del árbol: solo comparte la restricción de
// que la categoría debe ser raíz.
type AssignmentUseCase struct {
	catRepo    repository.CategoryRepository
	officeRepo repository.OfficeRepository
	assignRepo repository.AssignmentRepository
	audit      AuditSink
}

// NewAssignmentUseCase construye el caso de uso.
func NewAssignmentUseCase(
	catRepo repository.CategoryRepository,
	officeRepo repository.OfficeRepository,
	assignRepo repository.AssignmentRepository,
	audit AuditSink,
) *AssignmentUseCase {
	return &AssignmentUseCase{
		catRepo:    catRepo,
		officeRepo: officeRepo,
		assignRepo: assignRepo,
		audit:      audit,
	}
}

// Assign asigna una categoría raíz a un lote de oficinas de la misma empresa.
// Idempotente: los pares existentes se dejan intactos; devuelve cuántos se
// crearon. Rechaza ErrNotRootCategory para subcategorías y ErrNotFound si
// alguna oficina no pertenece a la empresa.
func (uc *AssignmentUseCase) Assign(ctx context.Context, companyID, userID, categoryID string, in dto.AssignOfficesRequest) (*dto.AssignOfficesResponse, error) {
	if len(in.OfficeIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}

	cat, err := uc.catRepo.GetByID(companyID, categoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	if !cat.IsRoot() {
		return nil, domain.ErrNotRootCategory
	}

	unique := dedupe(in.OfficeIDs)
	offices, err := uc.officeRepo.FindAll(companyID, unique)
	if err != nil {
		return nil, err
	}
	if len(offices) != len(unique) {
		return nil, domain.ErrNotFound
	}

	created, err := uc.assignRepo.InsertMissing(categoryID, unique)
	if err != nil {
		return nil, err
	}

	uc.audit.OfficesAssigned(ctx, userID, categoryID, created)
	return &dto.AssignOfficesResponse{Created: created}, nil
}

// Unassign elimina el par (categoría, oficina). ErrNotFound si no existe.
// No tiene efectos en cascada sobre el árbol.
func (uc *AssignmentUseCase) Unassign(ctx context.Context, companyID, userID, categoryID, officeID string) error {
	cat, err := uc.catRepo.GetByID(companyID, categoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrNotFound
	}

	removed, err := uc.assignRepo.Delete(categoryID, officeID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}

	uc.audit.OfficeUnassigned(ctx, userID, categoryID, officeID)
	return nil
}

// ListOffices devuelve las oficinas asignadas a una categoría raíz.
func (uc *AssignmentUseCase) ListOffices(_ context.Context, companyID, categoryID string) ([]dto.OfficeResponse, error) {
	cat, err := uc.catRepo.GetByID(companyID, categoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}

	ids, err := uc.assignRepo.ListOfficeIDs(categoryID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []dto.OfficeResponse{}, nil
	}
	offices, err := uc.officeRepo.FindAll(companyID, ids)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OfficeResponse, 0, len(offices))
	for _, o := range offices {
		out = append(out, dto.OfficeResponse{
			ID:        o.ID,
			CompanyID: o.CompanyID,
			Name:      o.Name,
			Address:   o.Address,
			CreatedAt: o.CreatedAt,
			UpdatedAt: o.UpdatedAt,
		})
	}
	return out, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
