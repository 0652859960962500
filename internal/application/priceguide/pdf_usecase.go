package priceguide

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// CatalogPDFUseCase genera el catálogo imprimible de la guía de precios:
// el árbol completo con conteos de ítems y precios acumulados por categoría.
type CatalogPDFUseCase struct {
	categoryUC  *CategoryUseCase
	companyRepo repository.CompanyRepository
	generator   CatalogPDFGenerator
}

// NewCatalogPDFUseCase construye el caso de uso.
func NewCatalogPDFUseCase(categoryUC *CategoryUseCase, companyRepo repository.CompanyRepository, generator CatalogPDFGenerator) *CatalogPDFUseCase {
	return &CatalogPDFUseCase{categoryUC: categoryUC, companyRepo: companyRepo, generator: generator}
}

// Export genera el PDF del catálogo activo de la empresa.
func (uc *CatalogPDFUseCase) Export(ctx context.Context, companyID string) ([]byte, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	forest, err := uc.categoryUC.Tree(ctx, companyID, repository.CategoryFilter{})
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateCatalog(ctx, company, forest)
}
