package priceguide

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Toda mutación del árbol (create, update,
// move, reorder, delete) corre completa dentro de una transacción: las
// invariantes se revalidan contra datos leídos DENTRO de ella, nunca contra
// un snapshot previo, y un fallo a mitad de cascada revierte todo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		catRepo repository.CategoryRepository,
		itemRepo repository.ItemLinkRepository,
		assignRepo repository.AssignmentRepository,
	) error) error
}

// AuditSink recibe eventos estructurados de auditoría. Es fire-and-forget:
// las implementaciones no devuelven error y jamás revierten la transacción
// de dominio.
type AuditSink interface {
	CategoryCreated(ctx context.Context, actor string, category *entity.Category)
	CategoryUpdated(ctx context.Context, actor string, before, after *entity.Category)
	CategoryMoved(ctx context.Context, actor string, before, after *entity.Category)
	CategoryDeleted(ctx context.Context, actor string, category *entity.Category, removedCategories, removedLinks int)
	CategoriesReordered(ctx context.Context, actor, companyID string, applied, skipped int)
	OfficesAssigned(ctx context.Context, actor, categoryID string, created int)
	OfficeUnassigned(ctx context.Context, actor, categoryID, officeID string)
}

// CatalogPDFGenerator genera la representación imprimible de la guía de
// precios (catálogo de categorías con conteos y precios).
type CatalogPDFGenerator interface {
	GenerateCatalog(ctx context.Context, company *entity.Company, forest []*dto.TreeNode) ([]byte, error)
}
