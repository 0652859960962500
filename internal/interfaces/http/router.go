package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Cotizador-api/internal/application/auth"
	"github.com/jhoicas/Cotizador-api/internal/application/priceguide"
	"github.com/jhoicas/Cotizador-api/internal/application/usecase"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC    *usecase.CompanyUseCase
	OfficeUC     *usecase.OfficeUseCase
	CategoryUC   *priceguide.CategoryUseCase
	AssignmentUC *priceguide.AssignmentUseCase
	CatalogPDFUC *priceguide.CatalogPDFUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Las mutaciones estructurales del árbol quedan para admin y gerente;
	// lecturas y reorder para cualquier usuario autenticado.
	manageTree := RequireRole(entity.RoleAdmin, entity.RoleGerente)

	// Categorías de la guía de precios (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.AssignmentUC, deps.CatalogPDFUC)
	categories.Get("/tree", categoryHandler.Tree)
	categories.Get("/catalog.pdf", categoryHandler.ExportCatalog)
	categories.Post("/reorder", categoryHandler.Reorder)
	categories.Post("/", manageTree, categoryHandler.Create)
	categories.Get("/:id/breadcrumb", categoryHandler.Breadcrumb)
	categories.Put("/:id", manageTree, categoryHandler.Update)
	categories.Post("/:id/move", manageTree, categoryHandler.Move)
	categories.Delete("/:id", manageTree, categoryHandler.Delete)
	categories.Get("/:id/offices", categoryHandler.ListOffices)
	categories.Post("/:id/offices", manageTree, categoryHandler.AssignOffices)
	categories.Delete("/:id/offices/:officeId", manageTree, categoryHandler.UnassignOffice)

	// Oficinas (protegido)
	offices := protected.Group("/offices")
	officeHandler := NewOfficeHandler(deps.OfficeUC)
	offices.Post("/", manageTree, officeHandler.Create)
	offices.Get("/", officeHandler.List)
	offices.Get("/:id", officeHandler.GetByID)
	offices.Put("/:id", manageTree, officeHandler.Update)
	offices.Delete("/:id", manageTree, officeHandler.Delete)
}
