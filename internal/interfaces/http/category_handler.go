package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/application/priceguide"
	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// CategoryHandler maneja las peticiones HTTP de la guía de precios (protegido).
type CategoryHandler struct {
	uc       *priceguide.CategoryUseCase
	assignUC *priceguide.AssignmentUseCase
	pdfUC    *priceguide.CatalogPDFUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *priceguide.CategoryUseCase, assignUC *priceguide.AssignmentUseCase, pdfUC *priceguide.CatalogPDFUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc, assignUC: assignUC, pdfUC: pdfUC}
}

// categoryError traduce los errores de dominio del árbol a respuestas HTTP.
// Los errores con datos (dependientes, conflicto de versión) llevan Details
// para que el cliente reconcilie sin otra petición.
func categoryError(c *fiber.Ctx, err error) error {
	var deps *domain.DependentsError
	if errors.As(err, &deps) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "HAS_DEPENDENTS",
			Message: "la categoría tiene dependientes; use force=true para borrar en cascada",
			Details: map[string]any{"child_count": deps.ChildCount, "item_count": deps.ItemCount},
		})
	}
	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "CONCURRENT_MODIFICATION",
			Message: "otro usuario modificó la categoría; recargue y reintente",
			Details: map[string]any{"current_version": conflict.CurrentVersion, "last_modified_by": conflict.LastModifiedBy},
		})
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
	case errors.Is(err, domain.ErrParentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PARENT_NOT_FOUND", Message: "la categoría padre no existe"})
	case errors.Is(err, domain.ErrDuplicateName):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_NAME", Message: "ya existe un hermano activo con ese nombre"})
	case errors.Is(err, domain.ErrSelfParent):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SELF_PARENT", Message: "una categoría no puede ser su propio padre"})
	case errors.Is(err, domain.ErrCircularReference):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CIRCULAR_REFERENCE", Message: "el movimiento crearía un ciclo en el árbol"})
	case errors.Is(err, domain.ErrNotRootCategory):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NOT_ROOT_CATEGORY", Message: "la operación solo aplica a categorías raíz"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case errors.Is(err, domain.ErrTreeCorrupted):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "TREE_CORRUPTED", Message: "estructura del árbol inconsistente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), companyID, GetUserID(c), in)
	if err != nil {
		return categoryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Tree godoc
// @Summary      Árbol de categorías con conteos en cascada
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        include_inactive  query  bool    false  "Incluir categorías inactivas"
// @Param        category_type     query  string  false  "Filtrar por tipo"
// @Success      200  {array}  dto.TreeNode
// @Router       /api/categories/tree [get]
func (h *CategoryHandler) Tree(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	filter := repository.CategoryFilter{
		IncludeInactive: c.QueryBool("include_inactive", false),
		CategoryType:    c.Query("category_type"),
	}
	out, err := h.uc.Tree(c.Context(), companyID, filter)
	if err != nil {
		return categoryError(c, err)
	}
	return c.JSON(out)
}

// Breadcrumb godoc
// @Summary      Ruta raíz→categoría
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {array}  dto.BreadcrumbEntry
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/breadcrumb [get]
func (h *CategoryHandler) Breadcrumb(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.uc.Breadcrumb(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return categoryError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar categoría (concurrencia optimista)
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Cambios + expected_version"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ExpectedVersion < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "expected_version es requerido"})
	}
	out, err := h.uc.Update(c.Context(), companyID, GetUserID(c), c.Params("id"), in)
	if err != nil {
		return categoryError(c, err)
	}
	return c.JSON(out)
}

// Move godoc
// @Summary      Mover categoría a otro padre
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.MoveCategoryRequest  true  "Nuevo padre (vacío = raíz)"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/move [post]
func (h *CategoryHandler) Move(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.MoveCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Move(c.Context(), companyID, GetUserID(c), c.Params("id"), in)
	if err != nil {
		return categoryError(c, err)
	}
	return c.JSON(out)
}

// Reorder godoc
// @Summary      Reordenar hermanos por lote
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReorderCategoriesRequest  true  "Pares (id, sort_order)"
// @Success      200   {object}  dto.ReorderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories/reorder [post]
func (h *CategoryHandler) Reorder(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.ReorderCategoriesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Reorder(c.Context(), companyID, GetUserID(c), in)
	if err != nil {
		return categoryError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar categoría (force=true borra el subárbol y los vínculos)
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID de la categoría"
// @Param        force  query  bool    false  "Borrado en cascada"
// @Success      200  {object}  dto.DeleteCategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	force := c.QueryBool("force", false)
	out, err := h.uc.Delete(c.Context(), companyID, GetUserID(c), c.Params("id"), force)
	if err != nil {
		return categoryError(c, err)
	}
	return c.JSON(out)
}

// AssignOffices godoc
// @Summary      Asignar oficinas a una categoría raíz
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría raíz"
// @Param        body  body  dto.AssignOfficesRequest  true  "IDs de oficinas"
// @Success      200   {object}  dto.AssignOfficesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/offices [post]
func (h *CategoryHandler) AssignOffices(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.AssignOfficesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.assignUC.Assign(c.Context(), companyID, GetUserID(c), c.Params("id"), in)
	if err != nil {
		return categoryError(c, err)
	}
	return c.JSON(out)
}

// ListOffices godoc
// @Summary      Oficinas asignadas a una categoría raíz
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {array}  dto.OfficeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/offices [get]
func (h *CategoryHandler) ListOffices(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.assignUC.ListOffices(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return categoryError(c, err)
	}
	return c.JSON(out)
}

// UnassignOffice godoc
// @Summary      Quitar una oficina de una categoría raíz
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id        path  string  true  "ID de la categoría"
// @Param        officeId  path  string  true  "ID de la oficina"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/offices/{officeId} [delete]
func (h *CategoryHandler) UnassignOffice(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	if err := h.assignUC.Unassign(c.Context(), companyID, GetUserID(c), c.Params("id"), c.Params("officeId")); err != nil {
		return categoryError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportCatalog godoc
// @Summary      Exportar catálogo de la guía de precios en PDF
// @Tags         categories
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/categories/catalog.pdf [get]
func (h *CategoryHandler) ExportCatalog(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	pdfBytes, err := h.pdfUC.Export(c.Context(), companyID)
	if err != nil {
		return categoryError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="guia-de-precios.pdf"`)
	return c.Send(pdfBytes)
}
