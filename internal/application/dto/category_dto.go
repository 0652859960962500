package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCategoryRequest entrada para crear una categoría.
// ParentID vacío crea una raíz. CategoryType solo se honra en raíces.
type CreateCategoryRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=255"`
	ParentID     string `json:"parent_id" validate:"omitempty,uuid"`
	CategoryType string `json:"category_type" validate:"omitempty,oneof=default detail deep_drill_down"`
}

// UpdateCategoryRequest entrada para editar campos directos de una categoría.
// ExpectedVersion es obligatorio: la edición es compare-and-swap.
type UpdateCategoryRequest struct {
	ExpectedVersion int     `json:"expected_version" validate:"required,min=1"`
	Name            *string `json:"name" validate:"omitempty,min=1,max=255"`
	CategoryType    *string `json:"category_type" validate:"omitempty,oneof=default detail deep_drill_down"`
	IsActive        *bool   `json:"is_active"`
}

// MoveCategoryRequest entrada para reparentar una categoría.
// NewParentID vacío la convierte en raíz. SortOrder es opcional: si viene
// vacío, la categoría se coloca al final de sus nuevos hermanos.
type MoveCategoryRequest struct {
	NewParentID string `json:"new_parent_id" validate:"omitempty,uuid"`
	SortOrder   string `json:"sort_order"`
}

// ReorderItem un par (categoría, nueva clave de orden) dentro de un lote.
type ReorderItem struct {
	ID        string `json:"id" validate:"required,uuid"`
	SortOrder string `json:"sort_order" validate:"required"`
}

// ReorderCategoriesRequest lote de reordenamiento de hermanos. Los ids que no
// resuelven se omiten en silencio (contrato tolerante a clientes desfasados).
type ReorderCategoriesRequest struct {
	Items []ReorderItem `json:"items" validate:"required,min=1,dive"`
}

// ReorderResponse resultado del lote.
type ReorderResponse struct {
	Applied int `json:"applied"`
	Skipped int `json:"skipped"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID             string    `json:"id"`
	CompanyID      string    `json:"company_id"`
	ParentID       string    `json:"parent_id,omitempty"`
	Name           string    `json:"name"`
	Depth          int       `json:"depth"`
	SortOrder      string    `json:"sort_order"`
	CategoryType   string    `json:"category_type"`
	IsActive       bool      `json:"is_active"`
	Version        int       `json:"version"`
	LastModifiedBy string    `json:"last_modified_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TreeNode nodo del bosque de categorías con conteos en cascada.
// ItemCount/TotalPrice agregan el propio nodo más todos sus descendientes.
type TreeNode struct {
	CategoryResponse
	DirectItemCount  int             `json:"direct_item_count"`
	ItemCount        int             `json:"item_count"`
	DirectTotalPrice decimal.Decimal `json:"direct_total_price"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	Children         []*TreeNode     `json:"children"`
}

// BreadcrumbEntry un eslabón de la ruta raíz→categoría.
type BreadcrumbEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DeleteCategoryResponse resultado de un borrado (con o sin cascada).
type DeleteCategoryResponse struct {
	RemovedCategories int `json:"removed_categories"`
	RemovedItemLinks  int `json:"removed_item_links"`
}
