package entity

import "time"

// Tipos de categoría raíz. Solo tienen significado cuando Depth == 0;
// para subcategorías siempre se persiste CategoryTypeDefault.
const (
	CategoryTypeDefault       = "default"
	CategoryTypeDetail        = "detail"
	CategoryTypeDeepDrillDown = "deep_drill_down"
)

// MaxCategoryDepth cota defensiva para recorridos de ancestros/descendientes.
// Superarla se trata como árbol corrupto, nunca como bucle infinito.
const MaxCategoryDepth = 1000

// Category representa un nodo del árbol de categorías de la guía de precios.
// El árbol es por empresa (multi-tenant): ninguna consulta cruza CompanyID.
type Category struct {
	ID             string
	CompanyID      string
	ParentID       string // vacío si es raíz
	Name           string // 1–255, único entre hermanos activos (case-sensitive)
	Depth          int    // siempre parent.Depth+1; 0 para raíces
	SortOrder      string // clave fraccional opaca (pkg/orderkey); orden lexicográfico
	CategoryType   string // ver constantes CategoryType*; solo relevante en raíces
	IsActive       bool
	Version        int // concurrencia optimista: se incrementa en cada escritura
	LastModifiedBy string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsRoot indica si la categoría es raíz del árbol.
func (c *Category) IsRoot() bool {
	return c.ParentID == ""
}

// ValidCategoryType verifica que el tipo sea uno de los conocidos.
func ValidCategoryType(t string) bool {
	switch t {
	case CategoryTypeDefault, CategoryTypeDetail, CategoryTypeDeepDrillDown:
		return true
	}
	return false
}
