package entity

import "time"

// Office representa una oficina/sede de la empresa. Las categorías raíz de la
// guía de precios se asignan a un subconjunto de oficinas para controlar
// visibilidad del catálogo.
type Office struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CategoryOfficeAssignment relaciona una categoría RAÍZ con una oficina.
// El par (CategoryID, OfficeID) es único; la restricción de raíz la valida
// el caso de uso antes de persistir.
type CategoryOfficeAssignment struct {
	CategoryID string
	OfficeID   string
	CreatedAt  time.Time
}
