package dto

import "time"

// CreateOfficeRequest entrada para crear una oficina.
type CreateOfficeRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address"`
}

// UpdateOfficeRequest entrada para actualizar una oficina.
type UpdateOfficeRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address"`
}

// OfficeResponse salida de una oficina.
type OfficeResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OfficeListResponse lista paginada de oficinas.
type OfficeListResponse struct {
	Items []OfficeResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// AssignOfficesRequest oficinas a asignar a una categoría raíz.
type AssignOfficesRequest struct {
	OfficeIDs []string `json:"office_ids" validate:"required,min=1,dive,uuid"`
}

// AssignOfficesResponse resultado de la asignación idempotente.
type AssignOfficesResponse struct {
	Created int `json:"created"`
}
