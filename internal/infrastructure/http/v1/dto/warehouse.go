// Package dto defines typed request and response bodies for API v1.
package dto

import "instock/internal/domain/warehouse"

// --- Request DTOs ---

// CreateWarehouseRequest is the request body for creating a warehouse.
// All eight fields are required; presence and format are validated in
// the domain layer so create and update share one routine.
type CreateWarehouseRequest struct {
	WarehouseName   string `json:"warehouse_name"`
	Address         string `json:"address"`
	City            string `json:"city"`
	Country         string `json:"country"`
	ContactName     string `json:"contact_name"`
	ContactPosition string `json:"contact_position"`
	ContactPhone    string `json:"contact_phone"`
	ContactEmail    string `json:"contact_email"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateWarehouseRequest) ToEntity() *warehouse.Warehouse {
	return &warehouse.Warehouse{
		WarehouseName:   r.WarehouseName,
		Address:         r.Address,
		City:            r.City,
		Country:         r.Country,
		ContactName:     r.ContactName,
		ContactPosition: r.ContactPosition,
		ContactPhone:    r.ContactPhone,
		ContactEmail:    r.ContactEmail,
	}
}

// UpdateWarehouseRequest is the request body for updating a warehouse.
// Update is a full replace of the business fields.
type UpdateWarehouseRequest = CreateWarehouseRequest

// --- Response DTOs ---

// WarehouseResponse is the response body for a warehouse.
type WarehouseResponse struct {
	ID              int64  `json:"id"`
	WarehouseName   string `json:"warehouse_name"`
	Address         string `json:"address"`
	City            string `json:"city"`
	Country         string `json:"country"`
	ContactName     string `json:"contact_name"`
	ContactPosition string `json:"contact_position"`
	ContactPhone    string `json:"contact_phone"`
	ContactEmail    string `json:"contact_email"`
}

// UpdatedWarehouseResponse is the fixed projection returned by update:
// the business fields without the id.
type UpdatedWarehouseResponse struct {
	WarehouseName   string `json:"warehouse_name"`
	Address         string `json:"address"`
	City            string `json:"city"`
	Country         string `json:"country"`
	ContactName     string `json:"contact_name"`
	ContactPosition string `json:"contact_position"`
	ContactPhone    string `json:"contact_phone"`
	ContactEmail    string `json:"contact_email"`
}

// FromWarehouse creates response DTO from domain entity.
func FromWarehouse(w *warehouse.Warehouse) *WarehouseResponse {
	return &WarehouseResponse{
		ID:              w.ID,
		WarehouseName:   w.WarehouseName,
		Address:         w.Address,
		City:            w.City,
		Country:         w.Country,
		ContactName:     w.ContactName,
		ContactPosition: w.ContactPosition,
		ContactPhone:    w.ContactPhone,
		ContactEmail:    w.ContactEmail,
	}
}

// FromUpdatedWarehouse creates the id-less update projection.
func FromUpdatedWarehouse(w *warehouse.Warehouse) *UpdatedWarehouseResponse {
	return &UpdatedWarehouseResponse{
		WarehouseName:   w.WarehouseName,
		Address:         w.Address,
		City:            w.City,
		Country:         w.Country,
		ContactName:     w.ContactName,
		ContactPosition: w.ContactPosition,
		ContactPhone:    w.ContactPhone,
		ContactEmail:    w.ContactEmail,
	}
}

// FromWarehouses maps a list of warehouses to response DTOs.
func FromWarehouses(ws []warehouse.Warehouse) []*WarehouseResponse {
	out := make([]*WarehouseResponse, 0, len(ws))
	for i := range ws {
		out = append(out, FromWarehouse(&ws[i]))
	}
	return out
}
