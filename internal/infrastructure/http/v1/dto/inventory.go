package dto

import (
	"instock/internal/core/apperror"
	"instock/internal/domain/inventory"
	"instock/internal/domain/warehouse"
)

// --- Request DTOs ---

// CreateInventoryRequest is the request body for creating an inventory item.
// Quantity and warehouse_id are pointers so that an explicit 0 is
// distinguishable from a missing key.
type CreateInventoryRequest struct {
	WarehouseID *int64 `json:"warehouse_id"`
	ItemName    string `json:"item_name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	Quantity    *int64 `json:"quantity"`
}

// Validate checks that every required field is present.
func (r *CreateInventoryRequest) Validate() error {
	if r.ItemName == "" || r.Description == "" || r.Category == "" || r.Status == "" ||
		r.Quantity == nil || r.WarehouseID == nil {
		return apperror.NewValidation(warehouse.MsgRequiredFields)
	}
	return nil
}

// ToEntity converts DTO to domain entity. Call Validate first.
func (r *CreateInventoryRequest) ToEntity() *inventory.Item {
	return &inventory.Item{
		WarehouseID: *r.WarehouseID,
		ItemName:    r.ItemName,
		Description: r.Description,
		Category:    r.Category,
		Status:      r.Status,
		Quantity:    *r.Quantity,
	}
}

// UpdateInventoryRequest is the request body for updating an inventory
// item. Update is a full replace of the business fields.
type UpdateInventoryRequest = CreateInventoryRequest

// --- Response DTOs ---

// InventoryResponse is the fixed projection returned by create and update.
type InventoryResponse struct {
	ID          int64  `json:"id"`
	ItemName    string `json:"item_name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	Quantity    int64  `json:"quantity"`
	WarehouseID int64  `json:"warehouse_id"`
}

// FromItem creates response DTO from a stored item.
func FromItem(it *inventory.Item) *InventoryResponse {
	return &InventoryResponse{
		ID:          it.ID,
		ItemName:    it.ItemName,
		Description: it.Description,
		Category:    it.Category,
		Status:      it.Status,
		Quantity:    it.Quantity,
		WarehouseID: it.WarehouseID,
	}
}
