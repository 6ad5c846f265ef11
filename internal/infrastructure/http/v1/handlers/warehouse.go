package handlers

import (
	"github.com/gin-gonic/gin"

	"instock/internal/domain/warehouse"
	"instock/internal/infrastructure/http/v1/dto"
)

// WarehouseHandler handles warehouse resource requests.
type WarehouseHandler struct {
	*BaseHandler
	service *warehouse.Service
}

// NewWarehouseHandler creates a new warehouse handler.
func NewWarehouseHandler(base *BaseHandler, service *warehouse.Service) *WarehouseHandler {
	return &WarehouseHandler{BaseHandler: base, service: service}
}

// List handles GET /api/warehouses.
func (h *WarehouseHandler) List(c *gin.Context) {
	warehouses, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromWarehouses(warehouses))
}

// Get handles GET /api/warehouses/:id.
func (h *WarehouseHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c, "Warehouse")
	if !ok {
		return
	}

	w, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromWarehouse(w))
}

// Create handles POST /api/warehouses.
func (h *WarehouseHandler) Create(c *gin.Context) {
	var req dto.CreateWarehouseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromWarehouse(created))
}

// Update handles PUT /api/warehouses/:id. The response carries the
// business fields without the id.
func (h *WarehouseHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c, "Warehouse")
	if !ok {
		return
	}

	var req dto.UpdateWarehouseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.ToEntity())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromUpdatedWarehouse(updated))
}

// Delete handles DELETE /api/warehouses/:id.
func (h *WarehouseHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "Warehouse")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// ListInventories handles GET /api/warehouses/:id/inventories.
// A warehouse with no items yields 200 and an empty array.
func (h *WarehouseHandler) ListInventories(c *gin.Context) {
	id, ok := h.ParseID(c, "Warehouse")
	if !ok {
		return
	}

	items, err := h.service.Items(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, items)
}
