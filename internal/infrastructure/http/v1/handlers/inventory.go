package handlers

import (
	"github.com/gin-gonic/gin"

	"instock/internal/domain/inventory"
	"instock/internal/infrastructure/http/v1/dto"
)

// InventoryHandler handles inventory resource requests.
type InventoryHandler struct {
	*BaseHandler
	service *inventory.Service
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(base *BaseHandler, service *inventory.Service) *InventoryHandler {
	return &InventoryHandler{BaseHandler: base, service: service}
}

// List handles GET /api/inventories.
func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, items)
}

// Get handles GET /api/inventories/:id.
func (h *InventoryHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c, "Inventory")
	if !ok {
		return
	}

	d, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, d)
}

// Create handles POST /api/inventories.
func (h *InventoryHandler) Create(c *gin.Context) {
	var req dto.CreateInventoryRequest
	if !h.BindJSON(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.Error(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromItem(created))
}

// Update handles PUT /api/inventories/:id.
func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c, "Inventory")
	if !ok {
		return
	}

	var req dto.UpdateInventoryRequest
	if !h.BindJSON(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.Error(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.ToEntity())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromItem(updated))
}

// Delete handles DELETE /api/inventories/:id.
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "Inventory")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
