package inventory

import (
	"context"
	"fmt"

	"instock/internal/core/apperror"
	"instock/internal/domain/audit"
	"instock/pkg/logger"
)

const entityType = "inventory"

// Service provides business logic for the inventory resource.
type Service struct {
	repo       Repository
	warehouses Warehouses
	auditor    audit.Recorder
}

// NewService creates a new inventory service.
func NewService(repo Repository, warehouses Warehouses, auditor audit.Recorder) *Service {
	return &Service{repo: repo, warehouses: warehouses, auditor: auditor}
}

// List returns all inventory items with their warehouse name joined in.
func (s *Service) List(ctx context.Context) ([]Detail, error) {
	return s.repo.List(ctx)
}

// Get returns the joined projection of a single item.
func (s *Service) Get(ctx context.Context, id int64) (*Detail, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the referenced warehouse and the quantity, then
// inserts the item. The warehouse check runs before any write.
func (s *Service) Create(ctx context.Context, it *Item) (*Item, error) {
	ok, err := s.warehouses.Exists(ctx, it.WarehouseID)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Missing warehouse on create is reported as not found.
		return nil, apperror.NewNotFound("Warehouse", it.WarehouseID)
	}

	if err := validateQuantity(it.Quantity); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}

	s.record(ctx, it.ID, audit.ActionCreate, it)
	return it, nil
}

// Update re-validates the referenced warehouse, replaces the item's
// fields and returns the re-fetched record.
func (s *Service) Update(ctx context.Context, id int64, it *Item) (*Item, error) {
	ok, err := s.warehouses.Exists(ctx, it.WarehouseID)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Unlike create, a missing warehouse on update is a client error.
		return nil, apperror.NewValidation(
			fmt.Sprintf("Warehouse with ID %d not found", it.WarehouseID),
		).WithDetail("field", "warehouse_id")
	}

	if err := validateQuantity(it.Quantity); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, it); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	s.record(ctx, id, audit.ActionUpdate, updated)
	return updated, nil
}

// Delete removes an inventory item by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.record(ctx, id, audit.ActionDelete, nil)
	return nil
}

// validateQuantity rejects negative quantities. Zero is a valid stock level.
func validateQuantity(q int64) error {
	if q < 0 {
		return apperror.NewValidation("Quantity must be a non-negative number").
			WithDetail("field", "quantity")
	}
	return nil
}

// record writes an audit entry. Audit is best-effort and never fails the request.
func (s *Service) record(ctx context.Context, id int64, action audit.Action, changes any) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Record(ctx, entityType, id, action, changes); err != nil {
		logger.Warn(ctx, "audit record failed",
			"entity_type", entityType,
			"entity_id", id,
			"action", action,
			"error", err,
		)
	}
}
