package warehouse

import (
	"context"

	"instock/internal/core/apperror"
	"instock/internal/domain/audit"
	"instock/pkg/logger"
)

const entityType = "warehouse"

// Service provides business logic for the warehouse resource.
type Service struct {
	repo    Repository
	auditor audit.Recorder
}

// NewService creates a new warehouse service.
func NewService(repo Repository, auditor audit.Recorder) *Service {
	return &Service{repo: repo, auditor: auditor}
}

// List returns all warehouses.
func (s *Service) List(ctx context.Context) ([]Warehouse, error) {
	return s.repo.List(ctx)
}

// Get returns a single warehouse by id.
func (s *Service) Get(ctx context.Context, id int64) (*Warehouse, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates and persists a new warehouse.
func (s *Service) Create(ctx context.Context, w *Warehouse) (*Warehouse, error) {
	if err := s.validate(w); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, w); err != nil {
		return nil, err
	}

	s.record(ctx, w.ID, audit.ActionCreate, w)
	return w, nil
}

// Update validates the payload, replaces the business fields of the
// warehouse with the given id and returns the re-fetched record.
func (s *Service) Update(ctx context.Context, id int64, w *Warehouse) (*Warehouse, error) {
	if err := s.validate(w); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, w); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.record(ctx, id, audit.ActionUpdate, updated)
	return updated, nil
}

// Delete removes a warehouse by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.record(ctx, id, audit.ActionDelete, nil)
	return nil
}

// Items returns the inventory stored in the warehouse. An empty result
// is valid: a warehouse without items is not a not-found condition.
func (s *Service) Items(ctx context.Context, id int64) ([]ItemSummary, error) {
	return s.repo.ListItems(ctx, id)
}

// validate maps the first field violation to a client error.
func (s *Service) validate(w *Warehouse) error {
	if violations := ValidateFields(w); len(violations) > 0 {
		first := violations[0]
		return apperror.NewValidation(first.Message).WithDetail("field", first.Field)
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
