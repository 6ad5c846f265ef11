package warehouse

import "context"

// Repository defines the interface for warehouse persistence.
type Repository interface {
	// List returns all warehouses ordered by id.
	List(ctx context.Context) ([]Warehouse, error)

	// GetByID retrieves a warehouse, returning a not-found error when absent.
	GetByID(ctx context.Context, id int64) (*Warehouse, error)

	// Create inserts the warehouse and sets its generated ID.
	Create(ctx context.Context, w *Warehouse) error

	// Update replaces the business fields of the warehouse with the given id.
	// Returns a not-found error when no row was affected.
	Update(ctx context.Context, id int64, w *Warehouse) error

	// Delete removes the warehouse, returning a not-found error when absent.
	Delete(ctx context.Context, id int64) error

	// Exists reports whether a warehouse with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// ListItems returns the inventory items stored in the warehouse,
	// joined against the warehouse table.
	ListItems(ctx context.Context, warehouseID int64) ([]ItemSummary, error)
}
