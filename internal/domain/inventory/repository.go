package inventory

import "context"

// Repository defines the interface for inventory persistence.
type Repository interface {
	// List returns all items joined with their warehouse name, ordered by id.
	List(ctx context.Context) ([]Detail, error)

	// GetByID retrieves the joined projection of one item, returning a
	// not-found error when absent.
	GetByID(ctx context.Context, id int64) (*Detail, error)

	// GetItem retrieves the stored row of one item without the join.
	GetItem(ctx context.Context, id int64) (*Item, error)

	// Create inserts the item and sets its generated ID.
	Create(ctx context.Context, it *Item) error

	// Update replaces the business fields of the item with the given id.
	// Returns a not-found error when no row was affected.
	Update(ctx context.Context, id int64, it *Item) error

	// Delete removes the item, returning a not-found error when absent.
	Delete(ctx context.Context, id int64) error
}

// Warehouses is the subset of the warehouse repository needed to check
// referential integrity of warehouse_id.
type Warehouses interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
