package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"instock/internal/core/apperror"
	"instock/internal/domain/inventory"
)

const inventoryTable = "inventories"

// detailColumns is the joined read projection: the item row plus the
// owning warehouse's name.
var detailColumns = []string{
	"inventories.id",
	"warehouses.warehouse_name",
	"inventories.item_name",
	"inventories.description",
	"inventories.category",
	"inventories.status",
	"inventories.quantity",
}

// InventoryRepo implements inventory.Repository on PostgreSQL.
type InventoryRepo struct {
	db   Querier
	cols []string
}

// NewInventoryRepo creates a new inventory repository.
func NewInventoryRepo(db Querier) *InventoryRepo {
	return &InventoryRepo{
		db:   db,
		cols: ExtractDBColumns[inventory.Item](),
	}
}

func (r *InventoryRepo) mutationMap(it *inventory.Item) map[string]any {
	data := StructToMap(it)
	delete(data, "id")
	return data
}

// detailSelect builds the inner join against warehouses. Items whose
// warehouse is missing are excluded by construction.
func (r *InventoryRepo) detailSelect() squirrel.SelectBuilder {
	return builder().
		Select(detailColumns...).
		From(inventoryTable).
		Join("warehouses ON warehouses.id = inventories.warehouse_id")
}

// List returns all items joined with their warehouse name.
func (r *InventoryRepo) List(ctx context.Context) ([]inventory.Detail, error) {
	ctx, span := startSpan(ctx, "select", inventoryTable)
	defer span.End()

	sql, args, err := r.detailSelect().
		OrderBy("inventories.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows := []inventory.Detail{}
	if err := pgxscan.Select(ctx, r.db, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list inventories: %w", err)
	}
	return rows, nil
}

// GetByID retrieves the joined projection of one item.
func (r *InventoryRepo) GetByID(ctx context.Context, id int64) (*inventory.Detail, error) {
	ctx, span := startSpan(ctx, "select", inventoryTable)
	defer span.End()

	sql, args, err := r.detailSelect().
		Where(squirrel.Eq{"inventories.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var d inventory.Detail
	if err := pgxscan.Get(ctx, r.db, &d, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("Inventory", id)
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &d, nil
}

// GetItem retrieves the stored row of one item without the join.
func (r *InventoryRepo) GetItem(ctx context.Context, id int64) (*inventory.Item, error) {
	ctx, span := startSpan(ctx, "select", inventoryTable)
	defer span.End()

	sql, args, err := builder().
		Select(r.cols...).
		From(inventoryTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var it inventory.Item
	if err := pgxscan.Get(ctx, r.db, &it, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("Inventory", id)
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &it, nil
}

// Create inserts the item and fills in the generated id.
func (r *InventoryRepo) Create(ctx context.Context, it *inventory.Item) error {
	ctx, span := startSpan(ctx, "insert", inventoryTable)
	defer span.End()

	sql, args, err := builder().
		Insert(inventoryTable).
		SetMap(r.mutationMap(it)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&it.ID); err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// Update replaces the business fields of the item with the given id.
func (r *InventoryRepo) Update(ctx context.Context, id int64, it *inventory.Item) error {
	ctx, span := startSpan(ctx, "update", inventoryTable)
	defer span.End()

	sql, args, err := builder().
		Update(inventoryTable).
		SetMap(r.mutationMap(it)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("Inventory", id)
	}
	return nil
}

// Delete removes the item with the given id.
func (r *InventoryRepo) Delete(ctx context.Context, id int64) error {
	ctx, span := startSpan(ctx, "delete", inventoryTable)
	defer span.End()

	sql, args, err := builder().
		Delete(inventoryTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("Inventory", id)
	}
	return nil
}
