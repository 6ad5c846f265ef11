package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"instock/internal/core/apperror"
	"instock/internal/domain/warehouse"
)

const warehouseTable = "warehouses"

// WarehouseRepo implements warehouse.Repository on PostgreSQL.
type WarehouseRepo struct {
	db   Querier
	cols []string
}

// NewWarehouseRepo creates a new warehouse repository.
func NewWarehouseRepo(db Querier) *WarehouseRepo {
	return &WarehouseRepo{
		db:   db,
		cols: ExtractDBColumns[warehouse.Warehouse](),
	}
}

// mutationMap returns the column map for inserts and updates.
// The id column is never written by the application.
func (r *WarehouseRepo) mutationMap(w *warehouse.Warehouse) map[string]any {
	data := StructToMap(w)
	delete(data, "id")
	return data
}

// List returns all warehouses ordered by id.
func (r *WarehouseRepo) List(ctx context.Context) ([]warehouse.Warehouse, error) {
	ctx, span := startSpan(ctx, "select", warehouseTable)
	defer span.End()

	sql, args, err := builder().
		Select(r.cols...).
		From(warehouseTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows := []warehouse.Warehouse{}
	if err := pgxscan.Select(ctx, r.db, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	return rows, nil
}

// GetByID retrieves a single warehouse.
func (r *WarehouseRepo) GetByID(ctx context.Context, id int64) (*warehouse.Warehouse, error) {
	ctx, span := startSpan(ctx, "select", warehouseTable)
	defer span.End()

	sql, args, err := builder().
		Select(r.cols...).
		From(warehouseTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var w warehouse.Warehouse
	if err := pgxscan.Get(ctx, r.db, &w, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("Warehouse", id)
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// Create inserts the warehouse and fills in the generated id.
func (r *WarehouseRepo) Create(ctx context.Context, w *warehouse.Warehouse) error {
	ctx, span := startSpan(ctx, "insert", warehouseTable)
	defer span.End()

	sql, args, err := builder().
		Insert(warehouseTable).
		SetMap(r.mutationMap(w)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&w.ID); err != nil {
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// Update replaces the business fields of the warehouse with the given id.
func (r *WarehouseRepo) Update(ctx context.Context, id int64, w *warehouse.Warehouse) error {
	ctx, span := startSpan(ctx, "update", warehouseTable)
	defer span.End()

	sql, args, err := builder().
		Update(warehouseTable).
		SetMap(r.mutationMap(w)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("Warehouse", id)
	}
	return nil
}

// Delete removes the warehouse with the given id.
func (r *WarehouseRepo) Delete(ctx context.Context, id int64) error {
	ctx, span := startSpan(ctx, "delete", warehouseTable)
	defer span.End()

	sql, args, err := builder().
		Delete(warehouseTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("Warehouse", id)
	}
	return nil
}

// Exists reports whether a warehouse with the given id exists.
func (r *WarehouseRepo) Exists(ctx context.Context, id int64) (bool, error) {
	ctx, span := startSpan(ctx, "select", warehouseTable)
	defer span.End()

	sql, args, err := builder().
		Select("1").
		From(warehouseTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var one int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check warehouse exists: %w", err)
	}
	return true, nil
}

// ListItems returns the inventory stored in the warehouse, inner-joined
// against the warehouse table.
func (r *WarehouseRepo) ListItems(ctx context.Context, warehouseID int64) ([]warehouse.ItemSummary, error) {
	ctx, span := startSpan(ctx, "select", inventoryTable)
	defer span.End()

	sql, args, err := builder().
		Select(
			"inventories.id",
			"inventories.item_name",
			"inventories.category",
			"inventories.status",
			"inventories.quantity",
		).
		From(inventoryTable).
		Join("warehouses ON warehouses.id = inventories.warehouse_id").
		Where(squirrel.Eq{"inventories.warehouse_id": warehouseID}).
		OrderBy("inventories.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	items := []warehouse.ItemSummary{}
	if err := pgxscan.Select(ctx, r.db, &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list warehouse items: %w", err)
	}
	return items, nil
}
