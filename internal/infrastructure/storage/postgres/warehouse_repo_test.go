package postgres

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"instock/internal/core/apperror"
	"instock/internal/domain/warehouse"
)

const warehouseCols = "id, warehouse_name, address, city, country, contact_name, contact_position, contact_phone, contact_email"

func newWarehouseMock(t *testing.T) (pgxmock.PgxPoolIface, *WarehouseRepo) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewWarehouseRepo(mock)
}

func warehouseRow(id int64, name string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "warehouse_name", "address", "city", "country",
		"contact_name", "contact_position", "contact_phone", "contact_email",
	}).AddRow(id, name, "503 Broadway", "New York", "USA",
		"Parmin Aujla", "Warehouse Manager", "+1 (646) 123-1234", "paujla@instock.com")
}

func TestWarehouseRepoList(t *testing.T) {
	mock, repo := newWarehouseMock(t)

	mock.ExpectQuery("SELECT " + warehouseCols + " FROM warehouses ORDER BY id").
		WillReturnRows(warehouseRow(1, "Manhattan"))

	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Manhattan", rows[0].WarehouseName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWarehouseRepoList_Empty(t *testing.T) {
	mock, repo := newWarehouseMock(t)

	mock.ExpectQuery("SELECT " + warehouseCols + " FROM warehouses ORDER BY id").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "warehouse_name", "address", "city", "country",
			"contact_name", "contact_position", "contact_phone", "contact_email",
		}))

	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestWarehouseRepoGetByID(t *testing.T) {
	mock, repo := newWarehouseMock(t)

	mock.ExpectQuery("SELECT "+warehouseCols+" FROM warehouses WHERE id = $1 LIMIT 1").
		WithArgs(int64(1)).
		WillReturnRows(warehouseRow(1, "Manhattan"))

	w, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), w.ID)
	assert.Equal(t, "paujla@instock.com", w.ContactEmail)
}

func TestWarehouseRepoGetByID_NotFound(t *testing.T) {
	mock, repo := newWarehouseMock(t)

	mock.ExpectQuery("SELECT "+warehouseCols+" FROM warehouses WHERE id = $1 LIMIT 1").
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "warehouse_name", "address", "city", "country",
			"contact_name", "contact_position", "contact_phone", "contact_email",
		}))

	_, err := repo.GetByID(context.Background(), 9)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, "Warehouse with ID 9 not found", appErr.Message)
}

func TestWarehouseRepoCreate(t *testing.T) {
	mock, repo := newWarehouseMock(t)

	// SetMap orders columns alphabetically.
	mock.ExpectQuery("INSERT INTO warehouses (address,city,contact_email,contact_name,contact_phone,contact_position,country,warehouse_name) VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id").
		WithArgs("503 Broadway", "New York", "paujla@instock.com", "Parmin Aujla",
			"+1 (646) 123-1234", "Warehouse Manager", "USA", "Manhattan").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	w := &warehouse.Warehouse{
		WarehouseName:   "Manhattan",
		Address:         "503 Broadway",
		City:            "New York",
		Country:         "USA",
		ContactName:     "Parmin Aujla",
		ContactPosition: "Warehouse Manager",
		ContactPhone:    "+1 (646) 123-1234",
		ContactEmail:    "paujla@instock.com",
	}

	require.NoError(t, repo.Create(context.Background(), w))
	assert.Equal(t, int64(7), w.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWarehouseRepoUpdate_NotFound(t *testing.T) {
	mock, repo := newWarehouseMock(t)

	mock.ExpectExec("UPDATE warehouses SET address = $1, city = $2, contact_email = $3, contact_name = $4, contact_phone = $5, contact_position = $6, country = $7, warehouse_name = $8 WHERE id = $9").
		WithArgs("503 Broadway", "New York", "paujla@instock.com", "Parmin Aujla",
			"+1 (646) 123-1234", "Warehouse Manager", "USA", "Manhattan", int64(3)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	w := &warehouse.Warehouse{
		WarehouseName:   "Manhattan",
		Address:         "503 Broadway",
		City:            "New York",
		Country:         "USA",
		ContactName:     "Parmin Aujla",
		ContactPosition: "Warehouse Manager",
		ContactPhone:    "+1 (646) 123-1234",
		ContactEmail:    "paujla@instock.com",
	}

	err := repo.Update(context.Background(), 3, w)
	assert.True(t, apperror.IsNotFound(err))
}

func TestWarehouseRepoDelete(t *testing.T) {
	mock, repo := newWarehouseMock(t)

	mock.ExpectExec("DELETE FROM warehouses WHERE id = $1").
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(context.Background(), 3))

	mock.ExpectExec("DELETE FROM warehouses WHERE id = $1").
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.True(t, apperror.IsNotFound(repo.Delete(context.Background(), 3)))
}

func TestWarehouseRepoExists(t *testing.T) {
	mock, repo := newWarehouseMock(t)

	mock.ExpectQuery("SELECT 1 FROM warehouses WHERE id = $1").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))

	ok, err := repo.Exists(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectQuery("SELECT 1 FROM warehouses WHERE id = $1").
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}))

	ok, err = repo.Exists(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWarehouseRepoListItems(t *testing.T) {
	mock, repo := newWarehouseMock(t)

	mock.ExpectQuery("SELECT inventories.id, inventories.item_name, inventories.category, inventories.status, inventories.quantity FROM inventories JOIN warehouses ON warehouses.id = inventories.warehouse_id WHERE inventories.warehouse_id = $1 ORDER BY inventories.id").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "item_name", "category", "status", "quantity"}).
			AddRow(int64(4), "Television", "Electronics", "In Stock", int64(500)))

	items, err := repo.ListItems(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Television", items[0].ItemName)
	assert.Equal(t, int64(500), items[0].Quantity)
}

func TestWarehouseRepoListItems_Empty(t *testing.T) {
	mock, repo := newWarehouseMock(t)

	mock.ExpectQuery("SELECT inventories.id, inventories.item_name, inventories.category, inventories.status, inventories.quantity FROM inventories JOIN warehouses ON warehouses.id = inventories.warehouse_id WHERE inventories.warehouse_id = $1 ORDER BY inventories.id").
		WithArgs(int64(8)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "item_name", "category", "status", "quantity"}))

	items, err := repo.ListItems(context.Background(), 8)
	require.NoError(t, err)
	assert.NotNil(t, items, "a warehouse without items yields an empty slice, not nil")
	assert.Empty(t, items)
}
