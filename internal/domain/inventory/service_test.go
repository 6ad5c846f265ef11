package inventory

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"instock/internal/core/apperror"
)

// fakeRepo is an in-memory inventory.Repository.
type fakeRepo struct {
	rows    map[int64]Item
	nextID  int64
	creates int
	updates int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[int64]Item{}, nextID: 1}
}

func (f *fakeRepo) List(ctx context.Context) ([]Detail, error) {
	return []Detail{}, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*Detail, error) {
	it, ok := f.rows[id]
	if !ok {
		return nil, apperror.NewNotFound("Inventory", id)
	}
	return &Detail{
		ID:       it.ID,
		ItemName: it.ItemName,
		Quantity: it.Quantity,
	}, nil
}

func (f *fakeRepo) GetItem(ctx context.Context, id int64) (*Item, error) {
	it, ok := f.rows[id]
	if !ok {
		return nil, apperror.NewNotFound("Inventory", id)
	}
	return &it, nil
}

func (f *fakeRepo) Create(ctx context.Context, it *Item) error {
	f.creates++
	it.ID = f.nextID
	f.nextID++
	f.rows[it.ID] = *it
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, id int64, it *Item) error {
	f.updates++
	if _, ok := f.rows[id]; !ok {
		return apperror.NewNotFound("Inventory", id)
	}
	updated := *it
	updated.ID = id
	f.rows[id] = updated
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return apperror.NewNotFound("Inventory", id)
	}
	delete(f.rows, id)
	return nil
}

// fakeWarehouses reports a fixed set of existing warehouse ids.
type fakeWarehouses struct {
	existing map[int64]bool
}

func (f *fakeWarehouses) Exists(ctx context.Context, id int64) (bool, error) {
	return f.existing[id], nil
}

func validItem() *Item {
	return &Item{
		WarehouseID: 1,
		ItemName:    "Television",
		Description: "A 50\", 4K LED TV with HDR support.",
		Category:    "Electronics",
		Status:      "In Stock",
		Quantity:    500,
	}
}

func newService(repo *fakeRepo) *Service {
	return NewService(repo, &fakeWarehouses{existing: map[int64]bool{1: true}}, nil)
}

func TestServiceCreate_Valid(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	created, err := svc.Create(context.Background(), validItem())
	require.NoError(t, err)
	assert.Positive(t, created.ID)
}

func TestServiceCreate_ZeroQuantity(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	it := validItem()
	it.Quantity = 0

	created, err := svc.Create(context.Background(), it)
	require.NoError(t, err, "zero quantity is a valid stock level")
	assert.Zero(t, created.Quantity)
}

func TestServiceCreate_NegativeQuantity(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	it := validItem()
	it.Quantity = -3

	_, err := svc.Create(context.Background(), it)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Equal(t, "Quantity must be a non-negative number", appErr.Message)
	assert.Zero(t, repo.creates)
}

func TestServiceCreate_UnknownWarehouseIsNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	it := validItem()
	it.WarehouseID = 99999

	_, err := svc.Create(context.Background(), it)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
	assert.Equal(t, "Warehouse with ID 99999 not found", appErr.Message)
	assert.Zero(t, repo.creates, "no insert must be attempted for an unknown warehouse")
}

func TestServiceUpdate_UnknownWarehouseIsClientError(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	created, err := svc.Create(context.Background(), validItem())
	require.NoError(t, err)

	it := validItem()
	it.WarehouseID = 42

	_, err = svc.Update(context.Background(), created.ID, it)
	require.Error(t, err)

	// Update reports a missing warehouse as 400, not 404.
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Equal(t, "Warehouse with ID 42 not found", appErr.Message)
	assert.Zero(t, repo.updates, "no update must be attempted for an unknown warehouse")
}

func TestServiceUpdate_ReturnsRefetchedRecord(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	created, err := svc.Create(context.Background(), validItem())
	require.NoError(t, err)

	it := validItem()
	it.Quantity = 12

	updated, err := svc.Update(context.Background(), created.ID, it)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, int64(12), updated.Quantity)
}

func TestServiceUpdate_NotFound(t *testing.T) {
	svc := newService(newFakeRepo())

	_, err := svc.Update(context.Background(), 123, validItem())
	assert.True(t, apperror.IsNotFound(err))
}

func TestServiceDelete_NotFound(t *testing.T) {
	svc := newService(newFakeRepo())

	err := svc.Delete(context.Background(), 5)
	assert.True(t, apperror.IsNotFound(err))
}
