// Package inventory provides the inventory item resource. Every item
// belongs to exactly one warehouse via warehouse_id.
package inventory

// Item represents an inventory record as stored.
type Item struct {
	ID          int64  `db:"id" json:"id"`
	WarehouseID int64  `db:"warehouse_id" json:"warehouse_id"`
	ItemName    string `db:"item_name" json:"item_name"`
	Description string `db:"description" json:"description"`
	Category    string `db:"category" json:"category"`
	Status      string `db:"status" json:"status"`
	Quantity    int64  `db:"quantity" json:"quantity"`
}

// Detail is the read projection joining in the owning warehouse's name.
// Items whose warehouse is gone drop out of this projection (inner join).
type Detail struct {
	ID            int64  `db:"id" json:"id"`
	WarehouseName string `db:"warehouse_name" json:"warehouse_name"`
	ItemName      string `db:"item_name" json:"item_name"`
	Description   string `db:"description" json:"description"`
	Category      string `db:"category" json:"category"`
	Status        string `db:"status" json:"status"`
	Quantity      int64  `db:"quantity" json:"quantity"`
}
