// Package main provides a CLI tool for seeding the database with demo data.
package main

import (
	"context"
	"fmt"
	"os"

	"instock/internal/infrastructure/storage/postgres"
	"instock/pkg/logger"
)

type warehouseSeed struct {
	id              int64
	name            string
	address         string
	city            string
	country         string
	contactName     string
	contactPosition string
	contactPhone    string
	contactEmail    string
}

type inventorySeed struct {
	id          int64
	warehouseID int64
	itemName    string
	description string
	category    string
	status      string
	quantity    int64
}

var warehouses = []warehouseSeed{
	{1, "Manhattan", "503 Broadway", "New York", "USA", "Parmin Aujla", "Warehouse Manager", "+1 (646) 123-1234", "paujla@instock.com"},
	{2, "Washington", "33 Pearl Street SW", "Washington", "USA", "Greame Lyon", "Warehouse Manager", "+1 (646) 123-1234", "glyon@instock.com"},
	{3, "Jersey", "300 Main Street", "New Jersey", "USA", "Brad MacDonald", "Warehouse Manager", "+1 (646) 123-1234", "bmcdonald@instock.com"},
	{4, "SF", "890 Brannan Street", "San Francisco", "USA", "Gary Wong", "Warehouse Manager", "+1 (646) 123-1234", "gwong@instock.com"},
	{5, "Santa Monica", "520 Broadway", "Santa Monica", "USA", "Sharon Ng", "Warehouse Manager", "+1 (646) 123-1234", "sng@instock.com"},
}

var inventories = []inventorySeed{
	{1, 1, "Television", "A 50\", 4K LED TV with HDR support.", "Electronics", "In Stock", 500},
	{2, 1, "Gym Bag", "Made out of water-resistant material.", "Gear", "Out of Stock", 0},
	{3, 1, "Hoodie", "A simple half-zip hoodie in a variety of colours.", "Apparel", "Out of Stock", 0},
	{4, 2, "Winter Jacket", "Insulated jacket rated for -20C.", "Apparel", "In Stock", 208},
	{5, 2, "Soap", "Organic café-scented soap, 100g bars.", "Health", "In Stock", 4350},
	{6, 3, "Monitor", "A 27\" QHD IPS monitor.", "Electronics", "In Stock", 125},
}

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	for _, w := range warehouses {
		_, err := pool.Exec(ctx, `
			INSERT INTO warehouses (
				id, warehouse_name, address, city, country,
				contact_name, contact_position, contact_phone, contact_email
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO NOTHING
		`, w.id, w.name, w.address, w.city, w.country,
			w.contactName, w.contactPosition, w.contactPhone, w.contactEmail)
		if err != nil {
			log.Fatalw("failed to seed warehouse", "warehouse", w.name, "error", err)
		}
	}
	log.Infow("warehouses seeded", "count", len(warehouses))

	for _, it := range inventories {
		_, err := pool.Exec(ctx, `
			INSERT INTO inventories (
				id, warehouse_id, item_name, description, category, status, quantity
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO NOTHING
		`, it.id, it.warehouseID, it.itemName, it.description, it.category, it.status, it.quantity)
		if err != nil {
			log.Fatalw("failed to seed inventory item", "item", it.itemName, "error", err)
		}
	}
	log.Infow("inventories seeded", "count", len(inventories))

	// Keep the serial sequences ahead of the seeded ids.
	for _, table := range []string{"warehouses", "inventories"} {
		_, err := pool.Exec(ctx, fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT COALESCE(MAX(id), 1) FROM %s))`,
			table, table))
		if err != nil {
			log.Fatalw("failed to advance sequence", "table", table, "error", err)
		}
	}

	log.Info("seed complete")
}
