package model

import "time"

// Item is a catalog entry. Prices are integer base-currency units.
type Item struct {
	ItemID    string    `db:"item_id"`
	Name      string    `db:"name"`
	Price     int64     `db:"price"`
	Stock     int64     `db:"stock"`
	CreatedAt time.Time `db:"created_at"`
}
