package model

import "time"

// Product represents a catalogue product. Every product references exactly
// one category; the reference is resolved or created when the product is
// added and is never left dangling.
type Product struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Brand       string    `json:"brand" db:"brand"`
	Price       float64   `json:"price" db:"price"`
	Inventory   int       `json:"inventory" db:"inventory"`
	Description string    `json:"description" db:"description"`
	Category    Category  `json:"category"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// ProductRequest represents the payload for adding or updating a product.
// The category is referenced by name; on add it is created when absent.
type ProductRequest struct {
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Price       float64         `json:"price"`
	Inventory   int             `json:"inventory"`
	Description string          `json:"description"`
	Category    CategoryRequest `json:"category"`
}
