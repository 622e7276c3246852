package model

// Category groups products under a globally unique name.
type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// CategoryRequest represents the payload for creating or renaming a category.
type CategoryRequest struct {
	Name string `json:"name"`
}
