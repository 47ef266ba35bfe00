package models

// Clothes represents a single clothing item. The id is assigned by the
// database on creation.
type Clothes struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Size  string `json:"size"`
}
