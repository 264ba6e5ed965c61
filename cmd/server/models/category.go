package models

// Category represents a service category belonging to a division.
// Slug is unique per division, not globally.
type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	DivisionID  string  `json:"division_id"`
}
