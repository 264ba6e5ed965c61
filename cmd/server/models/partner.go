package models

// Partner represents a partner company listed on the site.
// Rank is an ascending sort key for display order; ranks may repeat.
type Partner struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Rank        int    `json:"rank"`
}
