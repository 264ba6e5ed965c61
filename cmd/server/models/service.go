package models

// Service represents a service offering from the database.
// Details and Images are ordered lists; Images holds storage object paths
// that are resolved to public URLs at render time.
type Service struct {
	ID          string   `json:"id"`
	DivisionID  string   `json:"division_id"`
	CategoryID  *string  `json:"category_id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Details     []string `json:"details"`
	Images      []string `json:"images"`
}
