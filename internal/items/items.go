package items

// Item is a static demo record served by the items endpoint.
type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Catalog returns the fixed demo records. A fresh slice is returned on every
// call so callers cannot mutate the catalog.
func Catalog() []Item {
	return []Item{
		{ID: 1, Name: "Item 1", Description: "First item"},
		{ID: 2, Name: "Item 2", Description: "Second item"},
		{ID: 3, Name: "Item 3", Description: "Third item"},
	}
}
