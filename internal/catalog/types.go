package catalog

// Category is one entry of the marketplace category tree's top level.
// Supplied by the API and never mutated by the UI.
type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameAr string `json:"name_ar,omitempty"`
	// Slug is the routing key used to filter listings.
	Slug string `json:"slug"`
	// Icon is an image path relative to the API base, empty when the
	// category has no icon (the UI substitutes a placeholder).
	Icon string `json:"icon,omitempty"`
}

// Listing is a single classified ad.
type Listing struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	TitleAr      string  `json:"title_ar,omitempty"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	City         string  `json:"city,omitempty"`
	CategorySlug string  `json:"category"`
	Photo        string  `json:"photo,omitempty"`
}
