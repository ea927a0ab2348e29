package models

// ProductFilter narrows the catalog. A nil field means "no constraint";
// set fields are combined with logical AND.
type ProductFilter struct {
	Category *string  `json:"category"`
	MaxPrice *float64 `json:"max_price"`
}

// MessageResponse is returned by the welcome and greeting endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// ProductsResponse wraps the full product listing
type ProductsResponse struct {
	Products []Product `json:"products"`
}

// SearchResponse is returned by the name search endpoint
type SearchResponse struct {
	SearchQuery string    `json:"search_query"`
	FoundItems  int       `json:"found_items"`
	Results     []Product `json:"results"`
}

// FilterResponse echoes the applied filters alongside the matches
type FilterResponse struct {
	Filters ProductFilter `json:"filters"`
	Found   int           `json:"found"`
	Results []Product     `json:"results"`
}
