package dto

type ProductFilters struct {
	Category    string // "All" or an exact category name
	SearchQuery string // case-insensitive title substring, trimmed
}
