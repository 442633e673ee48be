package models

// Pagination is the page envelope the backend attaches to list endpoints.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// Page is a paginated list response: { data: T[], pagination }.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// List is an unpaginated list response: { data: T[] }.
type List[T any] struct {
	Data []T `json:"data"`
}
