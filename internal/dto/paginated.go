package dto

// Paginated is the envelope returned by the backend's list endpoints.
type Paginated[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}
