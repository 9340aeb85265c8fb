package models

// ListResponse is the envelope returned by collection GET endpoints.
type ListResponse struct {
	NumResults int64 `json:"num_results"`
	Objects    any   `json:"objects"`
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
}

// ErrorResponse is the body returned for request failures that carry a
// human-readable reason (e.g. the authentication gate's 401).
type ErrorResponse struct {
	Message string `json:"message"`
}
