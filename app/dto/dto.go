// Package dto contains request and response data transfer objects for the HTTP API
package dto

// APIResponse represents the standard API response structure
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty" validate:"omitempty"`
	Error   any    `json:"error,omitempty" validate:"omitempty"`
}

// ErrorDetail represents error details in API responses
type ErrorDetail struct {
	Code    string `json:"code"`
	Details any    `json:"details,omitempty" validate:"omitempty"`
}

// ValidationError describes one failed field from request validation
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PaginationInfo is the pagination block attached to every list response
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	Limit       int   `json:"limit"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// ListRequest carries the query parameters common to every list endpoint.
// Resource-specific filters ride alongside in the resource's own request.
type ListRequest struct {
	Page      int    `query:"page" json:"page"`
	Limit     int    `query:"limit" json:"limit"`
	Search    string `query:"search" json:"search"`
	SortBy    string `query:"sortBy" json:"sortBy"`
	SortOrder string `query:"sortOrder" json:"sortOrder" validate:"omitempty,oneof=asc desc ASC DESC"`
}

// ListResponse pairs one page of items with its pagination block
type ListResponse struct {
	Items      any            `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}

// IDsRequest is the body of bulk operations
type IDsRequest struct {
	IDs []uint `json:"ids" validate:"required,min=1,dive,gt=0"`
}

// BulkDeleteResponse reports how many rows a bulk delete removed
type BulkDeleteResponse struct {
	Requested int   `json:"requested"`
	Deleted   int64 `json:"deleted"`
}

// MediaAttachmentDTO mirrors one stored attachment in API payloads
type MediaAttachmentDTO struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	PublicID     string `json:"publicId,omitempty"`
	OriginalName string `json:"originalName,omitempty"`
	SizeBytes    int64  `json:"sizeBytes,omitempty"`
	MimeType     string `json:"mimeType,omitempty"`
}
