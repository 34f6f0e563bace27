// Package dto
package dto

// ContentMetaDTO carries the fields shared by every content payload. Audit
// fields are omitted from public projections by leaving them nil.
type ContentMetaDTO struct {
	ID             uint   `json:"id"`
	UUID           string `json:"uuid"`
	IsPublished    *bool  `json:"isPublished,omitempty"`
	IsFeatured     *bool  `json:"isFeatured,omitempty"`
	CreatedBy      *uint  `json:"createdBy,omitempty"`
	LastModifiedBy *uint  `json:"lastModifiedBy,omitempty"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
}

// ContentFlagsDTO carries the optional publish/featured flags on create and
// update requests.
type ContentFlagsDTO struct {
	IsPublished *bool `json:"isPublished" validate:"omitempty"`
	IsFeatured  *bool `json:"isFeatured" validate:"omitempty"`
}

// StatusFilter is the published|draft|all selector on admin list endpoints
type StatusFilter struct {
	Status string `query:"status" json:"status" validate:"omitempty,oneof=published draft all"`
}
