// Package dto
package dto

type ActivityDTO struct {
	ContentMetaDTO
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Type        string               `json:"type"`
	Location    string               `json:"location,omitempty"`
	HeldAt      string               `json:"heldAt,omitempty"`
	Images      []MediaAttachmentDTO `json:"images"`
	Image       string               `json:"image,omitempty"`
}

type ListActivitiesRequest struct {
	ListRequest
	StatusFilter
	Type string `query:"type" json:"type"`
}

type CreateActivityRequest struct {
	ContentFlagsDTO
	Title       string               `json:"title" validate:"required,min=3,max=255"`
	Description string               `json:"description" validate:"omitempty"`
	Type        string               `json:"type" validate:"required"`
	Location    string               `json:"location" validate:"omitempty,max=255"`
	HeldAt      *string              `json:"heldAt" validate:"omitempty"`
	Images      []MediaAttachmentDTO `json:"images" validate:"omitempty,dive"`
}

type UpdateActivityRequest struct {
	ContentFlagsDTO
	Title       *string               `json:"title" validate:"omitempty,min=3,max=255"`
	Description *string               `json:"description" validate:"omitempty"`
	Type        *string               `json:"type" validate:"omitempty"`
	Location    *string               `json:"location" validate:"omitempty,max=255"`
	HeldAt      *string               `json:"heldAt" validate:"omitempty"`
	Images      *[]MediaAttachmentDTO `json:"images" validate:"omitempty,dive"`
}
