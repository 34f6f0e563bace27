// Package dto
package dto

type GalleryItemDTO struct {
	ContentMetaDTO
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Category    string               `json:"category"`
	Images      []MediaAttachmentDTO `json:"images"`
	Image       string               `json:"image,omitempty"`
}

type ListGalleryRequest struct {
	ListRequest
	StatusFilter
	Category string `query:"category" json:"category"`
}

type CreateGalleryItemRequest struct {
	ContentFlagsDTO
	Title       string               `json:"title" validate:"required,min=3,max=255"`
	Description string               `json:"description" validate:"omitempty,max=512"`
	Category    string               `json:"category" validate:"required"`
	Images      []MediaAttachmentDTO `json:"images" validate:"omitempty,dive"`
}

type UpdateGalleryItemRequest struct {
	ContentFlagsDTO
	Title       *string               `json:"title" validate:"omitempty,min=3,max=255"`
	Description *string               `json:"description" validate:"omitempty,max=512"`
	Category    *string               `json:"category" validate:"omitempty"`
	Images      *[]MediaAttachmentDTO `json:"images" validate:"omitempty,dive"`
}
