// Package dto
package dto

type NewsDTO struct {
	ContentMetaDTO
	Title    string               `json:"title"`
	Summary  string               `json:"summary,omitempty"`
	Content  string               `json:"content,omitempty"`
	Category string               `json:"category"`
	Images   []MediaAttachmentDTO `json:"images"`
	// Image mirrors the first entry of Images for clients still reading the
	// legacy single-image field.
	Image string `json:"image,omitempty"`
}

type ListNewsRequest struct {
	ListRequest
	StatusFilter
	Category string `query:"category" json:"category"`
}

type CreateNewsRequest struct {
	ContentFlagsDTO
	Title    string               `json:"title" validate:"required,min=3,max=255"`
	Summary  string               `json:"summary" validate:"omitempty,max=512"`
	Content  string               `json:"content" validate:"omitempty"`
	Category string               `json:"category" validate:"required"`
	Images   []MediaAttachmentDTO `json:"images" validate:"omitempty,dive"`
}

type UpdateNewsRequest struct {
	ContentFlagsDTO
	Title    *string               `json:"title" validate:"omitempty,min=3,max=255"`
	Summary  *string               `json:"summary" validate:"omitempty,max=512"`
	Content  *string               `json:"content" validate:"omitempty"`
	Category *string               `json:"category" validate:"omitempty"`
	Images   *[]MediaAttachmentDTO `json:"images" validate:"omitempty,dive"`
}
