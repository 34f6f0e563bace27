// Package dto
package dto

type VideoDTO struct {
	ContentMetaDTO
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Category    string               `json:"category"`
	VideoURL    string               `json:"videoUrl"`
	Thumbnail   []MediaAttachmentDTO `json:"thumbnail"`
}

type ListVideosRequest struct {
	ListRequest
	StatusFilter
	Category string `query:"category" json:"category"`
}

type CreateVideoRequest struct {
	ContentFlagsDTO
	Title       string               `json:"title" validate:"required,min=3,max=255"`
	Description string               `json:"description" validate:"omitempty"`
	Category    string               `json:"category" validate:"required"`
	VideoURL    string               `json:"videoUrl" validate:"required,url,max=1024"`
	Thumbnail   []MediaAttachmentDTO `json:"thumbnail" validate:"omitempty,dive"`
}

type UpdateVideoRequest struct {
	ContentFlagsDTO
	Title       *string               `json:"title" validate:"omitempty,min=3,max=255"`
	Description *string               `json:"description" validate:"omitempty"`
	Category    *string               `json:"category" validate:"omitempty"`
	VideoURL    *string               `json:"videoUrl" validate:"omitempty,url,max=1024"`
	Thumbnail   *[]MediaAttachmentDTO `json:"thumbnail" validate:"omitempty,dive"`
}
