// Package dto
package dto

type ExaminationDTO struct {
	ContentMetaDTO
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	ExamType    string               `json:"examType"`
	Semester    string               `json:"semester,omitempty"`
	ExamDate    string               `json:"examDate,omitempty"`
	FileURL     string               `json:"fileUrl,omitempty"`
	Images      []MediaAttachmentDTO `json:"images"`
}

type ListExaminationsRequest struct {
	ListRequest
	StatusFilter
	ExamType string `query:"examType" json:"examType"`
	Semester string `query:"semester" json:"semester"`
}

type CreateExaminationRequest struct {
	ContentFlagsDTO
	Title       string               `json:"title" validate:"required,min=3,max=255"`
	Description string               `json:"description" validate:"omitempty"`
	ExamType    string               `json:"examType" validate:"required"`
	Semester    string               `json:"semester" validate:"omitempty,max=16"`
	ExamDate    *string              `json:"examDate" validate:"omitempty"`
	FileURL     string               `json:"fileUrl" validate:"omitempty,max=1024"`
	Images      []MediaAttachmentDTO `json:"images" validate:"omitempty,dive"`
}

type UpdateExaminationRequest struct {
	ContentFlagsDTO
	Title       *string               `json:"title" validate:"omitempty,min=3,max=255"`
	Description *string               `json:"description" validate:"omitempty"`
	ExamType    *string               `json:"examType" validate:"omitempty"`
	Semester    *string               `json:"semester" validate:"omitempty,max=16"`
	ExamDate    *string               `json:"examDate" validate:"omitempty"`
	FileURL     *string               `json:"fileUrl" validate:"omitempty,max=1024"`
	Images      *[]MediaAttachmentDTO `json:"images" validate:"omitempty,dive"`
}
