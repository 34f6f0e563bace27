// Package dto
package dto

type AdmissionDTO struct {
	ContentMetaDTO
	Title               string               `json:"title"`
	Description         string               `json:"description,omitempty"`
	Program             string               `json:"program"`
	AcademicYear        string               `json:"academicYear,omitempty"`
	Eligibility         string               `json:"eligibility,omitempty"`
	ApplicationDeadline string               `json:"applicationDeadline,omitempty"`
	Images              []MediaAttachmentDTO `json:"images"`
	Image               string               `json:"image,omitempty"`
}

type ListAdmissionsRequest struct {
	ListRequest
	StatusFilter
	Program      string `query:"program" json:"program"`
	AcademicYear string `query:"academicYear" json:"academicYear"`
}

type CreateAdmissionRequest struct {
	ContentFlagsDTO
	Title               string               `json:"title" validate:"required,min=3,max=255"`
	Description         string               `json:"description" validate:"omitempty"`
	Program             string               `json:"program" validate:"required"`
	AcademicYear        string               `json:"academicYear" validate:"omitempty,max=16"`
	Eligibility         string               `json:"eligibility" validate:"omitempty"`
	ApplicationDeadline *string              `json:"applicationDeadline" validate:"omitempty"`
	Images              []MediaAttachmentDTO `json:"images" validate:"omitempty,dive"`
}

type UpdateAdmissionRequest struct {
	ContentFlagsDTO
	Title               *string               `json:"title" validate:"omitempty,min=3,max=255"`
	Description         *string               `json:"description" validate:"omitempty"`
	Program             *string               `json:"program" validate:"omitempty"`
	AcademicYear        *string               `json:"academicYear" validate:"omitempty,max=16"`
	Eligibility         *string               `json:"eligibility" validate:"omitempty"`
	ApplicationDeadline *string               `json:"applicationDeadline" validate:"omitempty"`
	Images              *[]MediaAttachmentDTO `json:"images" validate:"omitempty,dive"`
}
