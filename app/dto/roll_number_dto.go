// Package dto
package dto

type RollNumberDTO struct {
	ContentMetaDTO
	Title        string               `json:"title"`
	Program      string               `json:"program"`
	Semester     string               `json:"semester,omitempty"`
	AcademicYear string               `json:"academicYear,omitempty"`
	FileURL      string               `json:"fileUrl,omitempty"`
	Images       []MediaAttachmentDTO `json:"images"`
}

type ListRollNumbersRequest struct {
	ListRequest
	StatusFilter
	Program      string `query:"program" json:"program"`
	Semester     string `query:"semester" json:"semester"`
	AcademicYear string `query:"academicYear" json:"academicYear"`
}

type CreateRollNumberRequest struct {
	ContentFlagsDTO
	Title        string               `json:"title" validate:"required,min=3,max=255"`
	Program      string               `json:"program" validate:"required"`
	Semester     string               `json:"semester" validate:"omitempty,max=16"`
	AcademicYear string               `json:"academicYear" validate:"omitempty,max=16"`
	FileURL      string               `json:"fileUrl" validate:"omitempty,max=1024"`
	Images       []MediaAttachmentDTO `json:"images" validate:"omitempty,dive"`
}

type UpdateRollNumberRequest struct {
	ContentFlagsDTO
	Title        *string               `json:"title" validate:"omitempty,min=3,max=255"`
	Program      *string               `json:"program" validate:"omitempty"`
	Semester     *string               `json:"semester" validate:"omitempty,max=16"`
	AcademicYear *string               `json:"academicYear" validate:"omitempty,max=16"`
	FileURL      *string               `json:"fileUrl" validate:"omitempty,max=1024"`
	Images       *[]MediaAttachmentDTO `json:"images" validate:"omitempty,dive"`
}

// RollNumberImportResponse summarizes one spreadsheet import
type RollNumberImportResponse struct {
	TotalRows int `json:"totalRows"`
	Created   int `json:"created"`
	Skipped   int `json:"skipped"`
}
