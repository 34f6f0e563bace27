// Package dto
package dto

type FacultyDTO struct {
	ContentMetaDTO
	Name          string               `json:"name"`
	Designation   string               `json:"designation,omitempty"`
	Department    string               `json:"department"`
	Qualification string               `json:"qualification,omitempty"`
	Experience    string               `json:"experience,omitempty"`
	Email         string               `json:"email,omitempty"`
	Phone         string               `json:"phone,omitempty"`
	Bio           string               `json:"bio,omitempty"`
	DisplayOrder  int                  `json:"displayOrder"`
	Photo         []MediaAttachmentDTO `json:"photo"`
	Image         string               `json:"image,omitempty"`
}

type ListFacultyRequest struct {
	ListRequest
	StatusFilter
	Department  string `query:"department" json:"department"`
	Designation string `query:"designation" json:"designation"`
}

type CreateFacultyRequest struct {
	ContentFlagsDTO
	Name          string               `json:"name" validate:"required,min=3,max=255"`
	Designation   string               `json:"designation" validate:"omitempty,max=128"`
	Department    string               `json:"department" validate:"required"`
	Qualification string               `json:"qualification" validate:"omitempty,max=512"`
	Experience    string               `json:"experience" validate:"omitempty,max=255"`
	Email         string               `json:"email" validate:"omitempty,email,max=255"`
	Phone         string               `json:"phone" validate:"omitempty,max=32"`
	Bio           string               `json:"bio" validate:"omitempty"`
	DisplayOrder  int                  `json:"displayOrder" validate:"omitempty,gte=0"`
	Photo         []MediaAttachmentDTO `json:"photo" validate:"omitempty,dive"`
}

type UpdateFacultyRequest struct {
	ContentFlagsDTO
	Name          *string               `json:"name" validate:"omitempty,min=3,max=255"`
	Designation   *string               `json:"designation" validate:"omitempty,max=128"`
	Department    *string               `json:"department" validate:"omitempty"`
	Qualification *string               `json:"qualification" validate:"omitempty,max=512"`
	Experience    *string               `json:"experience" validate:"omitempty,max=255"`
	Email         *string               `json:"email" validate:"omitempty,email,max=255"`
	Phone         *string               `json:"phone" validate:"omitempty,max=32"`
	Bio           *string               `json:"bio" validate:"omitempty"`
	DisplayOrder  *int                  `json:"displayOrder" validate:"omitempty,gte=0"`
	Photo         *[]MediaAttachmentDTO `json:"photo" validate:"omitempty,dive"`
}
