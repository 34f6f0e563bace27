// Package dto
package dto

type ContactDTO struct {
	ID        uint   `json:"id"`
	UUID      string `json:"uuid"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type ListContactsRequest struct {
	ListRequest
	Status string `query:"status" json:"status" validate:"omitempty,oneof=new read responded all"`
}

type SubmitContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=32"`
	Subject string `json:"subject" validate:"required,min=3,max=255"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read responded"`
}
