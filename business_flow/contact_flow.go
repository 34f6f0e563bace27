package businessflow

import (
	"context"
	"time"

	"github.com/opencampus/college-cms/app/dto"
	"github.com/opencampus/college-cms/models"
	"github.com/opencampus/college-cms/utils"
)

// ContactFlow wraps the generic content flow with the contact-form specifics:
// unauthenticated submission and the read/responded status lifecycle.
type ContactFlow interface {
	ContentFlow[models.Contact]
	Submit(ctx context.Context, req *dto.SubmitContactRequest, metadata *ClientMetadata) (*models.Contact, error)
	GetAndMarkRead(ctx context.Context, id, adminID uint) (*models.Contact, error)
	UpdateStatus(ctx context.Context, id uint, status string, adminID uint) (*models.Contact, error)
}

// ContactFlowImpl implements ContactFlow
type ContactFlowImpl struct {
	ContentFlow[models.Contact]
}

// NewContactFlow creates a new contact flow instance
func NewContactFlow(content ContentFlow[models.Contact]) ContactFlow {
	return &ContactFlowImpl{ContentFlow: content}
}

// Submit stores one public contact-form message with status new. Submissions
// carry no admin identity, so the audit columns stay empty.
func (f *ContactFlowImpl) Submit(ctx context.Context, req *dto.SubmitContactRequest, metadata *ClientMetadata) (*models.Contact, error) {
	if req == nil {
		return nil, NewBusinessError("INVALID_REQUEST", "Request body is required", nil)
	}

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.ContactStatusNew,
	}
	// Contact rows are admin-only; the publish flag never applies.
	contact.IsPublished = utils.ToPtr(false)

	if err := f.Create(ctx, &contact, 0); err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetAndMarkRead fetches one message and advances new to read.
func (f *ContactFlowImpl) GetAndMarkRead(ctx context.Context, id, adminID uint) (*models.Contact, error) {
	contact, err := f.Get(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if contact.Status == models.ContactStatusNew {
		contact.Status = models.ContactStatusRead
		if err := f.Update(ctx, contact, adminID, nil); err != nil {
			return nil, err
		}
	}
	return contact, nil
}

func (f *ContactFlowImpl) UpdateStatus(ctx context.Context, id uint, status string, adminID uint) (*models.Contact, error) {
	if !models.IsValidContactStatus(status) {
		return nil, NewBusinessErrorf("INVALID_STATUS", "Status %q is not accepted", ErrInvalidEnumValue, status)
	}

	contact, err := f.Get(ctx, id, false)
	if err != nil {
		return nil, err
	}

	contact.Status = status
	if err := f.Update(ctx, contact, adminID, nil); err != nil {
		return nil, err
	}
	return contact, nil
}

// ToContactDTO converts a contact model to its API shape
func ToContactDTO(c models.Contact) dto.ContactDTO {
	return dto.ContactDTO{
		ID:        c.ID,
		UUID:      c.UUID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Subject:   c.Subject,
		Message:   c.Message,
		Status:    c.Status,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}
