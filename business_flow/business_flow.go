// Package businessflow contains the business logic for the application.
package businessflow

import (
	"time"

	"github.com/opencampus/college-cms/app/dto"
	"github.com/opencampus/college-cms/models"
	"github.com/opencampus/college-cms/repository"
)

const RequestIDKey = "X-Request-ID"

// ClientMetadata holds client-related information for audit logging
type ClientMetadata struct {
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	RequestID string `json:"request_id,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

// ToAdminDTO converts an admin model to its API shape
func ToAdminDTO(admin models.Admin) dto.AdminDTO {
	out := dto.AdminDTO{
		ID:        admin.ID,
		UUID:      admin.UUID.String(),
		Username:  admin.Username,
		Email:     admin.Email,
		Role:      admin.Role,
		IsActive:  admin.IsActive,
		CreatedAt: admin.CreatedAt.Format(time.RFC3339),
	}
	if admin.LastLoginAt != nil {
		out.LastLoginAt = admin.LastLoginAt.Format(time.RFC3339)
	}
	return out
}

// ToAdminSessionDTO builds the session block of a login response
func ToAdminSessionDTO(accessToken, refreshToken string, expiresIn time.Duration) dto.AdminSessionDTO {
	return dto.AdminSessionDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(expiresIn.Seconds()),
		TokenType:    "Bearer",
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
}

// ToContentMetaDTO projects the shared content fields. Audit identities are
// only included when includeAudit is set; public payloads never carry them.
func ToContentMetaDTO(meta models.ContentMeta, includeAudit bool) dto.ContentMetaDTO {
	out := dto.ContentMetaDTO{
		ID:          meta.ID,
		UUID:        meta.UUID.String(),
		IsPublished: meta.IsPublished,
		IsFeatured:  meta.IsFeatured,
		CreatedAt:   meta.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   meta.UpdatedAt.Format(time.RFC3339),
	}
	if includeAudit {
		out.CreatedBy = meta.CreatedByID
		out.LastModifiedBy = meta.LastModifiedByID
	}
	return out
}

// ToMediaDTOs converts stored attachments into their API shape
func ToMediaDTOs(list models.MediaList) []dto.MediaAttachmentDTO {
	out := make([]dto.MediaAttachmentDTO, 0, len(list))
	for _, a := range list {
		out = append(out, dto.MediaAttachmentDTO{
			URL:          a.URL,
			ThumbnailURL: a.ThumbnailURL,
			PublicID:     a.PublicID,
			OriginalName: a.OriginalName,
			SizeBytes:    a.SizeBytes,
			MimeType:     a.MimeType,
		})
	}
	return out
}

// ToMediaList converts attachment DTOs back into the stored form
func ToMediaList(list []dto.MediaAttachmentDTO) models.MediaList {
	out := make(models.MediaList, 0, len(list))
	for _, a := range list {
		out = append(out, models.MediaAttachment{
			URL:          a.URL,
			ThumbnailURL: a.ThumbnailURL,
			PublicID:     a.PublicID,
			OriginalName: a.OriginalName,
			SizeBytes:    a.SizeBytes,
			MimeType:     a.MimeType,
		})
	}
	return out
}

// BuildPagination computes the pagination block for one result page
func BuildPagination(page, limit int, total int64) dto.PaginationInfo {
	totalPages := repository.TotalPages(total, limit)
	return dto.PaginationInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		Limit:       limit,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// FormatTimePtr renders an optional timestamp as RFC3339 or empty
func FormatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

// ParseTimePtr parses an optional RFC3339 (or date-only) request field
func ParseTimePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, *s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
