package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MediaAttachment describes one stored file as embedded in a content entity.
// URL and ThumbnailURL are what public clients render; PublicID is the
// storage handle used when the file is deleted.
type MediaAttachment struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	PublicID     string `json:"publicId"`
	OriginalName string `json:"originalName,omitempty"`
	SizeBytes    int64  `json:"sizeBytes,omitempty"`
	MimeType     string `json:"mimeType,omitempty"`
}

// MediaList stores a slice of attachments as a single JSONB column.
type MediaList []MediaAttachment

// Value implements driver.Valuer for JSONB storage
func (l MediaList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for JSONB retrieval
func (l *MediaList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into MediaList", value)
	}
	return json.Unmarshal(data, l)
}

// First returns the first attachment or a zero value when the list is empty.
func (l MediaList) First() MediaAttachment {
	if len(l) == 0 {
		return MediaAttachment{}
	}
	return l[0]
}

// PublicIDs collects the storage handles of every attachment in the list.
func (l MediaList) PublicIDs() []string {
	ids := make([]string, 0, len(l))
	for _, a := range l {
		if a.PublicID != "" {
			ids = append(ids, a.PublicID)
		}
	}
	return ids
}

// MediaAsset is the bookkeeping row for one uploaded file. Content entities
// embed attachments denormalized as JSONB; the asset table is the source of
// truth for orphan cleanup and storage accounting.
type MediaAsset struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"uuid"`
	PublicID     string    `gorm:"not null;size:512;uniqueIndex" json:"publicId"`
	URL          string    `gorm:"not null;size:1024" json:"url"`
	ThumbnailURL string    `gorm:"size:1024" json:"thumbnailUrl,omitempty"`
	OriginalName string    `gorm:"size:512" json:"originalName"`
	MimeType     string    `gorm:"size:128" json:"mimeType"`
	SizeBytes    int64     `gorm:"not null;default:0" json:"sizeBytes"`
	Folder       string    `gorm:"size:128;index" json:"folder"`
	UploadedByID *uint     `gorm:"index" json:"uploadedBy,omitempty"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index" json:"createdAt"`
}

// TableName returns the table name for MediaAsset model
func (MediaAsset) TableName() string {
	return "media_assets"
}

// Attachment converts the asset row into the embeddable form.
func (a *MediaAsset) Attachment() MediaAttachment {
	return MediaAttachment{
		URL:          a.URL,
		ThumbnailURL: a.ThumbnailURL,
		PublicID:     a.PublicID,
		OriginalName: a.OriginalName,
		SizeBytes:    a.SizeBytes,
		MimeType:     a.MimeType,
	}
}

// MediaAssetFilter represents filter criteria for media asset queries
type MediaAssetFilter struct {
	ID            *uint      `json:"id,omitempty"`
	UUID          *uuid.UUID `json:"uuid,omitempty"`
	PublicID      *string    `json:"public_id,omitempty"`
	Folder        *string    `json:"folder,omitempty"`
	UploadedByID  *uint      `json:"uploaded_by_id,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
}
