// Package models contains domain entities and business models for the college CMS
package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/opencampus/college-cms/utils"
)

// Content is the behaviour every publishable content entity shares. The
// listing, toggle, and audit plumbing in the business flows is written
// against this interface rather than against the concrete types.
type Content interface {
	GetID() uint
	GetUUID() uuid.UUID
	Published() bool
	SetPublished(v bool)
	Featured() bool
	SetFeatured(v bool)
	Stamp(adminID uint, created bool)
	Attachments() []MediaAttachment
}

// ContentMeta carries the fields common to all content entities: publish and
// featured flags, soft references to the admin identities that created and
// last modified the row, and timestamps. Embed it anonymously so GORM folds
// the columns into each entity's table.
type ContentMeta struct {
	ID   uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"uuid"`

	IsPublished *bool `gorm:"default:true;index" json:"isPublished"`
	IsFeatured  *bool `gorm:"default:false;index" json:"isFeatured"`

	CreatedByID      *uint `gorm:"index" json:"createdBy,omitempty"`
	LastModifiedByID *uint `json:"lastModifiedBy,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (m *ContentMeta) GetID() uint        { return m.ID }
func (m *ContentMeta) GetUUID() uuid.UUID { return m.UUID }

func (m *ContentMeta) Published() bool     { return utils.IsTrue(m.IsPublished) }
func (m *ContentMeta) SetPublished(v bool) { m.IsPublished = utils.ToPtr(v) }

func (m *ContentMeta) Featured() bool     { return utils.IsTrue(m.IsFeatured) }
func (m *ContentMeta) SetFeatured(v bool) { m.IsFeatured = utils.ToPtr(v) }

// Stamp records the acting admin on the audit columns and fills defaults
// that GORM cannot derive (UUID, timestamps) before the first save.
func (m *ContentMeta) Stamp(adminID uint, created bool) {
	now := utils.UTCNow()
	if created {
		if m.UUID == uuid.Nil {
			m.UUID = uuid.New()
		}
		if m.CreatedAt.IsZero() {
			m.CreatedAt = now
		}
		if adminID != 0 {
			m.CreatedByID = &adminID
		}
		if m.IsPublished == nil {
			m.IsPublished = utils.ToPtr(true)
		}
		if m.IsFeatured == nil {
			m.IsFeatured = utils.ToPtr(false)
		}
	}
	m.UpdatedAt = now
	if adminID != 0 {
		m.LastModifiedByID = &adminID
	}
}

// Attachments is the default for entities without media; entities that carry
// media shadow this with their own method.
func (m *ContentMeta) Attachments() []MediaAttachment { return nil }
