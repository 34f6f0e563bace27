package models

// Gallery categories.
const (
	GalleryCategoryCampus       = "campus"
	GalleryCategoryEvents       = "events"
	GalleryCategorySports       = "sports"
	GalleryCategoryCultural     = "cultural"
	GalleryCategoryLaboratories = "laboratories"
)

// GalleryCategories lists every accepted gallery category value.
var GalleryCategories = []string{
	GalleryCategoryCampus,
	GalleryCategoryEvents,
	GalleryCategorySports,
	GalleryCategoryCultural,
	GalleryCategoryLaboratories,
}

// IsValidGalleryCategory reports whether s is a known gallery category.
func IsValidGalleryCategory(s string) bool { return containsString(GalleryCategories, s) }

// GalleryItem is one photo set on the public gallery page.
type GalleryItem struct {
	ContentMeta
	Title       string    `gorm:"not null;size:255;index" json:"title"`
	Description string    `gorm:"size:512" json:"description,omitempty"`
	Category    string    `gorm:"not null;size:32;index" json:"category"`
	Images      MediaList `gorm:"type:jsonb;default:'[]'" json:"images"`
}

// TableName returns the table name for GalleryItem model
func (GalleryItem) TableName() string {
	return "gallery_items"
}

func (g *GalleryItem) Attachments() []MediaAttachment { return g.Images }
