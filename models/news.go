package models

// News categories.
const (
	NewsCategoryAcademic     = "academic"
	NewsCategorySports       = "sports"
	NewsCategoryCultural     = "cultural"
	NewsCategoryAnnouncement = "announcement"
	NewsCategoryEvent        = "event"
)

// NewsCategories lists every accepted news category value.
var NewsCategories = []string{
	NewsCategoryAcademic,
	NewsCategorySports,
	NewsCategoryCultural,
	NewsCategoryAnnouncement,
	NewsCategoryEvent,
}

// IsValidNewsCategory reports whether s is a known news category.
func IsValidNewsCategory(s string) bool { return containsString(NewsCategories, s) }

// News is a published article or announcement.
type News struct {
	ContentMeta
	Title    string    `gorm:"not null;size:255;index" json:"title"`
	Summary  string    `gorm:"size:512" json:"summary"`
	Content  string    `gorm:"type:text" json:"content"`
	Category string    `gorm:"not null;size:32;index" json:"category"`
	Images   MediaList `gorm:"type:jsonb;default:'[]'" json:"images"`
}

// TableName returns the table name for News model
func (News) TableName() string {
	return "news"
}

func (n *News) Attachments() []MediaAttachment { return n.Images }

func containsString(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
