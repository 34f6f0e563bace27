package models

// Video categories.
const (
	VideoCategoryCampus      = "campus"
	VideoCategoryEvents      = "events"
	VideoCategoryLectures    = "lectures"
	VideoCategoryPromotional = "promotional"
)

// VideoCategories lists every accepted video category value.
var VideoCategories = []string{
	VideoCategoryCampus,
	VideoCategoryEvents,
	VideoCategoryLectures,
	VideoCategoryPromotional,
}

// IsValidVideoCategory reports whether s is a known video category.
func IsValidVideoCategory(s string) bool { return containsString(VideoCategories, s) }

// Video is an externally hosted video with a locally stored thumbnail.
type Video struct {
	ContentMeta
	Title       string    `gorm:"not null;size:255;index" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"not null;size:32;index" json:"category"`
	VideoURL    string    `gorm:"not null;size:1024" json:"videoUrl"`
	Thumbnail   MediaList `gorm:"type:jsonb;default:'[]'" json:"thumbnail"`
}

// TableName returns the table name for Video model
func (Video) TableName() string {
	return "videos"
}

func (v *Video) Attachments() []MediaAttachment { return v.Thumbnail }
