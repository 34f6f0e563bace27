package models

import "time"

// Activity types.
const (
	ActivityTypeClub     = "club"
	ActivityTypeSports   = "sports"
	ActivityTypeCultural = "cultural"
	ActivityTypeSocial   = "social"
	ActivityTypeAcademic = "academic"
)

// ActivityTypes lists every accepted activity type value.
var ActivityTypes = []string{
	ActivityTypeClub,
	ActivityTypeSports,
	ActivityTypeCultural,
	ActivityTypeSocial,
	ActivityTypeAcademic,
}

// IsValidActivityType reports whether s is a known activity type.
func IsValidActivityType(s string) bool { return containsString(ActivityTypes, s) }

// Activity is a campus activity or event entry.
type Activity struct {
	ContentMeta
	Title       string     `gorm:"not null;size:255;index" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Type        string     `gorm:"not null;size:32;index" json:"type"`
	Location    string     `gorm:"size:255" json:"location"`
	HeldAt      *time.Time `json:"heldAt,omitempty"`
	Images      MediaList  `gorm:"type:jsonb;default:'[]'" json:"images"`
}

// TableName returns the table name for Activity model
func (Activity) TableName() string {
	return "activities"
}

func (a *Activity) Attachments() []MediaAttachment { return a.Images }
