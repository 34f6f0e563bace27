package models

// Contact message statuses.
const (
	ContactStatusNew       = "new"
	ContactStatusRead      = "read"
	ContactStatusResponded = "responded"
)

// ContactStatuses lists every accepted contact status value.
var ContactStatuses = []string{
	ContactStatusNew,
	ContactStatusRead,
	ContactStatusResponded,
}

// IsValidContactStatus reports whether s is a known contact status.
func IsValidContactStatus(s string) bool { return containsString(ContactStatuses, s) }

// Contact is one submission from the public contact form. It is never
// published; the content conventions are reused for listing and audit only.
type Contact struct {
	ContentMeta
	Name    string `gorm:"not null;size:255;index" json:"name"`
	Email   string `gorm:"not null;size:255;index" json:"email"`
	Phone   string `gorm:"size:32" json:"phone,omitempty"`
	Subject string `gorm:"not null;size:255" json:"subject"`
	Message string `gorm:"not null;type:text" json:"message"`
	Status  string `gorm:"not null;size:16;default:'new';index" json:"status"`
}

// TableName returns the table name for Contact model
func (Contact) TableName() string {
	return "contacts"
}

// Compile-time interface checks for every content entity.
var (
	_ Content = (*News)(nil)
	_ Content = (*Activity)(nil)
	_ Content = (*Admission)(nil)
	_ Content = (*Examination)(nil)
	_ Content = (*Video)(nil)
	_ Content = (*Faculty)(nil)
	_ Content = (*GalleryItem)(nil)
	_ Content = (*RollNumber)(nil)
	_ Content = (*Contact)(nil)
)
