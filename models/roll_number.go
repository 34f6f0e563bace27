package models

// RollNumber is a roll-number allocation notice, typically pointing at an
// uploaded spreadsheet or PDF.
type RollNumber struct {
	ContentMeta
	Title        string    `gorm:"not null;size:255;index" json:"title"`
	Program      string    `gorm:"not null;size:32;index" json:"program"`
	Semester     string    `gorm:"size:16;index" json:"semester"`
	AcademicYear string    `gorm:"size:16;index" json:"academicYear"`
	FileURL      string    `gorm:"size:1024" json:"fileUrl,omitempty"`
	Images       MediaList `gorm:"type:jsonb;default:'[]'" json:"images"`
}

// TableName returns the table name for RollNumber model
func (RollNumber) TableName() string {
	return "roll_numbers"
}

func (r *RollNumber) Attachments() []MediaAttachment { return r.Images }
