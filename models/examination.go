package models

import "time"

// Examination types.
const (
	ExamTypeInternal      = "internal"
	ExamTypeUniversity    = "university"
	ExamTypeEntrance      = "entrance"
	ExamTypeSupplementary = "supplementary"
)

// ExamTypes lists every accepted examination type value.
var ExamTypes = []string{
	ExamTypeInternal,
	ExamTypeUniversity,
	ExamTypeEntrance,
	ExamTypeSupplementary,
}

// IsValidExamType reports whether s is a known examination type.
func IsValidExamType(s string) bool { return containsString(ExamTypes, s) }

// Examination is a timetable or result notice for one exam cycle.
type Examination struct {
	ContentMeta
	Title       string     `gorm:"not null;size:255;index" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	ExamType    string     `gorm:"not null;size:32;index" json:"examType"`
	Semester    string     `gorm:"size:16;index" json:"semester"`
	ExamDate    *time.Time `json:"examDate,omitempty"`
	FileURL     string     `gorm:"size:1024" json:"fileUrl,omitempty"`
	Images      MediaList  `gorm:"type:jsonb;default:'[]'" json:"images"`
}

// TableName returns the table name for Examination model
func (Examination) TableName() string {
	return "examinations"
}

func (e *Examination) Attachments() []MediaAttachment { return e.Images }
