package models

import "time"

// Admission programs.
const (
	ProgramUndergraduate = "undergraduate"
	ProgramPostgraduate  = "postgraduate"
	ProgramDiploma       = "diploma"
	ProgramCertificate   = "certificate"
)

// AdmissionPrograms lists every accepted program value.
var AdmissionPrograms = []string{
	ProgramUndergraduate,
	ProgramPostgraduate,
	ProgramDiploma,
	ProgramCertificate,
}

// IsValidProgram reports whether s is a known program value.
func IsValidProgram(s string) bool { return containsString(AdmissionPrograms, s) }

// Admission is an admission notice for one program intake.
type Admission struct {
	ContentMeta
	Title               string     `gorm:"not null;size:255;index" json:"title"`
	Description         string     `gorm:"type:text" json:"description"`
	Program             string     `gorm:"not null;size:32;index" json:"program"`
	AcademicYear        string     `gorm:"size:16;index" json:"academicYear"`
	Eligibility         string     `gorm:"type:text" json:"eligibility"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	Images              MediaList  `gorm:"type:jsonb;default:'[]'" json:"images"`
}

// TableName returns the table name for Admission model
func (Admission) TableName() string {
	return "admissions"
}

func (a *Admission) Attachments() []MediaAttachment { return a.Images }
