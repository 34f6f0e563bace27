package models

// Faculty departments.
const (
	DepartmentScience           = "science"
	DepartmentArts              = "arts"
	DepartmentCommerce          = "commerce"
	DepartmentComputerScience   = "computer-science"
	DepartmentPhysicalEducation = "physical-education"
	DepartmentAdministration    = "administration"
)

// FacultyDepartments lists every accepted department value.
var FacultyDepartments = []string{
	DepartmentScience,
	DepartmentArts,
	DepartmentCommerce,
	DepartmentComputerScience,
	DepartmentPhysicalEducation,
	DepartmentAdministration,
}

// IsValidDepartment reports whether s is a known department.
func IsValidDepartment(s string) bool { return containsString(FacultyDepartments, s) }

// Faculty is one staff member's public profile. DisplayOrder drives the
// default listing order so departments can curate their page manually.
type Faculty struct {
	ContentMeta
	Name          string    `gorm:"not null;size:255;index" json:"name"`
	Designation   string    `gorm:"size:128;index" json:"designation"`
	Department    string    `gorm:"not null;size:32;index" json:"department"`
	Qualification string    `gorm:"size:512" json:"qualification"`
	Experience    string    `gorm:"size:255" json:"experience"`
	Email         string    `gorm:"size:255" json:"email,omitempty"`
	Phone         string    `gorm:"size:32" json:"phone,omitempty"`
	Bio           string    `gorm:"type:text" json:"bio,omitempty"`
	DisplayOrder  int       `gorm:"not null;default:0;index" json:"displayOrder"`
	Photo         MediaList `gorm:"type:jsonb;default:'[]'" json:"photo"`
}

// TableName returns the table name for Faculty model
func (Faculty) TableName() string {
	return "faculty_members"
}

func (f *Faculty) Attachments() []MediaAttachment { return f.Photo }
