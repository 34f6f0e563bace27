package businessflow

import (
	"github.com/opencampus/college-cms/app/dto"
	"github.com/opencampus/college-cms/models"
)

// Per-resource projections from model to API shape. includeAudit selects the
// admin projection; the public one drops the audit identities. The Image
// field mirrors the first attachment URL for clients still on the legacy
// single-image shape.

func firstURL(list models.MediaList) string {
	return list.First().URL
}

func ToNewsDTO(n models.News, includeAudit bool) dto.NewsDTO {
	return dto.NewsDTO{
		ContentMetaDTO: ToContentMetaDTO(n.ContentMeta, includeAudit),
		Title:          n.Title,
		Summary:        n.Summary,
		Content:        n.Content,
		Category:       n.Category,
		Images:         ToMediaDTOs(n.Images),
		Image:          firstURL(n.Images),
	}
}

func ToActivityDTO(a models.Activity, includeAudit bool) dto.ActivityDTO {
	return dto.ActivityDTO{
		ContentMetaDTO: ToContentMetaDTO(a.ContentMeta, includeAudit),
		Title:          a.Title,
		Description:    a.Description,
		Type:           a.Type,
		Location:       a.Location,
		HeldAt:         FormatTimePtr(a.HeldAt),
		Images:         ToMediaDTOs(a.Images),
		Image:          firstURL(a.Images),
	}
}

func ToAdmissionDTO(a models.Admission, includeAudit bool) dto.AdmissionDTO {
	return dto.AdmissionDTO{
		ContentMetaDTO:      ToContentMetaDTO(a.ContentMeta, includeAudit),
		Title:               a.Title,
		Description:         a.Description,
		Program:             a.Program,
		AcademicYear:        a.AcademicYear,
		Eligibility:         a.Eligibility,
		ApplicationDeadline: FormatTimePtr(a.ApplicationDeadline),
		Images:              ToMediaDTOs(a.Images),
		Image:               firstURL(a.Images),
	}
}

func ToExaminationDTO(e models.Examination, includeAudit bool) dto.ExaminationDTO {
	return dto.ExaminationDTO{
		ContentMetaDTO: ToContentMetaDTO(e.ContentMeta, includeAudit),
		Title:          e.Title,
		Description:    e.Description,
		ExamType:       e.ExamType,
		Semester:       e.Semester,
		ExamDate:       FormatTimePtr(e.ExamDate),
		FileURL:        e.FileURL,
		Images:         ToMediaDTOs(e.Images),
	}
}

func ToVideoDTO(v models.Video, includeAudit bool) dto.VideoDTO {
	return dto.VideoDTO{
		ContentMetaDTO: ToContentMetaDTO(v.ContentMeta, includeAudit),
		Title:          v.Title,
		Description:    v.Description,
		Category:       v.Category,
		VideoURL:       v.VideoURL,
		Thumbnail:      ToMediaDTOs(v.Thumbnail),
	}
}

func ToFacultyDTO(f models.Faculty, includeAudit bool) dto.FacultyDTO {
	return dto.FacultyDTO{
		ContentMetaDTO: ToContentMetaDTO(f.ContentMeta, includeAudit),
		Name:           f.Name,
		Designation:    f.Designation,
		Department:     f.Department,
		Qualification:  f.Qualification,
		Experience:     f.Experience,
		Email:          f.Email,
		Phone:          f.Phone,
		Bio:            f.Bio,
		DisplayOrder:   f.DisplayOrder,
		Photo:          ToMediaDTOs(f.Photo),
		Image:          firstURL(f.Photo),
	}
}

func ToGalleryItemDTO(g models.GalleryItem, includeAudit bool) dto.GalleryItemDTO {
	return dto.GalleryItemDTO{
		ContentMetaDTO: ToContentMetaDTO(g.ContentMeta, includeAudit),
		Title:          g.Title,
		Description:    g.Description,
		Category:       g.Category,
		Images:         ToMediaDTOs(g.Images),
		Image:          firstURL(g.Images),
	}
}

func ToRollNumberDTO(r models.RollNumber, includeAudit bool) dto.RollNumberDTO {
	return dto.RollNumberDTO{
		ContentMetaDTO: ToContentMetaDTO(r.ContentMeta, includeAudit),
		Title:          r.Title,
		Program:        r.Program,
		Semester:       r.Semester,
		AcademicYear:   r.AcademicYear,
		FileURL:        r.FileURL,
		Images:         ToMediaDTOs(r.Images),
	}
}
