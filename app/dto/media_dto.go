// Package dto
package dto

// UploadMediaResponse is returned by the admin upload endpoint
type UploadMediaResponse struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	PublicID     string `json:"publicId"`
	OriginalName string `json:"originalName"`
	SizeBytes    int64  `json:"sizeBytes"`
	MimeType     string `json:"mimeType"`
}

// DeleteMediaRequest removes one stored file by its public ID
type DeleteMediaRequest struct {
	PublicID string `json:"publicId" validate:"required,max=512"`
}
