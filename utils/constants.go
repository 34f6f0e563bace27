package utils

import (
	"time"
)

// Token and session time constants
const (
	// AccessTokenTTL is the time-to-live for access tokens (24 hours)
	AccessTokenTTL = 24 * time.Hour

	// RefreshTokenTTL is the time-to-live for refresh tokens (7 days)
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)

// Listing constants
const (
	// DefaultPageLimit is the page size used when a resource does not override it
	DefaultPageLimit = 10

	// MaxPageLimit caps the page size a client may request
	MaxPageLimit = 100
)

// Upload constants
const (
	// MaxUploadSizeBytes is the default limit for uploaded media files (10MB)
	MaxUploadSizeBytes = int64(10 * 1024 * 1024)

	// ThumbnailMaxDim is the bounding size of generated thumbnails in pixels
	ThumbnailMaxDim = 512
)
