// Package dto
package dto

type AdminDTO struct {
	ID          uint   `json:"id" example:"1"`
	UUID        string `json:"uuid" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	Username    string `json:"username" example:"admin"`
	Email       string `json:"email" example:"admin@college.edu"`
	Role        string `json:"role" example:"super-admin"`
	IsActive    *bool  `json:"isActive" example:"true"`
	LastLoginAt string `json:"lastLoginAt,omitempty" example:"2024-01-15T10:30:00Z"`
	CreatedAt   string `json:"createdAt" example:"2024-01-15T10:30:00Z"`
}

type AdminSessionDTO struct {
	AccessToken  string `json:"accessToken" example:"jwt"`
	RefreshToken string `json:"refreshToken" example:"jwt"`
	ExpiresIn    int    `json:"expiresIn" example:"86400"`
	TokenType    string `json:"tokenType" example:"Bearer"`
	CreatedAt    string `json:"createdAt" example:"2024-01-15T10:30:00Z"`
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=255"`
	Password string `json:"password" validate:"required,min=8,max=100"`

	// Captcha fields, required only when the captcha gate is enabled.
	ChallengeID string  `json:"challengeId" validate:"omitempty"`
	UserAngle   float64 `json:"userAngle" validate:"omitempty"`
}

type AdminLoginResponse struct {
	Admin   AdminDTO        `json:"admin"`
	Session AdminSessionDTO `json:"session"`
}

type AdminCaptchaInitResponse struct {
	ChallengeID       string `json:"challengeId"`
	MasterImageBase64 string `json:"masterImageBase64"`
	ThumbImageBase64  string `json:"thumbImageBase64"`
}

type AdminProfileResponse struct {
	Admin AdminDTO `json:"admin"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=100"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}
