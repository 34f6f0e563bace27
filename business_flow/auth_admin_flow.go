package businessflow

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/opencampus/college-cms/app/dto"
	"github.com/opencampus/college-cms/app/services"
	"github.com/opencampus/college-cms/repository"
	"github.com/opencampus/college-cms/utils"
)

// AdminAuthFlow represents the admin authentication lifecycle used by handlers
type AdminAuthFlow interface {
	InitCaptcha(ctx context.Context) (*dto.AdminCaptchaInitResponse, error)
	Login(ctx context.Context, req *dto.AdminLoginRequest, metadata *ClientMetadata) (*dto.AdminLoginResponse, error)
	Profile(ctx context.Context, adminID uint) (*dto.AdminProfileResponse, error)
	ChangePassword(ctx context.Context, adminID uint, req *dto.ChangePasswordRequest) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.AdminLoginResponse, error)
}

// AdminAuthFlowImpl implements AdminAuthFlow
type AdminAuthFlowImpl struct {
	adminRepo      repository.AdminRepository
	tokenService   services.TokenService
	captchaSvc     services.CaptchaService
	captchaEnabled bool
	minPasswordLen int
	accessTTL      time.Duration
}

// NewAdminAuthFlow creates a new admin auth flow instance
func NewAdminAuthFlow(
	adminRepo repository.AdminRepository,
	tokenService services.TokenService,
	captchaSvc services.CaptchaService,
	captchaEnabled bool,
	minPasswordLen int,
	accessTTL time.Duration,
) AdminAuthFlow {
	if minPasswordLen <= 0 {
		minPasswordLen = 8
	}
	if accessTTL <= 0 {
		accessTTL = utils.AccessTokenTTL
	}
	return &AdminAuthFlowImpl{
		adminRepo:      adminRepo,
		tokenService:   tokenService,
		captchaSvc:     captchaSvc,
		captchaEnabled: captchaEnabled,
		minPasswordLen: minPasswordLen,
		accessTTL:      accessTTL,
	}
}

func (af *AdminAuthFlowImpl) InitCaptcha(ctx context.Context) (*dto.AdminCaptchaInitResponse, error) {
	if !af.captchaEnabled || af.captchaSvc == nil {
		return nil, NewBusinessError("CAPTCHA_NOT_AVAILABLE", "Captcha is not enabled", nil)
	}
	ch, err := af.captchaSvc.GenerateRotate(ctx)
	if err != nil {
		return nil, NewBusinessError("CAPTCHA_INIT_FAILED", "Failed to initialize captcha", err)
	}
	return &dto.AdminCaptchaInitResponse{
		ChallengeID:       ch.ID,
		MasterImageBase64: ch.MasterImageBase64,
		ThumbImageBase64:  ch.ThumbImageBase64,
	}, nil
}

// Login verifies credentials and issues a token pair. Unknown identity, wrong
// password, and deactivated account all fail with the same code so the
// response never reveals which part was wrong.
func (af *AdminAuthFlowImpl) Login(ctx context.Context, req *dto.AdminLoginRequest, metadata *ClientMetadata) (*dto.AdminLoginResponse, error) {
	if req == nil || req.Username == "" || req.Password == "" {
		return nil, NewBusinessError("INVALID_CREDENTIALS", "Invalid username or password", ErrInvalidCredentials)
	}

	if af.captchaEnabled {
		if req.ChallengeID == "" || af.captchaSvc == nil || !af.captchaSvc.VerifyRotate(ctx, req.ChallengeID, req.UserAngle) {
			return nil, NewBusinessError("CAPTCHA_INVALID", "Captcha validation failed", ErrInvalidCaptcha)
		}
	}

	admin, err := af.adminRepo.ByUsernameOrEmail(ctx, req.Username)
	if err != nil {
		return nil, NewBusinessError("ADMIN_LOOKUP_FAILED", "Failed to lookup admin", err)
	}
	if admin == nil {
		return nil, NewBusinessError("INVALID_CREDENTIALS", "Invalid username or password", ErrInvalidCredentials)
	}
	if !utils.IsTrue(admin.IsActive) {
		return nil, NewBusinessError("INVALID_CREDENTIALS", "Invalid username or password", ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, NewBusinessError("INVALID_CREDENTIALS", "Invalid username or password", ErrInvalidCredentials)
	}

	accessToken, refreshToken, err := af.tokenService.GenerateAdminTokens(admin.ID, admin.Role)
	if err != nil {
		return nil, NewBusinessError("TOKEN_GENERATION_FAILED", "Failed to generate tokens", err)
	}

	if err := af.adminRepo.UpdateLastLogin(ctx, admin.ID); err != nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Failed to record login", err)
	}

	return &dto.AdminLoginResponse{
		Admin:   ToAdminDTO(*admin),
		Session: ToAdminSessionDTO(accessToken, refreshToken, af.accessTTL),
	}, nil
}

func (af *AdminAuthFlowImpl) Profile(ctx context.Context, adminID uint) (*dto.AdminProfileResponse, error) {
	admin, err := af.adminRepo.ByID(ctx, adminID)
	if err != nil {
		return nil, NewBusinessError("ADMIN_LOOKUP_FAILED", "Failed to lookup admin", err)
	}
	if admin == nil || !utils.IsTrue(admin.IsActive) {
		return nil, NewBusinessError("UNAUTHENTICATED", "Admin account is not available", ErrAdminInactive)
	}
	return &dto.AdminProfileResponse{Admin: ToAdminDTO(*admin)}, nil
}

// ChangePassword re-verifies the current password before accepting a new one.
func (af *AdminAuthFlowImpl) ChangePassword(ctx context.Context, adminID uint, req *dto.ChangePasswordRequest) error {
	if req == nil {
		return NewBusinessError("INVALID_CREDENTIALS", "Current password is incorrect", ErrInvalidCredentials)
	}

	admin, err := af.adminRepo.ByID(ctx, adminID)
	if err != nil {
		return NewBusinessError("ADMIN_LOOKUP_FAILED", "Failed to lookup admin", err)
	}
	if admin == nil || !utils.IsTrue(admin.IsActive) {
		return NewBusinessError("UNAUTHENTICATED", "Admin account is not available", ErrAdminInactive)
	}

	// The caller proves they hold the current password before the new one
	// is judged at all.
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return NewBusinessError("INVALID_CREDENTIALS", "Current password is incorrect", ErrInvalidCredentials)
	}

	if len(req.NewPassword) < af.minPasswordLen {
		return NewBusinessErrorf("PASSWORD_TOO_SHORT", "Password must be at least %d characters", ErrPasswordTooShort, af.minPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return NewBusinessError("PASSWORD_HASH_FAILED", "Failed to hash password", err)
	}

	if err := af.adminRepo.UpdatePassword(ctx, admin.ID, string(hash)); err != nil {
		return NewBusinessError("PASSWORD_UPDATE_FAILED", "Failed to update password", err)
	}

	return nil
}

// RefreshToken re-issues a token pair from a valid refresh token, provided
// the identity is still active.
func (af *AdminAuthFlowImpl) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.AdminLoginResponse, error) {
	if req == nil || req.RefreshToken == "" {
		return nil, NewBusinessError("UNAUTHENTICATED", "Refresh token is required", services.ErrTokenInvalid)
	}

	claims, err := af.tokenService.ValidateAdminToken(req.RefreshToken)
	if err != nil {
		return nil, NewBusinessError("UNAUTHENTICATED", "Refresh token is not valid", err)
	}
	if claims.TokenType != "refresh" {
		return nil, NewBusinessError("UNAUTHENTICATED", "Refresh token is not valid", services.ErrTokenInvalid)
	}

	admin, err := af.adminRepo.ByID(ctx, claims.AdminID)
	if err != nil {
		return nil, NewBusinessError("ADMIN_LOOKUP_FAILED", "Failed to lookup admin", err)
	}
	if admin == nil || !utils.IsTrue(admin.IsActive) {
		return nil, NewBusinessError("UNAUTHENTICATED", "Admin account is not available", ErrAdminInactive)
	}

	accessToken, refreshToken, err := af.tokenService.GenerateAdminTokens(admin.ID, admin.Role)
	if err != nil {
		return nil, NewBusinessError("TOKEN_GENERATION_FAILED", "Failed to generate tokens", err)
	}

	return &dto.AdminLoginResponse{
		Admin:   ToAdminDTO(*admin),
		Session: ToAdminSessionDTO(accessToken, refreshToken, af.accessTTL),
	}, nil
}
