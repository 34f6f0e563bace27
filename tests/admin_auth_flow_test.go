// Package tests contains integration tests for the admin authentication flow
package tests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencampus/college-cms/app/dto"
	"github.com/opencampus/college-cms/app/services"
	businessflow "github.com/opencampus/college-cms/business_flow"
	"github.com/opencampus/college-cms/models"
	"github.com/opencampus/college-cms/repository"
	testingutil "github.com/opencampus/college-cms/testing"
	"github.com/opencampus/college-cms/utils"
)

func newTestTokenService(t *testing.T) services.TokenService {
	t.Helper()
	svc, err := services.NewTokenService(
		time.Hour, 24*time.Hour,
		"college-cms-test", "college-cms-test-api",
		false, "", "",
		"test-secret-key-with-32-characters!!",
	)
	require.NoError(t, err)
	return svc
}

func TestAdminLoginFlow(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)
		adminRepo := repository.NewAdminRepository(testDB.DB)
		tokenService := newTestTokenService(t)
		authFlow := businessflow.NewAdminAuthFlow(adminRepo, tokenService, nil, false, 8, time.Hour)
		ctx := testingutil.CreateTestContext()
		metadata := businessflow.NewClientMetadata("127.0.0.1", "go-test")

		admin, err := fixtures.CreateTestAdmin(models.RoleAdmin)
		require.NoError(t, err)

		t.Run("successful login by username", func(t *testing.T) {
			resp, err := authFlow.Login(ctx, &dto.AdminLoginRequest{
				Username: admin.Username,
				Password: testingutil.DefaultTestPassword,
			}, metadata)
			require.NoError(t, err)
			require.NotNil(t, resp)

			assert.Equal(t, admin.Username, resp.Admin.Username)
			assert.Equal(t, models.RoleAdmin, resp.Admin.Role)
			assert.NotEmpty(t, resp.Session.AccessToken)
			assert.NotEmpty(t, resp.Session.RefreshToken)
			assert.Equal(t, "Bearer", resp.Session.TokenType)

			// Login recorded
			refreshed, err := adminRepo.ByID(ctx, admin.ID)
			require.NoError(t, err)
			require.NotNil(t, refreshed)
			assert.NotNil(t, refreshed.LastLoginAt)
		})

		t.Run("successful login by email", func(t *testing.T) {
			resp, err := authFlow.Login(ctx, &dto.AdminLoginRequest{
				Username: admin.Email,
				Password: testingutil.DefaultTestPassword,
			}, metadata)
			require.NoError(t, err)
			assert.Equal(t, admin.Email, resp.Admin.Email)
		})

		t.Run("unknown account yields the uniform credential error", func(t *testing.T) {
			_, err := authFlow.Login(ctx, &dto.AdminLoginRequest{
				Username: "nobody-here",
				Password: testingutil.DefaultTestPassword,
			}, metadata)
			require.Error(t, err)

			var be *businessflow.BusinessError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, "INVALID_CREDENTIALS", be.Code)
		})

		t.Run("wrong password yields the uniform credential error", func(t *testing.T) {
			_, err := authFlow.Login(ctx, &dto.AdminLoginRequest{
				Username: admin.Username,
				Password: "definitely-wrong-password",
			}, metadata)
			require.Error(t, err)

			var be *businessflow.BusinessError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, "INVALID_CREDENTIALS", be.Code)
		})

		t.Run("inactive account is indistinguishable from bad credentials", func(t *testing.T) {
			inactive, err := fixtures.CreateTestAdmin(models.RoleContentManager)
			require.NoError(t, err)
			require.NoError(t, testDB.DB.Model(inactive).Update("is_active", false).Error)

			_, err = authFlow.Login(ctx, &dto.AdminLoginRequest{
				Username: inactive.Username,
				Password: testingutil.DefaultTestPassword,
			}, metadata)
			require.Error(t, err)

			var be *businessflow.BusinessError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, "INVALID_CREDENTIALS", be.Code)
			assert.Equal(t, "Invalid username or password", be.Message)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestAdminProfileAndPasswordChange(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)
		adminRepo := repository.NewAdminRepository(testDB.DB)
		tokenService := newTestTokenService(t)
		authFlow := businessflow.NewAdminAuthFlow(adminRepo, tokenService, nil, false, 8, time.Hour)
		ctx := testingutil.CreateTestContext()
		metadata := businessflow.NewClientMetadata("127.0.0.1", "go-test")

		admin, err := fixtures.CreateTestAdmin(models.RoleSuperAdmin)
		require.NoError(t, err)

		t.Run("profile returns the account without secrets", func(t *testing.T) {
			resp, err := authFlow.Profile(ctx, admin.ID)
			require.NoError(t, err)
			assert.Equal(t, admin.Username, resp.Admin.Username)
			assert.Equal(t, models.RoleSuperAdmin, resp.Admin.Role)
		})

		t.Run("profile for unknown id is unauthenticated", func(t *testing.T) {
			_, err := authFlow.Profile(ctx, 999999)
			require.Error(t, err)

			var be *businessflow.BusinessError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, "UNAUTHENTICATED", be.Code)
		})

		t.Run("short new password is rejected", func(t *testing.T) {
			err := authFlow.ChangePassword(ctx, admin.ID, &dto.ChangePasswordRequest{
				CurrentPassword: testingutil.DefaultTestPassword,
				NewPassword:     "short",
			})
			require.Error(t, err)

			var be *businessflow.BusinessError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, "PASSWORD_TOO_SHORT", be.Code)
		})

		t.Run("current password is verified before the new one is judged", func(t *testing.T) {
			err := authFlow.ChangePassword(ctx, admin.ID, &dto.ChangePasswordRequest{
				CurrentPassword: "not-the-password",
				NewPassword:     "short",
			})
			require.Error(t, err)

			var be *businessflow.BusinessError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, "INVALID_CREDENTIALS", be.Code)
		})

		t.Run("wrong current password is rejected", func(t *testing.T) {
			err := authFlow.ChangePassword(ctx, admin.ID, &dto.ChangePasswordRequest{
				CurrentPassword: "not-the-password",
				NewPassword:     "NewPassword123!",
			})
			require.Error(t, err)

			var be *businessflow.BusinessError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, "INVALID_CREDENTIALS", be.Code)
		})

		t.Run("password change takes effect on next login", func(t *testing.T) {
			require.NoError(t, authFlow.ChangePassword(ctx, admin.ID, &dto.ChangePasswordRequest{
				CurrentPassword: testingutil.DefaultTestPassword,
				NewPassword:     "NewPassword123!",
			}))

			_, err := authFlow.Login(ctx, &dto.AdminLoginRequest{
				Username: admin.Username,
				Password: testingutil.DefaultTestPassword,
			}, metadata)
			require.Error(t, err)

			resp, err := authFlow.Login(ctx, &dto.AdminLoginRequest{
				Username: admin.Username,
				Password: "NewPassword123!",
			}, metadata)
			require.NoError(t, err)
			assert.NotEmpty(t, resp.Session.AccessToken)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestAdminTokenRefresh(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)
		adminRepo := repository.NewAdminRepository(testDB.DB)
		tokenService := newTestTokenService(t)
		authFlow := businessflow.NewAdminAuthFlow(adminRepo, tokenService, nil, false, 8, time.Hour)
		ctx := testingutil.CreateTestContext()
		metadata := businessflow.NewClientMetadata("127.0.0.1", "go-test")

		admin, err := fixtures.CreateTestAdmin(models.RoleAdmin)
		require.NoError(t, err)

		login, err := authFlow.Login(ctx, &dto.AdminLoginRequest{
			Username: admin.Username,
			Password: testingutil.DefaultTestPassword,
		}, metadata)
		require.NoError(t, err)

		t.Run("refresh token yields a fresh pair", func(t *testing.T) {
			resp, err := authFlow.RefreshToken(ctx, &dto.RefreshTokenRequest{
				RefreshToken: login.Session.RefreshToken,
			})
			require.NoError(t, err)
			assert.NotEmpty(t, resp.Session.AccessToken)
			assert.NotEmpty(t, resp.Session.RefreshToken)
		})

		t.Run("access token is rejected as refresh token", func(t *testing.T) {
			_, err := authFlow.RefreshToken(ctx, &dto.RefreshTokenRequest{
				RefreshToken: login.Session.AccessToken,
			})
			require.Error(t, err)

			var be *businessflow.BusinessError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, "UNAUTHENTICATED", be.Code)
		})

		t.Run("refresh for a deactivated account fails", func(t *testing.T) {
			require.NoError(t, testDB.DB.Model(&models.Admin{}).
				Where("id = ?", admin.ID).Update("is_active", false).Error)

			_, err := authFlow.RefreshToken(ctx, &dto.RefreshTokenRequest{
				RefreshToken: login.Session.RefreshToken,
			})
			require.Error(t, err)

			// Restore for any later subtests
			require.NoError(t, testDB.DB.Model(&models.Admin{}).
				Where("id = ?", admin.ID).Update("is_active", utils.ToPtr(true)).Error)
		})

		return nil
	})
	require.NoError(t, err)
}
