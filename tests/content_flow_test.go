// Package tests contains integration tests for the generic content flow
package tests

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencampus/college-cms/app/services"
	businessflow "github.com/opencampus/college-cms/business_flow"
	"github.com/opencampus/college-cms/models"
	"github.com/opencampus/college-cms/repository"
	testingutil "github.com/opencampus/college-cms/testing"
)

// failingStorage always errors, to prove content deletion never depends on
// the media backend.
type failingStorage struct{}

func (failingStorage) Store(ctx context.Context, folder, originalName string, size int64, r io.Reader) (*services.StoredMedia, error) {
	return nil, errors.New("storage is down")
}

func (failingStorage) Delete(ctx context.Context, publicID string) error {
	return errors.New("storage is down")
}

func newNewsFlow(testDB *testingutil.TestDB, storage services.MediaStorage) (businessflow.ContentFlow[models.News], repository.ContentRepository[models.News]) {
	repo := repository.NewContentRepository[models.News](testDB.DB)
	flow := businessflow.NewContentFlow[models.News, *models.News](repo, storage, nil, "news", true)
	return flow, repo
}

func TestContentListingConvention(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)
		flow, _ := newNewsFlow(testDB, nil)
		ctx := testingutil.CreateTestContext()

		admin, err := fixtures.CreateTestAdmin(models.RoleAdmin)
		require.NoError(t, err)

		// 12 published sports articles plus 3 drafts and some noise
		for i := 1; i <= 12; i++ {
			_, err := fixtures.CreateTestNews(fmt.Sprintf("Sports update %02d", i), models.NewsCategorySports, true, admin.ID)
			require.NoError(t, err)
		}
		for i := 1; i <= 3; i++ {
			_, err := fixtures.CreateTestNews(fmt.Sprintf("Sports draft %02d", i), models.NewsCategorySports, false, admin.ID)
			require.NoError(t, err)
		}
		_, err = fixtures.CreateTestNews("Annual cultural night", models.NewsCategoryCultural, true, admin.ID)
		require.NoError(t, err)

		t.Run("public search paginates published rows only", func(t *testing.T) {
			items, pagination, err := flow.List(ctx, repository.ListQuery{
				Page:          2,
				Limit:         5,
				Search:        "sports",
				SearchColumns: []string{"title", "summary", "content"},
			}, true)
			require.NoError(t, err)

			assert.Len(t, items, 5)
			assert.Equal(t, 2, pagination.CurrentPage)
			assert.Equal(t, 3, pagination.TotalPages)
			assert.Equal(t, int64(12), pagination.TotalItems)
			assert.True(t, pagination.HasNext)
			assert.True(t, pagination.HasPrev)

			for _, item := range items {
				assert.True(t, *item.IsPublished, "drafts must not appear in public listings")
			}
		})

		t.Run("admin listing includes drafts", func(t *testing.T) {
			_, pagination, err := flow.List(ctx, repository.ListQuery{
				Limit: 100,
				Exact: map[string]any{"category": models.NewsCategorySports},
			}, false)
			require.NoError(t, err)
			assert.Equal(t, int64(15), pagination.TotalItems)
		})

		t.Run("status filter narrows to drafts", func(t *testing.T) {
			items, pagination, err := flow.List(ctx, repository.ListQuery{
				Limit: 100,
				Exact: map[string]any{"is_published": false},
			}, false)
			require.NoError(t, err)
			assert.Equal(t, int64(3), pagination.TotalItems)
			for _, item := range items {
				assert.False(t, *item.IsPublished)
			}
		})

		t.Run("out of range page returns empty slice with real totals", func(t *testing.T) {
			items, pagination, err := flow.List(ctx, repository.ListQuery{
				Page:  50,
				Limit: 10,
			}, true)
			require.NoError(t, err)
			assert.Empty(t, items)
			assert.Equal(t, int64(13), pagination.TotalItems)
			assert.False(t, pagination.HasNext)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestContentGetAndToggles(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)
		flow, _ := newNewsFlow(testDB, nil)
		ctx := testingutil.CreateTestContext()

		admin, err := fixtures.CreateTestAdmin(models.RoleAdmin)
		require.NoError(t, err)

		draft, err := fixtures.CreateTestNews("Hidden draft", models.NewsCategoryAcademic, false, admin.ID)
		require.NoError(t, err)

		t.Run("public get hides drafts", func(t *testing.T) {
			_, err := flow.Get(ctx, draft.ID, true)
			require.Error(t, err)
			assert.True(t, businessflow.IsContentNotFound(err))
		})

		t.Run("admin get sees drafts", func(t *testing.T) {
			got, err := flow.Get(ctx, draft.ID, false)
			require.NoError(t, err)
			assert.Equal(t, draft.Title, got.Title)
		})

		t.Run("toggle published flips and persists", func(t *testing.T) {
			toggled, err := flow.TogglePublished(ctx, draft.ID, admin.ID)
			require.NoError(t, err)
			assert.True(t, *toggled.IsPublished)

			// Now visible publicly
			got, err := flow.Get(ctx, draft.ID, true)
			require.NoError(t, err)
			assert.True(t, *got.IsPublished)
		})

		t.Run("toggle featured flips the flag", func(t *testing.T) {
			toggled, err := flow.ToggleFeatured(ctx, draft.ID, admin.ID)
			require.NoError(t, err)
			assert.True(t, *toggled.IsFeatured)
		})

		t.Run("featured toggle is refused where unsupported", func(t *testing.T) {
			contactRepo := repository.NewContentRepository[models.Contact](testDB.DB)
			contactFlow := businessflow.NewContentFlow[models.Contact, *models.Contact](contactRepo, nil, nil, "contacts", false)

			_, err := contactFlow.ToggleFeatured(ctx, 1, admin.ID)
			require.Error(t, err)

			var be *businessflow.BusinessError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, "FEATURED_NOT_SUPPORTED", be.Code)
		})

		t.Run("missing id maps to not found", func(t *testing.T) {
			_, err := flow.Get(ctx, 999999, false)
			require.Error(t, err)
			assert.True(t, businessflow.IsContentNotFound(err))
		})

		return nil
	})
	require.NoError(t, err)
}

func TestContentDeleteIsStorageIndependent(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)
		flow, repo := newNewsFlow(testDB, failingStorage{})
		ctx := testingutil.CreateTestContext()

		admin, err := fixtures.CreateTestAdmin(models.RoleAdmin)
		require.NoError(t, err)

		article, err := fixtures.CreateTestNews("Doomed article", models.NewsCategoryEvent, true, admin.ID)
		require.NoError(t, err)
		article.Images = models.MediaList{{URL: "/uploads/news/a.jpg", PublicID: "news/a.jpg"}}
		require.NoError(t, testDB.DB.Save(article).Error)

		t.Run("row is gone even when attachment cleanup fails", func(t *testing.T) {
			require.NoError(t, flow.Delete(ctx, article.ID))

			got, err := repo.ByID(ctx, article.ID)
			require.NoError(t, err)
			assert.Nil(t, got)
		})

		t.Run("bulk delete reports affected rows and skips unknown ids", func(t *testing.T) {
			a, err := fixtures.CreateTestNews("Bulk one", models.NewsCategorySports, true, admin.ID)
			require.NoError(t, err)
			b, err := fixtures.CreateTestNews("Bulk two", models.NewsCategorySports, true, admin.ID)
			require.NoError(t, err)

			deleted, err := flow.BulkDelete(ctx, []uint{a.ID, b.ID, 999999})
			require.NoError(t, err)
			assert.Equal(t, int64(2), deleted)
		})

		t.Run("bulk delete with no ids is rejected", func(t *testing.T) {
			_, err := flow.BulkDelete(ctx, nil)
			require.Error(t, err)

			var be *businessflow.BusinessError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, "INVALID_REQUEST", be.Code)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestContentCreateAndUpdateAudit(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)
		flow, _ := newNewsFlow(testDB, nil)
		ctx := testingutil.CreateTestContext()

		creator, err := fixtures.CreateTestAdmin(models.RoleAdmin)
		require.NoError(t, err)
		editor, err := fixtures.CreateTestAdmin(models.RoleContentManager)
		require.NoError(t, err)

		article := models.News{
			Title:    "Audited article",
			Category: models.NewsCategoryAnnouncement,
		}
		require.NoError(t, flow.Create(ctx, &article, creator.ID))

		assert.NotZero(t, article.ID)
		assert.NotEqual(t, uuid.Nil, article.UUID)
		require.NotNil(t, article.CreatedByID)
		assert.Equal(t, creator.ID, *article.CreatedByID)
		assert.True(t, *article.IsPublished, "publish defaults to true")
		assert.False(t, *article.IsFeatured)

		article.Summary = "Now with a summary"
		require.NoError(t, flow.Update(ctx, &article, editor.ID, nil))

		got, err := flow.Get(ctx, article.ID, false)
		require.NoError(t, err)
		require.NotNil(t, got.LastModifiedByID)
		assert.Equal(t, editor.ID, *got.LastModifiedByID)
		require.NotNil(t, got.CreatedByID)
		assert.Equal(t, creator.ID, *got.CreatedByID, "creator is preserved across edits")

		return nil
	})
	require.NoError(t, err)
}

func TestRemovedAttachments(t *testing.T) {
	old := models.MediaList{
		{PublicID: "news/a.jpg", URL: "/uploads/news/a.jpg"},
		{PublicID: "news/b.jpg", URL: "/uploads/news/b.jpg"},
	}
	updated := models.MediaList{
		{PublicID: "news/b.jpg", URL: "/uploads/news/b.jpg"},
		{PublicID: "news/c.jpg", URL: "/uploads/news/c.jpg"},
	}

	removed := businessflow.RemovedAttachments(old, updated)
	require.Len(t, removed, 1)
	assert.Equal(t, "news/a.jpg", removed[0].PublicID)

	assert.Empty(t, businessflow.RemovedAttachments(nil, updated))
	assert.Len(t, businessflow.RemovedAttachments(old, nil), 2)
}
