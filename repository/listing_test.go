package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQueryNormalize(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, 1, 10},
		{"negative page", -3, 5, 1, 5},
		{"limit capped", 2, 500, 2, 100},
		{"valid passthrough", 4, 25, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := ListQuery{Page: tt.page, Limit: tt.limit}
			q.Normalize()
			assert.Equal(t, tt.wantPage, q.Page)
			assert.Equal(t, tt.wantLimit, q.Limit)
		})
	}
}

func TestListQueryOffset(t *testing.T) {
	q := ListQuery{Page: 3, Limit: 5}
	q.Normalize()
	assert.Equal(t, 10, q.Offset())

	first := ListQuery{Page: 1, Limit: 20}
	first.Normalize()
	assert.Equal(t, 0, first.Offset())
}

func TestListQueryOrderWhitelist(t *testing.T) {
	q := ListQuery{
		SortColumns:  map[string]string{"title": "title", "date": "created_at"},
		DefaultOrder: "created_at DESC",
	}

	q.SortBy = "title"
	q.SortOrder = "asc"
	assert.Equal(t, "title ASC", q.Order())

	q.SortOrder = "DESC"
	assert.Equal(t, "title DESC", q.Order())

	q.SortBy = "password_hash"
	assert.Equal(t, "created_at DESC", q.Order())

	q.SortBy = ""
	assert.Equal(t, "created_at DESC", q.Order())
}

func TestListQueryOrderDefaultFallback(t *testing.T) {
	q := ListQuery{}
	assert.Equal(t, "created_at DESC", q.Order())

	q.DefaultOrder = "display_order ASC, name ASC"
	assert.Equal(t, "display_order ASC, name ASC", q.Order())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(12, 5))
	assert.Equal(t, 0, TotalPages(42, 0))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\% sports`, escapeLike("100% sports"))
	assert.Equal(t, `roll\_numbers`, escapeLike("roll_numbers"))
	assert.Equal(t, `back\\slash`, escapeLike(`back\slash`))
}

func TestListQueryCacheKey(t *testing.T) {
	t.Run("equivalent queries share a key", func(t *testing.T) {
		explicit := ListQuery{
			Page:  1,
			Limit: 10,
			Exact: map[string]any{"category": "sports", "is_published": true},
		}
		defaulted := ListQuery{
			Exact: map[string]any{"is_published": true, "category": "sports"},
		}
		assert.Equal(t, explicit.CacheKey(), defaulted.CacheKey())
	})

	t.Run("different pages and filters get distinct keys", func(t *testing.T) {
		base := ListQuery{Exact: map[string]any{"category": "sports"}}
		nextPage := ListQuery{Page: 2, Exact: map[string]any{"category": "sports"}}
		otherFilter := ListQuery{Exact: map[string]any{"category": "cultural"}}
		searched := ListQuery{Search: "annual", SearchColumns: []string{"title"}}

		keys := []string{base.CacheKey(), nextPage.CacheKey(), otherFilter.CacheKey(), searched.CacheKey()}
		seen := make(map[string]bool, len(keys))
		for _, k := range keys {
			assert.False(t, seen[k], "key collision: %s", k)
			seen[k] = true
		}
	})

	t.Run("key building does not mutate the query", func(t *testing.T) {
		q := ListQuery{}
		_ = q.CacheKey()
		assert.Equal(t, 0, q.Page)
		assert.Equal(t, 0, q.Limit)
	})
}
