package repository

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/opencampus/college-cms/utils"
)

// ListQuery is the single filter/search/sort/pagination convention every list
// endpoint goes through. Flows build one per request; the repository applies
// it to both the page fetch and the matching count so the two always agree on
// the filter set.
type ListQuery struct {
	Page  int
	Limit int

	// Search ORs a case-insensitive substring match over SearchColumns.
	Search        string
	SearchColumns []string

	// Exact maps column name to an equality value. Sentinel values ("all",
	// empty) must be dropped by the caller before they reach here.
	Exact map[string]any

	// Match maps column name to a case-insensitive substring value.
	Match map[string]string

	// SortBy is accepted only when present in SortColumns (request parameter
	// name to column name); anything else falls back to DefaultOrder.
	SortBy       string
	SortOrder    string
	SortColumns  map[string]string
	DefaultOrder string

	// DefaultLimit replaces a missing or non-positive limit.
	DefaultLimit int
}

// Normalize clamps pagination parameters into their valid ranges.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.DefaultLimit <= 0 {
		q.DefaultLimit = utils.DefaultPageLimit
	}
	if q.Limit <= 0 {
		q.Limit = q.DefaultLimit
	}
	if q.Limit > utils.MaxPageLimit {
		q.Limit = utils.MaxPageLimit
	}
}

// Offset returns the row offset for the normalized page.
func (q *ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Order resolves the ORDER BY clause, whitelisting the requested sort column.
func (q *ListQuery) Order() string {
	order := q.DefaultOrder
	if order == "" {
		order = "created_at DESC"
	}
	if q.SortBy == "" {
		return order
	}
	column, ok := q.SortColumns[q.SortBy]
	if !ok {
		return order
	}
	direction := "ASC"
	if strings.EqualFold(q.SortOrder, "desc") {
		direction = "DESC"
	}
	return fmt.Sprintf("%s %s", column, direction)
}

// Apply adds the filter and search conditions to the query. Ordering and
// pagination are applied separately so the same conditions drive the count.
func (q *ListQuery) Apply(db *gorm.DB) *gorm.DB {
	for column, value := range q.Exact {
		db = db.Where(fmt.Sprintf("%s = ?", column), value)
	}
	for column, value := range q.Match {
		if value == "" {
			continue
		}
		db = db.Where(fmt.Sprintf("%s ILIKE ?", column), "%"+escapeLike(value)+"%")
	}
	if q.Search != "" && len(q.SearchColumns) > 0 {
		pattern := "%" + escapeLike(q.Search) + "%"
		clauses := make([]string, 0, len(q.SearchColumns))
		args := make([]any, 0, len(q.SearchColumns))
		for _, column := range q.SearchColumns {
			clauses = append(clauses, fmt.Sprintf("%s ILIKE ?", column))
			args = append(args, pattern)
		}
		db = db.Where(strings.Join(clauses, " OR "), args...)
	}
	return db
}

// CacheKey renders the normalized query as a deterministic string, so two
// requests that resolve to the same page of the same filter set share one
// cache entry regardless of parameter order or defaulting.
func (q ListQuery) CacheKey() string {
	q.Normalize()

	var b strings.Builder
	fmt.Fprintf(&b, "p=%d&l=%d&o=%s", q.Page, q.Limit, q.Order())
	if q.Search != "" {
		fmt.Fprintf(&b, "&s=%s", strings.ToLower(q.Search))
	}
	for _, column := range sortedKeys(q.Exact) {
		fmt.Fprintf(&b, "&e.%s=%v", column, q.Exact[column])
	}
	for _, column := range sortedKeys(q.Match) {
		if q.Match[column] == "" {
			continue
		}
		fmt.Fprintf(&b, "&m.%s=%s", column, strings.ToLower(q.Match[column]))
	}
	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TotalPages computes ceil(total/limit) for the pagination block.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	return strings.ReplaceAll(s, "_", `\_`)
}
