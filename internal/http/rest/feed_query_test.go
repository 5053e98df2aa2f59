package rest

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFeedQueryDefaults(t *testing.T) {
	viewer := uuid.New()
	query, args := newFeedQuery(viewer).build()

	assert.NotContains(t, query, "WHERE")
	assert.NotContains(t, query, "HAVING")
	assert.Contains(t, query, "ORDER BY p.created_at DESC, rating DESC")
	assert.Contains(t, query, "LIMIT $2 OFFSET $3")
	assert.Equal(t, []interface{}{viewer, defaultFeedLimit, 0}, args)
}

func TestFeedQueryKeywordsAreConjunctive(t *testing.T) {
	q := newFeedQuery(uuid.New())
	q.keywords = []string{"love", "sun"}

	query, args := q.build()

	// Both keywords must appear as separate AND-ed predicates.
	assert.Contains(t, query, "p.poem_text ILIKE '%' || $2 || '%' AND p.poem_text ILIKE '%' || $3 || '%'")
	assert.Equal(t, "love", args[1])
	assert.Equal(t, "sun", args[2])

	// The keyword text itself must never end up in the statement.
	assert.NotContains(t, query, "love")
	assert.NotContains(t, query, "sun")
}

func TestFeedQueryPersonalFilter(t *testing.T) {
	q := newFeedQuery(uuid.New())
	q.personalOnly = true

	query, _ := q.build()
	assert.Contains(t, query, "WHERE p.user_id = $1")
}

func TestFeedQueryAnnotationFiltersApplyAfterAggregation(t *testing.T) {
	q := newFeedQuery(uuid.New())
	q.favoritesOnly = true
	q.followingOnly = true

	query, _ := q.build()

	havingIdx := strings.Index(query, "HAVING")
	groupIdx := strings.Index(query, "GROUP BY")
	assert.Greater(t, havingIdx, groupIdx)
	assert.Contains(t, query, "HAVING f.poem_id IS NOT NULL AND fw.followed_id IS NOT NULL")
}

func TestFeedQueryOrderByRating(t *testing.T) {
	q := newFeedQuery(uuid.New())
	q.orderBy = orderByRating

	query, _ := q.build()
	assert.Contains(t, query, "ORDER BY rating DESC, p.created_at DESC")
}

func TestFeedQueryPagination(t *testing.T) {
	q := newFeedQuery(uuid.New())
	q.limit = 5
	q.offset = 10
	q.keywords = []string{"rain"}

	query, args := q.build()

	// Pagination placeholders follow the keyword argument.
	assert.Contains(t, query, "LIMIT $3 OFFSET $4")
	assert.Equal(t, 5, args[2])
	assert.Equal(t, 10, args[3])
}

func TestFeedQuerySinglePoemVariant(t *testing.T) {
	viewer := uuid.New()
	query, args := newFeedQuery(viewer).forPoem(42).build()

	assert.Contains(t, query, "p.id = $2")
	assert.NotContains(t, query, "LIMIT")
	assert.Equal(t, []interface{}{viewer, int64(42)}, args)
}

func TestParseFeedOrder(t *testing.T) {
	tests := []struct {
		input string
		want  feedOrder
		ok    bool
	}{
		{"", orderByDate, true},
		{"date", orderByDate, true},
		{"rating", orderByRating, true},
		{"views", "", false},
	}

	for _, tc := range tests {
		got, ok := parseFeedOrder(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		if ok {
			assert.Equal(t, tc.want, got, "input %q", tc.input)
		}
	}
}
