package rest

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/versehub/versehub_api/util"
)

func testViewer() util.Viewer {
	return util.Viewer{ID: uuid.New()}
}

func TestParseFeedQueryDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/poems/private", nil)

	q, errs := parseFeedQuery(r, testViewer())

	assert.Empty(t, errs)
	assert.Equal(t, defaultFeedLimit, q.limit)
	assert.Equal(t, 0, q.offset)
	assert.Equal(t, orderByDate, q.orderBy)
	assert.Empty(t, q.keywords)
	assert.False(t, q.personalOnly)
	assert.False(t, q.favoritesOnly)
	assert.False(t, q.followingOnly)
}

func TestParseFeedQueryFull(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/poems/private?numPoems=5&offset=10&orderBy=rating&keywords=love&keywords=sun&filterFavorite=true&filterFollowing=true&filterPersonal=true", nil)

	q, errs := parseFeedQuery(r, testViewer())

	assert.Empty(t, errs)
	assert.Equal(t, 5, q.limit)
	assert.Equal(t, 10, q.offset)
	assert.Equal(t, orderByRating, q.orderBy)
	assert.Equal(t, []string{"love", "sun"}, q.keywords)
	assert.True(t, q.personalOnly)
	assert.True(t, q.favoritesOnly)
	assert.True(t, q.followingOnly)
}

func TestParseFeedQueryBracketedKeywords(t *testing.T) {
	r := httptest.NewRequest("GET", "/poems/private?keywords[]=rain&keywords[]=sea", nil)

	q, errs := parseFeedQuery(r, testViewer())

	assert.Empty(t, errs)
	assert.Equal(t, []string{"rain", "sea"}, q.keywords)
}

func TestParseFeedQueryMalformedParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"numPoems not a number", "numPoems=abc"},
		{"numPoems zero", "numPoems=0"},
		{"numPoems negative", "numPoems=-3"},
		{"offset not a number", "offset=x"},
		{"offset negative", "offset=-1"},
		{"orderBy unknown", "orderBy=views"},
		{"filterFavorite not a bool", "filterFavorite=maybe"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/poems/private?"+tc.query, nil)
			_, errs := parseFeedQuery(r, testViewer())
			assert.Len(t, errs, 1)
		})
	}
}

func TestParseFeedQueryCollectsAllErrors(t *testing.T) {
	r := httptest.NewRequest("GET", "/poems/private?numPoems=0&offset=-1&orderBy=views", nil)

	_, errs := parseFeedQuery(r, testViewer())
	assert.Len(t, errs, 3)
}
