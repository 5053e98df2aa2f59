package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/versehub/versehub_api/config"
	"github.com/versehub/versehub_api/util"
	"github.com/versehub/versehub_api/util/values"
)

func testAPI() *API {
	return &API{
		Config: &config.Config{
			JwtSecret:     "test-secret",
			JwtExpires:    "15m",
			RefreshSecret: "test-refresh-secret",
			RefreshExpiry: "720h",
		},
	}
}

func TestTokenRoundTrip(t *testing.T) {
	api := testAPI()
	userID := uuid.New().String()

	token, _, err := api.createToken(userID, values.AdminRole)
	require.NoError(t, err)

	claims, err := api.verifyToken(token, false)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, values.AdminRole, claims.Role)
}

func TestVerifyTokenRejectsWrongType(t *testing.T) {
	api := testAPI()

	refresh, _, err := api.createRefreshToken(uuid.New().String(), 0)
	require.NoError(t, err)

	// A refresh token must not pass as an access token, and vice versa.
	_, err = api.verifyToken(refresh, false)
	assert.Error(t, err)

	access, _, err := api.createToken(uuid.New().String(), 0)
	require.NoError(t, err)
	_, err = api.verifyToken(access, true)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsTampered(t *testing.T) {
	api := testAPI()

	token, _, err := api.createToken(uuid.New().String(), 0)
	require.NoError(t, err)

	_, err = api.verifyToken(token+"x", false)
	assert.Error(t, err)
}

func TestRequireLoginAttachesViewer(t *testing.T) {
	api := testAPI()
	userID := uuid.New()

	token, _, err := api.createToken(userID.String(), values.AdminRole)
	require.NoError(t, err)

	var gotViewer util.Viewer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewer, err := util.GetViewerFromContext(r.Context())
		require.NoError(t, err)
		gotViewer = viewer
	})

	r := httptest.NewRequest("GET", "/poems/private", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	api.RequireLogin(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, gotViewer.ID)
	assert.True(t, gotViewer.IsAdmin())
}

func TestRequireLoginRejectsMissingToken(t *testing.T) {
	api := testAPI()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	})

	r := httptest.NewRequest("GET", "/poems/private", nil)
	w := httptest.NewRecorder()

	api.RequireLogin(next).ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminRejectsRegularUser(t *testing.T) {
	api := testAPI()

	token, _, err := api.createToken(uuid.New().String(), 0)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	})

	r := httptest.NewRequest("GET", "/poems/reports", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	api.RequireLogin(api.RequireAdmin(next)).ServeHTTP(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	api := testAPI()

	token, _, err := api.createToken(uuid.New().String(), values.AdminRole)
	require.NoError(t, err)

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	})

	r := httptest.NewRequest("GET", "/poems/reports", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	api.RequireLogin(api.RequireAdmin(next)).ServeHTTP(w, r)
	assert.True(t, reached)
}
