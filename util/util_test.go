package util

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/versehub/versehub_api/util/values"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		status string
		want   int
	}{
		{values.Success, http.StatusOK},
		{values.Created, http.StatusCreated},
		{values.Error, http.StatusInternalServerError},
		{values.BadRequestBody, http.StatusBadRequest},
		{values.Unprocessable, http.StatusUnprocessableEntity},
		{values.NotAllowed, http.StatusForbidden},
		{values.Conflict, http.StatusConflict},
		{values.NotFound, http.StatusNotFound},
		{values.NotAuthorised, http.StatusUnauthorized},
		{values.TokenExpired, http.StatusUnauthorized},
		{"anything-else", http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.status, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusCode(tc.status))
		})
	}
}

func TestValidPoemText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"single character", "a", true},
		{"at the limit", strings.Repeat("a", 256), true},
		{"over the limit", strings.Repeat("a", 257), false},
		// Bounds are counted in code points, not bytes.
		{"multibyte at the limit", strings.Repeat("ä", 256), true},
		{"multibyte over the limit", strings.Repeat("ä", 257), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidPoemText(tc.text))
		})
	}
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("poet@example.com"))
	assert.False(t, IsEmail("not-an-email"))
	assert.False(t, IsEmail(""))
	assert.False(t, IsEmail(strings.Repeat("a", 250)+"@example.com"))
}

func TestNotBlank(t *testing.T) {
	assert.True(t, NotBlank("verse"))
	assert.False(t, NotBlank("   "))
	assert.False(t, NotBlank(""))
}

func TestGetViewerFromContext(t *testing.T) {
	viewer := Viewer{ID: uuid.New(), Role: values.AdminRole}
	ctx := context.WithValue(context.Background(), values.ContextViewerKey, viewer)

	got, err := GetViewerFromContext(ctx)
	assert.NoError(t, err)
	assert.Equal(t, viewer, got)
	assert.True(t, got.IsAdmin())

	_, err = GetViewerFromContext(context.Background())
	assert.Error(t, err)
}
