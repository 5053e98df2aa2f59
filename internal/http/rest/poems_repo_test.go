package rest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/versehub/versehub_api/util/values"
)

func TestShouldDelete(t *testing.T) {
	tests := []struct {
		name      string
		rating    int
		threshold int
		want      bool
	}{
		{"above threshold survives", -4, -5, false},
		{"exactly on threshold goes", -5, -5, true},
		{"below threshold goes", -6, -5, true},
		{"positive rating survives", 3, -5, false},
		{"zero rating survives", 0, -5, false},
		{"custom threshold on boundary", -10, -10, true},
		{"custom threshold one above", -9, -10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, shouldDelete(tc.rating, tc.threshold))
		})
	}
}

func TestRateStatus(t *testing.T) {
	status, _, err := rateStatus(ErrPoemNotFound)
	assert.Equal(t, values.NotFound, status)
	assert.NoError(t, err)

	status, message, err := rateStatus(ErrAlreadyVoted)
	assert.Equal(t, values.Conflict, status)
	assert.Equal(t, "This poem was already rated by you", message)
	assert.NoError(t, err)

	boom := errors.New("connection reset")
	status, _, err = rateStatus(boom)
	assert.Equal(t, values.Error, status)
	assert.Equal(t, boom, err)
}

func TestFavoriteStatus(t *testing.T) {
	status, _, err := favoriteStatus(ErrPoemNotFound)
	assert.Equal(t, values.NotFound, status)
	assert.NoError(t, err)

	status, _, err = favoriteStatus(ErrFavoriteUnchanged)
	assert.Equal(t, values.Conflict, status)
	assert.NoError(t, err)

	boom := errors.New("connection reset")
	status, _, err = favoriteStatus(boom)
	assert.Equal(t, values.Error, status)
	assert.Equal(t, boom, err)
}
