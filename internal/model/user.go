package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Displayname  string    `json:"displayname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         int       `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserStatistics is the caller's own publishing summary: how many poems they
// have published and the sum of every rating those poems received.
type UserStatistics struct {
	NumPoems   int `json:"numPoems"`
	TotalScore int `json:"totalScore"`
}

type FollowRequest struct {
	Follow *bool `json:"follow" validate:"required"`
}
