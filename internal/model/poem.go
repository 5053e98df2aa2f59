package model

import (
	"time"

	"github.com/google/uuid"
)

type Poem struct {
	ID        int64     `json:"poemID"`
	UserID    uuid.UUID `json:"userID"`
	PoemText  string    `json:"poemText"`
	CreatedAt time.Time `json:"timestamp"`
	UpdatedAt time.Time `json:"-"`
}

// AnnotatedPoem is a poem as one particular viewer sees it: the aggregate
// rating plus the viewer's own vote/favorite/follow/report state. The
// annotation fields are computed per request, never stored.
type AnnotatedPoem struct {
	ID          int64     `json:"poemID"`
	UserID      uuid.UUID `json:"userID"`
	Username    string    `json:"username"`
	Displayname string    `json:"displayname"`
	PoemText    string    `json:"poemText"`
	CreatedAt   time.Time `json:"timestamp"`
	Rating      int       `json:"rating"`
	Rated       *int      `json:"rated"` // viewer's own vote, nil when unvoted
	IsFavorite  bool      `json:"isFavorite"`
	IsFollowing bool      `json:"isFollowing"`
	IsReported  bool      `json:"isReported"`
}

type CreatePoemRequest struct {
	PoemText string `json:"poemText" validate:"required,poemtext"`
}

type UpdatePoemRequest struct {
	PoemText string `json:"poemText" validate:"required,poemtext"`
}

type RateResponse struct {
	Rating  int  `json:"rating"`
	Deleted bool `json:"deleted"`
}

// PublicPoem is an editorially curated poem shown to unauthenticated visitors.
type PublicPoem struct {
	ID       int64    `json:"poemID"`
	Title    string   `json:"poemTitle"`
	PoemText string   `json:"poemText"`
	PoetName string   `json:"poetName"`
	Tags     []string `json:"tags"`
}
