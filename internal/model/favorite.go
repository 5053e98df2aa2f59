package model

type FavoriteRequest struct {
	Favorite *bool `json:"favorite" validate:"required"`
}
