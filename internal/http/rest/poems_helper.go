package rest

import (
	"context"

	"github.com/google/uuid"
	"github.com/versehub/versehub_api/internal/model"
	"github.com/versehub/versehub_api/util"
	"github.com/versehub/versehub_api/util/values"
)

func (api *API) GetFeedHelper(ctx context.Context, q feedQuery) ([]model.AnnotatedPoem, string, string, error) {
	poems, err := api.ListPoemsRepo(ctx, q)
	if err != nil {
		return nil, values.Error, "Failed to fetch poems", err
	}
	return poems, values.Success, "Poems fetched successfully", nil
}

func (api *API) GetPoemHelper(ctx context.Context, viewerID uuid.UUID, poemID int64) (model.AnnotatedPoem, string, string, error) {
	poem, err := api.GetPoemByIDRepo(ctx, viewerID, poemID)
	if err != nil {
		if err == ErrPoemNotFound {
			return model.AnnotatedPoem{}, values.NotFound, "No poem with this id found", nil
		}
		return model.AnnotatedPoem{}, values.Error, "Failed to fetch poem", err
	}
	return poem, values.Success, "Poem fetched successfully", nil
}

func (api *API) CreatePoemHelper(ctx context.Context, userID uuid.UUID, poemText string) (model.Poem, string, string, error) {
	poem, err := api.InsertPoemRepo(ctx, userID, poemText)
	if err != nil {
		return model.Poem{}, values.Error, "Failed to create poem", err
	}
	return poem, values.Created, "Poem created successfully", nil
}

func (api *API) UpdatePoemHelper(ctx context.Context, viewer util.Viewer, poemID int64, poemText string) (string, string, error) {
	authorID, err := api.GetPoemAuthorRepo(ctx, poemID)
	if err != nil {
		if err == ErrPoemNotFound {
			return values.NotFound, "No poem with this id found", nil
		}
		return values.Error, "Failed to fetch poem", err
	}

	if authorID != viewer.ID && !viewer.IsAdmin() {
		return values.NotAllowed, "Only the author or an admin may edit this poem", nil
	}

	if err := api.UpdatePoemRepo(ctx, poemID, poemText); err != nil {
		if err == ErrPoemNotFound {
			return values.NotFound, "No poem with this id found", nil
		}
		return values.Error, "Failed to update poem", err
	}
	return values.Success, "Poem updated successfully", nil
}

func (api *API) DeletePoemHelper(ctx context.Context, viewer util.Viewer, poemID int64) (string, string, error) {
	authorID, err := api.GetPoemAuthorRepo(ctx, poemID)
	if err != nil {
		if err == ErrPoemNotFound {
			return values.NotFound, "No poem with this id found", nil
		}
		return values.Error, "Failed to fetch poem", err
	}

	if authorID != viewer.ID && !viewer.IsAdmin() {
		return values.NotAllowed, "Only the author or an admin may delete this poem", nil
	}

	if err := api.DeletePoemRepo(ctx, poemID); err != nil {
		return values.Error, "Failed to delete poem", err
	}
	return values.Success, "Poem deleted successfully", nil
}

// rateStatus maps a vote failure onto the response status. Expected outcomes
// (missing poem, second vote from the same user) resolve the request; anything
// else passes through as the internal error.
func rateStatus(err error) (string, string, error) {
	switch err {
	case ErrPoemNotFound:
		return values.NotFound, "No poem with this id found", nil
	case ErrAlreadyVoted:
		return values.Conflict, "This poem was already rated by you", nil
	}
	return values.Error, "Failed to rate poem", err
}

func (api *API) RatePoemHelper(ctx context.Context, poemID int64, viewer util.Viewer, value int) (model.RateResponse, string, string, error) {
	rating, deleted, err := api.ApplyVoteRepo(ctx, poemID, viewer.ID, value)
	if err != nil {
		status, message, err := rateStatus(err)
		return model.RateResponse{}, status, message, err
	}
	return model.RateResponse{Rating: rating, Deleted: deleted}, values.Success, "Rating was successful", nil
}

func favoriteStatus(err error) (string, string, error) {
	switch err {
	case ErrPoemNotFound:
		return values.NotFound, "No poem with this id found", nil
	case ErrFavoriteUnchanged:
		return values.Conflict, "The state you try to achieve is already met", nil
	}
	return values.Error, "Failed to change favorite state", err
}

func (api *API) SetFavoriteHelper(ctx context.Context, poemID int64, viewer util.Viewer, desired bool) (string, string, error) {
	if err := api.SetFavoriteRepo(ctx, poemID, viewer.ID, desired); err != nil {
		return favoriteStatus(err)
	}
	return values.Success, "Favorite operation was successful", nil
}

func (api *API) PublicPoemHelper(ctx context.Context) (model.PublicPoem, string, string, error) {
	poem, err := api.RandomPublicPoemRepo(ctx)
	if err != nil {
		if err == ErrPoemNotFound {
			return model.PublicPoem{}, values.NotFound, "No public poems available", nil
		}
		return model.PublicPoem{}, values.Error, "Failed to fetch public poem", err
	}
	return poem, values.Success, "Public poem fetched successfully", nil
}
