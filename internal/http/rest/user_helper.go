package rest

import (
	"context"

	"github.com/google/uuid"
	"github.com/versehub/versehub_api/internal/model"
	"github.com/versehub/versehub_api/util"
	"github.com/versehub/versehub_api/util/values"
)

func (api *API) SetFollowHelper(ctx context.Context, viewer util.Viewer, followedID uuid.UUID, desired bool) (string, string, error) {
	err := api.SetFollowRepo(ctx, viewer.ID, followedID, desired)
	if err != nil {
		switch err {
		case ErrSelfFollow:
			return values.NotAllowed, "A user cannot follow themselves", nil
		case ErrUserNotFound:
			return values.NotFound, "No user with this id found", nil
		case ErrFollowUnchanged:
			return values.Conflict, "The state you try to achieve is already met", nil
		}
		return values.Error, "Failed to change follow state", err
	}
	return values.Success, "Follow operation was successful", nil
}

func (api *API) GetUserStatisticsHelper(ctx context.Context, viewer util.Viewer) (model.UserStatistics, string, string, error) {
	stats, err := api.GetUserStatisticsRepo(ctx, viewer.ID)
	if err != nil {
		return model.UserStatistics{}, values.Error, "Failed to fetch user statistics", err
	}
	return stats, values.Success, "User statistics fetched successfully", nil
}
