package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/versehub/versehub_api/internal/model"
	"github.com/versehub/versehub_api/util"
	"github.com/versehub/versehub_api/util/tracing"
	"github.com/versehub/versehub_api/util/values"
)

func (api *API) UserRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodPost, "/{id}/follow", Handler(api.FollowUser))
		r.Method(http.MethodGet, "/statistics", Handler(api.GetUserStatistics))
	})

	return mux
}

func (api *API) FollowUser(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	viewer, err := util.GetViewerFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get viewer from context", values.NotAuthorised, &tc)
	}

	followedID, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithValidationErrors([]string{"Invalid User ID."}, &tc)
	}

	var req model.FollowRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if req.Follow == nil {
		return respondWithValidationErrors([]string{"Invalid follow bool."}, &tc)
	}

	status, message, err := api.SetFollowHelper(r.Context(), viewer, followedID, *req.Follow)
	if err != nil || status != values.Success {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func (api *API) GetUserStatistics(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	viewer, err := util.GetViewerFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get viewer from context", values.NotAuthorised, &tc)
	}

	stats, status, message, err := api.GetUserStatisticsHelper(r.Context(), viewer)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       stats,
	}
}
