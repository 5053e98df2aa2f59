package rest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/versehub/versehub_api/internal/model"
	"github.com/versehub/versehub_api/util"
	"github.com/versehub/versehub_api/util/tracing"
	"github.com/versehub/versehub_api/util/values"
)

func (api *API) PoemRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/public", Handler(api.GetPublicPoem))

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodGet, "/private", Handler(api.GetFeed))
		r.Method(http.MethodPost, "/private", Handler(api.CreatePoem))
		r.Method(http.MethodGet, "/private/{id}", Handler(api.GetPoemByID))
		r.Method(http.MethodPut, "/private/{id}", Handler(api.UpdatePoem))
		r.Method(http.MethodDelete, "/private/{id}", Handler(api.DeletePoem))
		r.Method(http.MethodPost, "/private/{id}/rate/{rating}", Handler(api.RatePoem))
		r.Method(http.MethodPost, "/private/{id}/favorite", Handler(api.FavoritePoem))
		r.Method(http.MethodPost, "/private/{id}/report", Handler(api.ReportPoem))
	})

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Use(api.RequireAdmin)
		r.Method(http.MethodGet, "/reports", Handler(api.ListReports))
		r.Method(http.MethodDelete, "/private/{id}/report/{userID}", Handler(api.ResolveReport))
	})

	return mux
}

// parseFeedQuery validates and assembles the feed parameters. Every malformed
// parameter produces its own message so the caller can fix all of them at once.
func parseFeedQuery(r *http.Request, viewer util.Viewer) (feedQuery, []string) {
	q := newFeedQuery(viewer.ID)
	var errs []string

	params := r.URL.Query()

	if raw := params.Get("numPoems"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			errs = append(errs, "The numPoems parameter is not a positive integer value.")
		} else {
			q.limit = n
		}
	}

	if raw := params.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			errs = append(errs, "The offset parameter is not a positive integer value.")
		} else {
			q.offset = n
		}
	}

	if order, ok := parseFeedOrder(params.Get("orderBy")); ok {
		q.orderBy = order
	} else {
		errs = append(errs, "The orderBy parameter is not a valid value.")
	}

	keywords := params["keywords"]
	if len(keywords) == 0 {
		keywords = params["keywords[]"]
	}
	for _, keyword := range keywords {
		if keyword != "" {
			q.keywords = append(q.keywords, keyword)
		}
	}

	boolFlag := func(name string, target *bool) {
		raw := params.Get(name)
		if raw == "" {
			return
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, "The "+name+" parameter is not a boolean value.")
			return
		}
		*target = v
	}
	boolFlag("filterPersonal", &q.personalOnly)
	boolFlag("filterFavorite", &q.favoritesOnly)
	boolFlag("filterFollowing", &q.followingOnly)

	return q, errs
}

func poemIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func (api *API) GetFeed(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	viewer, err := util.GetViewerFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get viewer from context", values.NotAuthorised, &tc)
	}

	q, errs := parseFeedQuery(r, viewer)
	if len(errs) > 0 {
		return respondWithValidationErrors(errs, &tc)
	}

	poems, status, message, err := api.GetFeedHelper(r.Context(), q)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}
	if poems == nil {
		poems = []model.AnnotatedPoem{}
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       poems,
	}
}

func (api *API) GetPoemByID(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	viewer, err := util.GetViewerFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get viewer from context", values.NotAuthorised, &tc)
	}

	poemID, ok := poemIDParam(r)
	if !ok {
		return respondWithValidationErrors([]string{"Invalid id."}, &tc)
	}

	poem, status, message, err := api.GetPoemHelper(r.Context(), viewer.ID, poemID)
	if err != nil || status != values.Success {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       poem,
	}
}

func (api *API) GetPublicPoem(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	poem, status, message, err := api.PublicPoemHelper(r.Context())
	if err != nil || status != values.Success {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       poem,
	}
}

func (api *API) CreatePoem(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	viewer, err := util.GetViewerFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get viewer from context", values.NotAuthorised, &tc)
	}

	var req model.CreatePoemRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if !util.ValidPoemText(req.PoemText) {
		return respondWithValidationErrors([]string{"The poemText field must contain between 1 and 256 characters."}, &tc)
	}

	poem, status, message, err := api.CreatePoemHelper(r.Context(), viewer.ID, req.PoemText)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       poem,
	}
}

func (api *API) UpdatePoem(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	viewer, err := util.GetViewerFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get viewer from context", values.NotAuthorised, &tc)
	}

	poemID, ok := poemIDParam(r)
	if !ok {
		return respondWithValidationErrors([]string{"Invalid id."}, &tc)
	}

	var req model.UpdatePoemRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if !util.ValidPoemText(req.PoemText) {
		return respondWithValidationErrors([]string{"The poemText field must contain between 1 and 256 characters."}, &tc)
	}

	status, message, err := api.UpdatePoemHelper(r.Context(), viewer, poemID, req.PoemText)
	if err != nil || status != values.Success {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func (api *API) DeletePoem(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	viewer, err := util.GetViewerFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get viewer from context", values.NotAuthorised, &tc)
	}

	poemID, ok := poemIDParam(r)
	if !ok {
		return respondWithValidationErrors([]string{"Invalid id."}, &tc)
	}

	status, message, err := api.DeletePoemHelper(r.Context(), viewer, poemID)
	if err != nil || status != values.Success {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func (api *API) RatePoem(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	viewer, err := util.GetViewerFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get viewer from context", values.NotAuthorised, &tc)
	}

	poemID, ok := poemIDParam(r)
	if !ok {
		return respondWithValidationErrors([]string{"Invalid id."}, &tc)
	}

	value, err := strconv.Atoi(chi.URLParam(r, "rating"))
	if err != nil || (value != -1 && value != 1) {
		return respondWithValidationErrors([]string{"The rating parameter must be -1 or 1."}, &tc)
	}

	result, status, message, err := api.RatePoemHelper(r.Context(), poemID, viewer, value)
	if err != nil || status != values.Success {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       result,
	}
}

func (api *API) FavoritePoem(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	viewer, err := util.GetViewerFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get viewer from context", values.NotAuthorised, &tc)
	}

	poemID, ok := poemIDParam(r)
	if !ok {
		return respondWithValidationErrors([]string{"Invalid id."}, &tc)
	}

	var req model.FavoriteRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if req.Favorite == nil {
		return respondWithValidationErrors([]string{"Invalid favorite bool."}, &tc)
	}

	status, message, err := api.SetFavoriteHelper(r.Context(), poemID, viewer, *req.Favorite)
	if err != nil || status != values.Success {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}
