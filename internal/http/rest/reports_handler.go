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

const defaultReportsLimit = 20

func (api *API) ReportPoem(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	viewer, err := util.GetViewerFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get viewer from context", values.NotAuthorised, &tc)
	}

	poemID, ok := poemIDParam(r)
	if !ok {
		return respondWithValidationErrors([]string{"Invalid id."}, &tc)
	}

	var req model.CreateReportRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithValidationErrors([]string{"The reportText field must contain between 1 and 200 characters."}, &tc)
	}

	status, message, err := api.CreateReportHelper(r.Context(), poemID, viewer, req.ReportText)
	if err != nil || status != values.Created {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func (api *API) ListReports(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	limit := defaultReportsLimit
	offset := 0
	var errs []string

	if raw := r.URL.Query().Get("numReports"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			errs = append(errs, "The numReports parameter is not a positive integer value.")
		} else {
			limit = n
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			errs = append(errs, "The offset parameter is not a positive integer value.")
		} else {
			offset = n
		}
	}
	if len(errs) > 0 {
		return respondWithValidationErrors(errs, &tc)
	}

	reports, status, message, err := api.ListReportsHelper(r.Context(), limit, offset)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}
	if reports == nil {
		reports = []model.ReportEntry{}
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       reports,
	}
}

func (api *API) ResolveReport(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	poemID, ok := poemIDParam(r)
	if !ok {
		return respondWithValidationErrors([]string{"Invalid id."}, &tc)
	}

	reporterID, err := util.StringToUUID(chi.URLParam(r, "userID"))
	if err != nil {
		return respondWithValidationErrors([]string{"Invalid User ID."}, &tc)
	}

	removePoem := false
	if raw := r.URL.Query().Get("removePoem"); raw != "" {
		v, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			return respondWithValidationErrors([]string{"The removePoem parameter is not a boolean value."}, &tc)
		}
		removePoem = v
	}

	status, message, err := api.ResolveReportHelper(r.Context(), poemID, reporterID, removePoem)
	if err != nil || status != values.Success {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}
