package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/versehub/versehub_api/config"
	deps "github.com/versehub/versehub_api/internal/debs"
	"github.com/versehub/versehub_api/util"
	"github.com/versehub/versehub_api/util/tracing"
	"github.com/versehub/versehub_api/util/values"
)

const (
	defaultIdleTimeout    = time.Minute
	defaultReadTimeout    = 5 * time.Second
	defaultWriteTimeout   = 10 * time.Second
	defaultShutdownPeriod = 30 * time.Second
)

type Handler func(w http.ResponseWriter, r *http.Request) *ServerResponse

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h(w, r)
	respByte, err := json.Marshal(resp)
	if err != nil {
		writeErrorResponse(w, err, values.Error, "unable to marshal server response")
		return
	}
	writeJSONResponse(w, respByte, resp.StatusCode)
}

// ServerResponse is the envelope every handler returns. Data carries the
// payload, Errors the field-level validation messages.
type ServerResponse struct {
	Message    string      `json:"message,omitempty"`
	Status     string      `json:"status"`
	StatusCode int         `json:"-"`
	Data       interface{} `json:"data,omitempty"`
	Errors     []string    `json:"errors,omitempty"`
}

func writeJSONResponse(w http.ResponseWriter, body []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		log.Println("unable to write response body", err)
	}
}

func writeErrorResponse(w http.ResponseWriter, err error, status string, message string) {
	resp := ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Errors:     []string{message},
	}
	respByte, marshalErr := json.Marshal(resp)
	if marshalErr != nil {
		log.Println("unable to marshal error response", marshalErr, "original error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSONResponse(w, respByte, resp.StatusCode)
}

func respondWithError(err error, message string, status string, tc *tracing.Context) *ServerResponse {
	if err != nil {
		log.Printf("[%s] %s: %v", tc.RequestID, message, err)
	}
	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Errors:     []string{message},
	}
}

// respondWithValidationErrors returns a 422 carrying one message per failed field.
func respondWithValidationErrors(messages []string, tc *tracing.Context) *ServerResponse {
	log.Printf("[%s] validation failed: %v", tc.RequestID, messages)
	return &ServerResponse{
		Message:    "validation failed",
		Status:     values.Unprocessable,
		StatusCode: http.StatusUnprocessableEntity,
		Errors:     messages,
	}
}

type API struct {
	Server *http.Server
	Config *config.Config
	Deps   *deps.Dependencies
	DB     *pgxpool.Pool
}

func (api *API) Serve() error {
	api.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", api.Config.Port),
		IdleTimeout:  defaultIdleTimeout,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		Handler:      api.setUpServerHandler(),
	}
	return api.Server.ListenAndServe()
}

func (api *API) setUpServerHandler() http.Handler {
	mux := chi.NewRouter()
	mux.Use(RequestTracing)

	mux.Get("/",
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("Hello, World!"))
		},
	)

	mux.Mount("/auth", api.AuthRoutes())
	mux.Mount("/poems", api.PoemRoutes())
	mux.Mount("/user", api.UserRoutes())

	return mux
}

func (a *API) Shutdown() error {
	err := a.Server.Shutdown(context.Background())
	if err != nil {
		return err
	}
	return nil
}
