package values

type contextKey string

// Context keys for request-scoped values.
const (
	ContextTracingKey contextKey = "tracing-context"
	ContextViewerKey  contextKey = "viewer"
)

// Request headers used by the tracing middleware.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderRequestSource = "X-Request-Source"
)

// Status strings returned by helpers and mapped to HTTP codes in util.StatusCode.
const (
	Success        = "success"
	Created        = "created"
	Error          = "error"
	BadRequestBody = "bad-request-body"
	Unprocessable  = "unprocessable"
	NotAllowed     = "not-allowed"
	Conflict       = "conflict"
	NotFound       = "not-found"
	NotAuthorised  = "not-authorised"
	TokenExpired   = "token-expired"
	ActiveLogin    = "active-login"
)

// AdminRole is the role id of the privileged moderation role.
const AdminRole = 1
