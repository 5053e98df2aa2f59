package tracing

// Context identifies a single request across log lines and error responses.
type Context struct {
	RequestID     string `json:"request_id"`
	RequestSource string `json:"request_source"`
}
