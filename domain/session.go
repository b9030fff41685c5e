package domain

// SessionCookie is the name of the cookie carrying the session id.
const SessionCookie = "podinfo.session"

// SessionCountField is the session value holding the per-session pod-info counter.
const SessionCountField = "count"

// Session is per-client state keyed by the session cookie.
// Values round-trip through JSON, so numbers come back as float64.
type Session struct {
	ID     string         `json:"id"`
	Values map[string]any `json:"values"`
	// IsNew is true when the session was created for the current request.
	IsNew bool `json:"-"`
}

// NewSession creates an empty session with the given id.
func NewSession(id string) *Session {
	return &Session{
		ID:     id,
		Values: make(map[string]any),
		IsNew:  true,
	}
}
