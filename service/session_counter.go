package service

import "mypodinfo/domain"

// SessionCounter counts pod-info requests per client session.
type SessionCounter struct{}

// ReadAndIncrement bumps the session's counter and returns the new value.
// A missing or non-numeric value counts as 0, so the first call returns 1.
// There is no cross-request lock: concurrent requests on one session are last-write-wins.
func (SessionCounter) ReadAndIncrement(session *domain.Session) int {
	if session.Values == nil {
		session.Values = make(map[string]any)
	}
	current, _ := toInt(session.Values[domain.SessionCountField])
	next := current + 1
	session.Values[domain.SessionCountField] = next
	return next
}
