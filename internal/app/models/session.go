package models

import "time"

// Session is the server-side record behind a session cookie. There is a
// single admin identity, so User is always the configured admin username.
type Session struct {
	User      string    `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
