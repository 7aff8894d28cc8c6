// Package session exposes the decoded account identity written by the
// login flow. The engine treats it as read-only input; it never mutates
// or refreshes credentials.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Role selects which queue the account operates on.
type Role string

const (
	RoleJobseeker Role = "JOBSEEKER"
	RoleEmployer  Role = "EMPLOYER"
)

// Session is the decoded token payload plus the bearer credential used
// by the transport client.
type Session struct {
	Username string `json:"username"`
	Account  Role   `json:"account"`
	Token    string `json:"token"`
}

// Load reads the session file the login flow wrote.
func Load(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Session{}, fmt.Errorf("read session file: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("parse session file %q: %w", path, err)
	}

	s.Username = strings.TrimSpace(s.Username)
	s.Account = Role(strings.ToUpper(strings.TrimSpace(string(s.Account))))
	s.Token = strings.TrimSpace(s.Token)

	if err := s.Validate(); err != nil {
		return Session{}, fmt.Errorf("session file %q: %w", path, err)
	}
	return s, nil
}

// Validate checks the identity is usable.
func (s Session) Validate() error {
	if s.Username == "" {
		return fmt.Errorf("username is empty")
	}
	if s.Token == "" {
		return fmt.Errorf("token is empty")
	}
	switch s.Account {
	case RoleJobseeker, RoleEmployer:
		return nil
	default:
		return fmt.Errorf("unknown account role %q", s.Account)
	}
}
