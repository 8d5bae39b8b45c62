package models

import "time"

type Session struct {
	SessionID string    `json:"session_id"`
	Phone     string    `json:"phone"`
	Role      UserRole  `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) IsPatient() bool   { return s.Role == RolePatient }
func (s *Session) IsAdmin() bool     { return s.Role == RoleAdmin }
func (s *Session) IsCollector() bool { return s.Role == RoleCollector }
func (s *Session) IsLabTech() bool   { return s.Role == RoleLabTech }
func (s *Session) IsDoctor() bool    { return s.Role == RoleDoctor }
