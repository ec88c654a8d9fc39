package model

import "github.com/google/uuid"

var (
	// RoleCandidate marks a job-seeking user
	RoleCandidate = "candidate"
	// RoleEmployer marks a company-side user
	RoleEmployer = "employer"
)

// ValidRole reports whether role is one of the roles the board knows about.
func ValidRole(role string) bool {
	return role == RoleCandidate || role == RoleEmployer
}

// Session is the signed-in identity. At most one session exists per issued
// access token; unauthenticated means no session at all.
type Session struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}
