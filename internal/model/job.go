// Package model contain the entities shared by the stores and route handlers
package model

import "time"

// Job is a posted position held by the in-memory repository.
// The repository seeds jobs once at process start and never mutates them.
type Job struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`

	// Salary is free text as rendered to users, e.g. "₹18L - ₹25L".
	// Numeric range extraction happens in the pipeline package.
	Salary string `json:"salary"`

	Type     string    `json:"type"`
	Verified bool      `json:"verified,omitempty"`
	PostedAt time.Time `json:"posted_at"`
}
