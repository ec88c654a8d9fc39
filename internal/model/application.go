package model

import (
	"time"

	"github.com/google/uuid"
)

// Application represents one candidate's submission to one job post.
// The (JobID, CandidateName) pair is unique for the process lifetime;
// the candidate display name stands in for a real user id.
type Application struct {
	ID            uuid.UUID `json:"id"`
	JobID         string    `json:"job_id"`
	CandidateName string    `json:"candidate_name"`
	AppliedAt     time.Time `json:"applied_at"`
}
