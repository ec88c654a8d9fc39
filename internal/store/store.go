package store

import (
	"strconv"

	"github.com/manthan270/hirelite/internal/model"
)

// Store bundles every state container the server injects into handlers.
// It plays the role a database service would in a persistent deployment;
// here everything lives and dies with the process.
type Store struct {
	Jobs         *JobRepository
	Applications *ApplicationLedger
	Sessions     *SessionStore
	Saved        *SavedJobStore
}

// New creates a store seeded with the static job list.
func New() *Store {
	return NewWithJobs(SeedJobs())
}

// NewWithJobs creates a store over a caller-provided job list.
func NewWithJobs(jobs []model.Job) *Store {
	return &Store{
		Jobs:         NewJobRepository(jobs),
		Applications: NewApplicationLedger(),
		Sessions:     NewSessionStore(),
		Saved:        NewSavedJobStore(),
	}
}

// Health returns a map of health status information. With no external
// dependency that can fail, the store is always up; the stats report
// occupancy of each container.
func (s *Store) Health() map[string]string {
	stats := make(map[string]string)

	stats["status"] = "up"
	stats["message"] = "It's healthy"
	stats["jobs"] = strconv.Itoa(s.Jobs.Count())
	stats["applications"] = strconv.Itoa(s.Applications.Count())
	stats["active_sessions"] = strconv.Itoa(s.Sessions.Count())

	return stats
}
