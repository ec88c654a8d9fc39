// Package store implement the in-memory state containers backing the API.
// Every container is process-local, dies with the process and is safe for
// concurrent use.
package store

import (
	"errors"
	"strings"

	"github.com/manthan270/hirelite/internal/model"
)

// ErrJobNotFound is a sentinel error returned when a job id is unknown.
var ErrJobNotFound = errors.New("job not found")

// JobRepository holds the canonical job list. It is populated once from the
// seed and read-only afterwards, so reads need no locking.
type JobRepository struct {
	jobs []model.Job
	byID map[string]model.Job
}

// NewJobRepository builds a repository over the given jobs, keeping seed order.
func NewJobRepository(jobs []model.Job) *JobRepository {
	byID := make(map[string]model.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}
	return &JobRepository{
		jobs: jobs,
		byID: byID,
	}
}

// List returns every job in seed order. The returned slice is a copy.
func (r *JobRepository) List() []model.Job {
	out := make([]model.Job, len(r.jobs))
	copy(out, r.jobs)
	return out
}

// Search returns the jobs where query is a case-insensitive substring of the
// title, company or location. An empty query matches everything. There is no
// ranking, only match or no match.
func (r *JobRepository) Search(query string) []model.Job {
	needle := strings.ToLower(query)

	out := []model.Job{}
	for _, j := range r.jobs {
		if strings.Contains(strings.ToLower(j.Title), needle) ||
			strings.Contains(strings.ToLower(j.Company), needle) ||
			strings.Contains(strings.ToLower(j.Location), needle) {
			out = append(out, j)
		}
	}
	return out
}

// GetByID returns the job with the given id or ErrJobNotFound.
func (r *JobRepository) GetByID(id string) (model.Job, error) {
	j, ok := r.byID[id]
	if !ok {
		return model.Job{}, ErrJobNotFound
	}
	return j, nil
}

// Count returns the number of seeded jobs.
func (r *JobRepository) Count() int {
	return len(r.jobs)
}
