package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/manthan270/hirelite/internal/model"
)

type applicationKey struct {
	jobID     string
	candidate string
}

// ApplicationLedger records submitted applications for the life of the
// process. Applying twice with the same (job id, candidate name) pair is a
// no-op, never an error. The ledger does not check authorization; role gating
// belongs to the HTTP boundary.
type ApplicationLedger struct {
	mu   sync.RWMutex
	apps []model.Application
	seen map[applicationKey]uuid.UUID
}

// NewApplicationLedger creates an empty ledger.
func NewApplicationLedger() *ApplicationLedger {
	return &ApplicationLedger{
		seen: make(map[applicationKey]uuid.UUID),
	}
}

// Apply records an application unless the exact pair already applied.
// It returns the stored application and whether this call created it.
func (l *ApplicationLedger) Apply(jobID, candidateName string) (model.Application, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := applicationKey{jobID: jobID, candidate: candidateName}
	if id, ok := l.seen[key]; ok {
		for _, app := range l.apps {
			if app.ID == id {
				return app, false
			}
		}
	}

	app := model.Application{
		ID:            uuid.New(),
		JobID:         jobID,
		CandidateName: candidateName,
		AppliedAt:     time.Now(),
	}
	l.apps = append(l.apps, app)
	l.seen[key] = app.ID
	return app, true
}

// HasApplied reports whether the exact (job id, candidate name) pair exists.
func (l *ApplicationLedger) HasApplied(jobID, candidateName string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.seen[applicationKey{jobID: jobID, candidate: candidateName}]
	return ok
}

// ApplicationsFor returns every application for the job, in insertion order.
func (l *ApplicationLedger) ApplicationsFor(jobID string) []model.Application {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := []model.Application{}
	for _, app := range l.apps {
		if app.JobID == jobID {
			out = append(out, app)
		}
	}
	return out
}

// ApplicationsBy returns every application the candidate submitted, in
// insertion order.
func (l *ApplicationLedger) ApplicationsBy(candidateName string) []model.Application {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := []model.Application{}
	for _, app := range l.apps {
		if app.CandidateName == candidateName {
			out = append(out, app)
		}
	}
	return out
}

// Count returns the total number of recorded applications.
func (l *ApplicationLedger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.apps)
}
