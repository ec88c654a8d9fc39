package store

import "sync"

// SavedJobStore keeps each candidate's saved-job set, keyed by email so the
// set survives a logout/login within the same process. Insertion order is
// preserved for listing.
type SavedJobStore struct {
	mu    sync.RWMutex
	order map[string][]string
	sets  map[string]map[string]struct{}
}

// NewSavedJobStore creates an empty saved-job store.
func NewSavedJobStore() *SavedJobStore {
	return &SavedJobStore{
		order: make(map[string][]string),
		sets:  make(map[string]map[string]struct{}),
	}
}

// Toggle flips the saved state of jobID for the given user and reports the
// new state: true when the job is now saved.
func (s *SavedJobStore) Toggle(email, jobID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sets[email]
	if !ok {
		set = make(map[string]struct{})
		s.sets[email] = set
	}

	if _, saved := set[jobID]; saved {
		delete(set, jobID)
		ids := s.order[email]
		for i, id := range ids {
			if id == jobID {
				s.order[email] = append(ids[:i], ids[i+1:]...)
				break
			}
		}
		return false
	}

	set[jobID] = struct{}{}
	s.order[email] = append(s.order[email], jobID)
	return true
}

// IsSaved reports whether the user saved the job.
func (s *SavedJobStore) IsSaved(email, jobID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.sets[email][jobID]
	return ok
}

// List returns the user's saved job ids in the order they were saved.
func (s *SavedJobStore) List(email string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.order[email]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
