package store

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manthan270/hirelite/internal/model"
)

func testJobs() []model.Job {
	now := time.Now()
	return []model.Job{
		{ID: "j1", Title: "Backend Engineer", Company: "Acme", Location: "Bengaluru", Salary: "₹18L - ₹25L", Type: "Full-time", PostedAt: now},
		{ID: "j2", Title: "Designer", Company: "Bolt", Location: "Remote", Salary: "₹12L", Type: "Contract", PostedAt: now},
	}
}

func TestJobRepositorySearch(t *testing.T) {
	repo := NewJobRepository(testJobs())

	// Empty query is the identity element.
	assert.Len(t, repo.Search(""), repo.Count())

	// Case-insensitive substring over title, company and location.
	assert.Equal(t, "j1", repo.Search("ENGINEER")[0].ID)
	assert.Equal(t, "j2", repo.Search("bolt")[0].ID)
	assert.Equal(t, "j1", repo.Search("bengal")[0].ID)

	assert.Empty(t, repo.Search("nothing matches this"))
}

func TestJobRepositoryListKeepsSeedOrder(t *testing.T) {
	repo := NewJobRepository(testJobs())

	listed := repo.List()
	require.Len(t, listed, 2)
	assert.Equal(t, "j1", listed[0].ID)
	assert.Equal(t, "j2", listed[1].ID)
}

func TestJobRepositoryGetByID(t *testing.T) {
	repo := NewJobRepository(testJobs())

	job, err := repo.GetByID("j2")
	require.NoError(t, err)
	assert.Equal(t, "Designer", job.Title)

	_, err = repo.GetByID("missing")
	assert.True(t, errors.Is(err, ErrJobNotFound))
}

func TestApplyIsIdempotent(t *testing.T) {
	ledger := NewApplicationLedger()

	first, created := ledger.Apply("j1", "priya")
	assert.True(t, created)
	assert.True(t, ledger.HasApplied("j1", "priya"))

	second, created := ledger.Apply("j1", "priya")
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, ledger.HasApplied("j1", "priya"))

	assert.Equal(t, 1, ledger.Count())
	assert.Len(t, ledger.ApplicationsFor("j1"), 1)
}

func TestApplicationsKeepInsertionOrder(t *testing.T) {
	ledger := NewApplicationLedger()

	ledger.Apply("j1", "priya")
	ledger.Apply("j1", "rahul")
	ledger.Apply("j2", "priya")

	apps := ledger.ApplicationsFor("j1")
	require.Len(t, apps, 2)
	assert.Equal(t, "priya", apps[0].CandidateName)
	assert.Equal(t, "rahul", apps[1].CandidateName)

	mine := ledger.ApplicationsBy("priya")
	require.Len(t, mine, 2)
	assert.Equal(t, "j1", mine[0].JobID)
	assert.Equal(t, "j2", mine[1].JobID)

	assert.False(t, ledger.HasApplied("j2", "rahul"))
}

func TestSessionLifecycle(t *testing.T) {
	sessions := NewSessionStore()

	session := model.Session{ID: uuid.New(), Name: "priya", Email: "priya@example.com", Role: model.RoleCandidate}
	sessions.Put(session)

	got, ok := sessions.Get(session.ID)
	require.True(t, ok)
	assert.Equal(t, "priya", got.Name)
	assert.Equal(t, 1, sessions.Count())

	sessions.Delete(session.ID)
	_, ok = sessions.Get(session.ID)
	assert.False(t, ok)

	// Deleting again is a no-op.
	sessions.Delete(session.ID)
	assert.Equal(t, 0, sessions.Count())
}

func TestSavedJobToggle(t *testing.T) {
	saved := NewSavedJobStore()

	assert.True(t, saved.Toggle("priya@example.com", "j1"))
	assert.True(t, saved.Toggle("priya@example.com", "j2"))
	assert.True(t, saved.IsSaved("priya@example.com", "j1"))
	assert.Equal(t, []string{"j1", "j2"}, saved.List("priya@example.com"))

	// Toggling again unsaves and drops the id from the order.
	assert.False(t, saved.Toggle("priya@example.com", "j1"))
	assert.False(t, saved.IsSaved("priya@example.com", "j1"))
	assert.Equal(t, []string{"j2"}, saved.List("priya@example.com"))

	assert.Empty(t, saved.List("rahul@example.com"))
}

func TestStoreHealth(t *testing.T) {
	s := New()

	stats := s.Health()
	assert.Equal(t, "up", stats["status"])
	assert.NotEqual(t, "0", stats["jobs"])
	assert.Equal(t, "0", stats["applications"])
	assert.Equal(t, "0", stats["active_sessions"])
}

func TestSeedJobsHaveUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, j := range SeedJobs() {
		assert.False(t, seen[j.ID], "duplicate id %s", j.ID)
		seen[j.ID] = true
		assert.NotEmpty(t, j.Title)
		assert.NotEmpty(t, j.Salary)
	}
}
