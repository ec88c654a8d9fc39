package application

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manthan270/hirelite/internal/auth"
	"github.com/manthan270/hirelite/internal/middleware"
	"github.com/manthan270/hirelite/internal/model"
	"github.com/manthan270/hirelite/internal/store"
	"github.com/manthan270/hirelite/internal/testutil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func fixtureStore() *store.Store {
	now := time.Now()
	return store.NewWithJobs([]model.Job{
		{ID: "j1", Title: "Backend Engineer", Company: "Acme", Location: "Bengaluru", Salary: "₹18L - ₹25L", Type: "Full-time", PostedAt: now},
		{ID: "j2", Title: "Designer", Company: "Bolt", Location: "Remote", Salary: "₹12L", Type: "Contract", PostedAt: now},
	})
}

func newApplicationRouter(st *store.Store) *gin.Engine {
	ac := NewApplicationController(st)

	r := gin.Default()
	needCandidate := r.Group("")
	needCandidate.Use(middleware.RequireAuth(st.Sessions), middleware.CheckRole(model.RoleCandidate))
	needCandidate.POST("/applications", middleware.SizeLimit(1<<20), ac.ApplyHandler)
	needCandidate.GET("/applications/check", ac.CheckHandler)
	needCandidate.GET("/applications/mine", ac.MineHandler)

	return r
}

func tokenFor(t *testing.T, st *store.Store, name, role string) string {
	t.Helper()

	session := model.Session{ID: uuid.New(), Name: name, Email: name + "@example.com", Role: role}
	st.Sessions.Put(session)

	token, err := auth.GenerateToken(session.ID)
	require.NoError(t, err)
	return token
}

func TestApplyHandlerSuccess(t *testing.T) {
	st := fixtureStore()
	r := newApplicationRouter(st)
	token := tokenFor(t, st, "priya", model.RoleCandidate)

	rec, resp := testutil.MakeJSONRequest(gin.H{"job_id": "j1"}, token, r, "/applications", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "j1", resp["job_id"])
	assert.Equal(t, "priya", resp["candidate_name"])

	assert.True(t, st.Applications.HasApplied("j1", "priya"))
}

func TestApplyHandlerIdempotent(t *testing.T) {
	st := fixtureStore()
	r := newApplicationRouter(st)
	token := tokenFor(t, st, "priya", model.RoleCandidate)

	rec, first := testutil.MakeJSONRequest(gin.H{"job_id": "j1"}, token, r, "/applications", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Re-applying is a no-op: the existing application comes back with 200.
	rec, second := testutil.MakeJSONRequest(gin.H{"job_id": "j1"}, token, r, "/applications", http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, first["id"], second["id"])

	assert.Equal(t, 1, st.Applications.Count())
}

func TestApplyHandlerUnknownJob(t *testing.T) {
	st := fixtureStore()
	r := newApplicationRouter(st)
	token := tokenFor(t, st, "priya", model.RoleCandidate)

	rec, resp := testutil.MakeJSONRequest(gin.H{"job_id": "missing"}, token, r, "/applications", http.MethodPost)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, resp["error"], "not found")
}

func TestApplyHandlerMissingBody(t *testing.T) {
	st := fixtureStore()
	r := newApplicationRouter(st)
	token := tokenFor(t, st, "priya", model.RoleCandidate)

	rec, _ := testutil.MakeJSONRequest(gin.H{}, token, r, "/applications", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApplyHandlerEmployerForbidden(t *testing.T) {
	st := fixtureStore()
	r := newApplicationRouter(st)
	token := tokenFor(t, st, "boss", model.RoleEmployer)

	rec, _ := testutil.MakeJSONRequest(gin.H{"job_id": "j1"}, token, r, "/applications", http.MethodPost)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 0, st.Applications.Count())
}

func TestCheckHandler(t *testing.T) {
	st := fixtureStore()
	r := newApplicationRouter(st)
	token := tokenFor(t, st, "priya", model.RoleCandidate)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/applications/check?job_id=j1", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, resp["applied"])

	st.Applications.Apply("j1", "priya")

	rec, resp = testutil.MakeJSONRequest(nil, token, r, "/applications/check?job_id=j1", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["applied"])

	rec, _ = testutil.MakeJSONRequest(nil, token, r, "/applications/check", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMineHandler(t *testing.T) {
	st := fixtureStore()
	r := newApplicationRouter(st)
	token := tokenFor(t, st, "priya", model.RoleCandidate)

	st.Applications.Apply("j1", "priya")
	st.Applications.Apply("j2", "priya")
	st.Applications.Apply("j1", "rahul")

	rec, mine := testutil.MakeListRequest(token, r, "/applications/mine")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, mine, 2)
	assert.Equal(t, "j1", mine[0]["job_id"])
	assert.Equal(t, "j2", mine[1]["job_id"])
}
