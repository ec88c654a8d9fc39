package jobs

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manthan270/hirelite/internal/auth"
	"github.com/manthan270/hirelite/internal/middleware"
	"github.com/manthan270/hirelite/internal/model"
	"github.com/manthan270/hirelite/internal/pipeline"
	"github.com/manthan270/hirelite/internal/store"
	"github.com/manthan270/hirelite/internal/testutil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func fixtureStore(now time.Time) *store.Store {
	return store.NewWithJobs([]model.Job{
		{ID: "j1", Title: "Senior Backend Engineer", Company: "Acme", Location: "Bengaluru", Salary: "₹18L - ₹25L", Type: "Full-time", PostedAt: now.Add(-6 * time.Hour)},
		{ID: "j2", Title: "Frontend Developer", Company: "Bolt", Location: "Remote", Salary: "₹12L - ₹16L", Type: "Remote", PostedAt: now.Add(-100 * time.Hour)},
		{ID: "j3", Title: "Junior QA Tester", Company: "Acme", Location: "Pune", Salary: "₹6L", Type: "Contract", PostedAt: now.Add(-30 * time.Hour)},
		{ID: "j4", Title: "Platform Engineer", Company: "Crux", Location: "Hyderabad", Salary: "₹28L - ₹35L", Type: "Full-Time", PostedAt: now.Add(-400 * time.Hour)},
		{ID: "j5", Title: "Data Scientist", Company: "Delta", Location: "Mumbai", Salary: "₹20L - ₹24L", Type: "Part-time", PostedAt: now.Add(-10 * time.Hour)},
	})
}

func newJobRouter(st *store.Store, now time.Time) *gin.Engine {
	jc := NewJobController(st)
	jc.now = func() time.Time { return now }

	r := gin.Default()
	r.GET("/jobs", jc.ListJobs)
	r.GET("/jobs/search", jc.SearchJobs)
	r.GET("/jobs/:id", jc.GetJobByID)

	needAuth := r.Group("")
	needAuth.Use(middleware.RequireAuth(st.Sessions))

	candidate := needAuth.Group("")
	candidate.Use(middleware.CheckRole(model.RoleCandidate))
	candidate.POST("/jobs/:id/save", jc.ToggleSave)
	candidate.GET("/jobs/saved", jc.ListSaved)

	employer := needAuth.Group("")
	employer.Use(middleware.CheckRole(model.RoleEmployer))
	employer.GET("/jobs/:id/applications", jc.ApplicationsForJob)

	return r
}

func tokenFor(t *testing.T, st *store.Store, role string) string {
	t.Helper()

	session := model.Session{ID: uuid.New(), Name: "tester", Email: "tester@example.com", Role: role}
	st.Sessions.Put(session)

	token, err := auth.GenerateToken(session.ID)
	require.NoError(t, err)
	return token
}

func pageItems(resp map[string]interface{}) []interface{} {
	items, _ := resp["page_items"].([]interface{})
	return items
}

func TestListJobsDefaults(t *testing.T) {
	now := time.Now()
	r := newJobRouter(fixtureStore(now), now)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/jobs", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(5), resp["total_results"])
	assert.Equal(t, float64(2), resp["total_pages"])
	assert.Equal(t, float64(1), resp["current_page"])
	assert.Len(t, pageItems(resp), pipeline.PageSize)
}

func TestListJobsAppliesFilters(t *testing.T) {
	now := time.Now()
	r := newJobRouter(fixtureStore(now), now)

	endpoint := "/jobs?salary_range=" + url.QueryEscape(pipeline.BucketOver25)
	rec, resp := testutil.MakeJSONRequest(nil, "", r, endpoint, http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	items := pageItems(resp)
	require.Len(t, items, 1)
	assert.Equal(t, "j4", items[0].(map[string]interface{})["id"])

	rec, resp = testutil.MakeJSONRequest(nil, "", r, "/jobs?salary_min=30", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), resp["total_results"])
}

func TestListJobsClampsPage(t *testing.T) {
	now := time.Now()
	r := newJobRouter(fixtureStore(now), now)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/jobs?page=9", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), resp["current_page"])
}

func TestListJobsRejectsBadSalaryMin(t *testing.T) {
	now := time.Now()
	r := newJobRouter(fixtureStore(now), now)

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/jobs?salary_min=lots", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchJobsCoversLocation(t *testing.T) {
	now := time.Now()
	r := newJobRouter(fixtureStore(now), now)

	rec, resp := testutil.MakeListRequest("", r, "/jobs/search?q=pune")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp, 1)
	assert.Equal(t, "j3", resp[0]["id"])
}

func TestGetJobByID(t *testing.T) {
	now := time.Now()
	r := newJobRouter(fixtureStore(now), now)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/jobs/j2", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Frontend Developer", resp["title"])

	rec, resp = testutil.MakeJSONRequest(nil, "", r, "/jobs/missing", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, resp["error"], "not found")
}

func TestToggleSaveAndListSaved(t *testing.T) {
	now := time.Now()
	st := fixtureStore(now)
	r := newJobRouter(st, now)
	token := tokenFor(t, st, model.RoleCandidate)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/jobs/j1/save", http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["saved"])

	rec, saved := testutil.MakeListRequest(token, r, "/jobs/saved")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, saved, 1)
	assert.Equal(t, "j1", saved[0]["id"])

	// Toggling again unsaves.
	rec, resp = testutil.MakeJSONRequest(nil, token, r, "/jobs/j1/save", http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, resp["saved"])

	rec, _ = testutil.MakeJSONRequest(nil, token, r, "/jobs/missing/save", http.MethodPost)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApplicationsForJobRequiresEmployer(t *testing.T) {
	now := time.Now()
	st := fixtureStore(now)
	r := newJobRouter(st, now)

	st.Applications.Apply("j1", "priya")
	st.Applications.Apply("j1", "rahul")

	candidateToken := tokenFor(t, st, model.RoleCandidate)
	rec, _ := testutil.MakeJSONRequest(nil, candidateToken, r, "/jobs/j1/applications", http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	employerToken := tokenFor(t, st, model.RoleEmployer)
	rec, apps := testutil.MakeListRequest(employerToken, r, "/jobs/j1/applications")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, apps, 2)
	assert.Equal(t, "priya", apps[0]["candidate_name"])

	rec, _ = testutil.MakeJSONRequest(nil, employerToken, r, "/jobs/missing/applications", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
