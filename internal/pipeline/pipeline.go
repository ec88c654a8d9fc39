// Package pipeline turns the full job list plus the listing page's filter,
// sort and pagination state into one page of results. It is a pure,
// synchronous transformation: no IO, no shared state, fully recomputed on
// every call.
package pipeline

import (
	"sort"
	"strings"
	"time"

	"github.com/manthan270/hirelite/internal/model"
)

// PageSize is the fixed number of jobs per listing page.
const PageSize = 4

// Salary slider bounds, in lakh.
const (
	SliderMin = 5
	SliderMax = 50
)

// Sort modes.
const (
	SortMostRelevant  = "Most Relevant"
	SortHighestSalary = "Highest Salary"
	SortNewestFirst   = "Newest First"
	SortMatchScore    = "Match Score"
)

// Posting-age category buckets.
const (
	CategoryToday = "today"
	CategoryWeek  = "week"
	CategoryMonth = "month"
)

// Salary buckets.
const (
	BucketUnder15  = "Under ₹15L"
	Bucket15To25   = "₹15L to ₹25L"
	BucketOver25   = "₹25L+"
	BucketContract = "Contract"
)

// State carries every knob on the listing page. Empty strings and empty
// slices mean "no constraint" for their stage.
type State struct {
	// Search matches title or company. Location matches location only and is
	// set once the user commits a search, not on every keystroke.
	Search   string
	Location string

	Category         string
	Types            []string
	ExperienceLevels []string
	SalaryRanges     []string

	// SalaryFloor is the slider value in lakh; jobs whose parsed max falls
	// below it are dropped. Zero disables the stage.
	SalaryFloor int

	SortBy string
	Page   int
}

// Default returns the state produced by "clear all": every filter off, the
// slider at its minimum, default sort, first page.
func Default() State {
	return State{
		SalaryFloor: SliderMin,
		SortBy:      SortMostRelevant,
		Page:        1,
	}
}

// Result is the bundle the listing page renders.
type Result struct {
	PageItems    []model.Job `json:"page_items"`
	TotalResults int         `json:"total_results"`
	TotalPages   int         `json:"total_pages"`
	CurrentPage  int         `json:"current_page"`

	// Pages is the dense page-number range 1..TotalPages.
	Pages []int `json:"pages"`
}

// Run filters, sorts and paginates jobs according to state. now anchors the
// posting-age buckets. Zero survivors is a valid empty result, not an error.
func Run(jobs []model.Job, st State, now time.Time) Result {
	filtered := filter(jobs, st, now)
	sorted := sortJobs(filtered, st)
	return paginate(sorted, st.Page)
}

// filter applies every active stage; a job survives only if it passes all of
// them. Multi-select stages are ORed internally.
func filter(jobs []model.Job, st State, now time.Time) []model.Job {
	out := []model.Job{}
	for _, job := range jobs {
		if !matchesSearch(job, st.Search) {
			continue
		}
		if st.Location != "" &&
			!strings.Contains(strings.ToLower(job.Location), strings.ToLower(st.Location)) {
			continue
		}
		if !matchesCategory(job, st.Category, now) {
			continue
		}
		if !matchesType(job, st.Types) {
			continue
		}
		if !matchesExperience(job, st.ExperienceLevels) {
			continue
		}

		salary := ParseSalaryRange(job.Salary)
		if !matchesSalaryBucket(job, salary, st.SalaryRanges) {
			continue
		}
		if st.SalaryFloor > 0 && salary.Max < st.SalaryFloor {
			continue
		}

		out = append(out, job)
	}
	return out
}

func matchesSearch(job model.Job, query string) bool {
	if query == "" {
		return true
	}
	needle := strings.ToLower(query)
	return strings.Contains(strings.ToLower(job.Title), needle) ||
		strings.Contains(strings.ToLower(job.Company), needle)
}

func matchesCategory(job model.Job, category string, now time.Time) bool {
	if category == "" {
		return true
	}

	age := now.Sub(job.PostedAt)
	switch category {
	case CategoryToday:
		return age <= 24*time.Hour
	case CategoryWeek:
		return age <= 168*time.Hour
	case CategoryMonth:
		return age <= 720*time.Hour
	default:
		return true
	}
}

// matchesType checks the job type against the selected filters. Two filters
// carry aliases: "Full-time" also matches any type containing "full", and
// "Freelance" also matches any type containing "contract". Everything else
// requires an exact case-insensitive match.
func matchesType(job model.Job, selected []string) bool {
	if len(selected) == 0 {
		return true
	}

	jobType := strings.ToLower(job.Type)
	for _, t := range selected {
		switch strings.ToLower(t) {
		case "full-time":
			if strings.Contains(jobType, "full") {
				return true
			}
		case "freelance":
			if strings.Contains(jobType, "contract") {
				return true
			}
		}
		if jobType == strings.ToLower(t) {
			return true
		}
	}
	return false
}

func matchesExperience(job model.Job, selected []string) bool {
	if len(selected) == 0 {
		return true
	}

	level := ExperienceLevel(job.Title)
	for _, l := range selected {
		if strings.EqualFold(l, level) {
			return true
		}
	}
	return false
}

func matchesSalaryBucket(job model.Job, salary SalaryRange, selected []string) bool {
	if len(selected) == 0 {
		return true
	}

	for _, bucket := range selected {
		switch bucket {
		case BucketUnder15:
			if salary.Max < 15 {
				return true
			}
		case Bucket15To25:
			if salary.Max >= 15 && salary.Max <= 25 {
				return true
			}
		case BucketOver25:
			if salary.Max > 25 {
				return true
			}
		case BucketContract:
			if strings.EqualFold(job.Type, "contract") {
				return true
			}
		}
	}
	return false
}

// sortJobs reorders a copy of the filtered set. Sorting is stable so jobs
// that compare equal keep their stage-1 order; the default mode preserves
// stage-1 order entirely.
func sortJobs(jobs []model.Job, st State) []model.Job {
	sorted := make([]model.Job, len(jobs))
	copy(sorted, jobs)

	switch st.SortBy {
	case SortHighestSalary:
		sort.SliceStable(sorted, func(i, j int) bool {
			return ParseSalaryRange(sorted[i].Salary).Max > ParseSalaryRange(sorted[j].Salary).Max
		})
	case SortNewestFirst:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PostedAt.After(sorted[j].PostedAt)
		})
	case SortMatchScore:
		sort.SliceStable(sorted, func(i, j int) bool {
			return MatchScore(sorted[i], st.Search) > MatchScore(sorted[j], st.Search)
		})
	}

	return sorted
}

// paginate clamps the requested page into [1, totalPages] and slices out the
// page. An out-of-range page self-corrects, it never errors.
func paginate(jobs []model.Job, page int) Result {
	totalPages := (len(jobs) + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(jobs) {
		start = len(jobs)
	}
	if end > len(jobs) {
		end = len(jobs)
	}

	pages := make([]int, totalPages)
	for i := range pages {
		pages[i] = i + 1
	}

	return Result{
		PageItems:    jobs[start:end],
		TotalResults: len(jobs),
		TotalPages:   totalPages,
		CurrentPage:  page,
		Pages:        pages,
	}
}
