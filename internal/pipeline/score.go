package pipeline

import (
	"strings"

	"github.com/manthan270/hirelite/internal/model"
)

// MatchScore ranks a job against the active search query by term overlap:
// each query term found in the title counts double one found in the company
// name. An empty query scores every job zero, so the Match Score sort
// degenerates to the incoming order.
func MatchScore(job model.Job, query string) int {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return 0
	}

	title := strings.ToLower(job.Title)
	company := strings.ToLower(job.Company)

	score := 0
	for _, term := range terms {
		if strings.Contains(title, term) {
			score += 2
		}
		if strings.Contains(company, term) {
			score++
		}
	}
	return score
}
