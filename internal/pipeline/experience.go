package pipeline

import "strings"

// Experience levels derived from job titles.
const (
	LevelEntry        = "Entry level"
	LevelIntermediate = "Intermediate"
	LevelExpert       = "Expert"
)

var (
	expertKeywords = []string{"senior", "lead", "principal", "manager"}
	entryKeywords  = []string{"junior", "intern", "trainee"}
)

// ExperienceLevel classifies a job title by keyword presence. Titles that
// mention neither expert nor entry keywords default to Intermediate.
func ExperienceLevel(title string) string {
	lower := strings.ToLower(title)

	for _, kw := range expertKeywords {
		if strings.Contains(lower, kw) {
			return LevelExpert
		}
	}
	for _, kw := range entryKeywords {
		if strings.Contains(lower, kw) {
			return LevelEntry
		}
	}
	return LevelIntermediate
}
