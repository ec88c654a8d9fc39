package pipeline

import (
	"regexp"
	"strconv"
)

var salaryDigits = regexp.MustCompile(`\d+`)

// SalaryRange is the numeric range (in lakh) extracted from a free-text
// salary string.
type SalaryRange struct {
	Min int
	Max int
}

// ParseSalaryRange pulls every integer out of the salary text and keeps the
// smallest and largest. A single number yields min == max; no numbers yield
// (0, 0).
func ParseSalaryRange(salary string) SalaryRange {
	matches := salaryDigits.FindAllString(salary, -1)
	if len(matches) == 0 {
		return SalaryRange{}
	}

	r := SalaryRange{Min: 1<<31 - 1, Max: 0}
	for _, m := range matches {
		v, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
	}
	return r
}
