package domain

// FilterAll is the sentinel filter value that matches every run.
const FilterAll = "All"

// Filters holds independently optional categorical selections. A zero value
// or FilterAll for a field leaves that dimension unfiltered.
type Filters struct {
	Effort       string
	WorkoutStyle string
	Surface      string
}

func filterMatches(selected, actual string) bool {
	return selected == "" || selected == FilterAll || selected == actual
}

// Match reports whether the run satisfies every active filter.
func (f Filters) Match(r Run) bool {
	return filterMatches(f.Effort, string(r.Effort)) &&
		filterMatches(f.WorkoutStyle, string(r.WorkoutStyle)) &&
		filterMatches(f.Surface, string(r.Surface))
}

// Apply returns the subsequence of runs matching the filters, preserving
// the input order.
func (f Filters) Apply(runs []Run) []Run {
	out := make([]Run, 0, len(runs))
	for _, r := range runs {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
