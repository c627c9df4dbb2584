// Package catalog holds the immutable KPI templates: for each job position,
// an ordered list of scoring sections with weighted items and 1..5 criteria
// text. The catalog only supplies blueprints; live weights and scores are
// applied by callers on cloned copies.
package catalog

import "sort"

// Fixed section IDs. part-3 and part-4 are structurally special: attendance
// is scored by deduction and feedback is narrative only.
const (
	SectionPerformance = "part-1"
	SectionCompetency  = "part-2"
	SectionAttendance  = "part-3"
	SectionFeedback    = "part-4"
)

type CriteriaLevel struct {
	Score       int    `json:"score"`
	Description string `json:"description"`
}

type Item struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Weight      float64         `json:"weight"`
	Criteria    []CriteriaLevel `json:"criteria"`
}

type Section struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	SectionWeight float64 `json:"sectionWeight"`
	Items         []Item  `json:"items"`
}

// Resolve returns a cloned template for the position. Unknown positions get
// the default template; Resolve never fails and never returns empty.
func Resolve(position string) []Section {
	template, ok := positionTemplates[position]
	if !ok {
		template = defaultTemplate
	}
	return Clone(template)
}

// Positions lists the registered positions, sorted. The admin surface uses
// this to offer position-level permissions.
func Positions() []string {
	names := make([]string, 0, len(positionTemplates))
	for name := range positionTemplates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone deep-copies a section list so callers can attach live weights
// without mutating the catalog.
func Clone(sections []Section) []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		items := make([]Item, len(s.Items))
		for j, item := range s.Items {
			criteria := make([]CriteriaLevel, len(item.Criteria))
			copy(criteria, item.Criteria)
			item.Criteria = criteria
			items[j] = item
		}
		s.Items = items
		out[i] = s
	}
	return out
}
