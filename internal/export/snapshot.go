// Package export renders a finalized, read-only view of the current
// evaluation to a document. The core treats rendering as fire-and-forget:
// one task at a time, with a degraded plain-text fallback when the primary
// renderer fails.
package export

import (
	"github.com/Raymagdonal/kpi-ctb/internal/domain/catalog"
	"github.com/Raymagdonal/kpi-ctb/internal/domain/scoring"
	"github.com/Raymagdonal/kpi-ctb/internal/domain/session"
)

type ItemResult struct {
	Item         catalog.Item
	Score        int
	Comment      string
	Contribution float64
}

type SectionView struct {
	ID     string
	Title  string
	Weight float64
	Score  float64
	Items  []ItemResult
}

// Snapshot is the fully-resolved render input: everything the document
// needs, no live state behind it.
type Snapshot struct {
	Employee   session.Header
	Sections   []SectionView
	Attendance scoring.AttendanceCounts
	Deduction  float64
	Feedback   string
	Total      float64
	Grade      string
}

// BuildSnapshot freezes the store's current evaluation for rendering.
func BuildSnapshot(store *session.Store) Snapshot {
	eval := store.Evaluation()
	sections := store.Sections()

	snap := Snapshot{
		Employee:   eval.Employee,
		Attendance: eval.Attendance,
		Deduction:  scoring.Deduction(eval.Attendance),
		Feedback:   eval.Feedback,
	}

	for _, section := range sections {
		view := SectionView{
			ID:     section.ID,
			Title:  section.Title,
			Weight: section.SectionWeight,
			Score:  scoring.SectionScore(section, eval.Scores, eval.Attendance),
		}
		for _, item := range section.Items {
			score := eval.Scores[item.ID]
			view.Items = append(view.Items, ItemResult{
				Item:         item,
				Score:        score,
				Comment:      eval.Comments[item.ID],
				Contribution: (float64(score) / 5) * item.Weight,
			})
		}
		snap.Sections = append(snap.Sections, view)
		snap.Total += view.Score
	}
	snap.Grade = scoring.Grade(snap.Total)
	return snap
}

// Filename builds the conventional export name: KPI_<id>_<name>.<ext>.
func Filename(employee session.Header, ext string) string {
	id := employee.ID
	if id == "" {
		id = "Unknown"
	}
	name := employee.Name
	if name == "" {
		name = "Emp"
	}
	return "KPI_" + id + "_" + name + "." + ext
}
