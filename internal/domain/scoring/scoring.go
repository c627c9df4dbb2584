// Package scoring is the pure computation core: effective section weights,
// per-section and total scores, attendance deduction, and the letter grade.
// Nothing here errors; misconfigured weights surface as odd totals instead
// of being clamped or rejected.
package scoring

import "github.com/Raymagdonal/kpi-ctb/internal/domain/catalog"

// Per-unit deduction rates for the nine attendance counters.
const (
	RateSickLeave      = 1
	RatePersonalLeave  = 1
	RateAbsent         = 3
	RateLate           = 1
	RateMaternityLeave = 1
	RateOrdination     = 1
	RateVerbalWarning  = 3
	RateWrittenWarning = 5
	RateSuspension     = 15
)

type AttendanceCounts struct {
	SickLeave       int `json:"sickLeave"`
	PersonalLeave   int `json:"personalLeave"`
	Absent          int `json:"absent"`
	Late            int `json:"late"`
	MaternityLeave  int `json:"maternityLeave"`
	OrdinationLeave int `json:"ordinationLeave"`
	VerbalWarning   int `json:"verbalWarning"`
	WrittenWarning  int `json:"writtenWarning"`
	Suspension      int `json:"suspension"`
}

// Clamped floors every counter at zero. Counters are occurrence counts; a
// negative value would turn the deduction into a credit.
func (a AttendanceCounts) Clamped() AttendanceCounts {
	return AttendanceCounts{
		SickLeave:       max(a.SickLeave, 0),
		PersonalLeave:   max(a.PersonalLeave, 0),
		Absent:          max(a.Absent, 0),
		Late:            max(a.Late, 0),
		MaternityLeave:  max(a.MaternityLeave, 0),
		OrdinationLeave: max(a.OrdinationLeave, 0),
		VerbalWarning:   max(a.VerbalWarning, 0),
		WrittenWarning:  max(a.WrittenWarning, 0),
		Suspension:      max(a.Suspension, 0),
	}
}

// Weights are the admin-configured section weights applied over every
// template at read time. Conventionally they sum to 100 but nothing enforces
// that; a different sum silently changes the attainable maximum.
type Weights struct {
	Part1 float64 `json:"part1"`
	Part2 float64 `json:"part2"`
	Part3 float64 `json:"part3"`
}

func DefaultWeights() Weights {
	return Weights{Part1: 50, Part2: 20, Part3: 30}
}

// ApplyWeights substitutes the override weights into a cloned section list.
// Sections outside part-1..3 keep their template weight.
func ApplyWeights(sections []catalog.Section, w Weights) []catalog.Section {
	out := catalog.Clone(sections)
	for i := range out {
		switch out[i].ID {
		case catalog.SectionPerformance:
			out[i].SectionWeight = w.Part1
		case catalog.SectionCompetency:
			out[i].SectionWeight = w.Part2
		case catalog.SectionAttendance:
			out[i].SectionWeight = w.Part3
		}
	}
	return out
}

// Deduction is linear and additive across the nine counters.
func Deduction(a AttendanceCounts) float64 {
	return float64(a.SickLeave*RateSickLeave +
		a.PersonalLeave*RatePersonalLeave +
		a.Absent*RateAbsent +
		a.Late*RateLate +
		a.MaternityLeave*RateMaternityLeave +
		a.OrdinationLeave*RateOrdination +
		a.VerbalWarning*RateVerbalWarning +
		a.WrittenWarning*RateWrittenWarning +
		a.Suspension*RateSuspension)
}

// SectionScore computes one section's score. Unscored items contribute 0 to
// the weighted sum; the attendance section floors at zero and the narrative
// section is always 0.
func SectionScore(section catalog.Section, scores map[string]int, attendance AttendanceCounts) float64 {
	switch section.ID {
	case catalog.SectionAttendance:
		score := section.SectionWeight - Deduction(attendance)
		if score < 0 {
			return 0
		}
		return score
	case catalog.SectionFeedback:
		return 0
	}

	var raw float64
	for _, item := range section.Items {
		score := scores[item.ID]
		raw += (float64(score) / 5) * item.Weight
	}
	return (raw / 100) * section.SectionWeight
}

// Total sums every section score, the zero-valued narrative section
// included. The result is not clamped to 0..100.
func Total(sections []catalog.Section, scores map[string]int, attendance AttendanceCounts) float64 {
	var total float64
	for _, section := range sections {
		total += SectionScore(section, scores, attendance)
	}
	return total
}

// Grade maps the unrounded total onto a letter grade with closed-above
// boundaries.
func Grade(total float64) string {
	switch {
	case total >= 90:
		return "A"
	case total >= 80:
		return "B"
	case total >= 70:
		return "C"
	default:
		return "D"
	}
}
