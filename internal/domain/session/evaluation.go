package session

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Raymagdonal/kpi-ctb/internal/domain/access"
	"github.com/Raymagdonal/kpi-ctb/internal/domain/catalog"
	"github.com/Raymagdonal/kpi-ctb/internal/domain/scoring"
)

// HeaderField names the editable fields of the evaluation header.
type HeaderField string

const (
	FieldID         HeaderField = "id"
	FieldName       HeaderField = "name"
	FieldJobType    HeaderField = "jobType"
	FieldPosition   HeaderField = "position"
	FieldDepartment HeaderField = "department"
	FieldDate       HeaderField = "date"
)

// SelectEmployee loads a roster entry into the evaluation header, resetting
// whatever was in progress. Entries outside the principal's scope behave as
// if they did not exist.
func (s *Store) SelectEmployee(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.principal == nil {
		return ErrNotAuthenticated
	}

	for _, emp := range s.employees {
		if emp.ID != id {
			continue
		}
		if !access.CanView(*s.principal, emp.JobType, emp.Position) ||
			access.HiddenEmployee(*s.principal, emp.ID) {
			break
		}
		s.resetEvaluation(ResetEmployeeSelected)
		s.eval.Employee.ID = emp.ID
		s.eval.Employee.Name = emp.Name
		s.eval.Employee.JobType = emp.JobType
		s.eval.Employee.Position = emp.Position
		s.eval.Employee.Department = emp.Department
		return nil
	}
	return ErrUnknownEmployee
}

// UpdateHeader edits one header field. Changing the position is a hard reset
// of scores, comments, attendance, and feedback: a different position has a
// structurally different template.
func (s *Store) UpdateHeader(field HeaderField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.principal == nil {
		return ErrNotAuthenticated
	}

	switch field {
	case FieldPosition:
		s.resetEvaluation(ResetPositionChanged)
		s.eval.Employee.Position = value
	case FieldJobType:
		// Picking a department restarts the employee selection below it.
		s.eval.Employee.JobType = value
		s.eval.Employee.ID = ""
		s.eval.Employee.Name = ""
		s.eval.Employee.Position = ""
	case FieldID:
		s.eval.Employee.ID = value
	case FieldName:
		s.eval.Employee.Name = value
	case FieldDepartment:
		s.eval.Employee.Department = value
	case FieldDate:
		s.eval.Employee.Date = value
	}
	return nil
}

// mutationAllowed applies the lock flag and the access rules. Callers hold
// the lock. A false result is a silent refusal, not an error.
func (s *Store) mutationAllowed(kind string) bool {
	if s.principal == nil {
		return false
	}
	if !access.CanMutate(*s.principal, s.eval.Employee.ID, s.eval.Locked) {
		s.log.Debug("mutation refused",
			zap.String("kind", kind),
			zap.String("employeeId", s.eval.Employee.ID),
			zap.Bool("locked", s.eval.Locked))
		return false
	}
	return true
}

func (s *Store) SetScore(itemID string, score int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.mutationAllowed("score") {
		return
	}
	s.eval.Scores[itemID] = score
}

func (s *Store) SetComment(itemID, comment string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.mutationAllowed("comment") {
		return
	}
	s.eval.Comments[itemID] = comment
}

func (s *Store) SetAttendance(counts scoring.AttendanceCounts) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.mutationAllowed("attendance") {
		return
	}
	s.eval.Attendance = counts.Clamped()
}

func (s *Store) SetFeedback(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.mutationAllowed("feedback") {
		return
	}
	s.eval.Feedback = text
}

// ToggleLock flips the editing freeze. Any authenticated user may do this;
// there is no confirmation step.
func (s *Store) ToggleLock() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.principal == nil {
		return false, ErrNotAuthenticated
	}
	s.eval.Locked = !s.eval.Locked
	s.log.Info("lock toggled", zap.Bool("locked", s.eval.Locked))
	return s.eval.Locked, nil
}

// SetSectionIndex moves the section navigation. Out-of-range indexes snap
// back to the first section.
func (s *Store) SetSectionIndex(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.principal == nil {
		return ErrNotAuthenticated
	}
	if index < 0 || index >= len(s.sectionsLocked()) {
		index = 0
	}
	s.eval.SectionIndex = index
	return nil
}

// Evaluation returns a copy of the in-progress record.
func (s *Store) Evaluation() Evaluation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneEvaluation(s.eval)
}

// Sections resolves the template for the current position with the live
// weight overrides applied.
func (s *Store) Sections() []catalog.Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sectionsLocked()
}

func (s *Store) sectionsLocked() []catalog.Section {
	return scoring.ApplyWeights(catalog.Resolve(s.eval.Employee.Position), s.weights)
}

type SectionResult struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Weight float64 `json:"weight"`
	Score  float64 `json:"score"`
}

type Summary struct {
	Sections  []SectionResult `json:"sections"`
	Deduction float64         `json:"deduction"`
	Total     float64         `json:"total"`
	Grade     string          `json:"grade"`
}

// Summarize computes the live section scores, total, and grade for the
// current record.
func (s *Store) Summarize() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sections := s.sectionsLocked()
	summary := Summary{Deduction: scoring.Deduction(s.eval.Attendance)}
	for _, section := range sections {
		score := scoring.SectionScore(section, s.eval.Scores, s.eval.Attendance)
		summary.Sections = append(summary.Sections, SectionResult{
			ID:     section.ID,
			Title:  section.Title,
			Weight: section.SectionWeight,
			Score:  score,
		})
		summary.Total += score
	}
	summary.Grade = scoring.Grade(summary.Total)
	return summary
}

// SaveEvaluation persists the in-progress record under its employee ID.
func (s *Store) SaveEvaluation() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.principal == nil {
		return ErrNotAuthenticated
	}
	if strings.TrimSpace(s.eval.Employee.ID) == "" {
		return ErrNoEmployee
	}
	s.evaluations[s.eval.Employee.ID] = cloneEvaluation(s.eval)
	return s.db.Save(evaluationsKey, marshal(s.evaluations))
}

// SearchEmployees matches the query against roster IDs and names, filtered
// by the principal's visibility and the restricted-record rule.
func (s *Store) SearchEmployees(query string) []Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.principal == nil {
		return nil
	}
	query = strings.ToLower(strings.TrimSpace(query))

	var out []Employee
	for _, emp := range s.employees {
		if !access.CanView(*s.principal, emp.JobType, emp.Position) {
			continue
		}
		if access.HiddenEmployee(*s.principal, emp.ID) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(emp.ID), query) &&
			!strings.Contains(strings.ToLower(emp.Name), query) {
			continue
		}
		out = append(out, emp)
	}
	return out
}

// VisibleDepartments derives the department list from the roster, filtered
// by the principal's scope.
func (s *Store) VisibleDepartments() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.principal == nil {
		return nil
	}
	seen := map[string]struct{}{}
	var out []string
	for _, emp := range s.employees {
		if emp.JobType == "" {
			continue
		}
		if _, dup := seen[emp.JobType]; dup {
			continue
		}
		if !access.CanViewDepartment(*s.principal, emp.JobType) {
			continue
		}
		seen[emp.JobType] = struct{}{}
		out = append(out, emp.JobType)
	}
	sort.Strings(out)
	return out
}
