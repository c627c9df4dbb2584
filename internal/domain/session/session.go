// Package session owns the single authoritative in-memory state: the active
// principal, the in-progress evaluation, and the process-wide configuration
// (roster, users, section weights). Every mutation is mediated through the
// access rules and the lock flag before it is applied.
package session

import (
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/Raymagdonal/kpi-ctb/internal/auth"
	"github.com/Raymagdonal/kpi-ctb/internal/domain/access"
	"github.com/Raymagdonal/kpi-ctb/internal/domain/scoring"
	"github.com/Raymagdonal/kpi-ctb/internal/platform/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrUnknownEmployee    = errors.New("unknown employee")
	ErrStaleConfig        = errors.New("configuration changed underneath the edit")
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrNoEmployee         = errors.New("no employee selected")
)

// DefaultAppraisalDate is the free-text Buddhist-era date preprinted on the
// form header.
const DefaultAppraisalDate = "15 ธันวาคม 2568"

// Employee is one roster entry. Department/position values are free text;
// the selectable sets elsewhere in the system derive from this roster.
type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	JobType    string `json:"jobType"`
	Position   string `json:"position"`
	Department string `json:"department"`
}

// Header is the employee block of the in-progress evaluation.
type Header struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	JobType    string `json:"jobType"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Date       string `json:"date"`
}

// Evaluation is the transient per-employee record.
type Evaluation struct {
	Employee     Header                   `json:"employee"`
	Scores       map[string]int           `json:"scores"`
	Comments     map[string]string        `json:"comments"`
	Attendance   scoring.AttendanceCounts `json:"attendance"`
	Feedback     string                   `json:"feedback"`
	Locked       bool                     `json:"locked"`
	SectionIndex int                      `json:"sectionIndex"`
}

// ResetReason names the designed state transitions that discard the
// in-progress evaluation.
type ResetReason string

const (
	ResetEmployeeSelected ResetReason = "employee_selected"
	ResetPositionChanged  ResetReason = "position_changed"
	ResetLogout           ResetReason = "logout"
	ResetImport           ResetReason = "import"
)

type Store struct {
	mu  sync.Mutex
	log *zap.Logger
	db  storage.Store

	version     int
	employees   []Employee
	weights     scoring.Weights
	users       []access.User
	evaluations map[string]Evaluation

	principal *access.User
	eval      Evaluation
}

func New(db storage.Store, log *zap.Logger, seedAdminUser, seedAdminPassword string) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		log:         log,
		db:          db,
		evaluations: map[string]Evaluation{},
		eval:        blankEvaluation(),
	}
	if err := s.loadAll(seedAdminUser, seedAdminPassword); err != nil {
		return nil, err
	}
	return s, nil
}

func blankEvaluation() Evaluation {
	return Evaluation{
		Employee: Header{Date: DefaultAppraisalDate},
		Scores:   map[string]int{},
		Comments: map[string]string{},
	}
}

// Login checks the pair against the user list. Hashed credentials go through
// bcrypt; seeded and imported plaintext credentials are compared verbatim.
// The failure signal never distinguishes unknown user from wrong password.
func (s *Store) Login(username, password string) (access.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username != username {
			continue
		}
		if credentialMatches(u.Password, password) {
			principal := u
			s.principal = &principal
			s.log.Info("login", zap.String("username", username), zap.String("role", string(u.Role)))
			return u, nil
		}
		break
	}
	return access.User{}, ErrInvalidCredentials
}

func credentialMatches(stored, submitted string) bool {
	if auth.IsHashed(stored) {
		return auth.CheckPassword(stored, submitted) == nil
	}
	return stored == submitted
}

// Logout clears the principal and resets the evaluation and lock. The
// roster, users, and weights are process configuration and survive.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.principal = nil
	s.resetEvaluation(ResetLogout)
}

func (s *Store) Principal() (access.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.principal == nil {
		return access.User{}, false
	}
	return *s.principal, true
}

// resetEvaluation is the single place the in-progress record is discarded.
// Callers hold the lock.
func (s *Store) resetEvaluation(reason ResetReason) {
	header := Header{Date: s.eval.Employee.Date}
	if header.Date == "" {
		header.Date = DefaultAppraisalDate
	}
	switch reason {
	case ResetPositionChanged, ResetEmployeeSelected:
		// Employee identity survives; scores and narrative do not.
		header.ID = s.eval.Employee.ID
		header.Name = s.eval.Employee.Name
		header.JobType = s.eval.Employee.JobType
		header.Position = s.eval.Employee.Position
		header.Department = s.eval.Employee.Department
	case ResetLogout, ResetImport:
		header = Header{Date: DefaultAppraisalDate}
	}

	locked := s.eval.Locked
	s.eval = blankEvaluation()
	s.eval.Employee = header
	if reason == ResetLogout || reason == ResetImport {
		locked = false
	}
	s.eval.Locked = locked
	s.log.Debug("evaluation reset", zap.String("reason", string(reason)))
}

func cloneEvaluation(e Evaluation) Evaluation {
	scores := make(map[string]int, len(e.Scores))
	for k, v := range e.Scores {
		scores[k] = v
	}
	comments := make(map[string]string, len(e.Comments))
	for k, v := range e.Comments {
		comments[k] = v
	}
	e.Scores = scores
	e.Comments = comments
	return e
}

func marshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err) // all session types are plain data
	}
	return data
}
