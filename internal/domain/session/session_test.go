package session

import (
	"errors"
	"testing"

	"github.com/Raymagdonal/kpi-ctb/internal/auth"
	"github.com/Raymagdonal/kpi-ctb/internal/domain/access"
	"github.com/Raymagdonal/kpi-ctb/internal/domain/scoring"
	"github.com/Raymagdonal/kpi-ctb/internal/platform/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(storage.NewMemoryStore(), nil, "admin", "admin")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func loginAdmin(t *testing.T, s *Store) {
	t.Helper()
	if _, err := s.Login("admin", "admin"); err != nil {
		t.Fatalf("admin login: %v", err)
	}
}

func TestLoginFailureIsGeneric(t *testing.T) {
	s := newTestStore(t)

	_, unknownErr := s.Login("nobody", "admin")
	_, wrongErr := s.Login("admin", "wrong")

	if !errors.Is(unknownErr, ErrInvalidCredentials) || !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Fatalf("expected the same invalid-credentials signal, got %v and %v", unknownErr, wrongErr)
	}
}

func TestLoginWithHashedPassword(t *testing.T) {
	s := newTestStore(t)
	loginAdmin(t, s)

	hash, err := auth.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	snap := s.ConfigSnapshot()
	snap.Users = append(snap.Users, access.User{
		Username:    "jaruwan",
		Password:    hash,
		Role:        access.RoleUser,
		Departments: access.SubsetScope("สำนักงาน"),
	})
	if err := s.CommitConfig(snap); err != nil {
		t.Fatalf("commit: %v", err)
	}

	if _, err := s.Login("jaruwan", "s3cret"); err != nil {
		t.Fatalf("hashed login: %v", err)
	}
	if _, err := s.Login("jaruwan", hash); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatal("the hash itself must not work as a password")
	}
}

func TestPositionChangeResetsEvaluation(t *testing.T) {
	s := newTestStore(t)
	loginAdmin(t, s)

	if err := s.SelectEmployee("226001"); err != nil {
		t.Fatalf("select: %v", err)
	}
	s.SetScore("p1-i1", 4)
	s.SetComment("p1-i1", "ขับเรือนิ่ง")
	s.SetAttendance(scoring.AttendanceCounts{Late: 2})
	s.SetFeedback("ทำงานดี")
	if err := s.SetSectionIndex(2); err != nil {
		t.Fatalf("section index: %v", err)
	}

	if err := s.UpdateHeader(FieldPosition, "ช่างซ่อมบำรุง"); err != nil {
		t.Fatalf("update position: %v", err)
	}

	eval := s.Evaluation()
	if len(eval.Scores) != 0 || len(eval.Comments) != 0 || eval.Feedback != "" {
		t.Fatalf("position change must clear entered data: %+v", eval)
	}
	if eval.Attendance != (scoring.AttendanceCounts{}) {
		t.Fatalf("attendance not cleared: %+v", eval.Attendance)
	}
	if eval.SectionIndex != 0 {
		t.Fatalf("section index not reset: %d", eval.SectionIndex)
	}
	if eval.Employee.Position != "ช่างซ่อมบำรุง" || eval.Employee.ID != "226001" {
		t.Fatalf("employee identity lost: %+v", eval.Employee)
	}
}

func TestNonPositionHeaderEditsDoNotReset(t *testing.T) {
	s := newTestStore(t)
	loginAdmin(t, s)

	if err := s.SelectEmployee("226001"); err != nil {
		t.Fatalf("select: %v", err)
	}
	s.SetScore("p1-i1", 5)

	if err := s.UpdateHeader(FieldDate, "1 มกราคม 2569"); err != nil {
		t.Fatalf("update date: %v", err)
	}

	eval := s.Evaluation()
	if eval.Scores["p1-i1"] != 5 {
		t.Fatal("date edit must not clear scores")
	}
	if eval.Employee.Date != "1 มกราคม 2569" {
		t.Fatalf("date not applied: %q", eval.Employee.Date)
	}
}

func TestLogoutResetsSessionButNotConfiguration(t *testing.T) {
	s := newTestStore(t)
	loginAdmin(t, s)

	if err := s.SelectEmployee("226001"); err != nil {
		t.Fatalf("select: %v", err)
	}
	s.SetScore("p1-i1", 5)
	if _, err := s.ToggleLock(); err != nil {
		t.Fatalf("lock: %v", err)
	}

	before := s.ConfigSnapshot()
	s.Logout()

	if _, ok := s.Principal(); ok {
		t.Fatal("principal survived logout")
	}
	eval := s.Evaluation()
	if eval.Employee.ID != "" || len(eval.Scores) != 0 || eval.Locked {
		t.Fatalf("logout must blank the evaluation and unlock: %+v", eval)
	}

	after := s.ConfigSnapshot()
	if len(after.Employees) != len(before.Employees) || len(after.Users) != len(before.Users) {
		t.Fatal("logout must not touch roster or users")
	}
}

func TestLockFreezesEveryMutation(t *testing.T) {
	s := newTestStore(t)
	loginAdmin(t, s)

	if err := s.SelectEmployee("226001"); err != nil {
		t.Fatalf("select: %v", err)
	}
	s.SetScore("p1-i1", 3)
	if _, err := s.ToggleLock(); err != nil {
		t.Fatalf("lock: %v", err)
	}

	s.SetScore("p1-i1", 5)
	s.SetComment("p1-i1", "ignored")
	s.SetAttendance(scoring.AttendanceCounts{Absent: 9})
	s.SetFeedback("ignored")

	eval := s.Evaluation()
	if eval.Scores["p1-i1"] != 3 || len(eval.Comments) != 0 || eval.Feedback != "" {
		t.Fatalf("locked record mutated: %+v", eval)
	}
	if eval.Attendance != (scoring.AttendanceCounts{}) {
		t.Fatalf("locked attendance mutated: %+v", eval.Attendance)
	}

	// Reads and computation stay available while locked.
	summary := s.Summarize()
	if summary.Total <= 0 {
		t.Fatalf("expected live computation under lock, total %v", summary.Total)
	}

	if _, err := s.ToggleLock(); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	s.SetScore("p1-i1", 5)
	if s.Evaluation().Scores["p1-i1"] != 5 {
		t.Fatal("unlock must restore mutability")
	}
}

func TestRestrictedRecordSilentRefusal(t *testing.T) {
	s := newTestStore(t)
	loginAdmin(t, s)

	snap := s.ConfigSnapshot()
	snap.Users = append(snap.Users, access.User{
		Username:    "ops",
		Password:    "ops",
		Role:        access.RoleUser,
		Departments: access.SubsetScope(access.RestrictedDepartment),
	})
	if err := s.CommitConfig(snap); err != nil {
		t.Fatalf("commit: %v", err)
	}

	if _, err := s.Login("ops", "ops"); err != nil {
		t.Fatalf("ops login: %v", err)
	}

	// Restricted IDs are hidden from selection and search for this profile.
	if err := s.SelectEmployee("226002"); !errors.Is(err, ErrUnknownEmployee) {
		t.Fatalf("restricted employee should be invisible, got %v", err)
	}
	for _, emp := range s.SearchEmployees("") {
		if access.IsRestrictedEmployee(emp.ID) {
			t.Fatalf("restricted employee %s leaked into search", emp.ID)
		}
	}

	// Even with the header pointed at a restricted ID, writes are no-ops.
	if err := s.UpdateHeader(FieldID, "226002"); err != nil {
		t.Fatalf("update header: %v", err)
	}
	s.SetScore("p1-i1", 5)
	s.SetFeedback("blocked")
	eval := s.Evaluation()
	if len(eval.Scores) != 0 || eval.Feedback != "" {
		t.Fatalf("restricted mutation applied: %+v", eval)
	}
}

func TestDepartmentScopeGatesSelection(t *testing.T) {
	s := newTestStore(t)
	loginAdmin(t, s)

	snap := s.ConfigSnapshot()
	snap.Users = append(snap.Users, access.User{
		Username:    "office",
		Password:    "office",
		Role:        access.RoleUser,
		Departments: access.SubsetScope("สำนักงาน"),
	})
	if err := s.CommitConfig(snap); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if _, err := s.Login("office", "office"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := s.SelectEmployee("226001"); !errors.Is(err, ErrUnknownEmployee) {
		t.Fatalf("out-of-scope employee should be invisible, got %v", err)
	}
	if err := s.SelectEmployee("221001"); err != nil {
		t.Fatalf("in-scope employee: %v", err)
	}

	departments := s.VisibleDepartments()
	if len(departments) != 1 || departments[0] != "สำนักงาน" {
		t.Fatalf("unexpected visible departments: %v", departments)
	}
}

func TestCommitConfigVersioning(t *testing.T) {
	s := newTestStore(t)
	loginAdmin(t, s)

	first := s.ConfigSnapshot()
	second := s.ConfigSnapshot()

	first.Weights = scoring.Weights{Part1: 60, Part2: 20, Part3: 30}
	if err := s.CommitConfig(first); err != nil {
		t.Fatalf("first commit: %v", err)
	}

	second.Weights = scoring.Weights{Part1: 40, Part2: 30, Part3: 30}
	if err := s.CommitConfig(second); !errors.Is(err, ErrStaleConfig) {
		t.Fatalf("stale commit should be rejected, got %v", err)
	}

	if s.ConfigSnapshot().Weights.Part1 != 60 {
		t.Fatal("stale commit leaked into live configuration")
	}
}

func TestCommitConfigValidation(t *testing.T) {
	s := newTestStore(t)
	loginAdmin(t, s)

	snap := s.ConfigSnapshot()
	snap.Users = append(snap.Users, access.User{Username: "admin", Password: "x", Role: access.RoleUser})
	if err := s.CommitConfig(snap); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("duplicate username should be rejected, got %v", err)
	}

	snap = s.ConfigSnapshot()
	snap.Users = []access.User{{Username: "someone", Password: "x", Role: access.RoleUser}}
	if err := s.CommitConfig(snap); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("removing the admin user should be rejected, got %v", err)
	}

	snap = s.ConfigSnapshot()
	snap.Users = append(snap.Users, access.User{Username: " ", Password: "x", Role: access.RoleUser})
	if err := s.CommitConfig(snap); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("blank username should be rejected, got %v", err)
	}
}

func TestSaveEvaluationPersists(t *testing.T) {
	db := storage.NewMemoryStore()
	s, err := New(db, nil, "admin", "admin")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	loginAdmin(t, s)

	if err := s.SelectEmployee("226001"); err != nil {
		t.Fatalf("select: %v", err)
	}
	s.SetScore("p1-i1", 4)
	if err := s.SaveEvaluation(); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := New(db, nil, "admin", "admin")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	_, _, _, evaluations := reloaded.Data()
	if evaluations["226001"].Scores["p1-i1"] != 4 {
		t.Fatalf("saved evaluation not reloaded: %+v", evaluations)
	}
}

func TestSaveEvaluationWithoutSelection(t *testing.T) {
	s := newTestStore(t)
	loginAdmin(t, s)
	if err := s.SaveEvaluation(); !errors.Is(err, ErrNoEmployee) {
		t.Fatalf("expected ErrNoEmployee, got %v", err)
	}
}

func TestWeightsOverrideFlowsIntoSections(t *testing.T) {
	s := newTestStore(t)
	loginAdmin(t, s)

	snap := s.ConfigSnapshot()
	snap.Weights = scoring.Weights{Part1: 60, Part2: 20, Part3: 30}
	if err := s.CommitConfig(snap); err != nil {
		t.Fatalf("commit: %v", err)
	}

	sections := s.Sections()
	if sections[0].SectionWeight != 60 {
		t.Fatalf("override not applied to resolved sections: %v", sections[0].SectionWeight)
	}
}

func TestMutationsRequireAuthentication(t *testing.T) {
	s := newTestStore(t)

	s.SetScore("p1-i1", 5)
	if len(s.Evaluation().Scores) != 0 {
		t.Fatal("unauthenticated mutation applied")
	}
	if err := s.SelectEmployee("226001"); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestNegativeAttendanceCountsAreClamped(t *testing.T) {
	s := newTestStore(t)
	loginAdmin(t, s)
	if err := s.SelectEmployee("226001"); err != nil {
		t.Fatalf("select: %v", err)
	}

	s.SetAttendance(scoring.AttendanceCounts{Suspension: -10, Absent: -2, SickLeave: 1})

	stored := s.Evaluation().Attendance
	if stored.Suspension != 0 || stored.Absent != 0 {
		t.Fatalf("negative counters stored: %+v", stored)
	}
	if stored.SickLeave != 1 {
		t.Fatalf("valid counter lost: %+v", stored)
	}

	// The attendance section can never exceed its configured weight.
	summary := s.Summarize()
	for _, section := range summary.Sections {
		if section.ID == "part-3" && section.Score > section.Weight {
			t.Fatalf("attendance score %v exceeds weight %v", section.Score, section.Weight)
		}
	}
	if summary.Deduction != 1 {
		t.Fatalf("deduction = %v, want 1", summary.Deduction)
	}
}
