package access

import (
	"encoding/json"
	"testing"
)

func TestScopeAllSupersedesSubset(t *testing.T) {
	s := SubsetScope("สำนักงาน", "ALL")
	if !s.IsAll() {
		t.Fatal("ALL inside a subset should collapse to the ALL form")
	}
	if s.Names() != nil {
		t.Fatalf("ALL form must carry no explicit names, got %v", s.Names())
	}
}

func TestScopeJSONRoundTrip(t *testing.T) {
	all, err := json.Marshal(AllScope())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(all) != `["ALL"]` {
		t.Fatalf("ALL wire form mismatch: %s", all)
	}

	subset, err := json.Marshal(SubsetScope("สำนักงาน"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(subset) != `["สำนักงาน"]` {
		t.Fatalf("subset wire form mismatch: %s", subset)
	}

	var parsed Scope
	if err := json.Unmarshal([]byte(`["ALL","สำนักงาน"]`), &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !parsed.IsAll() {
		t.Fatal("parsed scope containing ALL must be the ALL form")
	}

	var empty Scope
	if err := json.Unmarshal([]byte(`[]`), &empty); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if empty.IsAll() || !empty.IsEmpty() {
		t.Fatal("empty list must parse to the empty subset")
	}
}

func TestDepartmentVisibility(t *testing.T) {
	admin := User{Username: "admin", Role: RoleAdmin, Departments: AllScope()}
	allUser := User{Username: "hr", Role: RoleUser, Departments: AllScope()}
	scoped := User{Username: "ops", Role: RoleUser, Departments: SubsetScope("ฝ่ายปฏิบัติการ")}
	emptyScoped := User{Username: "new", Role: RoleUser}

	for _, u := range []User{admin, allUser} {
		if !CanViewDepartment(u, "สำนักงาน") || !CanViewDepartment(u, "ฝ่ายปฏิบัติการ") {
			t.Fatalf("%s should see every department", u.Username)
		}
	}

	if !CanViewDepartment(scoped, "ฝ่ายปฏิบัติการ") {
		t.Fatal("scoped user should see its own department")
	}
	if CanViewDepartment(scoped, "สำนักงาน") {
		t.Fatal("scoped user must not see other departments")
	}
	if CanViewDepartment(emptyScoped, "สำนักงาน") {
		t.Fatal("an empty department scope sees nothing")
	}
}

func TestPositionGateEmptyMeansUnrestricted(t *testing.T) {
	u := User{Username: "ops", Role: RoleUser, Departments: SubsetScope("ฝ่ายปฏิบัติการ")}
	if !CanViewPosition(u, "พนักงานขับเรือ") {
		t.Fatal("empty position scope must not restrict")
	}

	u.Positions = SubsetScope("พนักงานขับเรือ")
	if !CanViewPosition(u, "พนักงานขับเรือ") || CanViewPosition(u, "พนักงานขายตั๋ว") {
		t.Fatal("explicit position subset must gate")
	}

	u.Positions = AllScope()
	if !CanViewPosition(u, "พนักงานขายตั๋ว") {
		t.Fatal("ALL position scope must short-circuit")
	}
}

func TestRestrictedRecordPredicate(t *testing.T) {
	exactOps := User{Username: "ops", Role: RoleUser, Departments: SubsetScope(RestrictedDepartment)}
	broad := User{Username: "lead", Role: RoleUser, Departments: SubsetScope(RestrictedDepartment, "สำนักงาน")}
	other := User{Username: "office", Role: RoleUser, Departments: SubsetScope("สำนักงาน")}
	admin := User{Username: "admin", Role: RoleAdmin, Departments: AllScope()}

	if CanMutate(exactOps, "226002", false) {
		t.Fatal("exact single-department user must be write-blocked on restricted IDs")
	}
	if !CanMutate(exactOps, "226001", false) {
		t.Fatal("non-restricted IDs stay writable")
	}
	for _, u := range []User{broad, other, admin} {
		if !CanMutate(u, "226002", false) {
			t.Fatalf("%s should not fall under the restricted-record exception", u.Username)
		}
	}

	if !HiddenEmployee(exactOps, "226005") || HiddenEmployee(broad, "226005") {
		t.Fatal("hidden-employee rule must match the write-block predicate")
	}
}

func TestLockBlocksEveryMutation(t *testing.T) {
	admin := User{Username: "admin", Role: RoleAdmin, Departments: AllScope()}
	if CanMutate(admin, "226001", true) {
		t.Fatal("lock must reject mutation regardless of permissions")
	}
}
