// Package access decides, for a user and a department/position/record,
// whether the user may see or mutate an evaluation. All predicates are pure
// functions over the given snapshot of state.
package access

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// RestrictedDepartment is the operational department whose single-department
// users are write-blocked on the restricted employee records.
const RestrictedDepartment = "ฝ่ายปฏิบัติการ"

// Restricted employee IDs. Write-blocked for users whose department scope is
// exactly the restricted department, regardless of general visibility.
var restrictedEmployeeIDs = map[string]struct{}{
	"226002": {},
	"226005": {},
	"226006": {},
	"226007": {},
}

type User struct {
	Username    string `json:"username"`
	Password    string `json:"password,omitempty"`
	Role        Role   `json:"role"`
	Departments Scope  `json:"allowedDepartments"`
	Positions   Scope  `json:"allowedPositions"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func IsRestrictedEmployee(id string) bool {
	_, ok := restrictedEmployeeIDs[id]
	return ok
}

// CanViewDepartment grants visibility to admins, ALL-scoped users, and users
// whose explicit subset contains the department. An empty subset sees nothing.
func CanViewDepartment(u User, department string) bool {
	if u.IsAdmin() || u.Departments.IsAll() {
		return true
	}
	return u.Departments.Contains(department)
}

// CanViewPosition mirrors the department rule except that an empty position
// scope means no restriction at all. The asymmetry is deliberate and matches
// the shipped behavior.
func CanViewPosition(u User, position string) bool {
	if u.IsAdmin() || u.Positions.IsAll() || u.Positions.IsEmpty() {
		return true
	}
	return u.Positions.Contains(position)
}

func CanView(u User, department, position string) bool {
	return CanViewDepartment(u, department) && CanViewPosition(u, position)
}

// writeRestricted matches users whose department scope is exactly the single
// restricted department. Broader or different scopes are unaffected.
func writeRestricted(u User, employeeID string) bool {
	if !IsRestrictedEmployee(employeeID) {
		return false
	}
	return u.Departments.Size() == 1 && u.Departments.Contains(RestrictedDepartment)
}

// HiddenEmployee reports whether the record should be dropped from lists and
// search results for this user, per the restricted-record rule.
func HiddenEmployee(u User, employeeID string) bool {
	return writeRestricted(u, employeeID)
}

// CanMutate gates every evaluation mutation: the record must not be locked
// and the user must not fall under the restricted-record exception.
func CanMutate(u User, employeeID string, locked bool) bool {
	if locked {
		return false
	}
	return !writeRestricted(u, employeeID)
}
