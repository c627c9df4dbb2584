package access

import "encoding/json"

// sentinel used by the stored/exported representation of a scope.
const sentinelAll = "ALL"

// Scope is a tagged department/position visibility set: either everything,
// or an explicit subset. The ALL form supersedes any subset; the two are
// mutually exclusive rather than additive.
type Scope struct {
	all   bool
	names []string
}

func AllScope() Scope {
	return Scope{all: true}
}

func SubsetScope(names ...string) Scope {
	cp := make([]string, 0, len(names))
	for _, n := range names {
		if n == sentinelAll {
			return AllScope()
		}
		cp = append(cp, n)
	}
	return Scope{names: cp}
}

func (s Scope) IsAll() bool { return s.all }

func (s Scope) IsEmpty() bool { return !s.all && len(s.names) == 0 }

func (s Scope) Contains(name string) bool {
	if s.all {
		return true
	}
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}

// Names returns the explicit subset; nil for the ALL form.
func (s Scope) Names() []string {
	if s.all {
		return nil
	}
	cp := make([]string, len(s.names))
	copy(cp, s.names)
	return cp
}

// Size reports how many explicit entries the scope carries; ALL counts as
// unbounded and returns -1.
func (s Scope) Size() int {
	if s.all {
		return -1
	}
	return len(s.names)
}

// MarshalJSON keeps the wire format of the stored records: ["ALL"] for the
// ALL form, the plain name list otherwise.
func (s Scope) MarshalJSON() ([]byte, error) {
	if s.all {
		return json.Marshal([]string{sentinelAll})
	}
	if s.names == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s.names)
}

func (s *Scope) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*s = SubsetScope(names...)
	return nil
}
