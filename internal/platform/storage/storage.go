// Package storage is the persistence port: a key/value store addressed by
// logical record names. Callers must tolerate absent keys (first run) by
// falling back to built-in defaults.
package storage

// Logical keys for the persisted records.
const (
	KeyEmployees   = "employees"
	KeyWeights     = "sectionWeights"
	KeyUsers       = "users"
	KeyEvaluations = "evaluations"
)

type Store interface {
	// Load returns the stored value and whether the key was present.
	Load(key string) ([]byte, bool, error)
	Save(key string, value []byte) error
	Clear(key string) error
}
