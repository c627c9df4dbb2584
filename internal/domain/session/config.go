package session

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Raymagdonal/kpi-ctb/internal/domain/access"
	"github.com/Raymagdonal/kpi-ctb/internal/domain/scoring"
	"github.com/Raymagdonal/kpi-ctb/internal/platform/storage"
)

const (
	employeesKey   = storage.KeyEmployees
	weightsKey     = storage.KeyWeights
	usersKey       = storage.KeyUsers
	evaluationsKey = storage.KeyEvaluations
)

// Snapshot is the versioned edit buffer for the process-wide configuration.
// The admin surface reads one, edits it offline, and commits the whole thing
// back; a version mismatch means someone else committed in between.
type Snapshot struct {
	Version   int             `json:"version"`
	Employees []Employee      `json:"employees"`
	Weights   scoring.Weights `json:"weights"`
	Users     []access.User   `json:"users"`
}

func (s *Store) ConfigSnapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Version:   s.version,
		Employees: append([]Employee(nil), s.employees...),
		Weights:   s.weights,
		Users:     append([]access.User(nil), s.users...),
	}
}

// CommitConfig atomically replaces roster, weights, and users from an edit
// buffer. The snapshot version must match the live version.
func (s *Store) CommitConfig(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.Version != s.version {
		return ErrStaleConfig
	}
	if err := validateUsers(snap.Users); err != nil {
		return err
	}

	s.employees = append([]Employee(nil), snap.Employees...)
	s.weights = snap.Weights
	s.users = append([]access.User(nil), snap.Users...)
	s.version++

	if err := s.persistConfig(); err != nil {
		return err
	}
	s.log.Info("configuration committed", zap.Int("version", s.version))
	return nil
}

func validateUsers(users []access.User) error {
	seen := map[string]struct{}{}
	adminPresent := false
	for _, u := range users {
		name := strings.TrimSpace(u.Username)
		if name == "" {
			return fmt.Errorf("%w: empty username", ErrInvalidConfig)
		}
		if strings.TrimSpace(u.Password) == "" {
			return fmt.Errorf("%w: user %q has no password", ErrInvalidConfig, name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: duplicate username %q", ErrInvalidConfig, name)
		}
		seen[name] = struct{}{}
		if name == "admin" {
			adminPresent = true
		}
	}
	if !adminPresent {
		return fmt.Errorf("%w: the built-in admin user cannot be deleted", ErrInvalidConfig)
	}
	return nil
}

// ReplaceAll is the import path of the bulk transfer: the whole
// configuration and the stored evaluation map are swapped at once.
func (s *Store) ReplaceAll(employees []Employee, weights scoring.Weights, users []access.User, evaluations map[string]Evaluation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateUsers(users); err != nil {
		return err
	}

	s.employees = append([]Employee(nil), employees...)
	s.weights = weights
	s.users = append([]access.User(nil), users...)
	s.evaluations = map[string]Evaluation{}
	for id, eval := range evaluations {
		s.evaluations[id] = cloneEvaluation(eval)
	}
	s.version++
	s.resetEvaluation(ResetImport)

	if err := s.persistConfig(); err != nil {
		return err
	}
	return s.db.Save(evaluationsKey, marshal(s.evaluations))
}

// Data returns the full persisted data set for the bulk export.
func (s *Store) Data() ([]Employee, scoring.Weights, []access.User, map[string]Evaluation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	evaluations := make(map[string]Evaluation, len(s.evaluations))
	for id, eval := range s.evaluations {
		evaluations[id] = cloneEvaluation(eval)
	}
	return append([]Employee(nil), s.employees...), s.weights, append([]access.User(nil), s.users...), evaluations
}

func (s *Store) persistConfig() error {
	if err := s.db.Save(employeesKey, marshal(s.employees)); err != nil {
		return err
	}
	if err := s.db.Save(weightsKey, marshal(s.weights)); err != nil {
		return err
	}
	return s.db.Save(usersKey, marshal(s.users))
}

func (s *Store) loadAll(seedAdminUser, seedAdminPassword string) error {
	if err := loadKey(s.db, employeesKey, &s.employees, defaultRoster); err != nil {
		return err
	}
	if err := loadKey(s.db, weightsKey, &s.weights, scoring.DefaultWeights); err != nil {
		return err
	}
	defaultUsers := func() []access.User {
		return []access.User{{
			Username:    seedAdminUser,
			Password:    seedAdminPassword,
			Role:        access.RoleAdmin,
			Departments: access.AllScope(),
		}}
	}
	if err := loadKey(s.db, usersKey, &s.users, defaultUsers); err != nil {
		return err
	}
	emptyEvaluations := func() map[string]Evaluation { return map[string]Evaluation{} }
	return loadKey(s.db, evaluationsKey, &s.evaluations, emptyEvaluations)
}

// loadKey reads one persisted record, falling back to the built-in default
// when the key is absent or unreadable.
func loadKey[T any](db storage.Store, key string, dst *T, fallback func() T) error {
	data, ok, err := db.Load(key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		*dst = fallback()
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		*dst = fallback()
	}
	return nil
}
