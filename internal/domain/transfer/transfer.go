// Package transfer implements the bulk backup/restore document: a single
// JSON file carrying the roster, weights, users, and stored evaluations.
// Import is all-or-nothing; nothing is applied until the whole document
// validates.
package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Raymagdonal/kpi-ctb/internal/domain/access"
	"github.com/Raymagdonal/kpi-ctb/internal/domain/scoring"
	"github.com/Raymagdonal/kpi-ctb/internal/domain/session"
)

var ErrInvalidDocument = errors.New("invalid transfer document")

var validate = validator.New()

// Document field presence is checked against the raw keys, not validator
// tags: empty collections are legal, absent keys are not.
type Document struct {
	Employees   []session.Employee            `json:"employees"`
	Weights     *scoring.Weights              `json:"weights" validate:"required"`
	Users       []access.User                 `json:"users" validate:"min=1"`
	Evaluations map[string]session.Evaluation `json:"evaluations"`
	ExportedAt  time.Time                     `json:"exportedAt"`
}

// requiredKeys are the four data keys every document must carry.
// Evaluations may be an empty mapping but the key must be present.
var requiredKeys = []string{"employees", "weights", "users", "evaluations"}

// Export builds the document from the store's current data.
func Export(store *session.Store) Document {
	employees, weights, users, evaluations := store.Data()
	return Document{
		Employees:   employees,
		Weights:     &weights,
		Users:       users,
		Evaluations: evaluations,
		ExportedAt:  time.Now().UTC(),
	}
}

// Parse decodes and fully validates a document without applying anything.
func Parse(data []byte) (Document, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	for _, key := range requiredKeys {
		raw, ok := keys[key]
		if !ok || string(raw) == "null" {
			return Document{}, fmt.Errorf("%w: missing key %q", ErrInvalidDocument, key)
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := validate.Struct(doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return doc, nil
}

// Import validates the document and replaces the store's entire data set.
// A failed parse leaves the store untouched.
func Import(store *session.Store, data []byte) error {
	doc, err := Parse(data)
	if err != nil {
		return err
	}
	if doc.Evaluations == nil {
		doc.Evaluations = map[string]session.Evaluation{}
	}
	return store.ReplaceAll(doc.Employees, *doc.Weights, doc.Users, doc.Evaluations)
}
