package adminhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/Raymagdonal/kpi-ctb/internal/domain/catalog"
	"github.com/Raymagdonal/kpi-ctb/internal/domain/scoring"
	"github.com/Raymagdonal/kpi-ctb/internal/domain/session"
	"github.com/Raymagdonal/kpi-ctb/internal/transport/http/api"
	"github.com/Raymagdonal/kpi-ctb/internal/transport/http/middleware"
)

type Handler struct {
	Store *session.Store
}

func NewHandler(store *session.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/admin/config", h.handleGetConfig)
	r.Put("/admin/config", h.handleCommitConfig)
	r.Get("/admin/options", h.handleOptions)
}

func (h *Handler) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.ConfigSnapshot(), middleware.GetRequestID(r.Context()))
}

// handleCommitConfig replaces roster, weights, and users from an edit
// buffer. The buffer's version must match the live one; a mismatch means
// another admin committed first and the edit must be redone on top of a
// fresh snapshot.
func (h *Handler) handleCommitConfig(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var snap session.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	if err := h.Store.CommitConfig(snap); err != nil {
		switch {
		case errors.Is(err, session.ErrStaleConfig):
			api.Fail(w, http.StatusConflict, "stale_config", err.Error(), reqID)
		case errors.Is(err, session.ErrInvalidConfig):
			api.Fail(w, http.StatusUnprocessableEntity, "invalid_config", err.Error(), reqID)
		default:
			api.Fail(w, http.StatusInternalServerError, "commit_failed", err.Error(), reqID)
		}
		return
	}
	api.Success(w, h.Store.ConfigSnapshot(), reqID)
}

type optionsResponse struct {
	Positions      []string        `json:"positions"`
	Departments    []string        `json:"departments"`
	DefaultWeights scoring.Weights `json:"defaultWeights"`
	DeductionRates map[string]int  `json:"deductionRates"`
}

// handleOptions lists the selectable values for the admin screens:
// template positions, roster departments, and the scoring constants.
func (h *Handler) handleOptions(w http.ResponseWriter, r *http.Request) {
	snap := h.Store.ConfigSnapshot()

	seen := map[string]struct{}{}
	var departments []string
	for _, emp := range snap.Employees {
		if emp.JobType == "" {
			continue
		}
		if _, dup := seen[emp.JobType]; dup {
			continue
		}
		seen[emp.JobType] = struct{}{}
		departments = append(departments, emp.JobType)
	}
	sort.Strings(departments)

	api.Success(w, optionsResponse{
		Positions:      catalog.Positions(),
		Departments:    departments,
		DefaultWeights: scoring.DefaultWeights(),
		DeductionRates: map[string]int{
			"sickLeave":       scoring.RateSickLeave,
			"personalLeave":   scoring.RatePersonalLeave,
			"absent":          scoring.RateAbsent,
			"late":            scoring.RateLate,
			"maternityLeave":  scoring.RateMaternityLeave,
			"ordinationLeave": scoring.RateOrdination,
			"verbalWarning":   scoring.RateVerbalWarning,
			"writtenWarning":  scoring.RateWrittenWarning,
			"suspension":      scoring.RateSuspension,
		},
	}, middleware.GetRequestID(r.Context()))
}
