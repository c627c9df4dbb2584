package evaluationhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Raymagdonal/kpi-ctb/internal/domain/catalog"
	"github.com/Raymagdonal/kpi-ctb/internal/domain/scoring"
	"github.com/Raymagdonal/kpi-ctb/internal/domain/session"
	"github.com/Raymagdonal/kpi-ctb/internal/transport/http/api"
	"github.com/Raymagdonal/kpi-ctb/internal/transport/http/middleware"
)

type Handler struct {
	Store    *session.Store
	validate *validator.Validate
}

func NewHandler(store *session.Store) *Handler {
	return &Handler{Store: store, validate: validator.New()}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/evaluation", func(r chi.Router) {
		r.Get("/", h.handleState)
		r.Post("/employee", h.handleSelectEmployee)
		r.Put("/header", h.handleUpdateHeader)
		r.Post("/scores/{itemID}", h.handleSetScore)
		r.Post("/comments/{itemID}", h.handleSetComment)
		r.Put("/attendance", h.handleSetAttendance)
		r.Put("/feedback", h.handleSetFeedback)
		r.Post("/lock", h.handleToggleLock)
		r.Put("/section", h.handleSetSection)
		r.Post("/save", h.handleSave)
	})
	r.Get("/employees/search", h.handleSearchEmployees)
	r.Get("/template", h.handleTemplate)
}

type stateResponse struct {
	Evaluation  session.Evaluation `json:"evaluation"`
	Sections    []catalog.Section  `json:"sections"`
	Summary     session.Summary    `json:"summary"`
	Departments []string           `json:"departments"`
}

// handleState returns everything the form needs to draw itself: the live
// record, the resolved template, the computed summary, and the department
// options visible to the principal.
func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	api.Success(w, stateResponse{
		Evaluation:  h.Store.Evaluation(),
		Sections:    h.Store.Sections(),
		Summary:     h.Store.Summarize(),
		Departments: h.Store.VisibleDepartments(),
	}, middleware.GetRequestID(r.Context()))
}

type selectEmployeeRequest struct {
	ID string `json:"id" validate:"required"`
}

func (h *Handler) handleSelectEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload selectEmployeeRequest
	if err := decode(r, h.validate, &payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), reqID)
		return
	}

	if err := h.Store.SelectEmployee(payload.ID); err != nil {
		failDomain(w, err, reqID)
		return
	}
	api.Success(w, h.Store.Evaluation(), reqID)
}

type updateHeaderRequest struct {
	Field string `json:"field" validate:"required,oneof=id name jobType position department date"`
	Value string `json:"value"`
}

func (h *Handler) handleUpdateHeader(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload updateHeaderRequest
	if err := decode(r, h.validate, &payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), reqID)
		return
	}

	if err := h.Store.UpdateHeader(session.HeaderField(payload.Field), payload.Value); err != nil {
		failDomain(w, err, reqID)
		return
	}
	api.Success(w, h.Store.Evaluation(), reqID)
}

type scoreRequest struct {
	Score int `json:"score" validate:"min=0,max=5"`
}

func (h *Handler) handleSetScore(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload scoreRequest
	if err := decode(r, h.validate, &payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), reqID)
		return
	}

	h.Store.SetScore(chi.URLParam(r, "itemID"), payload.Score)
	api.Success(w, h.Store.Summarize(), reqID)
}

type commentRequest struct {
	Comment string `json:"comment"`
}

func (h *Handler) handleSetComment(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload commentRequest
	if err := decode(r, h.validate, &payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), reqID)
		return
	}

	h.Store.SetComment(chi.URLParam(r, "itemID"), payload.Comment)
	api.Success(w, h.Store.Evaluation(), reqID)
}

func (h *Handler) handleSetAttendance(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var counts scoring.AttendanceCounts
	if err := json.NewDecoder(r.Body).Decode(&counts); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	h.Store.SetAttendance(counts)
	api.Success(w, h.Store.Summarize(), reqID)
}

type feedbackRequest struct {
	Text string `json:"text"`
}

func (h *Handler) handleSetFeedback(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload feedbackRequest
	if err := decode(r, h.validate, &payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), reqID)
		return
	}

	h.Store.SetFeedback(payload.Text)
	api.Success(w, h.Store.Evaluation(), reqID)
}

func (h *Handler) handleToggleLock(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	locked, err := h.Store.ToggleLock()
	if err != nil {
		failDomain(w, err, reqID)
		return
	}
	api.Success(w, map[string]bool{"locked": locked}, reqID)
}

type sectionRequest struct {
	Index int `json:"index"`
}

func (h *Handler) handleSetSection(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload sectionRequest
	if err := decode(r, h.validate, &payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), reqID)
		return
	}

	if err := h.Store.SetSectionIndex(payload.Index); err != nil {
		failDomain(w, err, reqID)
		return
	}
	api.Success(w, map[string]int{"sectionIndex": h.Store.Evaluation().SectionIndex}, reqID)
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	if err := h.Store.SaveEvaluation(); err != nil {
		failDomain(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": "saved"}, reqID)
}

func (h *Handler) handleSearchEmployees(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	results := h.Store.SearchEmployees(r.URL.Query().Get("q"))
	if results == nil {
		results = []session.Employee{}
	}
	api.Success(w, results, reqID)
}

// handleTemplate resolves a scorecard template without touching the live
// record. Unknown positions fall back to the default template.
func (h *Handler) handleTemplate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	position := r.URL.Query().Get("position")
	api.Success(w, map[string]any{
		"position": position,
		"sections": catalog.Resolve(position),
	}, reqID)
}

func decode(r *http.Request, validate *validator.Validate, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("invalid request payload")
	}
	if err := validate.Struct(dst); err != nil {
		return errors.New("request payload failed validation")
	}
	return nil
}

func failDomain(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, session.ErrNotAuthenticated):
		api.Fail(w, http.StatusUnauthorized, "not_authenticated", err.Error(), reqID)
	case errors.Is(err, session.ErrUnknownEmployee):
		api.Fail(w, http.StatusNotFound, "unknown_employee", err.Error(), reqID)
	case errors.Is(err, session.ErrNoEmployee):
		api.Fail(w, http.StatusBadRequest, "no_employee", err.Error(), reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", err.Error(), reqID)
	}
}
