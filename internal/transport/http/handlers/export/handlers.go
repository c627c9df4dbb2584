package exporthandler

import (
	"errors"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/Raymagdonal/kpi-ctb/internal/domain/session"
	"github.com/Raymagdonal/kpi-ctb/internal/export"
	"github.com/Raymagdonal/kpi-ctb/internal/transport/http/api"
	"github.com/Raymagdonal/kpi-ctb/internal/transport/http/middleware"
)

type Handler struct {
	Store *session.Store
	Task  *export.Task
	PDF   export.Renderer
	Excel export.Renderer
}

func NewHandler(store *session.Store, task *export.Task, pdf, excel export.Renderer) *Handler {
	return &Handler{Store: store, Task: task, PDF: pdf, Excel: excel}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/export/pdf", h.handleStartPDF)
	r.Post("/export/xlsx", h.handleStartExcel)
	r.Get("/export/status", h.handleStatus)
	r.Get("/export/download", h.handleDownload)
}

func (h *Handler) handleStartPDF(w http.ResponseWriter, r *http.Request) {
	h.start(w, r, h.PDF)
}

func (h *Handler) handleStartExcel(w http.ResponseWriter, r *http.Request) {
	h.start(w, r, h.Excel)
}

// start launches a render of the current evaluation. The evaluation must
// have a selected employee; one export runs at a time.
func (h *Handler) start(w http.ResponseWriter, r *http.Request, renderer export.Renderer) {
	reqID := middleware.GetRequestID(r.Context())

	eval := h.Store.Evaluation()
	if eval.Employee.ID == "" {
		api.Fail(w, http.StatusBadRequest, "no_employee", session.ErrNoEmployee.Error(), reqID)
		return
	}

	taskID, err := h.Task.Start(renderer, export.BuildSnapshot(h.Store))
	if err != nil {
		if errors.Is(err, export.ErrExportInProgress) {
			api.Fail(w, http.StatusConflict, "export_in_progress", err.Error(), reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "export_failed", err.Error(), reqID)
		return
	}
	api.Accepted(w, map[string]string{"taskId": taskID}, reqID)
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Task.Status(), middleware.GetRequestID(r.Context()))
}

// handleDownload serves the finished document of the most recent export.
func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	status := h.Task.Status()
	if status.State != export.StateDone || status.File == "" {
		api.Fail(w, http.StatusNotFound, "no_export", "no finished export to download", reqID)
		return
	}
	if _, err := os.Stat(status.File); err != nil {
		api.Fail(w, http.StatusNotFound, "no_export", "export file is gone", reqID)
		return
	}
	http.ServeFile(w, r, status.File)
}
