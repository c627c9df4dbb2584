package transferhandler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Raymagdonal/kpi-ctb/internal/domain/session"
	"github.com/Raymagdonal/kpi-ctb/internal/domain/transfer"
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
	r.Get("/transfer/export", h.handleExport)
	r.Post("/transfer/import", h.handleImport)
}

// handleExport streams the full data set as a downloadable JSON document.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	doc := transfer.Export(h.Store)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="kpi-backup.json"`)
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to write export", middleware.GetRequestID(r.Context()))
	}
}

// handleImport swaps the entire configuration and evaluation archive for
// the uploaded document. A document missing any required key is rejected
// whole; nothing is merged.
func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	data, err := io.ReadAll(r.Body)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "failed to read upload", reqID)
		return
	}

	if err := transfer.Import(h.Store, data); err != nil {
		switch {
		case errors.Is(err, transfer.ErrInvalidDocument):
			api.Fail(w, http.StatusUnprocessableEntity, "invalid_document", err.Error(), reqID)
		case errors.Is(err, session.ErrInvalidConfig):
			api.Fail(w, http.StatusUnprocessableEntity, "invalid_config", err.Error(), reqID)
		default:
			api.Fail(w, http.StatusInternalServerError, "import_failed", err.Error(), reqID)
		}
		return
	}
	api.Success(w, map[string]string{"status": "imported"}, reqID)
}
