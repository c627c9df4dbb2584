package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Raymagdonal/kpi-ctb/internal/auth"
	"github.com/Raymagdonal/kpi-ctb/internal/domain/access"
	"github.com/Raymagdonal/kpi-ctb/internal/domain/session"
	"github.com/Raymagdonal/kpi-ctb/internal/transport/http/api"
	"github.com/Raymagdonal/kpi-ctb/internal/transport/http/middleware"
)

const tokenTTL = 8 * time.Hour

type Handler struct {
	Store    *session.Store
	Secret   string
	validate *validator.Validate
}

func NewHandler(store *session.Store, secret string) *Handler {
	return &Handler{Store: store, Secret: secret, validate: validator.New()}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token    string      `json:"token"`
	Username string      `json:"username"`
	Role     access.Role `json:"role"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "username and password are required", reqID)
		return
	}

	user, err := h.Store.Login(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			api.Fail(w, http.StatusUnauthorized, "invalid_credentials", err.Error(), reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "login_failed", "login failed", reqID)
		return
	}

	token, err := auth.GenerateToken(h.Secret, auth.Claims{Username: user.Username, Role: user.Role}, tokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue token", reqID)
		return
	}

	api.Success(w, loginResponse{Token: token, Username: user.Username, Role: user.Role}, reqID)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.Store.Logout()
	api.Success(w, map[string]string{"status": "logged_out"}, middleware.GetRequestID(r.Context()))
}
