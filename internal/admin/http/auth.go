package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/lodgekeep/backoffice/internal/admin/service"
	"github.com/lodgekeep/backoffice/pkg/adminapi"
	"github.com/lodgekeep/backoffice/pkg/httpx"
	"github.com/lodgekeep/backoffice/pkg/jwtx"
	"github.com/lodgekeep/backoffice/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles POST /v1/auth/login.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminapi.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeBadRequest(w, "username and password are required")
		return
	}

	token, _, err := h.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	ttl := h.AuthService.SessionTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	httpx.WriteJSON(w, http.StatusOK, adminapi.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ttl / time.Second),
	})
}
