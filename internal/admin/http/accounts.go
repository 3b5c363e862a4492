package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lodgekeep/backoffice/internal/admin/service"
	"github.com/lodgekeep/backoffice/pkg/adminapi"
	"github.com/lodgekeep/backoffice/pkg/httpx"
	"github.com/lodgekeep/backoffice/pkg/slogx"
)

// AccountsHandler serves the account lifecycle endpoints. Confirmation
// messages name the operator taken from the request principal.
type AccountsHandler struct {
	AccountService *service.AccountService
}

// HandleCreate handles POST /v1/accounts.
func (h *AccountsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminapi.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeBadRequest(w, "username, email and password are required")
		return
	}

	roleIDs, err := parseIDs("role_ids", req.RoleIDs)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	account, err := h.AccountService.Create(ctx, service.AccountCandidate{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		RoleIDs:   roleIDs,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, adminapi.AccountResponse{
		Account: toAccountInfo(account),
		Message: actionMessage(ctx, "Account %s created", account.Username),
	})
}

// HandleGet handles GET /v1/accounts/{username}.
func (h *AccountsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	account, err := h.AccountService.GetByUsername(ctx, r.PathValue("username"))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminapi.AccountResponse{Account: toAccountInfo(account)})
}

// HandleUpdate handles PUT /v1/accounts/{username}. The request's password
// field, if any, is dropped before the candidate reaches the service.
func (h *AccountsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminapi.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}
	if req.Username == "" || req.Email == "" {
		writeBadRequest(w, "username and email are required")
		return
	}

	roleIDs, err := parseIDs("role_ids", req.RoleIDs)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	account, err := h.AccountService.Update(ctx, r.PathValue("username"), service.AccountCandidate{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		RoleIDs:   roleIDs,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminapi.AccountResponse{
		Account: toAccountInfo(account),
		Message: actionMessage(ctx, "Account %s updated", account.Username),
	})
}

// HandleDelete handles DELETE /v1/accounts/{username}.
func (h *AccountsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	username := r.PathValue("username")

	if err := h.AccountService.Delete(ctx, username); err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminapi.MessageResponse{
		Message: actionMessage(ctx, "Account %s deleted", username),
	})
}

// HandleResetPassword handles POST /v1/accounts/{username}/password.
func (h *AccountsHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	username := r.PathValue("username")

	var req adminapi.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}
	if req.Password == "" {
		writeBadRequest(w, "password is required")
		return
	}

	if err := h.AccountService.ResetPassword(ctx, username, req.Password); err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminapi.MessageResponse{
		Message: actionMessage(ctx, "Password for %s reset", username),
	})
}

// actionMessage formats a confirmation message and appends the acting
// operator when the request carries a principal.
func actionMessage(ctx context.Context, format string, args ...any) string {
	msg := fmt.Sprintf(format, args...)
	if principal := httpx.PrincipalFromContext(ctx); principal != "" {
		return msg + " by " + principal
	}
	return msg
}
