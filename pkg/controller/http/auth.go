package http

import (
	"encoding/json"
	"net/http"

	"github.com/issuepulse/issuepulse/pkg/domain/model"
	"github.com/issuepulse/issuepulse/pkg/usecase"
	"github.com/issuepulse/issuepulse/pkg/utils/apperr"
	"github.com/m-mizutani/goerr/v2"
)

// AuthHandler handles credential verification and project listing
type AuthHandler struct {
	authUC *usecase.Auth
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC *usecase.Auth) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

func decodeCredentials(r *http.Request) (model.Credentials, error) {
	var creds model.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		return model.Credentials{}, goerr.Wrap(model.ErrMissingCredentials, "invalid request body")
	}
	return creds, nil
}

// HandleAuth verifies credentials against the identity endpoint. The
// probe always answers HTTP 200; the outcome travels in the success flag
// and the error code, so the frontend can render it without status
// special-casing.
func (h *AuthHandler) HandleAuth(w http.ResponseWriter, r *http.Request) {
	creds, err := decodeCredentials(r)
	if err == nil {
		var identity *model.Identity
		identity, err = h.authUC.VerifyIdentity(r.Context(), creds)
		if err == nil {
			writeJSON(w, r, http.StatusOK, map[string]any{
				"success": true,
				"user":    identity,
			})
			return
		}
	}

	apperr.Handle(r.Context(), err)
	writeJSON(w, r, http.StatusOK, errorResponse{
		Success: false,
		Error:   model.CodeOf(err),
	})
}

// HandleTestConnection is the boolean connectivity probe
func (h *AuthHandler) HandleTestConnection(w http.ResponseWriter, r *http.Request) {
	creds, err := decodeCredentials(r)
	if err == nil {
		err = h.authUC.TestConnection(r.Context(), creds)
	}
	if err != nil {
		apperr.Handle(r.Context(), err)
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"success": true})
}

// HandleProjects lists the projects visible to the supplied credentials
func (h *AuthHandler) HandleProjects(w http.ResponseWriter, r *http.Request) {
	creds, err := decodeCredentials(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	projects, err := h.authUC.ListProjects(r.Context(), creds)
	if err != nil {
		apperr.Handle(r.Context(), err)
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"success":  true,
		"projects": projects,
	})
}
