package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

// VaultHandler handles HTTP requests for saved-credential operations.
type VaultHandler struct {
	service *service.VaultService
}

// NewVaultHandler creates a new VaultHandler.
func NewVaultHandler(svc *service.VaultService) *VaultHandler {
	return &VaultHandler{service: svc}
}

// HandleList handles GET /api/v1/vault requests.
func (h *VaultHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	creds, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if creds == nil {
		creds = []model.CredentialResponse{}
	}

	writeJSON(w, http.StatusOK, creds)
}

// HandleCreate handles POST /api/v1/vault requests.
func (h *VaultHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	req, ok := decodeCredentialRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		if isCredentialValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleReveal handles GET /api/v1/vault/{credential_id} requests.
func (h *VaultHandler) HandleReveal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	credentialID, ok := credentialIDFromURL(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Reveal(r.Context(), userID, credentialID)
	if err != nil {
		if errors.Is(err, service.ErrCredentialNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdate handles PUT /api/v1/vault/{credential_id} requests.
func (h *VaultHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	credentialID, ok := credentialIDFromURL(w, r)
	if !ok {
		return
	}

	req, ok := decodeCredentialRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Update(r.Context(), userID, credentialID, req)
	if err != nil {
		switch {
		case isCredentialValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrCredentialNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /api/v1/vault/{credential_id} requests.
func (h *VaultHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	credentialID, ok := credentialIDFromURL(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, credentialID); err != nil {
		if errors.Is(err, service.ErrCredentialNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleAudit handles GET /api/v1/vault/audit requests.
func (h *VaultHandler) HandleAudit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	resp, err := h.service.Audit(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func decodeCredentialRequest(w http.ResponseWriter, r *http.Request) (model.CredentialRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return model.CredentialRequest{}, false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return model.CredentialRequest{}, false
	}

	return req, true
}

func credentialIDFromURL(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "credential_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid credential id"))
		return 0, false
	}
	return id, true
}

func isCredentialValidationError(err error) bool {
	return errors.Is(err, service.ErrLabelRequired) ||
		errors.Is(err, service.ErrVaultPasswordRequired)
}
