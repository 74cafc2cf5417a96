package handler

import (
	"autosallon/internal/app/service"
	"autosallon/internal/common"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type ContactHandler struct {
	leadService *service.LeadService
}

func NewContactHandler(leadService *service.LeadService) *ContactHandler {
	return &ContactHandler{leadService: leadService}
}

// CreateContact serves both the public form route and the admin route; the
// two share one operation.
func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req service.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	contact, err := h.leadService.CreateContact(r.Context(), req)
	if err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, contact)
}

func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.leadService.ListContacts(r.Context())
	if err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, contacts)
}

func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "contactID"))
	if err != nil {
		common.RespondWithError(w, http.StatusNotFound, "Contact not found")
		return
	}

	if err := h.leadService.DeleteContact(r.Context(), id); err != nil {
		common.RespondFromError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
