package handler

import (
	"autosallon/internal/app/service"
	"autosallon/internal/common"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type SellRequestHandler struct {
	leadService *service.LeadService
}

func NewSellRequestHandler(leadService *service.LeadService) *SellRequestHandler {
	return &SellRequestHandler{leadService: leadService}
}

func (h *SellRequestHandler) CreateSellRequest(w http.ResponseWriter, r *http.Request) {
	var req service.CreateSellRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	request, err := h.leadService.CreateSellRequest(r.Context(), req)
	if err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, request)
}

func (h *SellRequestHandler) ListSellRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leadService.ListSellRequests(r.Context())
	if err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, requests)
}

func (h *SellRequestHandler) DeleteSellRequest(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "requestID"))
	if err != nil {
		common.RespondWithError(w, http.StatusNotFound, "Sell request not found")
		return
	}

	if err := h.leadService.DeleteSellRequest(r.Context(), id); err != nil {
		common.RespondFromError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
