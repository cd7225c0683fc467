package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/winzz-app/tournament-server/services"
)

type SportHandler struct {
	sportService services.SportService
}

func NewSportHandler(ss services.SportService) *SportHandler {
	return &SportHandler{
		sportService: ss,
	}
}

// ListHandler handles GET /sports
func (h *SportHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	sports := h.sportService.List(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"sports": sports}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SelectHandler handles POST /sports/{sportID}/select
func (h *SportHandler) SelectHandler(w http.ResponseWriter, r *http.Request) {
	sport, err := h.sportService.Select(r.Context(), chi.URLParam(r, "sportID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"sport": sport}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
