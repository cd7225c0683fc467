package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/winzz-app/tournament-server/engine"
	"github.com/winzz-app/tournament-server/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(ts services.TournamentService) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: ts,
	}
}

// CreateHandler handles POST /tournaments
func (h *TournamentHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input services.CreateTournamentInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListHandler handles GET /tournaments?incomplete=true
func (h *TournamentHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	onlyIncomplete := false
	if raw := r.URL.Query().Get("incomplete"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			badRequestResponse(w, r, errors.New("invalid incomplete query parameter"))
			return
		}
		onlyIncomplete = value
	}

	tournaments, err := h.tournamentService.List(r.Context(), onlyIncomplete)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournaments": tournaments}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetByIDHandler handles GET /tournaments/{tournamentID}
func (h *TournamentHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	tournament, err := h.tournamentService.Get(r.Context(), chi.URLParam(r, "tournamentID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteHandler handles DELETE /tournaments/{tournamentID}
func (h *TournamentHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.tournamentService.Delete(r.Context(), chi.URLParam(r, "tournamentID")); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReshuffleHandler handles POST /tournaments/{tournamentID}/reshuffle
func (h *TournamentHandler) ReshuffleHandler(w http.ResponseWriter, r *http.Request) {
	tournament, err := h.tournamentService.Reshuffle(r.Context(), chi.URLParam(r, "tournamentID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type scoreInput struct {
	Side  string `json:"side"`
	Score string `json:"score"`
}

// SetScoreHandler handles PUT /tournaments/{tournamentID}/matches/{matchID}/score.
// An empty score clears the entry for that side.
func (h *TournamentHandler) SetScoreHandler(w http.ResponseWriter, r *http.Request) {
	var input scoreInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.SetScore(
		r.Context(),
		chi.URLParam(r, "tournamentID"),
		chi.URLParam(r, "matchID"),
		engine.Side(input.Side),
		input.Score,
	)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ClearScoreHandler handles DELETE /tournaments/{tournamentID}/matches/{matchID}/score?side=A
func (h *TournamentHandler) ClearScoreHandler(w http.ResponseWriter, r *http.Request) {
	tournament, err := h.tournamentService.ClearScore(
		r.Context(),
		chi.URLParam(r, "tournamentID"),
		chi.URLParam(r, "matchID"),
		engine.Side(r.URL.Query().Get("side")),
	)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CompleteMatchHandler handles POST /tournaments/{tournamentID}/matches/{matchID}/complete
func (h *TournamentHandler) CompleteMatchHandler(w http.ResponseWriter, r *http.Request) {
	tournament, err := h.tournamentService.CompleteMatch(
		r.Context(),
		chi.URLParam(r, "tournamentID"),
		chi.URLParam(r, "matchID"),
	)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ReopenMatchHandler handles POST /tournaments/{tournamentID}/matches/{matchID}/reopen
func (h *TournamentHandler) ReopenMatchHandler(w http.ResponseWriter, r *http.Request) {
	tournament, err := h.tournamentService.ReopenMatch(
		r.Context(),
		chi.URLParam(r, "tournamentID"),
		chi.URLParam(r, "matchID"),
	)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// StandingsHandler handles GET /tournaments/{tournamentID}/standings
func (h *TournamentHandler) StandingsHandler(w http.ResponseWriter, r *http.Request) {
	standings, err := h.tournamentService.Standings(r.Context(), chi.URLParam(r, "tournamentID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// FinishHandler handles POST /tournaments/{tournamentID}/finish
func (h *TournamentHandler) FinishHandler(w http.ResponseWriter, r *http.Request) {
	tournament, err := h.tournamentService.Finish(r.Context(), chi.URLParam(r, "tournamentID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
