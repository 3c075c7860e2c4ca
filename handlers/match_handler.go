package handlers

import (
	"errors"
	"net/http"

	"github.com/arvind407/EasyPickle/models"
	"github.com/arvind407/EasyPickle/remote"
	"github.com/go-chi/chi/v5"
)

type MatchHandler struct {
	api *remote.Client
}

func NewMatchHandler(api *remote.Client) *MatchHandler {
	return &MatchHandler{api: api}
}

func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	token := SessionFromContext(r.Context()).Token
	matches, err := h.api.ListMatches(r.Context(), token, r.URL.Query().Get("tournamentId"))
	if err != nil {
		mapRemoteError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"data": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	token := SessionFromContext(r.Context()).Token
	match, err := h.api.GetMatch(r.Context(), token, chi.URLParam(r, "matchID"))
	if err != nil {
		mapRemoteError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"data": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var input models.ScheduleMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.TournamentID == "" || input.Team1ID == "" || input.Team2ID == "" {
		badRequestResponse(w, r, errors.New("tournamentId, team1Id and team2Id are required"))
		return
	}
	if input.Team1ID == input.Team2ID {
		badRequestResponse(w, r, errors.New("a team cannot play itself"))
		return
	}

	token := SessionFromContext(r.Context()).Token
	match, err := h.api.ScheduleMatch(r.Context(), token, input)
	if err != nil {
		mapRemoteError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"data": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input models.ScheduleMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	token := SessionFromContext(r.Context()).Token
	match, err := h.api.UpdateMatch(r.Context(), token, chi.URLParam(r, "matchID"), input)
	if err != nil {
		mapRemoteError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"data": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	token := SessionFromContext(r.Context()).Token
	if err := h.api.DeleteMatch(r.Context(), token, chi.URLParam(r, "matchID")); err != nil {
		mapRemoteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
