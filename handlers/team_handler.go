package handlers

import (
	"errors"
	"net/http"

	"github.com/arvind407/EasyPickle/models"
	"github.com/arvind407/EasyPickle/remote"
	"github.com/go-chi/chi/v5"
)

type TeamHandler struct {
	api *remote.Client
}

func NewTeamHandler(api *remote.Client) *TeamHandler {
	return &TeamHandler{api: api}
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	token := SessionFromContext(r.Context()).Token
	teams, err := h.api.ListTeams(r.Context(), token, r.URL.Query().Get("tournamentId"))
	if err != nil {
		mapRemoteError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"data": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	token := SessionFromContext(r.Context()).Token
	team, err := h.api.GetTeam(r.Context(), token, chi.URLParam(r, "teamID"))
	if err != nil {
		mapRemoteError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"data": team}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.TeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Name == "" {
		badRequestResponse(w, r, errors.New("team name is required"))
		return
	}

	token := SessionFromContext(r.Context()).Token
	team, err := h.api.CreateTeam(r.Context(), token, input)
	if err != nil {
		mapRemoteError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"data": team}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input models.TeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	token := SessionFromContext(r.Context()).Token
	team, err := h.api.UpdateTeam(r.Context(), token, chi.URLParam(r, "teamID"), input)
	if err != nil {
		mapRemoteError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"data": team}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	token := SessionFromContext(r.Context()).Token
	if err := h.api.DeleteTeam(r.Context(), token, chi.URLParam(r, "teamID")); err != nil {
		mapRemoteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
