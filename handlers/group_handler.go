package handlers

import (
	"errors"
	"net/http"

	"github.com/arvind407/EasyPickle/models"
	"github.com/arvind407/EasyPickle/remote"
	"github.com/go-chi/chi/v5"
)

type GroupHandler struct {
	api *remote.Client
}

func NewGroupHandler(api *remote.Client) *GroupHandler {
	return &GroupHandler{api: api}
}

func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	token := SessionFromContext(r.Context()).Token
	groups, err := h.api.ListGroups(r.Context(), token, r.URL.Query().Get("tournamentId"))
	if err != nil {
		mapRemoteError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"data": groups}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	token := SessionFromContext(r.Context()).Token
	group, err := h.api.GetGroup(r.Context(), token, chi.URLParam(r, "groupID"))
	if err != nil {
		mapRemoteError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"data": group}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.GroupInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Name == "" || input.TournamentID == "" {
		badRequestResponse(w, r, errors.New("group name and tournamentId are required"))
		return
	}

	token := SessionFromContext(r.Context()).Token
	group, err := h.api.CreateGroup(r.Context(), token, input)
	if err != nil {
		mapRemoteError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"data": group}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GroupHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input models.GroupInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	token := SessionFromContext(r.Context()).Token
	group, err := h.api.UpdateGroup(r.Context(), token, chi.URLParam(r, "groupID"), input)
	if err != nil {
		mapRemoteError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"data": group}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	token := SessionFromContext(r.Context()).Token
	if err := h.api.DeleteGroup(r.Context(), token, chi.URLParam(r, "groupID")); err != nil {
		mapRemoteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GroupHandler) AddTeam(w http.ResponseWriter, r *http.Request) {
	var input struct {
		TeamID string `json:"teamId"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.TeamID == "" {
		badRequestResponse(w, r, errors.New("teamId is required"))
		return
	}

	token := SessionFromContext(r.Context()).Token
	if err := h.api.AddTeamToGroup(r.Context(), token, chi.URLParam(r, "groupID"), input.TeamID); err != nil {
		mapRemoteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GroupHandler) RemoveTeam(w http.ResponseWriter, r *http.Request) {
	token := SessionFromContext(r.Context()).Token
	if err := h.api.RemoveTeamFromGroup(r.Context(), token, chi.URLParam(r, "groupID"), chi.URLParam(r, "teamID")); err != nil {
		mapRemoteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
