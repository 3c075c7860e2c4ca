package handlers

import (
	"errors"
	"net/http"

	"github.com/arvind407/EasyPickle/models"
	"github.com/arvind407/EasyPickle/remote"
	"github.com/go-chi/chi/v5"
)

type PlayerHandler struct {
	api *remote.Client
}

func NewPlayerHandler(api *remote.Client) *PlayerHandler {
	return &PlayerHandler{api: api}
}

func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	token := SessionFromContext(r.Context()).Token
	players, err := h.api.ListPlayers(r.Context(), token, r.URL.Query().Get("teamId"))
	if err != nil {
		mapRemoteError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"data": players}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	token := SessionFromContext(r.Context()).Token
	player, err := h.api.GetPlayer(r.Context(), token, chi.URLParam(r, "playerID"))
	if err != nil {
		mapRemoteError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"data": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.PlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.FirstName == "" || input.LastName == "" {
		badRequestResponse(w, r, errors.New("first and last name are required"))
		return
	}

	token := SessionFromContext(r.Context()).Token
	player, err := h.api.CreatePlayer(r.Context(), token, input)
	if err != nil {
		mapRemoteError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"data": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input models.PlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	token := SessionFromContext(r.Context()).Token
	player, err := h.api.UpdatePlayer(r.Context(), token, chi.URLParam(r, "playerID"), input)
	if err != nil {
		mapRemoteError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"data": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	token := SessionFromContext(r.Context()).Token
	if err := h.api.DeletePlayer(r.Context(), token, chi.URLParam(r, "playerID")); err != nil {
		mapRemoteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
