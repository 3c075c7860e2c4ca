package handlers

import (
	"errors"
	"net/http"

	"github.com/arvind407/EasyPickle/models"
	"github.com/arvind407/EasyPickle/remote"
	"github.com/go-chi/chi/v5"
)

type TournamentHandler struct {
	api *remote.Client
}

func NewTournamentHandler(api *remote.Client) *TournamentHandler {
	return &TournamentHandler{api: api}
}

func (h *TournamentHandler) List(w http.ResponseWriter, r *http.Request) {
	token := SessionFromContext(r.Context()).Token
	tournaments, err := h.api.ListTournaments(r.Context(), token)
	if err != nil {
		mapRemoteError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"data": tournaments}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) Get(w http.ResponseWriter, r *http.Request) {
	token := SessionFromContext(r.Context()).Token
	tournament, err := h.api.GetTournament(r.Context(), token, chi.URLParam(r, "tournamentID"))
	if err != nil {
		mapRemoteError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"data": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.TournamentInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Name == "" {
		badRequestResponse(w, r, errors.New("tournament name is required"))
		return
	}

	token := SessionFromContext(r.Context()).Token
	tournament, err := h.api.CreateTournament(r.Context(), token, input)
	if err != nil {
		mapRemoteError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"data": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input models.TournamentInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	token := SessionFromContext(r.Context()).Token
	tournament, err := h.api.UpdateTournament(r.Context(), token, chi.URLParam(r, "tournamentID"), input)
	if err != nil {
		mapRemoteError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"data": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	token := SessionFromContext(r.Context()).Token
	if err := h.api.DeleteTournament(r.Context(), token, chi.URLParam(r, "tournamentID")); err != nil {
		mapRemoteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Standings proxies the server-computed table; the console never ranks.
func (h *TournamentHandler) Standings(w http.ResponseWriter, r *http.Request) {
	tournamentID := r.URL.Query().Get("tournamentId")
	if tournamentID == "" {
		badRequestResponse(w, r, errors.New("tournamentId query parameter is required"))
		return
	}

	token := SessionFromContext(r.Context()).Token
	standings, err := h.api.GetStandings(r.Context(), token, tournamentID)
	if err != nil {
		mapRemoteError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"data": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
