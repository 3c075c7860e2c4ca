package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/arvind407/EasyPickle/models"
	"github.com/arvind407/EasyPickle/remote"
)

type AuthHandler struct {
	api *remote.Client
}

func NewAuthHandler(api *remote.Client) *AuthHandler {
	return &AuthHandler{api: api}
}

// Login forwards credentials to the remote auth service and hands the
// resulting bearer token back to the browser. The console never stores it.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := readJSON(w, r, &creds); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if creds.Username == "" || creds.Password == "" {
		badRequestResponse(w, r, errors.New("username and password are required"))
		return
	}

	result, err := h.api.Login(r.Context(), creds)
	if err != nil {
		mapRemoteError(w, r, err)
		return
	}

	response := jsonResponse{
		"token": result.Token,
		"user":  result.User,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Register creates an account with the remote auth service. No token is
// issued; the new user proceeds to login.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input models.RegisterInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := validateRegisterInput(input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.api.Register(r.Context(), input); err != nil {
		mapRemoteError(w, r, err)
		return
	}

	response := jsonResponse{"message": "registration successful"}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func validateRegisterInput(input models.RegisterInput) error {
	switch {
	case len(input.Username) < 3:
		return errors.New("username must be at least 3 characters")
	case input.Email == "" || !strings.Contains(input.Email, "@"):
		return errors.New("a valid email is required")
	case len(input.Password) < 8:
		return errors.New("password must be at least 8 characters")
	case input.FirstName == "" || input.LastName == "":
		return errors.New("first and last name are required")
	}
	return nil
}
