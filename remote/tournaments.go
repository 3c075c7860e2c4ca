package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/arvind407/EasyPickle/models"
)

func (c *Client) ListTournaments(ctx context.Context, token string) ([]models.Tournament, error) {
	var tournaments []models.Tournament
	if err := c.do(ctx, token, http.MethodGet, "/tournaments", nil, &tournaments); err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (c *Client) GetTournament(ctx context.Context, token, tournamentID string) (*models.Tournament, error) {
	var tournament models.Tournament
	if err := c.do(ctx, token, http.MethodGet, "/tournaments/"+url.PathEscape(tournamentID), nil, &tournament); err != nil {
		return nil, err
	}
	return &tournament, nil
}

func (c *Client) CreateTournament(ctx context.Context, token string, input models.TournamentInput) (*models.Tournament, error) {
	var tournament models.Tournament
	if err := c.do(ctx, token, http.MethodPost, "/tournaments", input, &tournament); err != nil {
		return nil, err
	}
	return &tournament, nil
}

func (c *Client) UpdateTournament(ctx context.Context, token, tournamentID string, input models.TournamentInput) (*models.Tournament, error) {
	var tournament models.Tournament
	if err := c.do(ctx, token, http.MethodPut, "/tournaments/"+url.PathEscape(tournamentID), input, &tournament); err != nil {
		return nil, err
	}
	return &tournament, nil
}

func (c *Client) DeleteTournament(ctx context.Context, token, tournamentID string) error {
	return c.do(ctx, token, http.MethodDelete, "/tournaments/"+url.PathEscape(tournamentID), nil, nil)
}

// GetStandings returns the server-computed table for one tournament.
func (c *Client) GetStandings(ctx context.Context, token, tournamentID string) ([]models.Standing, error) {
	var standings []models.Standing
	path := "/standings?tournamentId=" + url.QueryEscape(tournamentID)
	if err := c.do(ctx, token, http.MethodGet, path, nil, &standings); err != nil {
		return nil, err
	}
	return standings, nil
}
