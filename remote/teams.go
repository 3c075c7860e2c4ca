package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/arvind407/EasyPickle/models"
)

func (c *Client) ListTeams(ctx context.Context, token, tournamentID string) ([]models.Team, error) {
	path := "/teams"
	if tournamentID != "" {
		path += "?tournamentId=" + url.QueryEscape(tournamentID)
	}
	var teams []models.Team
	if err := c.do(ctx, token, http.MethodGet, path, nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (c *Client) GetTeam(ctx context.Context, token, teamID string) (*models.Team, error) {
	var team models.Team
	if err := c.do(ctx, token, http.MethodGet, "/teams/"+url.PathEscape(teamID), nil, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (c *Client) CreateTeam(ctx context.Context, token string, input models.TeamInput) (*models.Team, error) {
	var team models.Team
	if err := c.do(ctx, token, http.MethodPost, "/teams", input, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (c *Client) UpdateTeam(ctx context.Context, token, teamID string, input models.TeamInput) (*models.Team, error) {
	var team models.Team
	if err := c.do(ctx, token, http.MethodPut, "/teams/"+url.PathEscape(teamID), input, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (c *Client) DeleteTeam(ctx context.Context, token, teamID string) error {
	return c.do(ctx, token, http.MethodDelete, "/teams/"+url.PathEscape(teamID), nil, nil)
}

func (c *Client) ListPlayers(ctx context.Context, token, teamID string) ([]models.Player, error) {
	path := "/players"
	if teamID != "" {
		path += "?teamId=" + url.QueryEscape(teamID)
	}
	var players []models.Player
	if err := c.do(ctx, token, http.MethodGet, path, nil, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (c *Client) GetPlayer(ctx context.Context, token, playerID string) (*models.Player, error) {
	var player models.Player
	if err := c.do(ctx, token, http.MethodGet, "/players/"+url.PathEscape(playerID), nil, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (c *Client) CreatePlayer(ctx context.Context, token string, input models.PlayerInput) (*models.Player, error) {
	var player models.Player
	if err := c.do(ctx, token, http.MethodPost, "/players", input, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (c *Client) UpdatePlayer(ctx context.Context, token, playerID string, input models.PlayerInput) (*models.Player, error) {
	var player models.Player
	if err := c.do(ctx, token, http.MethodPut, "/players/"+url.PathEscape(playerID), input, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (c *Client) DeletePlayer(ctx context.Context, token, playerID string) error {
	return c.do(ctx, token, http.MethodDelete, "/players/"+url.PathEscape(playerID), nil, nil)
}
