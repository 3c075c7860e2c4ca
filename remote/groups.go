package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/arvind407/EasyPickle/models"
)

func (c *Client) ListGroups(ctx context.Context, token, tournamentID string) ([]models.Group, error) {
	path := "/groups"
	if tournamentID != "" {
		path += "?tournamentId=" + url.QueryEscape(tournamentID)
	}
	var groups []models.Group
	if err := c.do(ctx, token, http.MethodGet, path, nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *Client) GetGroup(ctx context.Context, token, groupID string) (*models.Group, error) {
	var group models.Group
	if err := c.do(ctx, token, http.MethodGet, "/groups/"+url.PathEscape(groupID), nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *Client) CreateGroup(ctx context.Context, token string, input models.GroupInput) (*models.Group, error) {
	var group models.Group
	if err := c.do(ctx, token, http.MethodPost, "/groups", input, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *Client) UpdateGroup(ctx context.Context, token, groupID string, input models.GroupInput) (*models.Group, error) {
	var group models.Group
	if err := c.do(ctx, token, http.MethodPut, "/groups/"+url.PathEscape(groupID), input, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *Client) DeleteGroup(ctx context.Context, token, groupID string) error {
	return c.do(ctx, token, http.MethodDelete, "/groups/"+url.PathEscape(groupID), nil, nil)
}

// AddTeamToGroup assigns a team to a round-robin pool.
func (c *Client) AddTeamToGroup(ctx context.Context, token, groupID, teamID string) error {
	body := map[string]string{"teamId": teamID}
	return c.do(ctx, token, http.MethodPost, "/groups/"+url.PathEscape(groupID)+"/teams", body, nil)
}

// RemoveTeamFromGroup takes a team out of a pool.
func (c *Client) RemoveTeamFromGroup(ctx context.Context, token, groupID, teamID string) error {
	path := "/groups/" + url.PathEscape(groupID) + "/teams/" + url.PathEscape(teamID)
	return c.do(ctx, token, http.MethodDelete, path, nil, nil)
}
