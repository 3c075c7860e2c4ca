package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/arvind407/EasyPickle/models"
)

// ListMatches returns all matches, optionally scoped to one tournament.
func (c *Client) ListMatches(ctx context.Context, token, tournamentID string) ([]models.Match, error) {
	path := "/matches"
	if tournamentID != "" {
		path += "?tournamentId=" + url.QueryEscape(tournamentID)
	}
	var matches []models.Match
	if err := c.do(ctx, token, http.MethodGet, path, nil, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// GetMatch fetches one match record. Concurrent fetches of the same match
// under the same token are collapsed into a single upstream request. Every
// caller gets its own copy of the record: callers mutate the match they
// hold, so handing out the deduplicated pointer would alias their state.
func (c *Client) GetMatch(ctx context.Context, token, matchID string) (*models.Match, error) {
	v, err, _ := c.matchFetch.Do(token+"\x00"+matchID, func() (interface{}, error) {
		var match models.Match
		if err := c.do(ctx, token, http.MethodGet, "/matches/"+url.PathEscape(matchID), nil, &match); err != nil {
			return nil, err
		}
		return &match, nil
	})
	if err != nil {
		return nil, err
	}
	match := *v.(*models.Match)
	if match.Team1Score != nil {
		s := *match.Team1Score
		match.Team1Score = &s
	}
	if match.Team2Score != nil {
		s := *match.Team2Score
		match.Team2Score = &s
	}
	return &match, nil
}

// ScheduleMatch creates a new Scheduled match.
func (c *Client) ScheduleMatch(ctx context.Context, token string, input models.ScheduleMatchInput) (*models.Match, error) {
	var match models.Match
	if err := c.do(ctx, token, http.MethodPost, "/matches", input, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

// UpdateMatch replaces a match's scheduling details.
func (c *Client) UpdateMatch(ctx context.Context, token, matchID string, input models.ScheduleMatchInput) (*models.Match, error) {
	var match models.Match
	if err := c.do(ctx, token, http.MethodPut, "/matches/"+url.PathEscape(matchID), input, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

// PushLiveScore persists an intermediate score without completing the match.
func (c *Client) PushLiveScore(ctx context.Context, token, matchID string, score models.ScoreUpdate) error {
	return c.do(ctx, token, http.MethodPut, "/matches/"+url.PathEscape(matchID)+"/live-score", score, nil)
}

// FinalizeScore submits the final score; the server transitions the match
// to Completed.
func (c *Client) FinalizeScore(ctx context.Context, token, matchID string, score models.ScoreUpdate) error {
	return c.do(ctx, token, http.MethodPut, "/matches/"+url.PathEscape(matchID)+"/score", score, nil)
}

// DeleteMatch removes a match.
func (c *Client) DeleteMatch(ctx context.Context, token, matchID string) error {
	return c.do(ctx, token, http.MethodDelete, "/matches/"+url.PathEscape(matchID), nil, nil)
}

// MatchStore binds the client to one bearer token so it can serve a single
// scoring session. It satisfies scoring.MatchStore.
type MatchStore struct {
	client *Client
	token  string
}

func (c *Client) MatchStoreFor(token string) *MatchStore {
	return &MatchStore{client: c, token: token}
}

func (s *MatchStore) FetchMatch(ctx context.Context, matchID string) (*models.Match, error) {
	return s.client.GetMatch(ctx, s.token, matchID)
}

func (s *MatchStore) PushLiveScore(ctx context.Context, matchID string, score models.ScoreUpdate) error {
	return s.client.PushLiveScore(ctx, s.token, matchID, score)
}

func (s *MatchStore) FinalizeScore(ctx context.Context, matchID string, score models.ScoreUpdate) error {
	return s.client.FinalizeScore(ctx, s.token, matchID, score)
}
