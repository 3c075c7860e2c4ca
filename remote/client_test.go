package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/arvind407/EasyPickle/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestGetMatchUnwrapsEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/matches/m1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		io.WriteString(w, `{"data":{"matchId":"m1","tournamentId":"t1","team1Name":"Dinkers","team2Name":"Smashers","status":"In Progress","team1Score":4,"team2Score":3}}`)
	})

	match, err := client.GetMatch(context.Background(), "tok", "m1")
	if err != nil {
		t.Fatalf("GetMatch: %v", err)
	}
	if match.MatchID != "m1" || match.Status != models.MatchStatusInProgress {
		t.Fatalf("unexpected match: %+v", match)
	}
	if match.Team1Score == nil || *match.Team1Score != 4 {
		t.Fatalf("team1Score = %v, want 4", match.Team1Score)
	}
}

func TestErrorTaxonomy(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, ErrNotFound},
		{http.StatusUnauthorized, ErrAuthentication},
		{http.StatusForbidden, ErrForbidden},
	}
	for _, tc := range cases {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			io.WriteString(w, `{"message":"nope"}`)
		})
		_, err := client.GetMatch(context.Background(), "tok", "m-"+http.StatusText(tc.status))
		if !errors.Is(err, tc.want) {
			t.Errorf("status %d: err = %v, want %v", tc.status, err, tc.want)
		}
	}
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		io.WriteString(w, `{"message":"scores must be non-negative"}`)
	})

	err := client.FinalizeScore(context.Background(), "tok", "m1", models.ScoreUpdate{Team1Score: 11, Team2Score: 3})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusUnprocessableEntity || apiErr.Message != "scores must be non-negative" {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}

func TestLiveScoreAndFinalizeEndpoints(t *testing.T) {
	type recorded struct {
		method, path string
		body         models.ScoreUpdate
	}
	var calls []recorded

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body models.ScoreUpdate
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		calls = append(calls, recorded{r.Method, r.URL.Path, body})
		io.WriteString(w, `{"message":"ok"}`)
	})

	ctx := context.Background()
	if err := client.PushLiveScore(ctx, "tok", "m1", models.ScoreUpdate{Team1Score: 6, Team2Score: 5}); err != nil {
		t.Fatalf("PushLiveScore: %v", err)
	}
	if err := client.FinalizeScore(ctx, "tok", "m1", models.ScoreUpdate{Team1Score: 11, Team2Score: 5}); err != nil {
		t.Fatalf("FinalizeScore: %v", err)
	}

	if len(calls) != 2 {
		t.Fatalf("calls = %d, want 2", len(calls))
	}
	if calls[0].method != http.MethodPut || calls[0].path != "/matches/m1/live-score" {
		t.Errorf("live save hit %s %s", calls[0].method, calls[0].path)
	}
	if calls[0].body != (models.ScoreUpdate{Team1Score: 6, Team2Score: 5}) {
		t.Errorf("live body = %+v", calls[0].body)
	}
	if calls[1].method != http.MethodPut || calls[1].path != "/matches/m1/score" {
		t.Errorf("finalize hit %s %s", calls[1].method, calls[1].path)
	}
}

func TestLoginSendsNoToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("login must not carry a bearer token, got %q", got)
		}
		io.WriteString(w, `{"token":"tok123","user":{"userId":"u1","username":"alice","role":"admin"}}`)
	})

	result, err := client.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token != "tok123" || result.User == nil || result.User.Role != "admin" {
		t.Fatalf("unexpected login result: %+v", result)
	}
}

func TestRegisterSendsNoToken(t *testing.T) {
	var body models.RegisterInput
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("register must not carry a bearer token, got %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"message":"created"}`)
	})

	input := models.RegisterInput{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "hunter2hunter2",
		FirstName: "Alice",
		LastName:  "Chen",
	}
	if err := client.Register(context.Background(), input); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if body != input {
		t.Fatalf("forwarded payload = %+v, want %+v", body, input)
	}
}

func TestGetMatchDedupesWithoutSharing(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var hits atomic.Int32

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			close(entered)
			<-release
		}
		io.WriteString(w, `{"data":{"matchId":"m1","tournamentId":"t1","status":"In Progress","team1Score":4,"team2Score":3}}`)
	})

	ctx := context.Background()
	results := make(chan *models.Match, 2)
	errs := make(chan error, 2)
	fetch := func() {
		m, err := client.GetMatch(ctx, "tok", "m1")
		results <- m
		errs <- err
	}

	go fetch()
	<-entered
	go fetch()
	time.Sleep(50 * time.Millisecond) // let the second call join the flight
	close(release)

	first, second := <-results, <-results
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Fatalf("GetMatch: %v", err)
		}
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("upstream hits = %d, want 1 (deduplicated)", got)
	}
	if first == second {
		t.Fatal("concurrent callers received the same *Match")
	}
	if first.Team1Score == second.Team1Score {
		t.Fatal("concurrent callers share score pointers")
	}

	// One caller completing its match must not leak into the other's copy.
	first.Status = models.MatchStatusCompleted
	*first.Team1Score = 11
	if second.Status != models.MatchStatusInProgress || *second.Team1Score != 4 {
		t.Fatalf("mutation leaked across callers: %+v", second)
	}
}

func TestMatchStoreBindsToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer bound" {
			t.Errorf("Authorization = %q, want bound token", got)
		}
		io.WriteString(w, `{"data":{"matchId":"m1","status":"Scheduled"}}`)
	})

	store := client.MatchStoreFor("bound")
	if _, err := store.FetchMatch(context.Background(), "m1"); err != nil {
		t.Fatalf("FetchMatch: %v", err)
	}
	if err := store.PushLiveScore(context.Background(), "m1", models.ScoreUpdate{Team1Score: 1}); err != nil {
		t.Fatalf("PushLiveScore: %v", err)
	}
}
