// Package scoring is the live score-entry state machine. One Controller
// serves one view of one match: it loads the record, keeps a local draft of
// both scores, derives win and read-only status, and mediates the live-save
// and finalize calls against the match store. The server remains the sole
// authority for the persisted record; the draft is deliberately allowed to
// diverge until a save or finalize succeeds, and refresh is the only path
// that overwrites it with server state after the initial load.
package scoring

import (
	"context"
	"sync"
	"time"

	"github.com/arvind407/EasyPickle/models"
)

// MatchStore is the remote match record boundary the controller persists
// through. remote.MatchStore implements it bound to the caller's token.
type MatchStore interface {
	FetchMatch(ctx context.Context, matchID string) (*models.Match, error)
	PushLiveScore(ctx context.Context, matchID string, score models.ScoreUpdate) error
	FinalizeScore(ctx context.Context, matchID string, score models.ScoreUpdate) error
}

// PermissionSource answers whether the viewer behind this controller may
// edit scores. session.Session implements it.
type PermissionSource interface {
	CanEditScores() bool
}

// Phase is the controller's top-level state. Ready carries the sub-state
// (draft, dirty, saving, finishing, read-only) exposed via Snapshot.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
)

// How long the transient "saved" indicator stays visible after a
// successful live save. Cosmetic, not state-bearing.
const savedIndicatorWindow = 2 * time.Second

// Controller owns the local score state for one match view. Safe for
// concurrent use; persistence calls run outside the lock so score taps are
// never blocked by a slow network.
type Controller struct {
	store   MatchStore
	perms   PermissionSource
	matchID string
	now     func() time.Time

	mu        sync.Mutex
	phase     Phase
	match     *models.Match
	draft     ScorePair
	dirty     bool
	loading   bool
	saving    bool
	finishing bool
	finished  bool
	savedAt   time.Time
	lastErr   error
}

// NewController builds a controller for one match view. now is injectable
// for tests; pass nil to use time.Now.
func NewController(matchID string, store MatchStore, perms PermissionSource, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{
		store:   store,
		perms:   perms,
		matchID: matchID,
		now:     now,
	}
}

// Snapshot is the view contract: everything the rendering layer needs,
// derived under one lock acquisition.
type Snapshot struct {
	Phase         Phase
	Match         *models.Match
	Draft         ScorePair
	Winner        Side
	Dirty         bool
	Loading       bool
	Saving        bool
	Finishing     bool
	Finished      bool
	ReadOnly      bool
	SavedRecently bool
	Err           string
}

// Load fetches the match and resets the draft from its persisted scores.
// One fetch at a time; a second Load while one is in flight is rejected.
// On failure any previously loaded state stays visible; only the error
// surfaces. Refresh is an alias for Load and is the one sanctioned way the
// draft is replaced by server state after the initial load.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return ErrLoadInFlight
	}
	c.loading = true
	c.mu.Unlock()

	match, err := c.store.FetchMatch(ctx, c.matchID)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if err != nil {
		c.lastErr = err
		return err
	}

	c.phase = PhaseReady
	c.match = match
	c.draft = draftFromMatch(match)
	c.dirty = false
	c.lastErr = nil
	if match.Status == models.MatchStatusCompleted {
		c.finished = true
	}
	return nil
}

// Refresh re-fetches the match, discarding any unsaved local edits. A
// refresh racing an in-flight save resolves last-write-wins by completion
// order; the server record is authoritative either way.
func (c *Controller) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

// Increment adds one point for the given side. Purely local; never fails
// for network reasons and is allowed while a save is in flight.
func (c *Controller) Increment(side Side) error {
	return c.adjust(side, +1)
}

// Decrement removes one point for the given side, clamped at zero. The
// clamp is silent: decrementing zero is a no-op, not an error.
func (c *Controller) Decrement(side Side) error {
	return c.adjust(side, -1)
}

func (c *Controller) adjust(side Side, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseReady {
		return ErrNotLoaded
	}
	if c.readOnlyLocked() {
		return ErrReadOnly
	}

	var target *int
	switch side {
	case SideTeam1:
		target = &c.draft.Team1
	case SideTeam2:
		target = &c.draft.Team2
	default:
		return ErrInvalidSide
	}

	next := *target + delta
	if next < 0 {
		next = 0
	}
	*target = next
	c.dirty = true
	return nil
}

// SaveLive pushes the current draft to the live-score endpoint without
// completing the match. The draft is snapshotted at call time: points
// tapped while the save is in flight are not lost, they keep the view dirty
// and ride the next save. The push implies no status transition; if the
// server decides to start the match, refresh picks that up.
func (c *Controller) SaveLive(ctx context.Context) error {
	c.mu.Lock()
	if c.phase != PhaseReady {
		c.mu.Unlock()
		return ErrNotLoaded
	}
	if c.readOnlyLocked() {
		c.mu.Unlock()
		return ErrReadOnly
	}
	if c.saving {
		c.mu.Unlock()
		return ErrSaveInFlight
	}
	sent := c.draft
	c.saving = true
	c.mu.Unlock()

	err := c.store.PushLiveScore(ctx, c.matchID, models.ScoreUpdate{
		Team1Score: sent.Team1,
		Team2Score: sent.Team2,
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.saving = false
	if err != nil {
		c.lastErr = err
		return err
	}
	if c.draft == sent {
		c.dirty = false
	}
	c.savedAt = c.now()
	c.lastErr = nil
	return nil
}

// Finish submits the draft as the final score; the server transitions the
// match to Completed. Irreversible from this subsystem, so an explicit
// confirmation must accompany the call, and an unplayed 0-0 match is
// rejected before any network traffic. On failure the draft survives and
// the caller may retry or refresh.
func (c *Controller) Finish(ctx context.Context, confirmed bool) error {
	c.mu.Lock()
	if c.phase != PhaseReady {
		c.mu.Unlock()
		return ErrNotLoaded
	}
	if c.readOnlyLocked() {
		c.mu.Unlock()
		return ErrReadOnly
	}
	if c.finishing {
		c.mu.Unlock()
		return ErrFinishInFlight
	}
	if !confirmed {
		c.mu.Unlock()
		return ErrConfirmationRequired
	}
	if c.draft == (ScorePair{}) {
		c.mu.Unlock()
		return ErrUnplayedMatch
	}
	sent := c.draft
	c.finishing = true
	c.mu.Unlock()

	err := c.store.FinalizeScore(ctx, c.matchID, models.ScoreUpdate{
		Team1Score: sent.Team1,
		Team2Score: sent.Team2,
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.finishing = false
	if err != nil {
		c.lastErr = err
		return err
	}
	c.finished = true
	c.dirty = false
	c.lastErr = nil
	if c.match != nil {
		c.match.Status = models.MatchStatusCompleted
		t1, t2 := sent.Team1, sent.Team2
		c.match.Team1Score = &t1
		c.match.Team2Score = &t2
	}
	return nil
}

// Snapshot returns the current view state. Winner and read-only status are
// pure functions of the draft and its inputs, so they are derived here
// rather than stored.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Phase:     c.phase,
		Draft:     c.draft,
		Winner:    Winner(c.draft),
		Dirty:     c.dirty,
		Loading:   c.loading,
		Saving:    c.saving,
		Finishing: c.finishing,
		Finished:  c.finished,
		ReadOnly:  c.readOnlyLocked(),
	}
	if c.match != nil {
		m := *c.match
		snap.Match = &m
	}
	if c.lastErr != nil {
		snap.Err = c.lastErr.Error()
	}
	if !c.savedAt.IsZero() && c.now().Sub(c.savedAt) < savedIndicatorWindow {
		snap.SavedRecently = true
	}
	return snap
}

// MatchID identifies the match this controller serves.
func (c *Controller) MatchID() string {
	return c.matchID
}

func (c *Controller) readOnlyLocked() bool {
	if !c.perms.CanEditScores() {
		return true
	}
	if c.match != nil && c.match.Status == models.MatchStatusCompleted {
		return true
	}
	return false
}

// draftFromMatch copies persisted scores into a fresh draft. Matches that
// have never been scored carry null score fields; the draft defaults to 0-0.
func draftFromMatch(match *models.Match) ScorePair {
	var draft ScorePair
	if match.Team1Score != nil {
		draft.Team1 = *match.Team1Score
	}
	if match.Team2Score != nil {
		draft.Team2 = *match.Team2Score
	}
	return draft
}
