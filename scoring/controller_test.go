package scoring

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/arvind407/EasyPickle/models"
)

type fakeStore struct {
	mu sync.Mutex

	match        *models.Match
	fetchErr     error
	fetchStarted chan struct{}
	fetchRelease chan struct{}

	liveErr     error
	liveCalls   []models.ScoreUpdate
	liveStarted chan struct{}
	liveRelease chan struct{}

	finalErr   error
	finalCalls []models.ScoreUpdate
}

func (s *fakeStore) FetchMatch(ctx context.Context, matchID string) (*models.Match, error) {
	if s.fetchStarted != nil {
		close(s.fetchStarted)
		<-s.fetchRelease
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	m := *s.match
	return &m, nil
}

func (s *fakeStore) PushLiveScore(ctx context.Context, matchID string, score models.ScoreUpdate) error {
	if s.liveStarted != nil {
		close(s.liveStarted)
		<-s.liveRelease
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liveCalls = append(s.liveCalls, score)
	return s.liveErr
}

func (s *fakeStore) FinalizeScore(ctx context.Context, matchID string, score models.ScoreUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finalCalls = append(s.finalCalls, score)
	return s.finalErr
}

type fakePerms struct{ canEdit bool }

func (p fakePerms) CanEditScores() bool { return p.canEdit }

func intp(v int) *int { return &v }

func inProgressMatch(t1, t2 *int) *models.Match {
	return &models.Match{
		MatchID:      "m1",
		TournamentID: "t1",
		Team1Name:    "Dinkers",
		Team2Name:    "Smashers",
		Status:       models.MatchStatusInProgress,
		Team1Score:   t1,
		Team2Score:   t2,
	}
}

func newTestController(t *testing.T, store *fakeStore, canEdit bool) *Controller {
	t.Helper()
	ctrl := NewController("m1", store, fakePerms{canEdit: canEdit}, nil)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return ctrl
}

func TestLoadInitializesDraft(t *testing.T) {
	store := &fakeStore{match: inProgressMatch(intp(4), intp(3))}
	ctrl := newTestController(t, store, true)

	snap := ctrl.Snapshot()
	if snap.Phase != PhaseReady {
		t.Fatalf("phase = %v, want ready", snap.Phase)
	}
	if snap.Draft != (ScorePair{4, 3}) {
		t.Fatalf("draft = %v, want {4 3}", snap.Draft)
	}
	if snap.Dirty {
		t.Fatal("freshly loaded controller must not be dirty")
	}
	if snap.ReadOnly {
		t.Fatal("editor with permission on an in-progress match must be editable")
	}
}

func TestLoadDefaultsMissingScoresToZero(t *testing.T) {
	store := &fakeStore{match: inProgressMatch(nil, nil)}
	ctrl := newTestController(t, store, true)

	if snap := ctrl.Snapshot(); snap.Draft != (ScorePair{0, 0}) {
		t.Fatalf("draft = %v, want {0 0}", snap.Draft)
	}
}

func TestLoadFailureKeepsPriorState(t *testing.T) {
	store := &fakeStore{match: inProgressMatch(intp(5), intp(5))}
	ctrl := newTestController(t, store, true)

	store.mu.Lock()
	store.fetchErr = errors.New("upstream down")
	store.mu.Unlock()

	if err := ctrl.Refresh(context.Background()); err == nil {
		t.Fatal("expected refresh error")
	}
	snap := ctrl.Snapshot()
	if snap.Phase != PhaseReady || snap.Match == nil {
		t.Fatal("failed refresh must not discard the loaded match")
	}
	if snap.Draft != (ScorePair{5, 5}) {
		t.Fatalf("draft = %v, want prior {5 5}", snap.Draft)
	}
	if snap.Err == "" {
		t.Fatal("refresh failure must surface an error")
	}
}

func TestDecrementClampsAtZero(t *testing.T) {
	store := &fakeStore{match: inProgressMatch(nil, nil)}
	ctrl := newTestController(t, store, true)

	for i := 0; i < 3; i++ {
		if err := ctrl.Decrement(SideTeam1); err != nil {
			t.Fatalf("decrement %d: %v", i, err)
		}
	}
	if snap := ctrl.Snapshot(); snap.Draft.Team1 != 0 {
		t.Fatalf("team1 = %d, want clamped 0", snap.Draft.Team1)
	}
}

func TestDirtyLifecycle(t *testing.T) {
	store := &fakeStore{match: inProgressMatch(intp(4), intp(3))}
	ctrl := newTestController(t, store, true)
	ctx := context.Background()

	if ctrl.Snapshot().Dirty {
		t.Fatal("dirty after load")
	}

	if err := ctrl.Increment(SideTeam1); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if !ctrl.Snapshot().Dirty {
		t.Fatal("not dirty after increment")
	}

	if err := ctrl.SaveLive(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}
	if ctrl.Snapshot().Dirty {
		t.Fatal("dirty after successful save")
	}

	ctrl.Decrement(SideTeam2)
	store.mu.Lock()
	store.liveErr = errors.New("network flake")
	store.mu.Unlock()
	if err := ctrl.SaveLive(ctx); err == nil {
		t.Fatal("expected save failure")
	}
	snap := ctrl.Snapshot()
	if !snap.Dirty {
		t.Fatal("failed save must leave the draft dirty")
	}
	if snap.Draft != (ScorePair{5, 2}) {
		t.Fatalf("draft = %v, want retained {5 2}", snap.Draft)
	}
}

func TestSaveSendsDraftSnapshot(t *testing.T) {
	store := &fakeStore{match: inProgressMatch(intp(4), intp(3))}
	ctrl := newTestController(t, store, true)

	ctrl.Increment(SideTeam1)
	if err := ctrl.SaveLive(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(store.liveCalls) != 1 {
		t.Fatalf("live calls = %d, want 1", len(store.liveCalls))
	}
	if got := store.liveCalls[0]; got != (models.ScoreUpdate{Team1Score: 5, Team2Score: 3}) {
		t.Fatalf("pushed %+v, want {5 3}", got)
	}
}

func TestConcurrentSaveRejectedAndTapsSurvive(t *testing.T) {
	store := &fakeStore{
		match:       inProgressMatch(intp(4), intp(3)),
		liveStarted: make(chan struct{}),
		liveRelease: make(chan struct{}),
	}
	ctrl := newTestController(t, store, true)

	ctrl.Increment(SideTeam1)

	done := make(chan error, 1)
	go func() { done <- ctrl.SaveLive(context.Background()) }()
	<-store.liveStarted

	if err := ctrl.SaveLive(context.Background()); !errors.Is(err, ErrSaveInFlight) {
		t.Fatalf("second save = %v, want ErrSaveInFlight", err)
	}

	// Taps while the save is in flight are applied locally and keep the
	// view dirty once the in-flight save (carrying the older snapshot)
	// resolves.
	if err := ctrl.Increment(SideTeam2); err != nil {
		t.Fatalf("increment during save: %v", err)
	}

	close(store.liveRelease)
	if err := <-done; err != nil {
		t.Fatalf("save: %v", err)
	}

	snap := ctrl.Snapshot()
	if !snap.Dirty {
		t.Fatal("draft changed during save; view must stay dirty")
	}
	if got := store.liveCalls[0]; got != (models.ScoreUpdate{Team1Score: 5, Team2Score: 3}) {
		t.Fatalf("in-flight save pushed %+v, want the snapshot {5 3}", got)
	}
}

func TestSaveLeavesStatusToServer(t *testing.T) {
	match := inProgressMatch(nil, nil)
	match.Status = models.MatchStatusScheduled
	store := &fakeStore{match: match}
	ctrl := newTestController(t, store, true)

	ctrl.Increment(SideTeam1)
	if err := ctrl.SaveLive(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := ctrl.Snapshot().Match.Status; got != models.MatchStatusScheduled {
		t.Fatalf("status after save = %q, the live push must not transition it", got)
	}

	// The server owns the transition; refresh picks it up.
	store.mu.Lock()
	store.match.Status = models.MatchStatusInProgress
	store.mu.Unlock()
	if err := ctrl.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got := ctrl.Snapshot().Match.Status; got != models.MatchStatusInProgress {
		t.Fatalf("status after refresh = %q, want in progress", got)
	}
}

func TestConcurrentLoadRejected(t *testing.T) {
	store := &fakeStore{
		match:        inProgressMatch(intp(4), intp(3)),
		fetchStarted: make(chan struct{}),
		fetchRelease: make(chan struct{}),
	}
	ctrl := NewController("m1", store, fakePerms{canEdit: true}, nil)

	done := make(chan error, 1)
	go func() { done <- ctrl.Load(context.Background()) }()
	<-store.fetchStarted

	if err := ctrl.Load(context.Background()); !errors.Is(err, ErrLoadInFlight) {
		t.Fatalf("second load = %v, want ErrLoadInFlight", err)
	}
	if !ctrl.Snapshot().Loading {
		t.Fatal("snapshot must report the in-flight fetch")
	}

	close(store.fetchRelease)
	if err := <-done; err != nil {
		t.Fatalf("load: %v", err)
	}

	snap := ctrl.Snapshot()
	if snap.Loading {
		t.Fatal("loading flag must clear once the fetch resolves")
	}

	// Once the flight resolves the controller accepts loads again.
	store.fetchStarted = nil
	if err := ctrl.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh after load: %v", err)
	}
}

func TestReadOnlyGating(t *testing.T) {
	t.Run("no permission", func(t *testing.T) {
		store := &fakeStore{match: inProgressMatch(intp(5), intp(5))}
		ctrl := newTestController(t, store, false)
		assertReadOnly(t, ctrl, store)
	})

	t.Run("completed match", func(t *testing.T) {
		m := inProgressMatch(intp(11), intp(7))
		m.Status = models.MatchStatusCompleted
		store := &fakeStore{match: m}
		ctrl := newTestController(t, store, true)
		assertReadOnly(t, ctrl, store)
	})
}

func assertReadOnly(t *testing.T, ctrl *Controller, store *fakeStore) {
	t.Helper()
	ctx := context.Background()

	if snap := ctrl.Snapshot(); !snap.ReadOnly {
		t.Fatal("expected read-only snapshot")
	}
	if err := ctrl.Increment(SideTeam1); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("increment = %v, want ErrReadOnly", err)
	}
	if err := ctrl.Decrement(SideTeam2); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("decrement = %v, want ErrReadOnly", err)
	}
	if err := ctrl.SaveLive(ctx); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("save = %v, want ErrReadOnly", err)
	}
	if err := ctrl.Finish(ctx, true); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("finish = %v, want ErrReadOnly", err)
	}
	if len(store.liveCalls) != 0 || len(store.finalCalls) != 0 {
		t.Fatal("read-only controller must never reach the network")
	}
	// Refresh stays available so viewers can follow a live match.
	if err := ctrl.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
}

func TestFinishGuards(t *testing.T) {
	store := &fakeStore{match: inProgressMatch(nil, nil)}
	ctrl := newTestController(t, store, true)
	ctx := context.Background()

	if err := ctrl.Finish(ctx, true); !errors.Is(err, ErrUnplayedMatch) {
		t.Fatalf("finish at 0-0 = %v, want ErrUnplayedMatch", err)
	}
	if len(store.finalCalls) != 0 {
		t.Fatal("0-0 finish must be rejected before any network call")
	}

	ctrl.Increment(SideTeam1)
	if err := ctrl.Finish(ctx, false); !errors.Is(err, ErrConfirmationRequired) {
		t.Fatalf("unconfirmed finish = %v, want ErrConfirmationRequired", err)
	}
	if len(store.finalCalls) != 0 {
		t.Fatal("unconfirmed finish must not reach the network")
	}

	if err := ctrl.Finish(ctx, true); err != nil {
		t.Fatalf("finish at 1-0: %v", err)
	}
	if len(store.finalCalls) != 1 {
		t.Fatalf("final calls = %d, want 1", len(store.finalCalls))
	}
}

func TestFinishFailureRetainsDraft(t *testing.T) {
	store := &fakeStore{match: inProgressMatch(intp(10), intp(8)), finalErr: errors.New("validation rejected")}
	ctrl := newTestController(t, store, true)

	ctrl.Increment(SideTeam1)
	if err := ctrl.Finish(context.Background(), true); err == nil {
		t.Fatal("expected finish failure")
	}
	snap := ctrl.Snapshot()
	if snap.Finished {
		t.Fatal("failed finish must not mark the match finished")
	}
	if snap.Draft != (ScorePair{11, 8}) {
		t.Fatalf("draft = %v, want retained {11 8}", snap.Draft)
	}
	if snap.ReadOnly {
		t.Fatal("failed finish must leave the view editable for retry")
	}
}

func TestSavedIndicatorExpires(t *testing.T) {
	store := &fakeStore{match: inProgressMatch(intp(1), intp(0))}
	clock := time.Now()
	ctrl := NewController("m1", store, fakePerms{canEdit: true}, func() time.Time { return clock })
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := ctrl.SaveLive(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !ctrl.Snapshot().SavedRecently {
		t.Fatal("indicator should show right after a save")
	}

	clock = clock.Add(3 * time.Second)
	if ctrl.Snapshot().SavedRecently {
		t.Fatal("indicator should auto-clear after the window")
	}
}

func TestEndToEndScenario(t *testing.T) {
	store := &fakeStore{match: inProgressMatch(intp(4), intp(3))}
	ctrl := newTestController(t, store, true)
	ctx := context.Background()

	snap := ctrl.Snapshot()
	if snap.Draft != (ScorePair{4, 3}) || snap.Dirty || snap.ReadOnly {
		t.Fatalf("unexpected initial snapshot: %+v", snap)
	}

	for i := 0; i < 3; i++ {
		ctrl.Increment(SideTeam1)
	}
	snap = ctrl.Snapshot()
	if snap.Draft != (ScorePair{7, 3}) || !snap.Dirty || snap.Winner != SideNone {
		t.Fatalf("after three taps: %+v", snap)
	}

	for i := 0; i < 4; i++ {
		ctrl.Increment(SideTeam1)
	}
	snap = ctrl.Snapshot()
	if snap.Draft != (ScorePair{11, 3}) || snap.Winner != SideTeam1 {
		t.Fatalf("after seven taps: %+v", snap)
	}

	if err := ctrl.Finish(ctx, true); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if got := store.finalCalls[0]; got != (models.ScoreUpdate{Team1Score: 11, Team2Score: 3}) {
		t.Fatalf("finalized %+v, want {11 3}", got)
	}
	snap = ctrl.Snapshot()
	if !snap.Finished || snap.Match.TournamentID != "t1" {
		t.Fatalf("finished snapshot must carry the tournament id: %+v", snap)
	}
	if !snap.ReadOnly {
		t.Fatal("a finished match is read-only")
	}
}

func TestViewerFollowsLiveMatchViaRefresh(t *testing.T) {
	store := &fakeStore{match: inProgressMatch(intp(5), intp(5))}
	ctrl := newTestController(t, store, false)

	if snap := ctrl.Snapshot(); !snap.ReadOnly {
		t.Fatal("viewer without permission must be read-only")
	}

	// An admin elsewhere pushes a new live score.
	store.mu.Lock()
	store.match = inProgressMatch(intp(6), intp(5))
	store.mu.Unlock()

	if err := ctrl.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if snap := ctrl.Snapshot(); snap.Draft != (ScorePair{6, 5}) {
		t.Fatalf("draft = %v, want refreshed {6 5}", snap.Draft)
	}
}
