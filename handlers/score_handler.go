package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/arvind407/EasyPickle/live"
	"github.com/arvind407/EasyPickle/models"
	"github.com/arvind407/EasyPickle/remote"
	"github.com/arvind407/EasyPickle/scoring"
	"github.com/arvind407/EasyPickle/session"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The console sits behind the league's own frontend; origin
		// enforcement belongs to the deployment's reverse proxy.
		return true
	},
}

// scoreCommand is one action from the score-entry screen.
type scoreCommand struct {
	Action  string `json:"action"` // increment | decrement | save | finish | refresh
	Side    string `json:"side,omitempty"`
	Confirm bool   `json:"confirm,omitempty"`
}

// viewState is the snapshot as rendered to the frontend.
type viewState struct {
	Loading       bool          `json:"loading"`
	Match         *models.Match `json:"match,omitempty"`
	Team1Score    int           `json:"team1Score"`
	Team2Score    int           `json:"team2Score"`
	Winner        string        `json:"winner"`
	Dirty         bool          `json:"dirty"`
	Saving        bool          `json:"saving"`
	Finishing     bool          `json:"finishing"`
	Finished      bool          `json:"finished"`
	ReadOnly      bool          `json:"readOnly"`
	SavedRecently bool          `json:"savedRecently"`
	Error         string        `json:"error,omitempty"`
}

// sessionFrame is one message pushed to the score-entry screen.
type sessionFrame struct {
	Type         string           `json:"type"` // state | live_update | finished | error
	State        *viewState       `json:"state,omitempty"`
	Live         *live.ScoreFrame `json:"live,omitempty"`
	TournamentID string           `json:"tournamentId,omitempty"`
	Message      string           `json:"message,omitempty"`
}

// ScoreHandler runs the live score-entry sessions. Each websocket
// connection is one view instance: it owns its own controller and draft,
// and sees other editors' saves only through the hub or its own refresh.
type ScoreHandler struct {
	api    *remote.Client
	hub    *live.Hub
	logger *slog.Logger
}

func NewScoreHandler(api *remote.Client, hub *live.Hub, logger *slog.Logger) *ScoreHandler {
	return &ScoreHandler{api: api, hub: hub, logger: logger}
}

// ServeSession upgrades the connection and runs the session loop until the
// viewer disconnects or the match is finished.
func (h *ScoreHandler) ServeSession(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")

	token := bearerToken(r)
	sess, err := session.FromToken(token, time.Now)
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed",
			slog.String("match_id", matchID), slog.Any("error", err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	ctrl := scoring.NewController(matchID, h.api.MatchStoreFor(token), sess, nil)
	sub := h.hub.Subscribe(matchID)
	defer h.hub.Unsubscribe(sub)

	logger := h.logger.With(
		slog.String("match_id", matchID),
		slog.String("viewer", sub.ID),
		slog.String("user", sess.Username))

	if err := ctrl.Load(ctx); err != nil {
		// Not-found is terminal for this view; everything else is shown
		// with a retry (refresh) still available.
		if errors.Is(err, remote.ErrNotFound) {
			h.writeFrame(conn, sessionFrame{Type: "error", Message: "match not found"})
			return
		}
		logger.Warn("initial match load failed", slog.Any("error", err))
	}
	if err := h.writeState(conn, ctrl); err != nil {
		return
	}

	commands := make(chan scoreCommand)
	go readCommands(ctx, conn, commands, cancel)

	pings := time.NewTicker(pingPeriod)
	defer pings.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case cmd, ok := <-commands:
			if !ok {
				return
			}
			finished, err := h.apply(ctx, ctrl, sub, cmd)
			if err != nil {
				logger.Debug("score command rejected",
					slog.String("action", cmd.Action), slog.Any("error", err))
				if werr := h.writeFrame(conn, sessionFrame{Type: "error", Message: err.Error()}); werr != nil {
					return
				}
			}
			if werr := h.writeState(conn, ctrl); werr != nil {
				return
			}
			if finished {
				snap := ctrl.Snapshot()
				frame := sessionFrame{Type: "finished"}
				if snap.Match != nil {
					frame.TournamentID = snap.Match.TournamentID
				}
				h.writeFrame(conn, frame)
				return
			}

		case frame, ok := <-sub.C:
			if !ok {
				return
			}
			if frame.Origin == sub.ID {
				continue
			}
			snap := ctrl.Snapshot()
			if snap.ReadOnly {
				// Viewers follow the live match; editors keep their draft
				// and are only notified (refresh is the sole overwrite).
				if err := ctrl.Refresh(ctx); err != nil {
					logger.Warn("live refresh failed", slog.Any("error", err))
				}
				if err := h.writeState(conn, ctrl); err != nil {
					return
				}
			} else {
				f := frame
				if err := h.writeFrame(conn, sessionFrame{Type: "live_update", Live: &f}); err != nil {
					return
				}
			}

		case <-pings.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// apply executes one command against the controller and publishes live
// frames on successful saves. Returns whether the match was finished.
func (h *ScoreHandler) apply(ctx context.Context, ctrl *scoring.Controller, sub *live.Subscriber, cmd scoreCommand) (bool, error) {
	switch cmd.Action {
	case "increment":
		return false, ctrl.Increment(parseSide(cmd.Side))
	case "decrement":
		return false, ctrl.Decrement(parseSide(cmd.Side))
	case "refresh":
		return false, ctrl.Refresh(ctx)
	case "save":
		if err := ctrl.SaveLive(ctx); err != nil {
			return false, err
		}
		h.publish(ctrl, sub)
		return false, nil
	case "finish":
		if err := ctrl.Finish(ctx, cmd.Confirm); err != nil {
			return false, err
		}
		h.publish(ctrl, sub)
		return true, nil
	default:
		return false, errors.New("unknown score action: " + cmd.Action)
	}
}

func (h *ScoreHandler) publish(ctrl *scoring.Controller, sub *live.Subscriber) {
	snap := ctrl.Snapshot()
	frame := live.ScoreFrame{
		MatchID:    ctrl.MatchID(),
		Origin:     sub.ID,
		Team1Score: snap.Draft.Team1,
		Team2Score: snap.Draft.Team2,
	}
	if snap.Match != nil {
		frame.Status = snap.Match.Status
	}
	h.hub.Publish(frame)
}

func (h *ScoreHandler) writeState(conn *websocket.Conn, ctrl *scoring.Controller) error {
	snap := ctrl.Snapshot()
	state := &viewState{
		Loading:       snap.Phase == scoring.PhaseLoading || snap.Loading,
		Match:         snap.Match,
		Team1Score:    snap.Draft.Team1,
		Team2Score:    snap.Draft.Team2,
		Winner:        snap.Winner.String(),
		Dirty:         snap.Dirty,
		Saving:        snap.Saving,
		Finishing:     snap.Finishing,
		Finished:      snap.Finished,
		ReadOnly:      snap.ReadOnly,
		SavedRecently: snap.SavedRecently,
		Error:         snap.Err,
	}
	return h.writeFrame(conn, sessionFrame{Type: "state", State: state})
}

func (h *ScoreHandler) writeFrame(conn *websocket.Conn, frame sessionFrame) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(frame)
}

// readCommands pumps viewer commands into the session loop until the
// connection drops.
func readCommands(ctx context.Context, conn *websocket.Conn, commands chan<- scoreCommand, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		var cmd scoreCommand
		if err := conn.ReadJSON(&cmd); err != nil {
			close(commands)
			return
		}
		select {
		case commands <- cmd:
		case <-ctx.Done():
			return
		}
	}
}

func parseSide(s string) scoring.Side {
	switch s {
	case "team1":
		return scoring.SideTeam1
	case "team2":
		return scoring.SideTeam2
	default:
		return scoring.SideNone
	}
}

// bearerToken pulls the credential from the Authorization header or, for
// websocket dials where headers are awkward, the token query parameter.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return r.URL.Query().Get("token")
}
