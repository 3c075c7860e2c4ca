// Package live fans live-score updates out to everyone watching a match.
// The hub keeps one room per match id; score sessions subscribe on connect
// and the editor's successful live saves are published into the room.
package live

import (
	"context"
	"log/slog"

	"github.com/arvind407/EasyPickle/models"
	"github.com/google/uuid"
)

// ScoreFrame is one live-score update as broadcast to viewers. Origin is
// the publishing subscriber's id so a session can skip its own frames.
type ScoreFrame struct {
	MatchID    string             `json:"matchId"`
	Origin     string             `json:"-"`
	Team1Score int                `json:"team1Score"`
	Team2Score int                `json:"team2Score"`
	Status     models.MatchStatus `json:"status"`
}

// Subscriber receives frames for a single match room. The channel is
// buffered; a subscriber that falls behind misses frames rather than
// stalling the hub (the next refresh catches it up).
type Subscriber struct {
	ID      string
	MatchID string
	C       chan ScoreFrame
}

// Hub routes score frames between sessions. All room state is owned by the
// Run goroutine; the exported methods only touch channels.
type Hub struct {
	logger      *slog.Logger
	subscribe   chan *Subscriber
	unsubscribe chan *Subscriber
	publish     chan ScoreFrame
	done        chan struct{}
	rooms       map[string]map[*Subscriber]struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:      logger,
		subscribe:   make(chan *Subscriber),
		unsubscribe: make(chan *Subscriber),
		publish:     make(chan ScoreFrame, 16),
		done:        make(chan struct{}),
		rooms:       make(map[string]map[*Subscriber]struct{}),
	}
}

// Run owns the room table until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for _, room := range h.rooms {
				for sub := range room {
					close(sub.C)
				}
			}
			h.rooms = make(map[string]map[*Subscriber]struct{})
			return

		case sub := <-h.subscribe:
			room, ok := h.rooms[sub.MatchID]
			if !ok {
				room = make(map[*Subscriber]struct{})
				h.rooms[sub.MatchID] = room
			}
			room[sub] = struct{}{}
			h.logger.Debug("viewer joined match room",
				slog.String("match_id", sub.MatchID),
				slog.Int("viewers", len(room)))

		case sub := <-h.unsubscribe:
			room, ok := h.rooms[sub.MatchID]
			if !ok {
				continue
			}
			if _, ok := room[sub]; !ok {
				continue
			}
			delete(room, sub)
			close(sub.C)
			if len(room) == 0 {
				delete(h.rooms, sub.MatchID)
			}

		case frame := <-h.publish:
			for sub := range h.rooms[frame.MatchID] {
				select {
				case sub.C <- frame:
				default:
					// Slow viewer; it will catch up on its next refresh.
				}
			}
		}
	}
}

// Subscribe joins the room for one match. The returned subscriber must be
// released with Unsubscribe when the viewer disconnects.
func (h *Hub) Subscribe(matchID string) *Subscriber {
	sub := &Subscriber{
		ID:      uuid.NewString(),
		MatchID: matchID,
		C:       make(chan ScoreFrame, 8),
	}
	select {
	case h.subscribe <- sub:
	case <-h.done:
		close(sub.C)
	}
	return sub
}

// Unsubscribe removes a viewer from its room and closes its channel.
// Safe to call while the hub is shutting down.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	select {
	case h.unsubscribe <- sub:
	case <-h.done:
	}
}

// Publish broadcasts a frame to everyone in the frame's match room.
func (h *Hub) Publish(frame ScoreFrame) {
	select {
	case h.publish <- frame:
	case <-h.done:
	}
}
