package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/pyramid-party/server/internal/gateway"
	"github.com/pyramid-party/server/internal/models"
	gameService "github.com/pyramid-party/server/internal/services/game"
)

const replyBuffer = 16

// Config holds configuration for the websocket handler
type Config struct {
	// GameService executes client actions
	GameService gameService.Service

	// Gateway supplies the snapshot feed
	Gateway gateway.Gateway
}

// Handler serves one websocket per client. Committed snapshots flow down
// from a gateway subscription; action envelopes flow up and become service
// calls. Rejected actions are answered with an error envelope; accepted
// ones are observed through the next snapshot like everyone else's.
type Handler struct {
	service  gameService.Service
	gateway  gateway.Gateway
	upgrader websocket.Upgrader
}

// New creates a new websocket handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.Gateway == nil {
		return nil, errors.New("gateway cannot be nil")
	}

	return &Handler{
		service: cfg.GameService,
		gateway: cfg.Gateway,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}, nil
}

// ServeHTTP upgrades the connection and runs the read loop until the client
// disconnects
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	roomCode := r.URL.Query().Get("room")
	if roomCode == "" {
		http.Error(w, "room query parameter is required", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sub, err := h.gateway.Subscribe(r.Context(), &gateway.SubscribeInput{
		RoomCode: roomCode,
	})
	if err != nil {
		_ = conn.WriteJSON(errorEnvelope(err))
		return
	}
	defer sub.Unsubscribe()

	replies := make(chan *Envelope, replyBuffer)
	done := make(chan struct{})

	// Single writer: gorilla connections allow one concurrent writer, so
	// snapshots and error replies are funnelled through one goroutine.
	go func() {
		defer close(done)
		snapshots := sub.Snapshots
		for snapshots != nil || replies != nil {
			select {
			case record, ok := <-snapshots:
				if !ok {
					snapshots = nil
					continue
				}
				if err := conn.WriteJSON(snapshotEnvelope(record)); err != nil {
					return
				}
			case envelope, ok := <-replies:
				if !ok {
					replies = nil
					continue
				}
				if err := conn.WriteJSON(envelope); err != nil {
					return
				}
			}
		}
	}()

	for {
		var envelope Envelope
		if err := conn.ReadJSON(&envelope); err != nil {
			break
		}

		if err := h.dispatch(r.Context(), roomCode, &envelope); err != nil {
			select {
			case replies <- errorEnvelope(err):
			case <-done:
			}
		}
	}

	close(replies)
	sub.Unsubscribe()
	<-done
}

// dispatch maps a client envelope to a service call
func (h *Handler) dispatch(ctx context.Context, roomCode string, envelope *Envelope) error {
	switch envelope.Type {
	case MsgJoin:
		var p JoinPayload
		if err := json.Unmarshal(envelope.Payload, &p); err != nil {
			return err
		}
		_, err := h.service.JoinGame(ctx, &gameService.JoinGameInput{
			RoomCode: roomCode,
			UID:      p.UID,
			Name:     p.Name,
		})
		return err

	case MsgDeal:
		var p HostPayload
		if err := json.Unmarshal(envelope.Payload, &p); err != nil {
			return err
		}
		_, err := h.service.DealInitialHands(ctx, &gameService.DealInitialHandsInput{
			RoomCode: roomCode,
			UID:      p.UID,
		})
		return err

	case MsgStart:
		var p HostPayload
		if err := json.Unmarshal(envelope.Payload, &p); err != nil {
			return err
		}
		_, err := h.service.StartGame(ctx, &gameService.StartGameInput{
			RoomCode: roomCode,
			UID:      p.UID,
		})
		return err

	case MsgReveal:
		var p HostPayload
		if err := json.Unmarshal(envelope.Payload, &p); err != nil {
			return err
		}
		_, err := h.service.RevealNextCard(ctx, &gameService.RevealNextCardInput{
			RoomCode: roomCode,
			UID:      p.UID,
		})
		return err

	case MsgCloseRound:
		var p HostPayload
		if err := json.Unmarshal(envelope.Payload, &p); err != nil {
			return err
		}
		_, err := h.service.CloseRound(ctx, &gameService.CloseRoundInput{
			RoomCode: roomCode,
			UID:      p.UID,
		})
		return err

	case MsgCall:
		var p CallPayload
		if err := json.Unmarshal(envelope.Payload, &p); err != nil {
			return err
		}
		_, err := h.service.CallPlayer(ctx, &gameService.CallPlayerInput{
			RoomCode: roomCode,
			From:     p.From,
			To:       p.To,
		})
		return err

	case MsgRespond:
		var p RespondPayload
		if err := json.Unmarshal(envelope.Payload, &p); err != nil {
			return err
		}
		_, err := h.service.RespondToCall(ctx, &gameService.RespondToCallInput{
			RoomCode:      roomCode,
			UID:           p.UID,
			TransactionID: p.TransactionID,
			Decision:      gameService.RespondDecision(p.Decision),
		})
		return err

	case MsgResolve:
		var p ResolvePayload
		if err := json.Unmarshal(envelope.Payload, &p); err != nil {
			return err
		}
		_, err := h.service.ResolveChallenge(ctx, &gameService.ResolveChallengeInput{
			RoomCode:      roomCode,
			UID:           p.UID,
			TransactionID: p.TransactionID,
			CardID:        p.CardID,
		})
		return err

	case MsgSeen:
		var p SeenPayload
		if err := json.Unmarshal(envelope.Payload, &p); err != nil {
			return err
		}
		_, err := h.service.MarkCardSeen(ctx, &gameService.MarkCardSeenInput{
			RoomCode: roomCode,
			UID:      p.UID,
			CardID:   p.CardID,
		})
		return err

	default:
		return errors.New("unknown message type")
	}
}

func snapshotEnvelope(record *models.GameRecord) *Envelope {
	payload, err := json.Marshal(record)
	if err != nil {
		log.Printf("ws: failed to marshal snapshot for room %s: %v", record.RoomCode, err)
		return errorEnvelope(errors.New("snapshot unavailable"))
	}
	return &Envelope{Type: MsgSnapshot, Payload: payload}
}

func errorEnvelope(err error) *Envelope {
	payload, _ := json.Marshal(ErrorPayload{Message: err.Error()})
	return &Envelope{Type: MsgError, Payload: payload}
}
