package rest

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	gameService "github.com/pyramid-party/server/internal/services/game"
)

// Config holds configuration for the REST handler
type Config struct {
	GameService gameService.Service
}

// Handler exposes the room bootstrap endpoints. Everything after creation
// happens over the websocket feed.
type Handler struct {
	service gameService.Service
}

// New creates a new REST handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	return &Handler{service: cfg.GameService}, nil
}

// Register attaches the handler's routes to a mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /rooms", h.createRoom)
	mux.HandleFunc("GET /rooms/{code}", h.getRoom)
}

type createRoomRequest struct {
	RoomCode string `json:"room_code,omitempty"`
	HostUID  string `json:"host_uid"`
	HostName string `json:"host_name"`
}

func (h *Handler) createRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	out, err := h.service.CreateGame(r.Context(), &gameService.CreateGameInput{
		RoomCode: req.RoomCode,
		HostUID:  req.HostUID,
		HostName: req.HostName,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, out.Record)
}

func (h *Handler) getRoom(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetGame(r.Context(), &gameService.GetGameInput{
		RoomCode: r.PathValue("code"),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Record)
}

// writeServiceError maps known service errors to client statuses. Anything
// unmapped is an infrastructure failure and reports as 500.
func writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, gameService.ErrRoomNotFound):
		status = http.StatusNotFound
	case errors.Is(err, gameService.ErrInvalidRoomCode),
		errors.Is(err, gameService.ErrPlayerNotFound):
		status = http.StatusBadRequest
	case errors.Is(err, gameService.ErrRoomExists):
		status = http.StatusConflict
	}
	writeError(w, status, err)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("rest: failed to write response: %v", err)
	}
}
