// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/intesa-vincente/game"
	"github.com/danielhkuo/intesa-vincente/middleware"
	"github.com/danielhkuo/intesa-vincente/models"
	"github.com/danielhkuo/intesa-vincente/store"
)

type RoomHandler struct {
	session *Session
	store   *store.Store
	engine  *game.Engine
}

func NewRoomHandler(session *Session, st *store.Store, eng *game.Engine) *RoomHandler {
	return &RoomHandler{session: session, store: st, engine: eng}
}

// Create handles POST /rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	deviceUUID := middleware.DeviceUUID(r)

	room, err := h.session.Mutate(func(_ *models.Room) (*models.Room, error) {
		// Creating replaces any previous room: the store holds one live
		// match at a time.
		created, err := h.engine.CreateRoom(req.Config, req.Teams)
		if err != nil {
			return nil, err
		}
		if deviceUUID != "" {
			created.Host = deviceUUID
			created.ConnectedDevices = append(created.ConnectedDevices, deviceUUID)
			// The configuring device feeds clues, as in the original.
			if err := h.store.PutDeviceRole(models.DeviceRole{
				DeviceUUID: deviceUUID,
				RoomID:     created.ID,
				Role:       models.RolePlayer,
				LinkedAt:   time.Now(),
			}); err != nil {
				return nil, err
			}
		}
		return created, nil
	})
	if errors.Is(err, game.ErrConfiguration) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to create room", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create room")
		return
	}

	slog.Info("room created", "room_id", room.ID, "teams", len(room.Teams))

	middleware.JSONResponse(w, http.StatusCreated, models.CreateRoomResponse{
		RoomID: room.ID,
		Room:   room,
	})
}

// Get handles GET /rooms/{id}
// Devices poll this to re-render shared state.
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")

	room, err := h.session.View()
	if err != nil {
		slog.Error("failed to read room", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if room == nil || room.ID != roomID {
		middleware.ErrorResponse(w, http.StatusNotFound, "Room not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RoomStateResponse{
		Room:       room,
		CreatedAgo: humanize.Time(room.CreatedAt),
	})
}

// Join handles POST /rooms/{id}/join
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")

	var req models.JoinRoomRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	deviceUUID := middleware.DeviceUUID(r)

	room, err := h.session.Mutate(func(room *models.Room) (*models.Room, error) {
		joined, err := h.engine.Join(room, roomID, req.Role, deviceUUID)
		if err != nil {
			return nil, err
		}
		if req.TeamID != "" {
			if err := validateBinding(joined, req.TeamID, req.PlayerID); err != nil {
				return nil, err
			}
		}
		if deviceUUID != "" {
			if err := h.store.PutDeviceRole(models.DeviceRole{
				DeviceUUID: deviceUUID,
				RoomID:     joined.ID,
				Role:       req.Role,
				TeamID:     req.TeamID,
				PlayerID:   req.PlayerID,
				LinkedAt:   time.Now(),
			}); err != nil {
				return nil, err
			}
		}
		return joined, nil
	})
	if errors.Is(err, game.ErrRoomNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Room not found or code invalid")
		return
	}
	if errors.Is(err, game.ErrConfiguration) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to join room", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to join room")
		return
	}

	slog.Info("device joined room", "room_id", room.ID, "role", req.Role)

	middleware.JSONResponse(w, http.StatusOK, models.JoinRoomResponse{
		Room: room,
		Role: req.Role,
	})
}

// Start handles POST /rooms/{id}/start
func (h *RoomHandler) Start(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")

	room, err := h.session.Mutate(func(room *models.Room) (*models.Room, error) {
		if room == nil || room.ID != roomID {
			return nil, game.ErrRoomNotFound
		}
		return h.engine.StartGame(room), nil
	})
	if errors.Is(err, game.ErrRoomNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Room not found")
		return
	}
	if err != nil {
		slog.Error("failed to start game", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start game")
		return
	}

	slog.Info("game started", "room_id", room.ID, "time_limit", room.Config.TimeLimit)

	middleware.JSONResponse(w, http.StatusOK, models.RoomStateResponse{
		Room:       room,
		CreatedAgo: humanize.Time(room.CreatedAt),
	})
}

// History handles GET /rooms/{id}/history
func (h *RoomHandler) History(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")

	room, err := h.session.View()
	if err != nil {
		slog.Error("failed to read room", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if room == nil || room.ID != roomID {
		middleware.ErrorResponse(w, http.StatusNotFound, "Room not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.WordHistoryResponse{
		Entries: room.GameState.WordHistory,
	})
}

// Reset handles DELETE /rooms/{id}
// Clears the room, every device role, and the turn clock.
func (h *RoomHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Reset(); err != nil {
		slog.Error("failed to reset game", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset game")
		return
	}

	slog.Info("game reset", "room_id", r.PathValue("id"))

	w.WriteHeader(http.StatusNoContent)
}

// validateBinding checks a requested team/player binding against the room.
func validateBinding(room *models.Room, teamID, playerID string) error {
	for _, t := range room.Teams {
		if t.ID != teamID {
			continue
		}
		if playerID == "" {
			return nil
		}
		for _, p := range t.Players {
			if p.ID == playerID {
				return nil
			}
		}
		return fmt.Errorf("%w: unknown player %q on team %q", game.ErrConfiguration, playerID, teamID)
	}
	return fmt.Errorf("%w: unknown team %q", game.ErrConfiguration, teamID)
}
