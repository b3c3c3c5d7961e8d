// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/intesa-vincente/game"
	"github.com/danielhkuo/intesa-vincente/middleware"
	"github.com/danielhkuo/intesa-vincente/models"
	"github.com/danielhkuo/intesa-vincente/store"
)

// PlayHandler covers the in-turn intents: the guesser halting the clock or
// skipping, and a clue-giving player judging the guess. Both endpoints are
// role-gated on the calling device's stored role.
type PlayHandler struct {
	session *Session
	store   *store.Store
	engine  *game.Engine
}

func NewPlayHandler(session *Session, st *store.Store, eng *game.Engine) *PlayHandler {
	return &PlayHandler{session: session, store: st, engine: eng}
}

// GuesserAction handles POST /rooms/{id}/guesser-action
func (h *PlayHandler) GuesserAction(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")

	if !h.requireRole(w, r, roomID, models.RoleGuesser) {
		return
	}

	var req models.GuesserActionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Action != models.ActionStop && req.Action != models.ActionPass {
		middleware.ErrorResponse(w, http.StatusBadRequest, "action must be stop or pass")
		return
	}

	room, err := h.session.Mutate(func(room *models.Room) (*models.Room, error) {
		if room == nil || room.ID != roomID {
			return nil, game.ErrRoomNotFound
		}
		// Out-of-state actions come back unchanged: the affordance was
		// disabled on the device that should not have sent this.
		return h.engine.GuesserAction(room, req.Action), nil
	})
	if errors.Is(err, game.ErrRoomNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Room not found")
		return
	}
	if err != nil {
		slog.Error("failed to apply guesser action", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to apply action")
		return
	}

	slog.Info("guesser action applied",
		"room_id", room.ID,
		"action", req.Action,
		"passes_used", room.GameState.PassesUsed,
	)

	middleware.JSONResponse(w, http.StatusOK, models.RoomStateResponse{Room: room})
}

// PlayerResponse handles POST /rooms/{id}/response
func (h *PlayHandler) PlayerResponse(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")

	if !h.requireRole(w, r, roomID, models.RolePlayer) {
		return
	}

	var req models.PlayerResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	room, err := h.session.Mutate(func(room *models.Room) (*models.Room, error) {
		if room == nil || room.ID != roomID {
			return nil, game.ErrRoomNotFound
		}
		return h.engine.PlayerResponse(room, req.Correct)
	})
	if errors.Is(err, game.ErrRoomNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Room not found")
		return
	}
	if errors.Is(err, game.ErrInvalidState) {
		middleware.ErrorResponse(w, http.StatusConflict, "No response is pending")
		return
	}
	if err != nil {
		slog.Error("failed to apply player response", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to apply response")
		return
	}

	slog.Info("player response applied",
		"room_id", room.ID,
		"correct", req.Correct,
		"score", room.ActiveTeam().Score,
	)

	middleware.JSONResponse(w, http.StatusOK, models.RoomStateResponse{Room: room})
}

// requireRole verifies the calling device holds the given role for the
// room. Writes the error response and returns false when it does not.
func (h *PlayHandler) requireRole(w http.ResponseWriter, r *http.Request, roomID, role string) bool {
	deviceUUID := middleware.DeviceUUID(r)
	if deviceUUID == "" {
		middleware.ErrorResponse(w, http.StatusForbidden, "X-Device-UUID header required")
		return false
	}

	dr, err := h.store.GetDeviceRole(deviceUUID)
	if err != nil {
		slog.Error("failed to read device role", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return false
	}
	if dr == nil || dr.RoomID != roomID || dr.Role != role {
		middleware.ErrorResponse(w, http.StatusForbidden, "device does not hold the "+role+" role for this room")
		return false
	}
	return true
}
