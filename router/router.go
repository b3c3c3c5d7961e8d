// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/intesa-vincente/game"
	"github.com/danielhkuo/intesa-vincente/handlers"
	"github.com/danielhkuo/intesa-vincente/middleware"
	"github.com/danielhkuo/intesa-vincente/store"
	"github.com/danielhkuo/intesa-vincente/timer"
)

func NewRouter(st *store.Store, eng *game.Engine, clock *timer.Clock) *http.ServeMux {
	mux := http.NewServeMux()

	// One session serializes all room mutations and owns the turn clock
	session := handlers.NewSession(st, eng, clock)

	// Initialize handlers
	roomHandler := handlers.NewRoomHandler(session, st, eng)
	playHandler := handlers.NewPlayHandler(session, st, eng)
	deviceHandler := handlers.NewDeviceHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Room lifecycle
	mux.HandleFunc("POST /rooms", middleware.WithLogging(roomHandler.Create))
	mux.HandleFunc("GET /rooms/{id}", middleware.WithLogging(roomHandler.Get))
	mux.HandleFunc("POST /rooms/{id}/join", middleware.WithLogging(roomHandler.Join))
	mux.HandleFunc("POST /rooms/{id}/start", middleware.WithLogging(roomHandler.Start))
	mux.HandleFunc("GET /rooms/{id}/history", middleware.WithLogging(roomHandler.History))
	mux.HandleFunc("DELETE /rooms/{id}", middleware.WithLogging(roomHandler.Reset))

	// In-turn intents (role-gated)
	mux.HandleFunc("POST /rooms/{id}/guesser-action", middleware.WithLogging(playHandler.GuesserAction))
	mux.HandleFunc("POST /rooms/{id}/response", middleware.WithLogging(playHandler.PlayerResponse))

	// Device management
	mux.HandleFunc("POST /devices/register", middleware.WithLogging(deviceHandler.Register))
	mux.HandleFunc("GET /devices/me", middleware.WithLogging(deviceHandler.GetMe))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("intesa-vincente API v1"))
	})

	return mux
}
