// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"sync"

	"github.com/danielhkuo/intesa-vincente/game"
	"github.com/danielhkuo/intesa-vincente/models"
	"github.com/danielhkuo/intesa-vincente/store"
	"github.com/danielhkuo/intesa-vincente/timer"
)

// Session serializes every room mutation and owns the turn clock. Devices
// race only through the store's last-write-wins semantics; within this
// process all load-transition-persist sequences run under one lock, so
// locally dispatched actions are applied in order.
type Session struct {
	store  *store.Store
	engine *game.Engine
	clock  *timer.Clock

	mu      sync.Mutex // guards load-transition-persist
	clockMu sync.Mutex // guards clock start/stop decisions
}

func NewSession(st *store.Store, eng *game.Engine, clock *timer.Clock) *Session {
	return &Session{store: st, engine: eng, clock: clock}
}

// View reads the live room without mutating it.
func (s *Session) View() (*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.GetRoom()
}

// Mutate loads the live room, applies fn, and persists the result when fn
// produced a new room. The clock is resynced against the persisted state
// after the lock is released.
func (s *Session) Mutate(fn func(room *models.Room) (*models.Room, error)) (*models.Room, error) {
	s.mu.Lock()
	room, err := s.store.GetRoom()
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	next, err := fn(room)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if next != room {
		if err := s.store.PutRoom(next); err != nil {
			s.mu.Unlock()
			return nil, err
		}
	}
	s.mu.Unlock()

	s.syncClock(next)
	return next, nil
}

// Reset stops the clock and clears both the room and every device-role
// marker. Subsequent reads observe an absent room.
func (s *Session) Reset() error {
	s.mu.Lock()
	err := s.store.DeleteRoom()
	if err == nil {
		err = s.store.DeleteDeviceRoles()
	}
	s.mu.Unlock()

	s.syncClock(nil)
	return err
}

// syncClock starts or stops the countdown so it runs exactly while the
// game is active, unpaused, and not over. An already-running countdown is
// left alone: time left only changes through ticks and turn handoff.
func (s *Session) syncClock(room *models.Room) {
	s.clockMu.Lock()
	defer s.clockMu.Unlock()

	gs := models.GameState{}
	if room != nil {
		gs = room.GameState
	}
	shouldRun := room != nil && gs.IsActive && !gs.IsPaused && !gs.IsGameOver && gs.TimeLeft > 0
	if !shouldRun {
		s.clock.Stop()
		return
	}
	if s.clock.Running() {
		return
	}
	s.clock.Start(gs.TimeLeft, s.onTick, s.onExpire)
}

// onTick persists the new seconds-remaining value and reports whether the
// countdown should continue. A pause, reset, or game end observed here
// halts the clock even before the owning handler gets around to stopping it.
func (s *Session) onTick(remaining int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.store.GetRoom()
	if err != nil || room == nil {
		return false
	}
	gs := room.GameState
	if !gs.IsActive || gs.IsPaused || gs.IsGameOver {
		return false
	}
	next := s.engine.UpdateTimer(room, remaining)
	if err := s.store.PutRoom(next); err != nil {
		slog.Error("failed to persist timer tick", "error", err)
		return false
	}
	return true
}

// onExpire hands the turn to the next team or ends the match.
func (s *Session) onExpire() {
	s.mu.Lock()
	room, err := s.store.GetRoom()
	if err != nil || room == nil {
		s.mu.Unlock()
		return
	}
	next, outcome := s.engine.OnTimeExpired(room)
	if err := s.store.PutRoom(next); err != nil {
		slog.Error("failed to persist turn expiry", "error", err)
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	switch outcome {
	case game.Handoff:
		slog.Info("turn handed off",
			"room_id", next.ID,
			"current_team", next.GameState.CurrentTeam,
		)
		s.syncClock(next)
	case game.RoundComplete:
		slog.Info("match ended",
			"room_id", next.ID,
			"winner", next.GameState.Winner.Name,
		)
	}
}
