// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/intesa-vincente/models"
)

// WordSource supplies the next secret word.
type WordSource interface {
	Draw() string
}

// Engine interprets presentation intents and produces the next room state.
// Every operation takes the current room, clones it, and returns the clone;
// the input room is never mutated, so a rejected transition leaves the
// caller's state untouched.
type Engine struct {
	words WordSource
	rng   *rand.Rand
	now   func() time.Time
}

// NewEngine creates an engine backed by the given word source. A nil rng
// falls back to a time-seeded source; tests pass a seeded one for
// deterministic room codes.
func NewEngine(words WordSource, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		words: words,
		rng:   rng,
		now:   time.Now,
	}
}

// CreateRoom validates the configuration and builds a fresh room: a new
// 6-character code, team 0 up first, a drawn word, the full time budget,
// and an empty history. Team and player IDs left empty by the client are
// assigned.
func (e *Engine) CreateRoom(cfg models.GameConfig, teams []models.Team) (*models.Room, error) {
	if err := validateConfig(cfg, teams); err != nil {
		return nil, err
	}

	ts := make([]models.Team, len(teams))
	for i, t := range teams {
		ts[i] = t
		ts[i].Players = append([]models.Player(nil), t.Players...)
		ts[i].Score = 0
		ts[i].TotalPasses = 0
		if ts[i].ID == "" {
			ts[i].ID = uuid.NewString()
		}
		for j := range ts[i].Players {
			if ts[i].Players[j].ID == "" {
				ts[i].Players[j].ID = uuid.NewString()
			}
		}
	}

	room := &models.Room{
		ID:               e.newRoomCode(),
		Host:             "host",
		Config:           cfg,
		Teams:            ts,
		ConnectedDevices: []string{},
		CreatedAt:        e.now(),
		GameState: models.GameState{
			CurrentTeam: 0,
			CurrentWord: e.words.Draw(),
			TimeLeft:    cfg.TimeLimit,
			WordHistory: []models.WordEntry{},
		},
	}
	return room, nil
}

// Join succeeds only when the code matches the live room. The joining
// device is recorded on the room; its role binding is the caller's concern.
func (e *Engine) Join(room *models.Room, roomID, role, deviceUUID string) (*models.Room, error) {
	if room == nil || room.ID != roomID {
		return nil, fmt.Errorf("%w: %q", ErrRoomNotFound, roomID)
	}
	if role != models.RolePlayer && role != models.RoleGuesser {
		return nil, fmt.Errorf("%w: unknown role %q", ErrConfiguration, role)
	}
	next := room.Clone()
	if deviceUUID != "" && !next.HasDevice(deviceUUID) {
		next.ConnectedDevices = append(next.ConnectedDevices, deviceUUID)
	}
	return next, nil
}

// StartGame flips the room to active. A nil room is returned unchanged.
func (e *Engine) StartGame(room *models.Room) *models.Room {
	if room == nil {
		return nil
	}
	next := room.Clone()
	next.GameState.IsActive = true
	return next
}

// DrawNextWord replaces the current word and clears the pending-response
// marker. Used after both pass and response resolution.
func (e *Engine) DrawNextWord(room *models.Room) *models.Room {
	if room == nil {
		return nil
	}
	next := room.Clone()
	next.GameState.CurrentWord = e.words.Draw()
	next.GameState.WaitingForResponse = false
	return next
}

// GuesserAction applies a stop or pass. Preconditions that would normally
// be enforced by disabled controls are re-checked here; a violating call is
// a no-op rather than an error since this is a shared-state UI action.
func (e *Engine) GuesserAction(room *models.Room, action string) *models.Room {
	if room == nil {
		return nil
	}
	gs := room.GameState
	switch action {
	case models.ActionPass:
		if !gs.IsActive || gs.IsPaused || gs.PassesUsed >= room.Config.MaxPasses {
			return room
		}
		next := room.Clone()
		next.ActiveTeam().TotalPasses++
		next.GameState.PassesUsed++
		next.GameState.WordHistory = append(next.GameState.WordHistory, models.WordEntry{
			Word:      gs.CurrentWord,
			Result:    models.ResultPassed,
			Team:      gs.CurrentTeam,
			Timestamp: e.now().UnixMilli(),
		})
		next.GameState.CurrentWord = e.words.Draw()
		return next
	case models.ActionStop:
		if !gs.IsActive || gs.IsPaused {
			return room
		}
		next := room.Clone()
		next.GameState.IsPaused = true
		next.GameState.WaitingForResponse = true
		return next
	}
	return room
}

// PlayerResponse resolves a pending stop. Correct answers score one point;
// wrong answers on hard difficulty cost one, never dropping below zero.
func (e *Engine) PlayerResponse(room *models.Room, correct bool) (*models.Room, error) {
	if room == nil {
		return nil, fmt.Errorf("%w: no room", ErrRoomNotFound)
	}
	if !room.GameState.WaitingForResponse {
		return nil, fmt.Errorf("%w: no response pending", ErrInvalidState)
	}

	next := room.Clone()
	team := next.ActiveTeam()
	result := models.ResultWrong
	if correct {
		team.Score++
		result = models.ResultCorrect
	} else if next.Config.Difficulty == models.DifficultyHard && team.Score > 0 {
		team.Score--
	}
	next.GameState.WordHistory = append(next.GameState.WordHistory, models.WordEntry{
		Word:      room.GameState.CurrentWord,
		Result:    result,
		Team:      room.GameState.CurrentTeam,
		Timestamp: e.now().UnixMilli(),
	})
	next.GameState.IsPaused = false
	next.GameState.WaitingForResponse = false
	next.GameState.CurrentWord = e.words.Draw()
	return next, nil
}

// UpdateTimer records the seconds remaining on the turn clock.
func (e *Engine) UpdateTimer(room *models.Room, secondsRemaining int) *models.Room {
	if room == nil {
		return nil
	}
	next := room.Clone()
	next.GameState.TimeLeft = secondsRemaining
	return next
}

func validateConfig(cfg models.GameConfig, teams []models.Team) error {
	if cfg.Difficulty != models.DifficultyEasy && cfg.Difficulty != models.DifficultyHard {
		return fmt.Errorf("%w: difficulty must be easy or hard", ErrConfiguration)
	}
	if cfg.MaxPasses < 0 {
		return fmt.Errorf("%w: maxPasses must be >= 0", ErrConfiguration)
	}
	if cfg.TimeLimit <= 0 {
		return fmt.Errorf("%w: timeLimit must be positive", ErrConfiguration)
	}
	if len(teams) < 2 {
		return fmt.Errorf("%w: at least 2 teams required", ErrConfiguration)
	}
	for i, t := range teams {
		if len(t.Players) < 2 {
			return fmt.Errorf("%w: team %d needs at least 2 players", ErrConfiguration, i)
		}
		if _, ok := t.Guesser(); !ok {
			return fmt.Errorf("%w: team %d must have exactly one guesser", ErrConfiguration, i)
		}
		for _, p := range t.Players {
			if strings.TrimSpace(p.Name) == "" {
				return fmt.Errorf("%w: team %d has a player without a name", ErrConfiguration, i)
			}
		}
	}
	return nil
}
