// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Player roles
const (
	RolePlayer  = "player"
	RoleGuesser = "guesser"
)

// Difficulty constants
const (
	DifficultyEasy = "easy"
	DifficultyHard = "hard"
)

// Word resolution results
const (
	ResultCorrect = "correct"
	ResultPassed  = "passed"
	ResultWrong   = "wrong"
)

// Guesser actions
const (
	ActionStop = "stop"
	ActionPass = "pass"
)

// Device platform constants
const (
	PlatformIOS     = "ios"
	PlatformMacOS   = "macos"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
)

// Domain types
//
// JSON field names are camelCase to stay wire-compatible with the payload
// the original client stored under its room key.

type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type Team struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Players     []Player `json:"players"`
	Score       int      `json:"score"`
	TotalPasses int      `json:"totalPasses"`
}

// Guesser returns the team's guesser and whether exactly one exists.
func (t Team) Guesser() (Player, bool) {
	var found Player
	n := 0
	for _, p := range t.Players {
		if p.Role == RoleGuesser {
			found = p
			n++
		}
	}
	return found, n == 1
}

// GameConfig is immutable after room creation.
type GameConfig struct {
	Difficulty string `json:"difficulty"`
	MaxPasses  int    `json:"maxPasses"`
	TimeLimit  int    `json:"timeLimit"`
}

// WordEntry is an append-only audit record; never mutated or removed.
type WordEntry struct {
	Word      string `json:"word"`
	Result    string `json:"result"`
	Team      int    `json:"team"`
	Timestamp int64  `json:"timestamp"`
}

type GameState struct {
	CurrentTeam        int         `json:"currentTeam"`
	CurrentWord        string      `json:"currentWord"`
	TimeLeft           int         `json:"timeLeft"`
	PassesUsed         int         `json:"passesUsed"`
	IsActive           bool        `json:"isActive"`
	IsPaused           bool        `json:"isPaused"`
	IsGameOver         bool        `json:"isGameOver"`
	Winner             *Team       `json:"winner"`
	WordHistory        []WordEntry `json:"wordHistory"`
	WaitingForResponse bool        `json:"waitingForResponse"`
	// TurnsPlayed counts completed turns this match so round completion
	// works for any team count, not just two.
	TurnsPlayed int `json:"turnsPlayed"`
}

// Room is the single shared session aggregate identifying one match.
type Room struct {
	ID               string     `json:"id"`
	Host             string     `json:"host"`
	Config           GameConfig `json:"config"`
	Teams            []Team     `json:"teams"`
	GameState        GameState  `json:"gameState"`
	ConnectedDevices []string   `json:"connectedDevices"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// Clone returns a deep copy of the room. Every state transition operates on
// a clone so the prior room is left intact when a transition is rejected.
func (r *Room) Clone() *Room {
	if r == nil {
		return nil
	}
	c := *r
	c.Teams = make([]Team, len(r.Teams))
	for i, t := range r.Teams {
		c.Teams[i] = t
		c.Teams[i].Players = append([]Player(nil), t.Players...)
	}
	c.GameState.WordHistory = append([]WordEntry(nil), r.GameState.WordHistory...)
	if r.GameState.Winner != nil {
		w := *r.GameState.Winner
		w.Players = append([]Player(nil), r.GameState.Winner.Players...)
		c.GameState.Winner = &w
	}
	c.ConnectedDevices = append([]string(nil), r.ConnectedDevices...)
	return &c
}

// ActiveTeam returns the team whose turn it is.
func (r *Room) ActiveTeam() *Team {
	return &r.Teams[r.GameState.CurrentTeam]
}

// HasDevice reports whether the device UUID is already connected.
func (r *Room) HasDevice(deviceUUID string) bool {
	for _, d := range r.ConnectedDevices {
		if d == deviceUUID {
			return true
		}
	}
	return false
}

// DeviceRole is the per-device role marker persisted alongside the room.
// The role is bound to a specific team and player at join time.
type DeviceRole struct {
	DeviceUUID string    `json:"device_uuid"`
	RoomID     string    `json:"room_id"`
	Role       string    `json:"role"`
	TeamID     string    `json:"team_id,omitempty"`
	PlayerID   string    `json:"player_id,omitempty"`
	LinkedAt   time.Time `json:"linked_at"`
}
