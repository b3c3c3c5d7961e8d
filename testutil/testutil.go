// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/intesa-vincente/db"
	"github.com/danielhkuo/intesa-vincente/game"
	"github.com/danielhkuo/intesa-vincente/models"
	"github.com/danielhkuo/intesa-vincente/store"
	"github.com/danielhkuo/intesa-vincente/timer"
	"github.com/danielhkuo/intesa-vincente/words"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A single connection keeps every statement on the same in-memory DB
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// NewTestEngine returns an engine with a seeded RNG and the built-in word
// list, so room codes and draws are reproducible.
func NewTestEngine() *game.Engine {
	rng := rand.New(rand.NewSource(1))
	return game.NewEngine(words.Default(rng), rng)
}

// ManualTicker returns a TickerGen driven by the returned channel, and a
// tick func that advances the clock one second.
func ManualTicker() (timer.TickerGen, func()) {
	ch := make(chan time.Time)
	gen := func(time.Duration) (<-chan time.Time, func()) {
		return ch, func() {}
	}
	return gen, func() { ch <- time.Now() }
}

// TestTeams builds a valid two-team setup: two clue-givers and one guesser
// per team.
func TestTeams() []models.Team {
	return []models.Team{
		{
			ID:   "team1",
			Name: "Squadra 1",
			Players: []models.Player{
				{ID: "p1", Name: "Anna", Role: models.RolePlayer},
				{ID: "p2", Name: "Bruno", Role: models.RolePlayer},
				{ID: "p3", Name: "Carla", Role: models.RoleGuesser},
			},
		},
		{
			ID:   "team2",
			Name: "Squadra 2",
			Players: []models.Player{
				{ID: "p4", Name: "Dario", Role: models.RolePlayer},
				{ID: "p5", Name: "Elena", Role: models.RolePlayer},
				{ID: "p6", Name: "Fabio", Role: models.RoleGuesser},
			},
		},
	}
}

// TestConfig returns a standard game configuration.
func TestConfig() models.GameConfig {
	return models.GameConfig{
		Difficulty: models.DifficultyEasy,
		MaxPasses:  5,
		TimeLimit:  60,
	}
}

// CreateTestRoom builds a room via the engine and persists it, returning
// the stored room.
func CreateTestRoom(t *testing.T, st *store.Store, eng *game.Engine, cfg models.GameConfig) *models.Room {
	t.Helper()

	room, err := eng.CreateRoom(cfg, TestTeams())
	if err != nil {
		t.Fatalf("Failed to create test room: %v", err)
	}
	if err := st.PutRoom(room); err != nil {
		t.Fatalf("Failed to persist test room: %v", err)
	}
	return room
}

// LinkTestDevice binds a device to a role for the room.
func LinkTestDevice(t *testing.T, st *store.Store, roomID, deviceUUID, role string) {
	t.Helper()

	err := st.PutDeviceRole(models.DeviceRole{
		DeviceUUID: deviceUUID,
		RoomID:     roomID,
		Role:       role,
		LinkedAt:   time.Now(),
	})
	if err != nil {
		t.Fatalf("Failed to link test device: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
