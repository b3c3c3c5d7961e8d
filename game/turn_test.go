package game

import (
	"testing"

	"github.com/danielhkuo/intesa-vincente/models"
)

func TestOnTimeExpiredHandoff(t *testing.T) {
	e := newTestEngine("CASA", "MARE", "SOLE")
	room := e.StartGame(mustCreate(t, e))
	room.GameState.PassesUsed = 3
	room.GameState.TimeLeft = 0

	next, outcome := e.OnTimeExpired(room)
	if outcome != Handoff {
		t.Fatalf("expected Handoff, got %v", outcome)
	}
	gs := next.GameState
	if gs.CurrentTeam != 1 {
		t.Errorf("expected team 1 up next, got %d", gs.CurrentTeam)
	}
	if gs.TurnsPlayed != 1 {
		t.Errorf("expected 1 turn played, got %d", gs.TurnsPlayed)
	}
	if gs.PassesUsed != 0 {
		t.Errorf("expected fresh pass budget, got %d", gs.PassesUsed)
	}
	if gs.TimeLeft != room.Config.TimeLimit {
		t.Errorf("expected full clock %d, got %d", room.Config.TimeLimit, gs.TimeLeft)
	}
	if gs.CurrentWord == room.GameState.CurrentWord {
		t.Error("expected a fresh word on handoff")
	}
	if !gs.IsActive || gs.IsGameOver {
		t.Error("handoff must leave the game running")
	}
}

func TestOnTimeExpiredRoundComplete(t *testing.T) {
	e := newTestEngine()
	room := e.StartGame(mustCreate(t, e))
	room.Teams[0].Score = 4
	room.Teams[1].Score = 6

	first, outcome := e.OnTimeExpired(room)
	if outcome != Handoff {
		t.Fatalf("expected Handoff after the first turn, got %v", outcome)
	}

	final, outcome := e.OnTimeExpired(first)
	if outcome != RoundComplete {
		t.Fatalf("expected RoundComplete after the last turn, got %v", outcome)
	}
	gs := final.GameState
	if gs.IsActive || !gs.IsGameOver {
		t.Errorf("expected game over, got active=%v over=%v", gs.IsActive, gs.IsGameOver)
	}
	if gs.TimeLeft != 0 {
		t.Errorf("expected timeLeft 0, got %d", gs.TimeLeft)
	}
	if gs.Winner == nil || gs.Winner.Name != "Squadra 2" {
		t.Errorf("expected Squadra 2 to win, got %+v", gs.Winner)
	}
}

func TestOnTimeExpiredThreeTeamRotation(t *testing.T) {
	e := newTestEngine()
	teams := validTeams()
	teams = append(teams, models.Team{
		ID:   "team3",
		Name: "Squadra 3",
		Players: []models.Player{
			{ID: "p7", Name: "Giulia", Role: models.RolePlayer},
			{ID: "p8", Name: "Marco", Role: models.RoleGuesser},
		},
	})
	room, err := e.CreateRoom(validConfig(), teams)
	if err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}
	room = e.StartGame(room)

	var outcome TurnOutcome
	for i := 0; i < 2; i++ {
		room, outcome = e.OnTimeExpired(room)
		if outcome != Handoff {
			t.Fatalf("turn %d: expected Handoff, got %v", i, outcome)
		}
		if room.GameState.CurrentTeam != i+1 {
			t.Fatalf("turn %d: expected team %d up, got %d", i, i+1, room.GameState.CurrentTeam)
		}
	}
	room, outcome = e.OnTimeExpired(room)
	if outcome != RoundComplete {
		t.Fatalf("expected RoundComplete after all three turns, got %v", outcome)
	}
	if !room.GameState.IsGameOver {
		t.Error("expected game over")
	}
}

func TestOnTimeExpiredGameOverNoop(t *testing.T) {
	e := newTestEngine()
	room := mustCreate(t, e)
	room.GameState.IsGameOver = true

	next, outcome := e.OnTimeExpired(room)
	if next != room {
		t.Error("expected finished game to be left alone")
	}
	if outcome != RoundComplete {
		t.Errorf("expected RoundComplete, got %v", outcome)
	}
}

func TestDetermineWinner(t *testing.T) {
	team := func(name string, score, passes int) models.Team {
		return models.Team{Name: name, Score: score, TotalPasses: passes}
	}

	tests := []struct {
		name  string
		teams []models.Team
		want  string
	}{
		{"higher score wins", []models.Team{team("A", 3, 0), team("B", 7, 9)}, "B"},
		{"score beats thrift", []models.Team{team("A", 7, 9), team("B", 3, 0)}, "A"},
		{"tie broken by fewer passes", []models.Team{team("A", 5, 3), team("B", 5, 2)}, "B"},
		{"tie with equal passes goes to the first team", []models.Team{team("A", 5, 2), team("B", 5, 2)}, "A"},
		{"three-way tie on everything", []models.Team{team("A", 2, 1), team("B", 2, 1), team("C", 2, 1)}, "A"},
		{"later team with fewer passes takes a three-way tie", []models.Team{team("A", 2, 4), team("B", 2, 3), team("C", 2, 5)}, "B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineWinner(tt.teams); got.Name != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got.Name)
			}
		})
	}
}

// TestTurnScenario walks the canonical scoring sequence: two passes, a stop,
// and a correct answer, with a pass cap of 2.
func TestTurnScenario(t *testing.T) {
	e := newTestEngine("UNO", "DUE", "TRE", "QUATTRO")
	cfg := validConfig()
	cfg.MaxPasses = 2
	room, err := e.CreateRoom(cfg, validTeams())
	if err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}
	room = e.StartGame(room)

	room = e.GuesserAction(room, models.ActionPass)
	room = e.GuesserAction(room, models.ActionPass)

	// Third pass exceeds the cap and must be dropped
	if after := e.GuesserAction(room, models.ActionPass); after != room {
		t.Fatal("expected third pass to be a no-op at the cap")
	}

	room = e.GuesserAction(room, models.ActionStop)
	room, err = e.PlayerResponse(room, true)
	if err != nil {
		t.Fatalf("PlayerResponse failed: %v", err)
	}

	if got := room.Teams[0].Score; got != 1 {
		t.Errorf("expected score 1, got %d", got)
	}
	if got := room.GameState.PassesUsed; got != 2 {
		t.Errorf("expected 2 passes used, got %d", got)
	}
	history := room.GameState.WordHistory
	if len(history) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(history))
	}
	wantResults := []string{models.ResultPassed, models.ResultPassed, models.ResultCorrect}
	wantWords := []string{"UNO", "DUE", "TRE"}
	for i, entry := range history {
		if entry.Result != wantResults[i] {
			t.Errorf("entry %d: expected result %q, got %q", i, wantResults[i], entry.Result)
		}
		if entry.Word != wantWords[i] {
			t.Errorf("entry %d: expected word %q, got %q", i, wantWords[i], entry.Word)
		}
		if entry.Team != 0 {
			t.Errorf("entry %d: expected team 0, got %d", i, entry.Team)
		}
	}
}

func TestRoomCodeDeterministic(t *testing.T) {
	a := newTestEngine()
	b := newTestEngine()
	ra := mustCreate(t, a)
	rb := mustCreate(t, b)
	if ra.ID != rb.ID {
		t.Errorf("same seed should yield same code, got %q and %q", ra.ID, rb.ID)
	}
}
