// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import "github.com/danielhkuo/intesa-vincente/models"

// TurnOutcome is what happened when a turn's clock ran out.
type TurnOutcome int

const (
	_ TurnOutcome = iota
	// Handoff means play moved to the next team in rotation.
	Handoff
	// RoundComplete means every team has played its turn and the match
	// ended.
	RoundComplete
)

// String returns the display value for the outcome.
func (o TurnOutcome) String() string {
	switch o {
	case Handoff:
		return "handoff"
	case RoundComplete:
		return "round complete"
	}
	return "?"
}

// OnTimeExpired decides what happens when the turn clock reaches zero.
// Round completion is tracked by a counter of turns played, not by the
// team index, so rotation works for any number of teams. On handoff the
// next team starts with a fresh pass budget, a full clock, and a new word;
// on round completion the match ends and the winner is computed.
func (e *Engine) OnTimeExpired(room *models.Room) (*models.Room, TurnOutcome) {
	if room == nil || room.GameState.IsGameOver {
		return room, RoundComplete
	}

	next := room.Clone()
	next.GameState.TurnsPlayed++
	next.GameState.IsPaused = false
	next.GameState.WaitingForResponse = false

	if next.GameState.TurnsPlayed >= len(next.Teams) {
		winner := DetermineWinner(next.Teams)
		next.GameState.IsActive = false
		next.GameState.IsGameOver = true
		next.GameState.TimeLeft = 0
		next.GameState.Winner = &winner
		return next, RoundComplete
	}

	next.GameState.CurrentTeam = (next.GameState.CurrentTeam + 1) % len(next.Teams)
	next.GameState.PassesUsed = 0
	next.GameState.TimeLeft = next.Config.TimeLimit
	next.GameState.CurrentWord = e.words.Draw()
	return next, Handoff
}

// DetermineWinner picks the team with the highest score. On a score tie the
// earlier team keeps the win unless a later team used strictly fewer
// passes; with two teams this means team 0 wins ties when pass counts are
// equal.
func DetermineWinner(teams []models.Team) models.Team {
	best := teams[0]
	for _, t := range teams[1:] {
		if t.Score > best.Score || (t.Score == best.Score && t.TotalPasses < best.TotalPasses) {
			best = t
		}
	}
	best.Players = append([]models.Player(nil), best.Players...)
	return best
}
