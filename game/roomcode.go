// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

// Room codes are short enough to read aloud across the table. Collisions
// are not checked: the store holds a single live room at a time.
const (
	roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	roomCodeLength   = 6
)

func (e *Engine) newRoomCode() string {
	b := make([]byte, roomCodeLength)
	for i := range b {
		b[i] = roomCodeAlphabet[e.rng.Intn(len(roomCodeAlphabet))]
	}
	return string(b)
}
