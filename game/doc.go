// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package game holds the state machine and turn policy for an Intesa Vincente
match.

The Engine is a set of pure transitions over models.Room: each operation
clones the current room, applies the intent, and returns the clone. The
hosting layer persists the result and notifies observers; the engine itself
never touches storage, the network, or a real clock beyond timestamping
history entries.

A single turn moves through:

	Idle -> Active -> (Paused <-> Active) -> turn end

Idle is pre-StartGame. Active is the clock-running state in which a pass is
accepted. Paused is entered only by a guesser stop and exited only by a
player response, which draws a new word. Turn end is driven by the clock via
OnTimeExpired, which either hands play to the next team or completes the
round and computes the winner.

Guarded actions that arrive out of state (a pass over the cap, a stop while
already paused) return the room unchanged: on a shared-state UI the control
was disabled on the device that should not have sent it, so a stale dispatch
is dropped rather than failed.
*/
package game
