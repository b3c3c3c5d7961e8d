// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import "errors"

var (
	// ErrConfiguration rejects room creation with an invalid team or
	// player setup. Surfaced to the user; creation is blocked.
	ErrConfiguration = errors.New("invalid room configuration")

	// ErrRoomNotFound rejects a join with an unknown or mismatched code.
	// Surfaced to the user; no state change.
	ErrRoomNotFound = errors.New("room not found")

	// ErrInvalidState rejects an action dispatched outside its valid
	// state, e.g. a player response without a pending stop. The prior
	// room is left intact.
	ErrInvalidState = errors.New("action not valid in current state")
)
