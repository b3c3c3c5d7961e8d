// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Intesa Vincente API.

# Handler Types

Each handler is a struct with store, engine, and session dependencies:

  - RoomHandler: room lifecycle (create, get, join, start, history, reset)
  - PlayHandler: in-turn intents (guesser stop/pass, player response)
  - DeviceHandler: device registration and identity

Handlers are created via constructor functions:

	roomHandler := handlers.NewRoomHandler(session, st, eng)

# Session

All room mutations flow through a shared Session, which serializes
load-transition-persist sequences and keeps the turn clock in sync with the
persisted state: the countdown runs exactly while the game is active,
unpaused, and not over. Timer ticks and turn expiry take the same path as
handler mutations.

# Game Flow

	POST   /rooms                     → Create (returns the room code)
	POST   /rooms/{id}/join           → Join (role, optional team binding)
	POST   /rooms/{id}/start          → Start (clock begins)
	POST   /rooms/{id}/guesser-action → GuesserAction (stop | pass)
	POST   /rooms/{id}/response       → PlayerResponse (correct | wrong)
	GET    /rooms/{id}                → Get (devices poll to re-render)
	GET    /rooms/{id}/history        → History (word audit log)
	DELETE /rooms/{id}                → Reset

# Role Gating

guesser-action requires the caller's stored device role to be "guesser";
response requires "player". Roles are bound per device at create/join time
via the X-Device-UUID header.

# Device Tracking

	POST /devices/register → Register
	GET  /devices/me       → GetMe

Device operations require the X-Device-UUID header.
*/
package handlers
