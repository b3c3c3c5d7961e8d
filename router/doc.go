// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Intesa Vincente API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, eng, clock)

# Endpoints

Health:

	GET /health

Room lifecycle:

	POST   /rooms              - Create room (returns 6-character code)
	GET    /rooms/{id}         - Room state (devices poll this)
	POST   /rooms/{id}/join    - Join with a role
	POST   /rooms/{id}/start   - Start the game
	GET    /rooms/{id}/history - Word audit log
	DELETE /rooms/{id}         - Reset the game

In-turn intents (role-gated via X-Device-UUID):

	POST /rooms/{id}/guesser-action - Guesser stop or pass
	POST /rooms/{id}/response       - Player judges the guess

Device management:

	POST /devices/register - Register device
	GET  /devices/me       - Get device info and role

# Handler Initialization

The router creates one Session (serialized mutations + turn clock) and the
handler instances with dependency injection:

	session := handlers.NewSession(st, eng, clock)
	roomHandler := handlers.NewRoomHandler(session, st, eng)
	playHandler := handlers.NewPlayHandler(session, st, eng)
	deviceHandler := handlers.NewDeviceHandler(st)
*/
package router
