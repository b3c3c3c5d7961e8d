// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

Internal data structures shared by the game engine, store, and handlers:

  - Room: the single shared session aggregate for one match
  - Team: name, ordered players, score, total passes
  - Player: id, name, role (player or guesser)
  - GameConfig: difficulty, max passes, time limit — immutable after creation
  - GameState: turn pointer, current word, clock, pause flags, word history
  - WordEntry: append-only audit record of each resolved word
  - DeviceRole: per-device role marker bound to a team and player

Domain types serialize with camelCase JSON field names so a stored room
payload matches the format the original client used.

# Request Types

Types for parsing incoming JSON:

  - CreateRoomRequest: config, teams
  - JoinRoomRequest: role, team_id, player_id
  - GuesserActionRequest: action ("stop" or "pass")
  - PlayerResponseRequest: correct
  - RegisterDeviceRequest: platform

# Response Types

Types for JSON responses:

  - CreateRoomResponse: room_id, room
  - JoinRoomResponse: room, role
  - RoomStateResponse: room, created_ago
  - WordHistoryResponse: entries
  - RegisterDeviceResponse: device_id, is_new
  - DeviceInfo: id, platform, timestamps, role
  - ErrorResponse: error, message

# Constants

Roles:

	RolePlayer  = "player"
	RoleGuesser = "guesser"

Difficulty:

	DifficultyEasy = "easy"
	DifficultyHard = "hard"

Word results:

	ResultCorrect = "correct"
	ResultPassed  = "passed"
	ResultWrong   = "wrong"

Guesser actions:

	ActionStop = "stop"
	ActionPass = "pass"

Platforms:

	PlatformIOS     = "ios"
	PlatformMacOS   = "macos"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
*/
package models
