// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type CreateRoomRequest struct {
	Config GameConfig `json:"config"`
	Teams  []Team     `json:"teams"`
}

type JoinRoomRequest struct {
	Role     string `json:"role"`
	TeamID   string `json:"team_id,omitempty"`
	PlayerID string `json:"player_id,omitempty"`
}

type GuesserActionRequest struct {
	Action string `json:"action"`
}

type PlayerResponseRequest struct {
	Correct bool `json:"correct"`
}

type RegisterDeviceRequest struct {
	Platform string `json:"platform"`
}

// Response types

type CreateRoomResponse struct {
	RoomID string `json:"room_id"`
	Room   *Room  `json:"room"`
}

type JoinRoomResponse struct {
	Room *Room  `json:"room"`
	Role string `json:"role"`
}

type RoomStateResponse struct {
	Room *Room `json:"room"`
	// CreatedAgo is a humanized room age, e.g. "4 minutes ago".
	CreatedAgo string `json:"created_ago,omitempty"`
}

type WordHistoryResponse struct {
	Entries []WordEntry `json:"entries"`
}

type RegisterDeviceResponse struct {
	DeviceID string `json:"device_id"`
	IsNew    bool   `json:"is_new"`
}

type DeviceInfo struct {
	ID         string    `json:"id"`
	Platform   string    `json:"platform"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
	// LastSeen is the humanized form of LastSeenAt.
	LastSeen string      `json:"last_seen"`
	Role     *DeviceRole `json:"role,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
