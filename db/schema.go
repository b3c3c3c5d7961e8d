// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are set by the application so the schema stays portable
// between sqlite and postgres.
const schema = `
-- The single live room, serialized JSON under a fixed key
CREATE TABLE IF NOT EXISTS room (
    key TEXT PRIMARY KEY,
    payload TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

-- Known devices
CREATE TABLE IF NOT EXISTS device (
    id TEXT PRIMARY KEY,
    device_uuid TEXT NOT NULL UNIQUE,
    platform TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    last_seen_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_device_uuid ON device(device_uuid);

-- Per-device role marker for the live room
CREATE TABLE IF NOT EXISTS device_role (
    device_uuid TEXT PRIMARY KEY,
    room_id TEXT NOT NULL,
    role TEXT NOT NULL,
    team_id TEXT,
    player_id TEXT,
    linked_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_device_role_room ON device_role(room_id);
`
