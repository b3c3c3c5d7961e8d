// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/intesa-vincente/models"
)

// roomKey is the fixed key the live room is stored under, matching the key
// the original client used in its local store.
const roomKey = "gameRoom"

// Store is the keyed persistence port for the room and the device-role
// markers. There is at most one live room; reads and writes carry no
// cross-device transactional guarantee (last write wins).
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// GetRoom reads the live room. Absent or malformed stored data is treated
// as "no room" and returns (nil, nil).
func (s *Store) GetRoom() (*models.Room, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM room WHERE key = $1`, roomKey).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var room models.Room
	if err := json.Unmarshal([]byte(payload), &room); err != nil || room.ID == "" {
		slog.Warn("discarding malformed room payload", "error", err)
		return nil, nil
	}
	return &room, nil
}

// PutRoom writes the live room, replacing whatever was there.
func (s *Store) PutRoom(room *models.Room) error {
	payload, err := json.Marshal(room)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO room (key, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at
	`, roomKey, string(payload), time.Now())
	return err
}

// DeleteRoom discards the live room.
func (s *Store) DeleteRoom() error {
	_, err := s.db.Exec(`DELETE FROM room WHERE key = $1`, roomKey)
	return err
}

// PutDeviceRole binds a device to a role (and optionally a team and player)
// for the given room. Re-joining overwrites the previous binding.
func (s *Store) PutDeviceRole(dr models.DeviceRole) error {
	_, err := s.db.Exec(`
		INSERT INTO device_role (device_uuid, room_id, role, team_id, player_id, linked_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (device_uuid) DO UPDATE SET
			room_id = EXCLUDED.room_id,
			role = EXCLUDED.role,
			team_id = EXCLUDED.team_id,
			player_id = EXCLUDED.player_id,
			linked_at = EXCLUDED.linked_at
	`, dr.DeviceUUID, dr.RoomID, dr.Role, dr.TeamID, dr.PlayerID, dr.LinkedAt)
	return err
}

// GetDeviceRole reads a device's role marker, (nil, nil) when absent.
func (s *Store) GetDeviceRole(deviceUUID string) (*models.DeviceRole, error) {
	var dr models.DeviceRole
	var teamID, playerID sql.NullString
	err := s.db.QueryRow(`
		SELECT device_uuid, room_id, role, team_id, player_id, linked_at
		FROM device_role
		WHERE device_uuid = $1
	`, deviceUUID).Scan(&dr.DeviceUUID, &dr.RoomID, &dr.Role, &teamID, &playerID, &dr.LinkedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	dr.TeamID = teamID.String
	dr.PlayerID = playerID.String
	return &dr, nil
}

// DeleteDeviceRoles clears every device-role marker. Used on game reset so
// subsequent reads observe both an absent room and an absent role.
func (s *Store) DeleteDeviceRoles() error {
	_, err := s.db.Exec(`DELETE FROM device_role`)
	return err
}

// RegisterDevice looks up or creates a device record, refreshing
// last_seen_at either way.
func (s *Store) RegisterDevice(deviceUUID, platform string) (string, bool, error) {
	var id string
	err := s.db.QueryRow(`SELECT id FROM device WHERE device_uuid = $1`, deviceUUID).Scan(&id)
	if err == nil {
		if _, err := s.db.Exec(`UPDATE device SET last_seen_at = $1 WHERE id = $2`, time.Now(), id); err != nil {
			slog.Error("failed to update device last_seen_at", "error", err)
		}
		return id, false, nil
	}
	if err != sql.ErrNoRows {
		return "", false, err
	}

	id = uuid.NewString()
	now := time.Now()
	_, err = s.db.Exec(`
		INSERT INTO device (id, device_uuid, platform, created_at, last_seen_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, deviceUUID, platform, now, now)
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

// GetDevice reads a registered device, (nil, nil) when unknown.
func (s *Store) GetDevice(deviceUUID string) (*models.DeviceInfo, error) {
	var d models.DeviceInfo
	err := s.db.QueryRow(`
		SELECT id, platform, created_at, last_seen_at
		FROM device
		WHERE device_uuid = $1
	`, deviceUUID).Scan(&d.ID, &d.Platform, &d.CreatedAt, &d.LastSeenAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}
