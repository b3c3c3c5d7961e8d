// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/intesa-vincente/middleware"
	"github.com/danielhkuo/intesa-vincente/models"
	"github.com/danielhkuo/intesa-vincente/store"
)

type DeviceHandler struct {
	store *store.Store
}

func NewDeviceHandler(st *store.Store) *DeviceHandler {
	return &DeviceHandler{store: st}
}

// Register handles POST /devices/register
// Registers a device and returns its device_id (or finds existing)
func (h *DeviceHandler) Register(w http.ResponseWriter, r *http.Request) {
	deviceUUID := middleware.DeviceUUID(r)
	if deviceUUID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Device-UUID header required")
		return
	}

	var req models.RegisterDeviceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !isValidPlatform(req.Platform) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "platform must be one of: ios, macos, android, web")
		return
	}

	deviceID, isNew, err := h.store.RegisterDevice(deviceUUID, req.Platform)
	if err != nil {
		slog.Error("failed to register device", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register device")
		return
	}

	status := http.StatusOK
	if isNew {
		status = http.StatusCreated
	}

	slog.Info("device registered", "device_id", deviceID, "platform", req.Platform, "is_new", isNew)

	middleware.JSONResponse(w, status, models.RegisterDeviceResponse{
		DeviceID: deviceID,
		IsNew:    isNew,
	})
}

// GetMe handles GET /devices/me
// Returns current device info plus its role marker, if any
func (h *DeviceHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	deviceUUID := middleware.DeviceUUID(r)
	if deviceUUID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Device-UUID header required")
		return
	}

	device, err := h.store.GetDevice(deviceUUID)
	if err != nil {
		slog.Error("failed to query device", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if device == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Device not registered")
		return
	}

	device.LastSeen = humanize.Time(device.LastSeenAt)

	role, err := h.store.GetDeviceRole(deviceUUID)
	if err != nil {
		slog.Error("failed to read device role", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	device.Role = role

	middleware.JSONResponse(w, http.StatusOK, *device)
}

func isValidPlatform(platform string) bool {
	switch platform {
	case models.PlatformIOS, models.PlatformMacOS, models.PlatformAndroid, models.PlatformWeb:
		return true
	}
	return false
}
