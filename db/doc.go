// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package db creates the database schema: the fixed-key room row, the
// device registry, and the per-device role markers.
package db
