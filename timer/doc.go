// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package timer runs the one-second turn countdown. The tick source is
// injected so tests drive the clock deterministically, and Stop is
// synchronous: once it returns, no further tick or expiry callback fires.
package timer
