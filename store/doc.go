// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the shared room and device-role markers behind a
narrow keyed get/put/delete port.

The room is a JSON payload under one fixed key: devices coordinate by
writing the room after each action and re-reading it to render, exactly the
write-then-poll contract the game was designed around. The port makes that
contract explicit so a future transport (a push channel, a host-authoritative
protocol with a version counter) can replace the table without touching the
game engine. Until then there is no concurrent-write arbitration: the last
writer wins.

Malformed or absent stored data always reads as "no room".
*/
package store
