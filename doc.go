// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Intesa Vincente API server.

Intesa Vincente is a turn-based party word-guessing game for two teams,
coordinated across multiple devices via a shared 6-character room code. On
each turn, clue-giving players see the secret word and feed one-word clues;
their guesser can halt the clock to answer or skip the word. The server
owns the shared room state, runs the turn clock, and enforces the
role-gated turn protocol; devices poll room state to re-render.

# Starting the Server

The server runs on a local sqlite file out of the box:

	go run .

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3419 -t sqlite -d "file:intesa.db"

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 3419)
  - DATABASE_URL (-d): connection string (default: file:intesa.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - WORD_LIST_PATH (-w): newline-delimited word file replacing the
    built-in vocabulary

A .env file is loaded when present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - game: pure state machine and turn policy (the core of the system)
  - words: pseudo-random word source
  - store: keyed persistence for the room and device roles
  - timer: cancellable one-second turn countdown
  - handlers: HTTP request handlers (rooms, play, devices)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: domain and request/response types
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
