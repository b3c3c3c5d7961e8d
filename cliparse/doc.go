// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3419)
  - DatabaseURL: Database connection string (default: file:intesa.db)
  - DatabaseType: "sqlite" (default) or "postgres"
  - WordListPath: optional path to a newline-delimited word list

# CLI Flags

	-p  Server port
	-d  Database URL
	-t  Database type
	-w  Word list path

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	WORD_LIST_PATH → -w

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DatabaseType must be sqlite or postgres
  - DATABASE_URL must be provided when DatabaseType is postgres
    (sqlite falls back to a local file)
*/
package cliparse
