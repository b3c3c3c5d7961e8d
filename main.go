package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/intesa-vincente/cliparse"
	"github.com/danielhkuo/intesa-vincente/db"
	"github.com/danielhkuo/intesa-vincente/game"
	"github.com/danielhkuo/intesa-vincente/middleware"
	"github.com/danielhkuo/intesa-vincente/router"
	"github.com/danielhkuo/intesa-vincente/store"
	"github.com/danielhkuo/intesa-vincente/timer"
	"github.com/danielhkuo/intesa-vincente/words"
)

func main() {
	var err error

	// Load .env if present, then parse configuration
	_ = godotenv.Load()
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database (sqlite by default, postgres via -t)
	dbConn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Word source: built-in vocabulary unless a file is given
	wordList := words.Default(nil)
	if cfg.WordListPath != "" {
		wordList, err = words.Load(cfg.WordListPath, nil)
		if err != nil {
			slog.Error("word list load failed", "path", cfg.WordListPath, "error", err)
			os.Exit(1)
		}
		slog.Info("Word list loaded", "path", cfg.WordListPath, "words", wordList.Len())
	}

	// Game engine, turn clock, store, router
	eng := game.NewEngine(wordList, nil)
	clock := timer.NewClock(nil)
	st := store.New(dbConn)
	mux := router.NewRouter(st, eng, clock)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		clock.Stop()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
