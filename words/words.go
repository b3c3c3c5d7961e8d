// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package words

import (
	"errors"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"
)

// ErrEmptyList means a word file parsed to nothing usable.
var ErrEmptyList = errors.New("word list empty after parsing")

// List is a thread-safe word source drawing pseudo-randomly from a fixed
// vocabulary. The RNG is injected so tests can seed it and assert exact
// draws.
type List struct {
	mu    sync.Mutex
	rng   *rand.Rand
	words []string
}

// Default returns a list backed by the built-in vocabulary. A nil rng falls
// back to a time-seeded source.
func Default(rng *rand.Rand) *List {
	return newList(defaultWords, rng)
}

// Load reads a newline-delimited word file. Blank lines are skipped and
// words are uppercased to match the built-in vocabulary.
func Load(path string, rng *rand.Rand) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ws []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			ws = append(ws, strings.ToUpper(line))
		}
	}
	if len(ws) == 0 {
		return nil, ErrEmptyList
	}
	return newList(ws, rng), nil
}

func newList(ws []string, rng *rand.Rand) *List {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &List{rng: rng, words: ws}
}

// Draw returns a pseudo-random word. Consecutive draws may repeat; the game
// only requires that a fresh draw happened, not uniqueness.
func (l *List) Draw() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.words[l.rng.Intn(len(l.words))]
}

// Len returns the vocabulary size.
func (l *List) Len() int {
	return len(l.words)
}

// Contains reports whether w is in the vocabulary.
func (l *List) Contains(w string) bool {
	for _, x := range l.words {
		if x == w {
			return true
		}
	}
	return false
}

// defaultWords is the stock Italian vocabulary the game shipped with.
var defaultWords = []string{
	"CASA", "MARE", "SOLE", "LUNA", "FIORE", "ALBERO", "STRADA", "PONTE", "FIUME", "MONTAGNA",
	"LIBRO", "MUSICA", "DANZA", "TEATRO", "CINEMA", "ARTE", "COLORE", "PENNELLO", "QUADRO", "SCULTURA",
	"CUCINA", "PIZZA", "PASTA", "GELATO", "CAFFÈ", "VINO", "PANE", "FORMAGGIO", "OLIO", "POMODORO",
	"FAMIGLIA", "AMICO", "AMORE", "FELICITÀ", "SORRISO", "ABBRACCIO", "BACIO", "CUORE", "EMOZIONE", "GIOIA",
	"VIAGGIO", "VACANZA", "AEREO", "TRENO", "MACCHINA", "BICICLETTA", "MAPPA", "VALIGIA", "HOTEL", "SPIAGGIA",
}
