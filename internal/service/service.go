package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"checkers/internal/core"
	"checkers/internal/game"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	MaxGames = 100
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrTooManyGames = errors.New("too many active games")
)

// Match is a hosted game together with its seats
type Match struct {
	Game       *game.Game
	Players    map[core.Color]*core.Player
	LastResult *game.Outcome
	CreatedAt  time.Time
}

// NextPlayer returns the seat whose turn it is
func (m *Match) NextPlayer() *core.Player {
	return m.Players[m.Game.Turn()]
}

// Service keeps hosted games in memory
type Service struct {
	games map[string]*Match
	mu    sync.RWMutex
}

func New() *Service {
	return &Service{
		games: make(map[string]*Match),
	}
}

// GenerateGameID creates a new unique game ID
func (s *Service) GenerateGameID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// CreateGame registers a game with pre-constructed players
func (s *Service) CreateGame(id string, g *game.Game, whitePlayer, blackPlayer *core.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; exists {
		return fmt.Errorf("game %s already exists", id)
	}
	if len(s.games) >= MaxGames {
		return ErrTooManyGames
	}

	s.games[id] = &Match{
		Game: g,
		Players: map[core.Color]*core.Player{
			core.ColorWhite: whitePlayer,
			core.ColorBlack: blackPlayer,
		},
		CreatedAt: time.Now().UTC(),
	}
	logrus.WithField("game", id).Info("game created")
	return nil
}

// WithGame runs fn with exclusive access to the match
func (s *Service) WithGame(id string, fn func(*Match) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.games[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return fn(m)
}

// DeleteGame removes a game
func (s *Service) DeleteGame(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(s.games, id)
	logrus.WithField("game", id).Info("game deleted")
	return nil
}

// GameCount returns the number of hosted games
func (s *Service) GameCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// Shutdown drops all hosted games
func (s *Service) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	logrus.WithField("games", len(s.games)).Info("service shutting down")
	s.games = make(map[string]*Match)
}
