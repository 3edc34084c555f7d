package service

import (
	"errors"
	"testing"

	"checkers/internal/core"
	"checkers/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seats() (*core.Player, *core.Player) {
	return core.NewPlayer(core.PlayerConfig{Type: core.PlayerHuman}, core.ColorWhite),
		core.NewPlayer(core.PlayerConfig{Type: core.PlayerComputer}, core.ColorBlack)
}

func TestGameLifecycle(t *testing.T) {
	svc := New()
	white, black := seats()

	id := svc.GenerateGameID()
	require.NoError(t, svc.CreateGame(id, game.New(), white, black))
	assert.Error(t, svc.CreateGame(id, game.New(), white, black), "duplicate id")
	assert.Equal(t, 1, svc.GameCount())

	err := svc.WithGame(id, func(m *Match) error {
		assert.Equal(t, white, m.NextPlayer())
		_, err := m.Game.Play(m.Game.View().LegalMoves()[0])
		return err
	})
	require.NoError(t, err)

	err = svc.WithGame(id, func(m *Match) error {
		assert.Equal(t, black, m.NextPlayer())
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGame(id))
	assert.ErrorIs(t, svc.DeleteGame(id), ErrGameNotFound)
	assert.ErrorIs(t, svc.WithGame(id, func(*Match) error { return nil }), ErrGameNotFound)
}

func TestWithGameReturnsCallbackError(t *testing.T) {
	svc := New()
	white, black := seats()
	id := svc.GenerateGameID()
	require.NoError(t, svc.CreateGame(id, game.New(), white, black))

	boom := errors.New("boom")
	assert.ErrorIs(t, svc.WithGame(id, func(*Match) error { return boom }), boom)
}

func TestGameLimit(t *testing.T) {
	svc := New()
	white, black := seats()
	for i := 0; i < MaxGames; i++ {
		require.NoError(t, svc.CreateGame(svc.GenerateGameID(), game.New(), white, black))
	}
	assert.ErrorIs(t, svc.CreateGame(svc.GenerateGameID(), game.New(), white, black), ErrTooManyGames)

	svc.Shutdown()
	assert.Zero(t, svc.GameCount())
}
