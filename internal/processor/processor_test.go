package processor

import (
	"testing"

	"checkers/internal/bot"
	"checkers/internal/core"
	"checkers/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProcessor() *Processor {
	return New(service.New(), bot.NewRandom(42))
}

func createGame(t *testing.T, p *Processor, req core.CreateGameRequest) core.GameResponse {
	t.Helper()
	resp := p.Execute(NewCreateGameCommand(req))
	require.True(t, resp.Success, "create failed: %+v", resp.Error)
	return resp.Data.(core.GameResponse)
}

func move(p *Processor, id, text string) ProcessorResponse {
	return p.Execute(NewMakeMoveCommand(id, core.MoveRequest{Move: text}))
}

func humanVsComputer() core.CreateGameRequest {
	return core.CreateGameRequest{
		White: core.PlayerConfig{Type: core.PlayerHuman},
		Black: core.PlayerConfig{Type: core.PlayerComputer},
	}
}

func TestCreateAndPlay(t *testing.T) {
	p := newProcessor()
	g := createGame(t, p, humanVsComputer())

	assert.Equal(t, "w", g.Turn)
	assert.Equal(t, 1, g.Round)
	assert.Equal(t, "ongoing", g.State)
	assert.Empty(t, g.Moves)
	assert.Equal(t, core.PlayerHuman, g.Players.White.Type)

	resp := move(p, g.GameID, "3 6 4 5")
	require.True(t, resp.Success, "%+v", resp.Error)
	after := resp.Data.(core.GameResponse)
	assert.Equal(t, "b", after.Turn)
	assert.Equal(t, 2, after.Round)
	require.NotNil(t, after.LastMove)
	assert.Equal(t, "white man", after.LastMove.Kind)
	assert.Equal(t, "w", after.LastMove.PlayerColor)

	resp = move(p, g.GameID, "3 6 4 5")
	require.False(t, resp.Success)
	assert.Equal(t, core.ErrNotHumanTurn, resp.Error.Code)

	resp = move(p, g.GameID, BotMove)
	require.True(t, resp.Success, "%+v", resp.Error)
	after = resp.Data.(core.GameResponse)
	assert.Equal(t, "w", after.Turn)
	assert.Equal(t, 3, after.Round)
	assert.Len(t, after.Moves, 2)

	resp = move(p, g.GameID, BotMove)
	require.False(t, resp.Success)
	assert.Equal(t, core.ErrNotHumanTurn, resp.Error.Code)
}

func TestRejectedMoves(t *testing.T) {
	p := newProcessor()
	g := createGame(t, p, humanVsComputer())

	tests := []struct {
		move string
		code string
	}{
		{"3 6 3 5", core.ErrInvalidMove},
		{"c6 d5", core.ErrInvalidMove},
		{"3 6\x00 4 5", core.ErrInvalidMove},
	}
	for _, tt := range tests {
		resp := move(p, g.GameID, tt.move)
		require.False(t, resp.Success, "move %q", tt.move)
		assert.Equal(t, tt.code, resp.Error.Code, "move %q", tt.move)
	}

	resp := move(p, g.GameID, "3 6 3 5")
	assert.Contains(t, resp.Error.Details, "move is not diagonal")

	resp = move(p, "no-such-game", "3 6 4 5")
	assert.Equal(t, core.ErrGameNotFound, resp.Error.Code)
}

func TestCreateFromPosition(t *testing.T) {
	p := newProcessor()
	req := humanVsComputer()
	req.Position = "......../......../......../......../....x.../..o...../......../........"

	resp := p.Execute(NewCreateGameCommand(req))
	require.False(t, resp.Success, "x on a light square")
	assert.Equal(t, core.ErrInvalidPosition, resp.Error.Code)

	req.Position = "......../......../......../......../...x..../..o...../......../o......."
	g := createGame(t, p, req)
	assert.Equal(t, 11, g.WhiteCaptures)
	assert.Equal(t, 10, g.BlackCaptures)

	resp = move(p, g.GameID, "3 6 5 4")
	require.True(t, resp.Success, "%+v", resp.Error)
	after := resp.Data.(core.GameResponse)
	assert.Equal(t, "white wins", after.State)
	assert.Equal(t, 12, after.WhiteCaptures)
	assert.Equal(t, "4 5", after.LastMove.Captured)

	resp = move(p, g.GameID, BotMove)
	require.False(t, resp.Success)
	assert.Equal(t, core.ErrGameOver, resp.Error.Code)
}

func TestComputerWithoutMoves(t *testing.T) {
	p := newProcessor()
	req := core.CreateGameRequest{
		White: core.PlayerConfig{Type: core.PlayerComputer},
		Black: core.PlayerConfig{Type: core.PlayerComputer},
		// white man stuck on row 0 behind nothing
		Position: ".o....../......../......../......../......../......../......../x.......",
	}
	g := createGame(t, p, req)

	resp := move(p, g.GameID, BotMove)
	require.False(t, resp.Success)
	assert.Equal(t, core.ErrNoLegalMoves, resp.Error.Code)
}

func TestBoardAndDelete(t *testing.T) {
	p := newProcessor()
	g := createGame(t, p, humanVsComputer())

	resp := p.Execute(NewGetBoardCommand(g.GameID))
	require.True(t, resp.Success)
	b := resp.Data.(core.BoardResponse)
	assert.Equal(t, g.Position, b.Position)
	assert.Contains(t, b.Board, "  1 2 3 4 5 6 7 8 ")

	resp = p.Execute(NewGetGameCommand(g.GameID))
	require.True(t, resp.Success)

	resp = p.Execute(NewDeleteGameCommand(g.GameID))
	require.True(t, resp.Success)

	resp = p.Execute(NewGetGameCommand(g.GameID))
	require.False(t, resp.Success)
	assert.Equal(t, core.ErrGameNotFound, resp.Error.Code)
}

func TestCreateWithBlackToMove(t *testing.T) {
	p := newProcessor()
	req := core.CreateGameRequest{
		White:    core.PlayerConfig{Type: core.PlayerComputer},
		Black:    core.PlayerConfig{Type: core.PlayerHuman},
		Position: "......../......../.x....../..o...../......../......../......../........",
		Turn:     "b",
	}
	g := createGame(t, p, req)
	assert.Equal(t, "b", g.Turn)
	assert.Equal(t, 2, g.Round)
	assert.Equal(t, 11, g.BlackCaptures)

	resp := move(p, g.GameID, "2 3 4 5")
	require.True(t, resp.Success, "%+v", resp.Error)
	assert.Equal(t, "black wins", resp.Data.(core.GameResponse).State)
}

func TestCreateRejectsBadPositions(t *testing.T) {
	p := newProcessor()

	req := humanVsComputer()
	req.Position = "......../......../......../......../......../......../......../........"
	resp := p.Execute(NewCreateGameCommand(req))
	require.False(t, resp.Success)
	assert.Equal(t, core.ErrInvalidPosition, resp.Error.Code)

	req = humanVsComputer()
	req.Turn = "b"
	resp = p.Execute(NewCreateGameCommand(req))
	require.False(t, resp.Success)
	assert.Equal(t, core.ErrInvalidRequest, resp.Error.Code)
}
