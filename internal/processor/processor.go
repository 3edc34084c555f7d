package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/game"
	"checkers/internal/rules"
	"checkers/internal/service"

	"github.com/sirupsen/logrus"
)

// BotMove is the move text that asks the computer seat to play its turn
const BotMove = "bot"

// Processor handles command execution between the transport and the games
type Processor struct {
	svc *service.Service
	bot game.Player
}

// New creates a processor; bot plays every computer seat
func New(svc *service.Service, bot game.Player) *Processor {
	return &Processor{
		svc: svc,
		bot: bot,
	}
}

// commandError carries an error code back to the response builder
type commandError struct {
	message string
	code    string
	details string
}

func (e *commandError) Error() string {
	return e.message
}

func (p *Processor) Execute(cmd Command) ProcessorResponse {
	switch cmd.Type {
	case CmdCreateGame:
		return p.handleCreateGame(cmd)
	case CmdGetGame:
		return p.handleGetGame(cmd)
	case CmdMakeMove:
		return p.handleMakeMove(cmd)
	case CmdDeleteGame:
		return p.handleDeleteGame(cmd)
	case CmdGetBoard:
		return p.handleGetBoard(cmd)
	default:
		return p.errorResponse("unknown command", core.ErrInvalidRequest)
	}
}

// isMoveSafe rejects control characters before the move reaches the parser
func (p *Processor) isMoveSafe(move string) bool {
	for _, r := range move {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// handleCreateGame creates a new game from the standard or a given position
func (p *Processor) handleCreateGame(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.CreateGameRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}

	g := game.New()
	if args.Turn != "" && args.Position == "" {
		return p.errorResponseWithDetails("invalid arguments", core.ErrInvalidRequest, "turn requires a position")
	}
	if args.Position != "" {
		var err error
		if g, err = restorePosition(args.Position, args.Turn); err != nil {
			return p.errorResponseWithDetails("invalid position", core.ErrInvalidPosition, err.Error())
		}
	}

	gameID := p.svc.GenerateGameID()
	whitePlayer := core.NewPlayer(args.White, core.ColorWhite)
	blackPlayer := core.NewPlayer(args.Black, core.ColorBlack)

	if err := p.svc.CreateGame(gameID, g, whitePlayer, blackPlayer); err != nil {
		if errors.Is(err, service.ErrTooManyGames) {
			return p.errorResponse(err.Error(), core.ErrResourceLimit)
		}
		return p.errorResponse(fmt.Sprintf("failed to create game: %v", err), core.ErrInternalError)
	}

	return p.readGame(gameID)
}

// restorePosition derives the capture tallies from the pieces left on board.
// turn picks the side to move, white when empty.
func restorePosition(position, turn string) (*game.Game, error) {
	b, err := board.Parse(position)
	if err != nil {
		return nil, err
	}

	white, black := b.Count(core.ColorWhite), b.Count(core.ColorBlack)
	switch {
	case white > game.WinningCaptures || black > game.WinningCaptures:
		return nil, fmt.Errorf("at most %d pieces per side", game.WinningCaptures)
	case white == 0 && black == 0:
		return nil, fmt.Errorf("position has no pieces")
	}

	round := 1
	if turn != "" {
		side, ok := core.ParseColor(turn)
		if !ok {
			return nil, fmt.Errorf("invalid turn %q", turn)
		}
		if side == core.ColorBlack {
			round = 2
		}
	}
	return game.Restore(b, round, game.WinningCaptures-black, game.WinningCaptures-white)
}

// handleGetGame retrieves game state
func (p *Processor) handleGetGame(cmd Command) ProcessorResponse {
	return p.readGame(cmd.GameID)
}

func (p *Processor) readGame(gameID string) ProcessorResponse {
	var response core.GameResponse
	err := p.svc.WithGame(gameID, func(m *service.Match) error {
		response = p.buildGameResponse(gameID, m)
		return nil
	})
	if err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	return ProcessorResponse{
		Success: true,
		Data:    response,
	}
}

// handleMakeMove applies a human move, or plays a full computer turn when
// the move is BotMove
func (p *Processor) handleMakeMove(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.MoveRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}

	move := strings.ToLower(strings.TrimSpace(args.Move))
	if !p.isMoveSafe(move) {
		return p.errorResponse("invalid move format", core.ErrInvalidMove)
	}

	var response core.GameResponse
	err := p.svc.WithGame(cmd.GameID, func(m *service.Match) error {
		if m.Game.State().IsOver() {
			return &commandError{message: fmt.Sprintf("game is over: %s", m.Game.State()), code: core.ErrGameOver}
		}

		var err error
		if move == BotMove {
			err = p.playComputerTurn(m)
		} else {
			err = p.playHumanMove(m, move)
		}
		if err != nil {
			return err
		}

		response = p.buildGameResponse(cmd.GameID, m)
		return nil
	})

	if err != nil {
		var ce *commandError
		switch {
		case errors.As(err, &ce):
			return p.errorResponseWithDetails(ce.message, ce.code, ce.details)
		case errors.Is(err, service.ErrGameNotFound):
			return p.errorResponse("game not found", core.ErrGameNotFound)
		default:
			logrus.WithField("game", cmd.GameID).Errorf("move failed: %v", err)
			return p.errorResponse(err.Error(), core.ErrInternalError)
		}
	}

	return ProcessorResponse{
		Success: true,
		Data:    response,
	}
}

func (p *Processor) playHumanMove(m *service.Match, text string) error {
	if m.NextPlayer().Type != core.PlayerHuman {
		return &commandError{message: "not human player's turn", code: core.ErrNotHumanTurn}
	}

	mv, err := board.ParseMove(text)
	if err != nil {
		return &commandError{message: "invalid move format", code: core.ErrInvalidMove, details: err.Error()}
	}

	out, err := m.Game.Play(mv)
	if err != nil {
		if errors.Is(err, rules.ErrIllegalMove) {
			return &commandError{message: "illegal move", code: core.ErrInvalidMove, details: err.Error()}
		}
		return err
	}
	m.LastResult = &out
	return nil
}

// playComputerTurn moves until the turn passes, following capture chains
func (p *Processor) playComputerTurn(m *service.Match) error {
	if m.NextPlayer().Type != core.PlayerComputer {
		return &commandError{message: "not computer player's turn", code: core.ErrNotHumanTurn}
	}

	for {
		mv, err := p.bot.ProposeMove(context.Background(), m.Game.View())
		if err != nil {
			return &commandError{message: "computer cannot move", code: core.ErrNoLegalMoves, details: err.Error()}
		}

		out, err := m.Game.Play(mv)
		if err != nil {
			return fmt.Errorf("computer proposed %s: %w", mv, err)
		}
		m.LastResult = &out

		if !out.Continues() {
			return nil
		}
	}
}

// handleDeleteGame removes a game
func (p *Processor) handleDeleteGame(cmd Command) ProcessorResponse {
	if err := p.svc.DeleteGame(cmd.GameID); err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	return ProcessorResponse{
		Success: true,
	}
}

// handleGetBoard returns board visualization
func (p *Processor) handleGetBoard(cmd Command) ProcessorResponse {
	var response core.BoardResponse
	err := p.svc.WithGame(cmd.GameID, func(m *service.Match) error {
		b := m.Game.Board()
		response = core.BoardResponse{
			Position: b.String(),
			Board:    b.ToASCII(),
		}
		return nil
	})
	if err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	return ProcessorResponse{
		Success: true,
		Data:    response,
	}
}

// buildGameResponse constructs standard game response
func (p *Processor) buildGameResponse(gameID string, m *service.Match) core.GameResponse {
	g := m.Game
	b := g.Board()
	resp := core.GameResponse{
		GameID:        gameID,
		Position:      b.String(),
		Turn:          g.Turn().String(),
		Round:         g.Round(),
		State:         g.State().String(),
		WhiteCaptures: g.Captures(core.ColorWhite),
		BlackCaptures: g.Captures(core.ColorBlack),
		Moves:         g.Moves(),
		Players: core.PlayersResponse{
			White: m.Players[core.ColorWhite],
			Black: m.Players[core.ColorBlack],
		},
	}
	if sq, ok := g.Chain(); ok {
		resp.Chain = sq.String()
	}

	if result := m.LastResult; result != nil {
		info := &core.MoveInfo{
			Move:        result.Move.String(),
			PlayerColor: result.Side.String(),
			Kind:        result.Kind.String(),
			Promoted:    result.Effect.Promoted,
		}
		if result.Effect.Captured != nil {
			info.Captured = result.Effect.Captured.String()
		}
		resp.LastMove = info
	}

	return resp
}

// errorResponse creates error response
func (p *Processor) errorResponse(message, code string) ProcessorResponse {
	return p.errorResponseWithDetails(message, code, "")
}

func (p *Processor) errorResponseWithDetails(message, code, details string) ProcessorResponse {
	return ProcessorResponse{
		Success: false,
		Error: &core.ErrorResponse{
			Error:   message,
			Code:    code,
			Details: details,
		},
	}
}
