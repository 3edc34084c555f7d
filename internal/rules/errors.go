package rules

import (
	"errors"
	"fmt"

	"checkers/internal/board"
)

// ErrIllegalMove is the only error the rules produce
var ErrIllegalMove = errors.New("illegal move")

// IllegalMoveError carries the reason a move was rejected
type IllegalMoveError struct {
	Move   board.Move
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s: %s", e.Move, e.Reason)
}

func (e *IllegalMoveError) Is(target error) bool {
	return target == ErrIllegalMove
}

// Rejection reasons
const (
	reasonOffBoard      = "square is off the board"
	reasonNotDiagonal   = "move is not diagonal"
	reasonEmptyStart    = "no piece on the start square"
	reasonOpponentPiece = "piece belongs to the opponent"
	reasonOccupied      = "destination is occupied"
	reasonBackward      = "men cannot move backward"
	reasonTooFar        = "men move one square or jump two"
	reasonNothingToTake = "no opposing piece to capture"
	reasonOwnInPath     = "own piece blocks the path"
	reasonTwoInPath     = "more than one piece in the path"
)
