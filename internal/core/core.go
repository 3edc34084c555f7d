package core

import "fmt"

type State int

const (
	StateOngoing State = iota
	StateWhiteWins
	StateBlackWins
)

func (s State) String() string {
	switch s {
	case StateWhiteWins:
		return "white wins"
	case StateBlackWins:
		return "black wins"
	case StateOngoing:
		return "ongoing"
	default:
		return "unknown"
	}
}

// IsOver reports whether the state is terminal
func (s State) IsOver() bool {
	return s == StateWhiteWins || s == StateBlackWins
}

type Color byte

const (
	ColorWhite Color = 'w'
	ColorBlack Color = 'b'
)

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "w"
	case ColorBlack:
		return "b"
	default:
		return "-"
	}
}

// Name returns the human readable side name
func (c Color) Name() string {
	if c == ColorWhite {
		return "White"
	}
	return "Black"
}

// Forward is the row delta a man of this side advances by.
// White starts on rows 5-7 and moves toward row 0, black the other way.
func (c Color) Forward() int {
	if c == ColorWhite {
		return -1
	}
	return 1
}

// PromotionRow is the farthest row for the side's men
func (c Color) PromotionRow() int {
	if c == ColorWhite {
		return 0
	}
	return 7
}

func OppositeColor(c Color) Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

// WinState maps the winning side to its terminal state
func WinState(winner Color) State {
	if winner == ColorWhite {
		return StateWhiteWins
	}
	return StateBlackWins
}

// ParseColor accepts "w", "b", "white" or "black"
func ParseColor(s string) (Color, bool) {
	switch s {
	case "w", "white":
		return ColorWhite, true
	case "b", "black":
		return ColorBlack, true
	default:
		return 0, false
	}
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, ok := ParseColor(string(text))
	if !ok {
		return fmt.Errorf("invalid color %q", text)
	}
	*c = parsed
	return nil
}
