package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
	}{
		{"3 6 4 5", Move{From: Square{Row: 5, Col: 2}, To: Square{Row: 4, Col: 3}}},
		{"3,6,4,5", Move{From: Square{Row: 5, Col: 2}, To: Square{Row: 4, Col: 3}}},
		{" 1, 8 ,2 7 ", Move{From: Square{Row: 7, Col: 0}, To: Square{Row: 6, Col: 1}}},
		// range is the classifier's concern
		{"0 9 1 1", Move{From: Square{Row: 8, Col: -1}, To: Square{Row: 0, Col: 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := ParseMove(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m)
		})
	}

	for _, in := range []string{"", "3 6 4", "3 6 4 5 6", "c6 d5", "3 6 four 5"} {
		_, err := ParseMove(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestMoveStringRoundTrip(t *testing.T) {
	m := Move{From: Square{Row: 5, Col: 2}, To: Square{Row: 4, Col: 3}}
	assert.Equal(t, "3 6 4 5", m.String())

	parsed, err := ParseMove(m.String())
	require.NoError(t, err)
	assert.Equal(t, m, parsed)
}

func TestMoveGeometry(t *testing.T) {
	m := Move{From: Square{Row: 5, Col: 2}, To: Square{Row: 2, Col: 5}}
	assert.True(t, m.IsDiagonal())
	assert.Equal(t, 3, m.Distance())
	dr, dc := m.Step()
	assert.Equal(t, -1, dr)
	assert.Equal(t, 1, dc)

	assert.False(t, Move{From: Square{Row: 5, Col: 2}, To: Square{Row: 4, Col: 2}}.IsDiagonal())
	assert.False(t, Move{From: Square{Row: 5, Col: 2}, To: Square{Row: 5, Col: 2}}.IsDiagonal())
	assert.False(t, Move{From: Square{Row: 5, Col: 2}, To: Square{Row: 8, Col: 5}}.InBounds())
}

func TestParseSquare(t *testing.T) {
	s, err := ParseSquare("5 4")
	require.NoError(t, err)
	assert.Equal(t, Square{Row: 3, Col: 4}, s)
	assert.Equal(t, "5 4", s.String())

	_, err = ParseSquare("5 4 3")
	assert.Error(t, err)
}
