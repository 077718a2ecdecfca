package strip

import (
	"math/rand"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidConfiguration(t *testing.T) {
	cases := []struct {
		squares, coins int
	}{
		{5, 0},
		{5, 5},
		{5, -1},
		{1, 1},
		{0, 0},
		{3, 7},
	}
	for _, c := range cases {
		s, err := New(c.squares, c.coins, rand.New(rand.NewSource(1)))
		require.ErrorIs(t, err, ErrInvalidConfiguration, "squares=%d coins=%d", c.squares, c.coins)
		assert.Nil(t, s)
	}
}

func TestNewPlacesExactCoinCount(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		s, err := New(12, 5, rng)
		require.NoError(t, err)

		board := s.String()
		assert.Len(t, board, 12)
		assert.Equal(t, 5, strings.Count(board, "o"))
		assert.Equal(t, 7, strings.Count(board, "_"))
		assert.Equal(t, 5, s.Coins())
	}
}

func TestNewIsDeterministicForSeed(t *testing.T) {
	a, err := New(20, 7, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := New(20, 7, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	assert.Equal(t, a.String(), b.String())
}

func TestNewDenseStrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		s, err := New(10, 9, rng)
		require.NoError(t, err)
		assert.Equal(t, 9, strings.Count(s.String(), "o"))
	}
}

func TestNewSparseStripAllocatesOnlyCells(t *testing.T) {
	const squares = 1 << 20

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	s, err := New(squares, 3, rand.New(rand.NewSource(9)))
	runtime.ReadMemStats(&after)
	require.NoError(t, err)

	assert.Equal(t, squares, s.Len())
	assert.Equal(t, 3, strings.Count(s.String(), "o"))
	// Перестановка на 1M int заняла бы 8MB
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(2*squares))
}

func TestParse(t *testing.T) {
	s, err := Parse("o_o_")
	require.NoError(t, err)
	assert.Equal(t, "o_o_", s.String())
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 2, s.Coins())
	assert.Equal(t, []bool{true, false, true, false}, s.Cells())

	_, err = Parse("o_x_")
	assert.ErrorIs(t, err, ErrInvalidBoard)

	_, err = Parse("____")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = Parse("oooo")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestCellsReturnsCopy(t *testing.T) {
	s, err := Parse("o_o_")
	require.NoError(t, err)

	cells := s.Cells()
	cells[1] = true
	assert.Equal(t, "o_o_", s.String())
}

func TestIsLegalMove(t *testing.T) {
	s, err := Parse("o_o_")
	require.NoError(t, err)

	cases := []struct {
		name            string
		start, distance int
		want            bool
	}{
		{"one step into gap", 2, 1, true},
		{"jump over coin", 2, 2, false},
		{"zero distance", 2, 0, false},
		{"negative distance", 2, -1, false},
		{"empty start", 1, 1, false},
		{"off left edge", 0, 1, false},
		{"start past right edge", 4, 1, false},
		{"negative start", -1, 1, false},
		{"far off left edge", 2, 3, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, s.IsLegalMove(c.start, c.distance))
		})
	}

	// Проверка не меняет поле
	assert.Equal(t, "o_o_", s.String())
}

func TestIsLegalMoveLongSlide(t *testing.T) {
	s, err := Parse("o____o")
	require.NoError(t, err)

	assert.True(t, s.IsLegalMove(5, 4))
	assert.False(t, s.IsLegalMove(5, 5))
}

func TestApplyMove(t *testing.T) {
	s, err := Parse("o_o_")
	require.NoError(t, err)

	err = s.ApplyMove(2, 2)
	require.ErrorIs(t, err, ErrIllegalMove)
	assert.Equal(t, "o_o_", s.String())
	assert.Equal(t, 0, s.Moves())

	require.NoError(t, s.ApplyMove(2, 1))
	assert.Equal(t, "oo__", s.String())
	assert.Equal(t, 1, s.Moves())
	assert.Equal(t, 2, s.Coins())
}

func TestIsGameOver(t *testing.T) {
	cases := map[string]bool{
		"oo___":  true,
		"oo__":   true,
		"o____":  true,
		"ooooo_": true,
		"___oo":  false,
		"_o_o_":  false,
		"o_o_":   false,
		"_o":     false,
	}
	for board, want := range cases {
		s, err := Parse(board)
		require.NoError(t, err, board)
		assert.Equal(t, want, s.IsGameOver(), board)
		// Повторный вызов дает тот же результат
		assert.Equal(t, want, s.IsGameOver(), board)
		assert.Equal(t, board, s.String())
	}
}

func TestEndToEnd(t *testing.T) {
	s, err := Parse("o_o_")
	require.NoError(t, err)

	assert.False(t, s.IsLegalMove(2, 2))
	require.NoError(t, s.ApplyMove(2, 1))
	assert.Equal(t, "oo__", s.String())
	assert.True(t, s.IsGameOver())
}

// Случайная игра до конца: число монет сохраняется на каждом шаге
func TestRandomPlayConservesCoins(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for game := 0; game < 20; game++ {
		s, err := New(15, 6, rng)
		require.NoError(t, err)

		for !s.IsGameOver() {
			var legal [][2]int
			for start := 0; start < s.Len(); start++ {
				for distance := 1; distance <= start; distance++ {
					if s.IsLegalMove(start, distance) {
						legal = append(legal, [2]int{start, distance})
					}
				}
			}
			require.NotEmpty(t, legal, "no legal moves on %s", s.String())

			m := legal[rng.Intn(len(legal))]
			require.NoError(t, s.ApplyMove(m[0], m[1]))
			assert.Equal(t, 6, strings.Count(s.String(), "o"))
		}
	}
}
