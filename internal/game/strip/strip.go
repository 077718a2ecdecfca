package strip

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

const (
	// Монета на клетке
	coinChar = 'o'
	// Пустая клетка
	emptyChar = '_'
)

var (
	// ErrInvalidConfiguration - недопустимая пара (клетки, монеты)
	ErrInvalidConfiguration = errors.New("invalid strip configuration")
	// ErrIllegalMove - ход не проходит проверку IsLegalMove
	ErrIllegalMove = errors.New("illegal move")
	// ErrInvalidBoard - строка поля содержит что-то кроме 'o' и '_'
	ErrInvalidBoard = errors.New("invalid board")
)

// Strip - полоса клеток игры Silver Dollar.
// Индекс 0 - левый край. Не потокобезопасна, у каждой игры своя полоса.
type Strip struct {
	cells []bool
	coins int
	moves int
}

// New создает полосу из numSquares клеток и случайно расставляет numCoins монет
func New(numSquares, numCoins int, rng *rand.Rand) (*Strip, error) {
	if err := Validate(numSquares, numCoins); err != nil {
		return nil, err
	}

	cells := make([]bool, numSquares)
	if numCoins*2 <= numSquares {
		// Редкая полоса: выбор с повторной попыткой, без перестановки на N элементов
		for placed := 0; placed < numCoins; {
			i := rng.Intn(numSquares)
			if !cells[i] {
				cells[i] = true
				placed++
			}
		}
	} else {
		// Первые numCoins индексов случайной перестановки
		for _, i := range rng.Perm(numSquares)[:numCoins] {
			cells[i] = true
		}
	}

	return &Strip{
		cells: cells,
		coins: numCoins,
	}, nil
}

// Validate проверяет что 0 < numCoins < numSquares
func Validate(numSquares, numCoins int) error {
	if numCoins <= 0 || numCoins >= numSquares {
		return fmt.Errorf("%w: # coins: %d must be positive and less than # squares: %d",
			ErrInvalidConfiguration, numCoins, numSquares)
	}
	return nil
}

// Parse восстанавливает полосу из строки вида "o_o_"
func Parse(board string) (*Strip, error) {
	cells := make([]bool, len(board))
	coins := 0
	for i := 0; i < len(board); i++ {
		switch board[i] {
		case coinChar:
			cells[i] = true
			coins++
		case emptyChar:
		default:
			return nil, fmt.Errorf("%w: unexpected %q at %d", ErrInvalidBoard, board[i], i)
		}
	}

	if err := Validate(len(cells), coins); err != nil {
		return nil, err
	}

	return &Strip{
		cells: cells,
		coins: coins,
	}, nil
}

// String возвращает поле в виде "_o____oo_oo_", без пробелов
func (s *Strip) String() string {
	var b strings.Builder
	b.Grow(len(s.cells))
	for _, occupied := range s.cells {
		if occupied {
			b.WriteByte(coinChar)
		} else {
			b.WriteByte(emptyChar)
		}
	}
	return b.String()
}

// Len - количество клеток
func (s *Strip) Len() int {
	return len(s.cells)
}

// Coins - количество монет, не меняется за игру
func (s *Strip) Coins() int {
	return s.coins
}

// Moves - количество сделанных ходов
func (s *Strip) Moves() int {
	return s.moves
}

// Cells возвращает копию клеток
func (s *Strip) Cells() []bool {
	out := make([]bool, len(s.cells))
	copy(out, s.cells)
	return out
}

// IsLegalMove проверяет можно ли сдвинуть монету со start влево на distance
func (s *Strip) IsLegalMove(start, distance int) bool {
	if start < 0 || start >= len(s.cells) || distance <= 0 || start-distance < 0 || !s.cells[start] {
		return false
	}
	// Перепрыгивать через монеты нельзя, клетка назначения тоже проверяется
	for i := 1; i <= distance; i++ {
		if s.cells[start-i] {
			return false
		}
	}
	return true
}

// ApplyMove делает ход. Недопустимый ход не меняет поле и возвращает ErrIllegalMove
func (s *Strip) ApplyMove(start, distance int) error {
	if !s.IsLegalMove(start, distance) {
		return fmt.Errorf("%w: start %d, distance %d", ErrIllegalMove, start, distance)
	}
	s.cells[start] = false
	s.cells[start-distance] = true
	s.moves++
	return nil
}

// IsGameOver - идем справа налево; после первой монеты все клетки левее тоже должны быть заняты
func (s *Strip) IsGameOver() bool {
	seenCoin := false
	for i := len(s.cells) - 1; i >= 0; i-- {
		if seenCoin && !s.cells[i] {
			return false
		}
		if s.cells[i] {
			seenCoin = true
		}
	}
	return true
}
