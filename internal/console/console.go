package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"silverdollar/internal/game/strip"
)

// ErrInputClosed - ввод закончился раньше чем игра
var ErrInputClosed = errors.New("input closed before game over")

// Play ведет текстовую игру: печатает поле, читает "start distance", делает ход.
// Возвращается когда игра окончена или ввод закончился
func Play(s *strip.Strip, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	for !s.IsGameOver() {
		if _, err := fmt.Fprintf(out, "%s Next move? ", s); err != nil {
			return err
		}

		start, err := nextInt(scanner)
		if err != nil {
			return err
		}
		distance, err := nextInt(scanner)
		if err != nil {
			return err
		}

		if !s.IsLegalMove(start, distance) {
			if _, err := fmt.Fprintln(out, "Illegal move!"); err != nil {
				return err
			}
			continue
		}
		if err := s.ApplyMove(start, distance); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(out, "%sYou win!!\n", s)
	return err
}

func nextInt(scanner *bufio.Scanner) (int, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, err
		}
		return 0, ErrInputClosed
	}
	n, err := strconv.Atoi(scanner.Text())
	if err != nil {
		return 0, fmt.Errorf("expected integer, got %q: %w", scanner.Text(), err)
	}
	return n, nil
}
