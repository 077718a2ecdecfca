package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"silverdollar/internal/console"
	"silverdollar/internal/game/strip"
	"silverdollar/pkg/random"
)

// Поле печатается целиком на каждом ходу
const maxSquares = 4096

func main() {
	squares := flag.Int("squares", 12, "number of squares on the strip")
	coins := flag.Int("coins", 5, "number of coins")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one")
	flag.Parse()

	if err := run(*squares, *coins, *seed); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(squares, coins int, seed int64) error {
	if squares > maxSquares {
		return fmt.Errorf("%w: %d squares exceeds limit %d", strip.ErrInvalidConfiguration, squares, maxSquares)
	}

	if seed == 0 {
		var err error
		seed, err = random.NewSeed()
		if err != nil {
			return err
		}
	}

	s, err := strip.New(squares, coins, rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("game must be played with fewer coins than squares: %w", err)
	}

	return console.Play(s, os.Stdin, os.Stdout)
}
