package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed генерирует сид через crypto/rand. Ноль не возвращается, он значит "сид не задан"
func NewSeed() (int64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		if seed := int64(binary.LittleEndian.Uint64(b[:])); seed != 0 {
			return seed, nil
		}
	}
}
