package affine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidGuess is returned for any guess that is not two integers forming
// a valid key.
var ErrInvalidGuess = errors.New("invalid guess")

// RevealCommand ends a game and shows the secret key.
const RevealCommand = "reveal"

// ParseGuess parses a guess like "5 8" into a key. The input must hold exactly
// two whitespace-separated integers, a in [1,25] coprime to 26 and b in
// [0,25]. Every failure wraps ErrInvalidGuess.
func ParseGuess(raw string) (Key, error) {
	parts := strings.Fields(raw)
	if len(parts) != 2 {
		return Key{}, fmt.Errorf("%w: expected 2 values, got %d", ErrInvalidGuess, len(parts))
	}

	a, err := strconv.Atoi(parts[0])
	if err != nil {
		return Key{}, fmt.Errorf("%w: a=%q is not an integer", ErrInvalidGuess, parts[0])
	}
	b, err := strconv.Atoi(parts[1])
	if err != nil {
		return Key{}, fmt.Errorf("%w: b=%q is not an integer", ErrInvalidGuess, parts[1])
	}

	k := Key{A: a, B: b}
	if err := k.Validate(); err != nil {
		return Key{}, fmt.Errorf("%w: %v", ErrInvalidGuess, err)
	}
	return k, nil
}

// IsReveal reports whether the line is the reveal command, ignoring case and
// surrounding whitespace.
func IsReveal(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), RevealCommand)
}
