package affine

import "context"

// SearchStrategy defines the interface for key search strategies.
// Implement this interface to plug a custom search into a Client.
type SearchStrategy interface {
	// Search looks for the key that produced ciphertext. crib is an optional
	// fragment of known plaintext; when non-empty, a result must contain it.
	// It returns nil if no key was found or ctx was cancelled.
	Search(ctx context.Context, ciphertext, crib string) *SearchResult

	// Name returns a human-readable name for this strategy.
	Name() string
}

// Pattern is a specific key tried before the exhaustive search.
type Pattern struct {
	Key      Key
	Name     string // Human-readable description
	Priority int    // Lower priority = tested first
}

// RangeConfig bounds the exhaustive search.
type RangeConfig struct {
	// ARange limits a to [Min, Max] (inclusive). Values not coprime to 26
	// are always skipped.
	ARange [2]int

	// BRange limits b to [Min, Max] (inclusive).
	BRange [2]int

	// NumWorkers controls parallelization (0 = auto-detect)
	NumWorkers int
}

// DefaultRangeConfig covers the whole keyspace.
func DefaultRangeConfig() RangeConfig {
	return RangeConfig{
		ARange:     [2]int{1, Modulus - 1},
		BRange:     [2]int{0, Modulus - 1},
		NumWorkers: 0,
	}
}

// PatternConfig configures the keys tried before the exhaustive search.
type PatternConfig struct {
	// CustomPatterns are additional keys to test before the exhaustive search
	CustomPatterns []Pattern

	// IncludeCommonPatterns includes identity, ROT13, Caesar and Atbash
	IncludeCommonPatterns bool

	// AcceptScore is the chi-squared score at or below which a pattern is
	// accepted when no crib is given. Zero disables pattern acceptance
	// without a crib.
	AcceptScore float64
}

// DefaultPatternConfig returns a configuration with common patterns enabled.
func DefaultPatternConfig() PatternConfig {
	return PatternConfig{
		CustomPatterns:        []Pattern{},
		IncludeCommonPatterns: true,
		AcceptScore:           60,
	}
}
