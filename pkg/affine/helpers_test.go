package affine

import "path/filepath"

// Plaintexts behind the fixtures in fixtures/challenges.json.
const (
	dickensPlaintext = "It was the best of times, it was the worst of times, it was the age of wisdom, it was the age of foolishness, it was the epoch of belief, it was the epoch of incredulity."
	foxPlaintext     = "The quick brown fox jumps over the lazy dog while the farmer watches from the porch and sips his morning coffee."
)

// fixturesDir returns the path to the repository's fixtures directory.
func fixturesDir() string {
	return filepath.Join("..", "..", "fixtures")
}

// loadTestChallenges loads challenges from the fixtures directory.
func loadTestChallenges(filename string) ([]*Challenge, error) {
	parser := &JSONParser{}
	return parser.ParseChallenges(filepath.Join(fixturesDir(), filename))
}
