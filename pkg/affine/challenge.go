package affine

// Challenge is a single ciphertext to crack, as loaded from a challenge file.
type Challenge struct {
	Ciphertext string // Text to crack
	Crib       string // Known plaintext fragment (optional)
	Key        *Key   // Expected key, when the file provides one
}

// SearchResult contains the outcome of a key search.
type SearchResult struct {
	Key       Key     // Recovered key
	Plaintext string  // Ciphertext decrypted with Key
	Score     float64 // Chi-squared distance from English (lower is better)
	Pattern   string  // How the key was found
	Verified  bool    // Whether the key matched an expected key
}
