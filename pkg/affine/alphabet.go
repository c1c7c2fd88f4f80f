package affine

// Alphabet is the fixed, ordered set of letters the cipher operates on.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// LetterIndex returns the 0-25 position of r in the alphabet, ignoring case.
// The boolean is false for anything outside A-Z and a-z.
func LetterIndex(r rune) (int, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), true
	default:
		return 0, false
	}
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// letterFor maps an index back to a letter in the requested case.
func letterFor(index int, upper bool) rune {
	r := rune(Alphabet[Mod(index, Modulus)])
	if !upper {
		r += 'a' - 'A'
	}
	return r
}

// mapLetters applies fn to the index of every letter in text and copies
// everything else through unchanged. Case of each letter is preserved.
//
// Letters are ASCII, so the walk is bytewise: multi-byte UTF-8 sequences
// never contain a byte in A-Z or a-z and are copied as they are, even when
// they are not valid UTF-8.
func mapLetters(text string, fn func(int) int) string {
	out := []byte(text)
	for n, c := range out {
		i, ok := LetterIndex(rune(c))
		if !ok {
			continue
		}
		out[n] = byte(letterFor(fn(i), isUpper(rune(c))))
	}
	return string(out)
}
