// Package frequency scores text against English letter frequencies.
package frequency

// English holds the relative frequency of each letter A-Z in English text.
var English = [26]float64{
	0.08167, 0.01492, 0.02782, 0.04253, 0.12702, 0.02228, 0.02015, // A-G
	0.06094, 0.06966, 0.00153, 0.00772, 0.04025, 0.02406, 0.06749, // H-N
	0.07507, 0.01929, 0.00095, 0.05987, 0.06327, 0.09056, 0.02758, // O-U
	0.00978, 0.02360, 0.00150, 0.01974, 0.00074, // V-Z
}

// Counts returns how often each letter occurs in text, ignoring case.
func Counts(text string) (counts [26]int, total int) {
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'A' && c <= 'Z':
			counts[c-'A']++
		case c >= 'a' && c <= 'z':
			counts[c-'a']++
		default:
			continue
		}
		total++
	}
	return counts, total
}

// ChiSquared returns the chi-squared distance between the letter
// distribution of text and English. Lower is more English-like. Text with no
// letters scores 0.
func ChiSquared(text string) float64 {
	counts, total := Counts(text)
	if total == 0 {
		return 0
	}

	var score float64
	for i, observed := range counts {
		expected := English[i] * float64(total)
		d := float64(observed) - expected
		score += d * d / expected
	}
	return score
}
