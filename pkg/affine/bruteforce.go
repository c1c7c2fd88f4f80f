package affine

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/mahdiidarabi/affine-cipher/internal/frequency"
)

// SmartSearchStrategy implements a multi-phase key search: it solves for the
// key from a crib first, then tries common patterns, then falls back to an
// exhaustive parallel search scored by English letter frequency.
type SmartSearchStrategy struct {
	RangeConfig   RangeConfig
	PatternConfig PatternConfig

	out io.Writer
}

// NewSmartSearchStrategy creates a new smart search strategy with default settings.
func NewSmartSearchStrategy() *SmartSearchStrategy {
	return &SmartSearchStrategy{
		RangeConfig:   DefaultRangeConfig(),
		PatternConfig: DefaultPatternConfig(),
		out:           io.Discard,
	}
}

// WithRangeConfig sets the range configuration for the strategy.
func (s *SmartSearchStrategy) WithRangeConfig(config RangeConfig) *SmartSearchStrategy {
	s.RangeConfig = config
	return s
}

// WithPatternConfig sets the pattern configuration for the strategy.
func (s *SmartSearchStrategy) WithPatternConfig(config PatternConfig) *SmartSearchStrategy {
	s.PatternConfig = config
	return s
}

// WithOutput sets where progress messages are written. Nil discards them.
func (s *SmartSearchStrategy) WithOutput(w io.Writer) *SmartSearchStrategy {
	if w == nil {
		w = io.Discard
	}
	s.out = w
	return s
}

// Name returns the name of this strategy.
func (s *SmartSearchStrategy) Name() string {
	return "SmartSearch"
}

func (s *SmartSearchStrategy) printf(format string, args ...interface{}) {
	if s.out == nil {
		return
	}
	fmt.Fprintf(s.out, format, args...)
}

// Search implements the SearchStrategy interface.
func (s *SmartSearchStrategy) Search(ctx context.Context, ciphertext, crib string) *SearchResult {
	if len(letters(ciphertext)) == 0 {
		return nil
	}

	s.printf("Starting key search on %d letters...\n", len(letters(ciphertext)))

	// Phase 0: Solve directly from the crib (fastest)
	if letters(crib) != "" {
		s.printf("Phase 0: Solving from crib %q...\n", crib)
		if result := s.solveFromCrib(ctx, ciphertext, crib); result != nil {
			s.printf("✓ Found key from crib: %s\n", result.Key)
			return result
		}
		s.printf("Crib did not align with any key\n")
	}

	// Phase 1: Try common patterns
	if s.PatternConfig.IncludeCommonPatterns {
		s.printf("Phase 1: Trying common patterns...\n")
		if result := s.tryPatterns(ctx, ciphertext, crib, commonPatterns()); result != nil {
			s.printf("✓ Found pattern: %s\n", result.Pattern)
			return result
		}
		s.printf("No common patterns matched\n")
	}

	// Phase 2: Try custom patterns
	if len(s.PatternConfig.CustomPatterns) > 0 {
		s.printf("Phase 2: Trying %d custom patterns...\n", len(s.PatternConfig.CustomPatterns))
		if result := s.tryPatterns(ctx, ciphertext, crib, s.PatternConfig.CustomPatterns); result != nil {
			s.printf("✓ Found custom pattern: %s\n", result.Pattern)
			return result
		}
		s.printf("No custom patterns matched\n")
	}

	// Phase 3: Exhaustive search
	keys := s.keysInRange()
	s.printf("Phase 3: Testing %d keys (a∈[%d,%d], b∈[%d,%d])...\n", len(keys),
		s.RangeConfig.ARange[0], s.RangeConfig.ARange[1], s.RangeConfig.BRange[0], s.RangeConfig.BRange[1])
	result := s.rangeSearch(ctx, ciphertext, crib, keys)
	if result == nil {
		s.printf("All phases completed, key not found\n")
		return nil
	}
	s.printf("✓ Best key: %s (score %.2f)\n", result.Key, result.Score)
	return result
}

// solveFromCrib aligns the crib at every letter offset of the ciphertext and
// solves a*p + b = c (mod 26) for the key. Among the keys that reproduce the
// crib, the one whose decryption looks most like English wins.
func (s *SmartSearchStrategy) solveFromCrib(ctx context.Context, ciphertext, crib string) *SearchResult {
	c := letterIndexes(ciphertext)
	p := letterIndexes(crib)
	if len(p) > len(c) {
		return nil
	}

	seen := make(map[Key]bool)
	var best *SearchResult
	for offset := 0; offset+len(p) <= len(c); offset++ {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		window := c[offset : offset+len(p)]
		for _, k := range solveKeys(p, window) {
			if seen[k] || !s.inRange(k) {
				continue
			}
			seen[k] = true

			result := s.evaluate(ciphertext, k, fmt.Sprintf("crib_offset_%d", offset))
			if better(result, best) {
				best = result
			}
		}
	}
	return best
}

// solveKeys returns every valid key mapping plain onto cipher letter-for-letter.
// When two crib letters differ by an amount invertible mod 26, the key is
// solved directly; otherwise each candidate a is tried.
func solveKeys(plain, cipher []int) []Key {
	candidates := ValidAValues()
	for j := 1; j < len(plain); j++ {
		inv, ok := ModInverse(plain[j]-plain[0], Modulus)
		if !ok {
			continue
		}
		candidates = []int{Mod((cipher[j]-cipher[0])*inv, Modulus)}
		break
	}

	var keys []Key
	for _, a := range candidates {
		k := Key{A: a, B: Mod(cipher[0]-a*plain[0], Modulus)}
		if k.Validate() != nil {
			continue
		}
		if encryptsTo(k, plain, cipher) {
			keys = append(keys, k)
		}
	}
	return keys
}

func encryptsTo(k Key, plain, cipher []int) bool {
	for i := range plain {
		if Mod(k.A*plain[i]+k.B, Modulus) != cipher[i] {
			return false
		}
	}
	return true
}

// tryPatterns tries each pattern in priority order.
func (s *SmartSearchStrategy) tryPatterns(ctx context.Context, ciphertext, crib string, patterns []Pattern) *SearchResult {
	ordered := make([]Pattern, len(patterns))
	copy(ordered, patterns)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})

	for _, pattern := range ordered {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if pattern.Key.Validate() != nil {
			continue
		}

		result := s.evaluate(ciphertext, pattern.Key, pattern.Name)
		if letters(crib) != "" {
			if containsCrib(result.Plaintext, crib) {
				return result
			}
			continue
		}
		if s.PatternConfig.AcceptScore > 0 && result.Score <= s.PatternConfig.AcceptScore {
			return result
		}
	}
	return nil
}

// keysInRange lists the valid keys inside the configured range.
func (s *SmartSearchStrategy) keysInRange() []Key {
	var keys []Key
	for _, k := range AllKeys() {
		if s.inRange(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

func (s *SmartSearchStrategy) inRange(k Key) bool {
	r := s.RangeConfig
	return k.A >= r.ARange[0] && k.A <= r.ARange[1] && k.B >= r.BRange[0] && k.B <= r.BRange[1]
}

// rangeSearch decrypts with every key in parallel and keeps the best-scoring
// plaintext that contains the crib.
func (s *SmartSearchStrategy) rangeSearch(ctx context.Context, ciphertext, crib string, keys []Key) *SearchResult {
	numWorkers := s.RangeConfig.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	testedKeys := int64(0)
	workChan := make(chan Key, numWorkers*4)
	resultChan := make(chan *SearchResult, numWorkers*4)

	// Generate work
	go func() {
		defer close(workChan)
		for _, k := range keys {
			select {
			case <-ctx.Done():
				return
			case workChan <- k:
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range workChan {
				atomic.AddInt64(&testedKeys, 1)

				result := s.evaluate(ciphertext, k, "exhaustive")
				if letters(crib) != "" && !containsCrib(result.Plaintext, crib) {
					continue
				}

				select {
				case resultChan <- result:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	var best *SearchResult
	for result := range resultChan {
		if better(result, best) {
			best = result
		}
	}

	if ctx.Err() != nil {
		return nil
	}
	s.printf("  Tested %d keys\n", atomic.LoadInt64(&testedKeys))
	return best
}

// evaluate decrypts ciphertext with k and scores the result.
func (s *SmartSearchStrategy) evaluate(ciphertext string, k Key, pattern string) *SearchResult {
	c, _ := NewCipher(k)
	plaintext := c.Decrypt(ciphertext)
	return &SearchResult{
		Key:       k,
		Plaintext: plaintext,
		Score:     frequency.ChiSquared(plaintext),
		Pattern:   pattern,
	}
}

// better orders results by score, then by key, so parallel searches are
// deterministic.
func better(candidate, best *SearchResult) bool {
	if best == nil {
		return true
	}
	if candidate.Score != best.Score {
		return candidate.Score < best.Score
	}
	if candidate.Key.A != best.Key.A {
		return candidate.Key.A < best.Key.A
	}
	return candidate.Key.B < best.Key.B
}

// commonPatterns returns the keys of well-known ciphers that are special
// cases of the affine cipher.
func commonPatterns() []Pattern {
	return []Pattern{
		{Key{A: 1, B: 0}, "identity", 1},
		{Key{A: 1, B: 13}, "rot13", 2},
		{Key{A: 1, B: 3}, "caesar_3", 3},
		{Key{A: 25, B: 25}, "atbash", 4},
	}
}

// letters returns the letters of text in upper case, dropping everything else.
func letters(text string) string {
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if idx, ok := LetterIndex(rune(text[i])); ok {
			b.WriteByte(Alphabet[idx])
		}
	}
	return b.String()
}

func letterIndexes(text string) []int {
	l := letters(text)
	idx := make([]int, len(l))
	for i := 0; i < len(l); i++ {
		idx[i] = int(l[i] - 'A')
	}
	return idx
}

// containsCrib compares letters only, so spacing and case do not matter.
func containsCrib(plaintext, crib string) bool {
	return strings.Contains(letters(plaintext), letters(crib))
}
