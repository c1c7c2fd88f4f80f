// Package affine implements the affine substitution cipher over the 26-letter
// Latin alphabet, together with key generation, guess parsing and a key
// search for recovering unknown keys.
//
// A key (a, b) maps letter index i to (a·i + b) mod 26. Decryption needs the
// inverse of a modulo 26, so a must be coprime to 26: there are 12 such
// values and 312 keys in total. Case is preserved and anything that is not a
// letter passes through unchanged.
//
// # Quick Start
//
//	import "github.com/mahdiidarabi/affine-cipher/pkg/affine"
//
//	key := affine.Key{A: 5, B: 8}
//	ct := affine.Encrypt("ATTACK", key) // "IZZISG"
//	pt, err := affine.Decrypt(ct, key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Key Search
//
// The affine cipher offers no security. A Client recovers keys from a crib
// (known plaintext) or, for longer texts, by letter frequency:
//
//	client := affine.NewClient()
//	result, err := client.Crack(ctx, "IZZISG", "attack")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Key) // a=5, b=8
//
// The search can be tuned:
//
//	strategy := affine.NewSmartSearchStrategy().
//	    WithRangeConfig(affine.RangeConfig{
//	        ARange:     [2]int{1, 25},
//	        BRange:     [2]int{0, 25},
//	        NumWorkers: 4,
//	    }).
//	    WithPatternConfig(affine.PatternConfig{
//	        CustomPatterns: []affine.Pattern{
//	            {Key: affine.Key{A: 7, B: 2}, Name: "house_key", Priority: 1},
//	        },
//	        IncludeCommonPatterns: true,
//	    })
//
//	client := affine.NewClient().WithStrategy(strategy)
//
// # Custom Strategies
//
// Implement the SearchStrategy interface to create custom search strategies:
//
//	type MyStrategy struct{}
//
//	func (s *MyStrategy) Search(ctx context.Context, ciphertext, crib string) *affine.SearchResult {
//	    // Your custom search logic
//	}
//
//	func (s *MyStrategy) Name() string {
//	    return "MyCustomStrategy"
//	}
package affine
