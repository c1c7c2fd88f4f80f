package affine

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoLetters is returned when there is nothing for a key search to work on.
var ErrNoLetters = errors.New("ciphertext contains no letters")

// Client provides a high-level API for key search operations.
type Client struct {
	strategy SearchStrategy
	parser   ChallengeParser
}

// NewClient creates a new client with default settings.
func NewClient() *Client {
	return &Client{
		strategy: NewSmartSearchStrategy(),
		parser:   &JSONParser{},
	}
}

// WithStrategy sets a custom search strategy.
func (c *Client) WithStrategy(strategy SearchStrategy) *Client {
	c.strategy = strategy
	return c
}

// WithParser sets a custom challenge parser.
func (c *Client) WithParser(parser ChallengeParser) *Client {
	c.parser = parser
	return c
}

// Crack searches for the key that produced ciphertext. crib is optional
// known plaintext; supplying one makes short ciphertexts solvable.
func (c *Client) Crack(ctx context.Context, ciphertext, crib string) (*SearchResult, error) {
	if letters(ciphertext) == "" {
		return nil, ErrNoLetters
	}

	result := c.strategy.Search(ctx, ciphertext, crib)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("failed to find key with %s", c.strategy.Name())
	}
	return result, nil
}

// CrackChallenge cracks one challenge and, when the challenge carries an
// expected key, marks the result verified if the keys match.
func (c *Client) CrackChallenge(ctx context.Context, ch *Challenge) (*SearchResult, error) {
	result, err := c.Crack(ctx, ch.Ciphertext, ch.Crib)
	if err != nil {
		return nil, err
	}
	if ch.Key != nil {
		result.Verified = result.Key == *ch.Key
	}
	return result, nil
}

// CrackFile loads challenges with the client's parser and cracks each one.
// The returned slice is index-aligned with the file; a challenge that could
// not be cracked has a nil entry and contributes to the joined error.
func (c *Client) CrackFile(ctx context.Context, source string) ([]*SearchResult, error) {
	challenges, err := c.parser.ParseChallenges(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse challenges: %w", err)
	}

	results := make([]*SearchResult, len(challenges))
	var errs []error
	for i, ch := range challenges {
		result, err := c.CrackChallenge(ctx, ch)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return results, ctxErr
			}
			errs = append(errs, fmt.Errorf("challenge %d: %w", i, err))
			continue
		}
		results[i] = result
	}
	return results, errors.Join(errs...)
}
