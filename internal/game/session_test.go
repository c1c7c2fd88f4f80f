package game

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/mahdiidarabi/affine-cipher/pkg/affine"
)

func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestSession_CorrectAfterWrongGuesses(t *testing.T) {
	var out bytes.Buffer
	s := New(script("ATTACK", "3 1", "4 8", "five eight", "5 8"), &out, WithKey(affine.Key{A: 5, B: 8}))

	outcome, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if outcome.State != Correct {
		t.Errorf("Expected state correct, got %s", outcome.State)
	}
	if outcome.Ciphertext != "IZZISG" {
		t.Errorf("Expected ciphertext IZZISG, got %q", outcome.Ciphertext)
	}
	if outcome.Plaintext != "ATTACK" {
		t.Errorf("Expected plaintext ATTACK, got %q", outcome.Plaintext)
	}
	if outcome.Guesses != 4 {
		t.Errorf("Expected 4 guesses, got %d", outcome.Guesses)
	}

	got := out.String()
	for _, want := range []string{
		"Encrypted!\nIZZISG\n",
		"Incorrect. Try again.",
		"Invalid format",
		"Correct!",
		"Decrypted plaintext: ATTACK",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, got)
		}
	}
	if strings.Count(got, "Invalid format") != 2 {
		t.Errorf("Expected 2 invalid guesses, got output:\n%s", got)
	}
}

func TestSession_Reveal(t *testing.T) {
	var out bytes.Buffer
	s := New(script("Hello, World! 123", "3 1", "  REVEAL  "), &out, WithKey(affine.Key{A: 5, B: 8}))

	outcome, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if outcome.State != Revealed {
		t.Errorf("Expected state revealed, got %s", outcome.State)
	}
	if outcome.Plaintext != "Hello, World! 123" {
		t.Errorf("Expected original plaintext, got %q", outcome.Plaintext)
	}

	got := out.String()
	if !strings.Contains(got, "Rclla, Oaplx! 123") {
		t.Errorf("Expected ciphertext in output, got:\n%s", got)
	}
	if !strings.Contains(got, "Key was a=5, b=8") {
		t.Errorf("Expected key in output, got:\n%s", got)
	}
	if !strings.Contains(got, "Entered plaintext: Hello, World! 123") {
		t.Errorf("Expected plaintext in output, got:\n%s", got)
	}
}

func TestSession_RevealImmediately(t *testing.T) {
	var out bytes.Buffer
	s := New(script("reveal"), &out, WithPlaintext("secret"), WithKey(affine.Key{A: 25, B: 25}))

	outcome, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if outcome.State != Revealed || outcome.Plaintext != "secret" {
		t.Errorf("Unexpected outcome: %+v", outcome)
	}
	if outcome.Guesses != 1 {
		t.Errorf("Expected 1 guess, got %d", outcome.Guesses)
	}
}

func TestSession_EmptyPlaintext(t *testing.T) {
	var out bytes.Buffer
	s := New(script("", "reveal"), &out, WithKey(affine.Key{A: 5, B: 8}))

	outcome, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if outcome.Ciphertext != "" || outcome.Plaintext != "" {
		t.Errorf("Expected empty texts, got %+v", outcome)
	}
}

func TestSession_PlaintextKeepsWhitespace(t *testing.T) {
	var out bytes.Buffer
	s := New(strings.NewReader("  spaced out  \r\nreveal\n"), &out, WithKey(affine.Key{A: 1, B: 1}))

	outcome, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if outcome.Plaintext != "  spaced out  " {
		t.Errorf("Expected inner whitespace kept, got %q", outcome.Plaintext)
	}
}

func TestSession_RandomKeyFromSeed(t *testing.T) {
	want := affine.RandomKey(rand.New(rand.NewSource(99)))

	var out bytes.Buffer
	s := New(script("ATTACK", "reveal"), &out, WithSource(rand.New(rand.NewSource(99))))

	outcome, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if outcome.Key != want {
		t.Errorf("Expected seeded key %s, got %s", want, outcome.Key)
	}
	if outcome.Ciphertext != affine.Encrypt("ATTACK", want) {
		t.Errorf("Ciphertext %q does not match key %s", outcome.Ciphertext, want)
	}
}

func TestSession_GuessSeededKey(t *testing.T) {
	key := affine.RandomKey(rand.New(rand.NewSource(5)))
	guess := fmt.Sprintf("%d %d", key.A, key.B)

	var out bytes.Buffer
	s := New(script("Meet at noon", guess), &out, WithSource(rand.New(rand.NewSource(5))))

	outcome, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if outcome.State != Correct {
		t.Errorf("Expected correct, got %s", outcome.State)
	}
	if outcome.Plaintext != "Meet at noon" {
		t.Errorf("Unexpected plaintext %q", outcome.Plaintext)
	}
}

func TestSession_InputClosed(t *testing.T) {
	var out bytes.Buffer
	s := New(script("ATTACK", "1 1"), &out, WithKey(affine.Key{A: 5, B: 8}))

	_, err := s.Run(context.Background())
	if !errors.Is(err, ErrInputClosed) {
		t.Errorf("Expected ErrInputClosed, got %v", err)
	}
	if s.State() != AwaitGuess {
		t.Errorf("Expected to stop awaiting a guess, got %s", s.State())
	}
}

func TestSession_InputClosedBeforePlaintext(t *testing.T) {
	s := New(strings.NewReader(""), &bytes.Buffer{})

	_, err := s.Run(context.Background())
	if !errors.Is(err, ErrInputClosed) {
		t.Errorf("Expected ErrInputClosed, got %v", err)
	}
	if s.State() != AwaitPlaintext {
		t.Errorf("Expected await_plaintext, got %s", s.State())
	}
}

func TestSession_InvalidFixedKey(t *testing.T) {
	s := New(script("ATTACK"), &bytes.Buffer{}, WithKey(affine.Key{A: 13, B: 0}))

	_, err := s.Run(context.Background())
	if !errors.Is(err, affine.ErrInvalidKey) {
		t.Errorf("Expected ErrInvalidKey, got %v", err)
	}
}

func TestSession_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(script("ATTACK", "5 8"), &bytes.Buffer{}, WithKey(affine.Key{A: 5, B: 8}))
	if _, err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestSession_Step(t *testing.T) {
	s := New(script("ATTACK", "5 8"), &bytes.Buffer{}, WithKey(affine.Key{A: 5, B: 8}))

	steps := []State{Encrypted, AwaitGuess, Correct}
	for _, want := range steps {
		if err := s.Step(); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
		if s.State() != want {
			t.Fatalf("Expected %s, got %s", want, s.State())
		}
	}
	if s.Ciphertext() != "IZZISG" {
		t.Errorf("Expected ciphertext IZZISG, got %q", s.Ciphertext())
	}

	// Terminal states do not move.
	if err := s.Step(); err != nil || s.State() != Correct {
		t.Errorf("Expected terminal state to hold, got %s, %v", s.State(), err)
	}
}

func TestState_String(t *testing.T) {
	tests := map[State]string{
		AwaitPlaintext: "await_plaintext",
		Encrypted:      "encrypted",
		AwaitGuess:     "await_guess",
		Correct:        "correct",
		Revealed:       "revealed",
		State(42):      "state(42)",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("String() = %q, want %q", s.String(), want)
		}
	}
}
