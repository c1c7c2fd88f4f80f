// Package game runs the interactive affine cipher guessing game.
package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mahdiidarabi/affine-cipher/pkg/affine"
)

// ErrInputClosed is returned when input ends before the game is over.
var ErrInputClosed = errors.New("input closed before the game ended")

const maxLineSize = 1 << 20

// State is a step of the game.
type State int

const (
	AwaitPlaintext State = iota
	Encrypted
	AwaitGuess
	Correct
	Revealed
)

func (s State) String() string {
	switch s {
	case AwaitPlaintext:
		return "await_plaintext"
	case Encrypted:
		return "encrypted"
	case AwaitGuess:
		return "await_guess"
	case Correct:
		return "correct"
	case Revealed:
		return "revealed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether the game is over in this state.
func (s State) Terminal() bool {
	return s == Correct || s == Revealed
}

// Outcome describes a finished game.
type Outcome struct {
	State      State
	Key        affine.Key
	Plaintext  string
	Ciphertext string
	Guesses    int // Guess lines read, including invalid ones
}

// Session holds the state of one game. The key and ciphertext are fixed once
// the plaintext has been encrypted.
type Session struct {
	lines *bufio.Scanner
	out   io.Writer
	src   affine.Source

	state      State
	plaintext  string
	havePlain  bool
	key        affine.Key
	fixedKey   bool
	ciphertext string
	guesses    int
}

// Option configures a Session.
type Option func(*Session)

// WithSource sets the randomness used to pick the secret key.
func WithSource(src affine.Source) Option {
	return func(s *Session) {
		s.src = src
	}
}

// WithPlaintext supplies the plaintext up front so it is not read from input.
func WithPlaintext(text string) Option {
	return func(s *Session) {
		s.plaintext = text
		s.havePlain = true
	}
}

// WithKey fixes the secret key instead of drawing a random one.
func WithKey(k affine.Key) Option {
	return func(s *Session) {
		s.key = k
		s.fixedKey = true
	}
}

// New creates a session reading lines from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Session {
	lines := bufio.NewScanner(in)
	lines.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	s := &Session{
		lines: lines,
		out:   out,
		state: AwaitPlaintext,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		s.src = affine.NewSource()
	}
	return s
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Ciphertext returns the encrypted plaintext, or "" before encryption.
func (s *Session) Ciphertext() string {
	return s.ciphertext
}

// Run plays the game until the key is guessed or revealed.
func (s *Session) Run(ctx context.Context) (*Outcome, error) {
	for !s.state.Terminal() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.Step(); err != nil {
			return nil, err
		}
	}
	return s.outcome(), nil
}

// Step advances the game by one transition.
func (s *Session) Step() error {
	switch s.state {
	case AwaitPlaintext:
		return s.readPlaintext()
	case Encrypted:
		return s.encrypt()
	case AwaitGuess:
		return s.guess()
	default:
		return nil
	}
}

func (s *Session) readPlaintext() error {
	s.printf("Affine Cipher\n")
	if !s.havePlain {
		s.printf("Enter the plaintext to encrypt: ")
		line, err := s.readLine()
		if err != nil {
			return err
		}
		s.plaintext = line
	}
	s.state = Encrypted
	return nil
}

func (s *Session) encrypt() error {
	if !s.fixedKey {
		s.key = affine.RandomKey(s.src)
	}
	if err := s.key.Validate(); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	s.ciphertext = affine.Encrypt(s.plaintext, s.key)

	s.printf("Encrypted!\n")
	s.printf("%s\n", s.ciphertext)
	s.printf("To guess, enter two integers (\"a b\" format), or %q to give up\n", affine.RevealCommand)
	s.printInstructions()
	s.state = AwaitGuess
	return nil
}

func (s *Session) guess() error {
	s.printf("New Guess (a, b): ")
	line, err := s.readLine()
	if err != nil {
		return err
	}
	s.guesses++

	if affine.IsReveal(line) {
		plaintext, err := affine.Decrypt(s.ciphertext, s.key)
		if err != nil {
			return err
		}
		s.printf("Key was %s\n", s.key)
		s.printf("Entered plaintext: %s\n", plaintext)
		s.plaintext = plaintext
		s.state = Revealed
		return nil
	}

	k, err := affine.ParseGuess(line)
	if err != nil {
		s.printf("Invalid format\n")
		s.printf("Enter two integers (\"a b\" format)\n")
		s.printInstructions()
		return nil
	}

	if k != s.key {
		s.printf("Incorrect. Try again.\n\n")
		return nil
	}

	plaintext, err := affine.Decrypt(s.ciphertext, k)
	if err != nil {
		return err
	}
	s.printf("\nCorrect!\n")
	s.printf("Decrypted plaintext: %s\n", plaintext)
	s.plaintext = plaintext
	s.state = Correct
	return nil
}

func (s *Session) printInstructions() {
	s.printf("(a must be between 1-25 and gcd with 26 must be 1)\n")
	s.printf("(b must be between 0-25)\n")
}

func (s *Session) readLine() (string, error) {
	if !s.lines.Scan() {
		if err := s.lines.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSuffix(s.lines.Text(), "\r"), nil
}

func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) outcome() *Outcome {
	return &Outcome{
		State:      s.state,
		Key:        s.key,
		Plaintext:  s.plaintext,
		Ciphertext: s.ciphertext,
		Guesses:    s.guesses,
	}
}
