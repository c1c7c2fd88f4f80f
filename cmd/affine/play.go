package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mahdiidarabi/affine-cipher/internal/game"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the key guessing game",
		Long: `Encrypt a plaintext with a random key, then guess the key.

Guesses are two integers "a b". Type "reveal" to give up and see the key.`,
		Args: cobra.NoArgs,
		RunE: runPlay,
	}

	cmd.Flags().StringP("text", "t", "", "Plaintext to encrypt (default: read the first input line)")
	cmd.Flags().Bool("hide", false, "Read the plaintext from the terminal without echo")
	cmd.Flags().Int64("seed", 0, "Seed for key selection (0 = unpredictable)")

	return cmd
}

func runPlay(cmd *cobra.Command, args []string) error {
	hide, _ := cmd.Flags().GetBool("hide")
	seed, _ := cmd.Flags().GetInt64("seed")

	var opts []game.Option
	if seed != 0 {
		opts = append(opts, game.WithSource(rand.New(rand.NewSource(seed))))
	}

	switch {
	case cmd.Flags().Changed("text"):
		text, _ := cmd.Flags().GetString("text")
		opts = append(opts, game.WithPlaintext(text))
	case hide:
		text, err := readHiddenLine(cmd, "Enter the plaintext to encrypt (hidden): ")
		if err != nil {
			return err
		}
		opts = append(opts, game.WithPlaintext(text))
	}

	session := game.New(cmd.InOrStdin(), cmd.OutOrStdout(), opts...)
	outcome, err := session.Run(cmd.Context())
	if err != nil {
		if errors.Is(err, game.ErrInputClosed) {
			return fmt.Errorf("game ended without a correct guess: %w", err)
		}
		return err
	}

	if outcome.State == game.Correct {
		fmt.Fprintf(cmd.OutOrStdout(), "Solved in %d guesses\n", outcome.Guesses)
	}
	return nil
}

// readHiddenLine reads one line from the controlling terminal with echo off.
func readHiddenLine(cmd *cobra.Command, prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("--hide requires stdin to be a terminal")
	}

	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	line, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("failed to read plaintext: %w", err)
	}
	return string(line), nil
}
