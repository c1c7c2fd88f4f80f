package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	play := newPlayCmd()

	root := &cobra.Command{
		Use:   "affine",
		Short: "Affine cipher guessing game and tools",
		Long: `Encrypt text with a random affine key and guess the key.

  affine                       # play the guessing game
  affine play --hide           # type the plaintext without echo
  affine encrypt -a 5 -b 8 --text "ATTACK"
  affine decrypt -a 5 -b 8 --text "IZZISG"
  affine crack --text "IZZISG" --crib attack
  affine keys`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			play.SetContext(cmd.Context())
			return play.RunE(play, args)
		},
	}

	root.AddCommand(play, newEncryptCmd(), newDecryptCmd(), newCrackCmd(), newKeysCmd())
	return root
}
