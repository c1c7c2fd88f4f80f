package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/affine-cipher/pkg/affine"
)

func newEncryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt text with a known key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, (*affine.Cipher).Encrypt)
		},
	}
	addKeyFlags(cmd)
	return cmd
}

func newDecryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt text with a known key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, (*affine.Cipher).Decrypt)
		},
	}
	addKeyFlags(cmd)
	return cmd
}

func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("mult", "a", 0, "Multiplier a (1-25, coprime to 26)")
	cmd.Flags().IntP("shift", "b", 0, "Shift b (0-25)")
	cmd.Flags().StringP("text", "t", "", "Input text (default: read stdin)")
	_ = cmd.MarkFlagRequired("mult")
	_ = cmd.MarkFlagRequired("shift")
}

func runTransform(cmd *cobra.Command, transform func(*affine.Cipher, string) string) error {
	a, _ := cmd.Flags().GetInt("mult")
	b, _ := cmd.Flags().GetInt("shift")

	c, err := affine.NewCipher(affine.Key{A: a, B: b})
	if err != nil {
		return err
	}

	text, err := inputText(cmd)
	if err != nil {
		return err
	}

	out := transform(c, text)
	if cmd.Flags().Changed("text") {
		out += "\n"
	}
	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}

// inputText returns --text when given, otherwise all of stdin.
func inputText(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("text") {
		text, _ := cmd.Flags().GetString("text")
		return text, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}
