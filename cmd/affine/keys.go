package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/affine-cipher/pkg/affine"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the valid key values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			as := validAValueStrings()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "a: %s\n", strings.Join(as, ", "))
			fmt.Fprintf(out, "b: 0-%d\n", affine.Modulus-1)
			fmt.Fprintf(out, "%d keys in total\n", len(affine.AllKeys()))
			return nil
		},
	}
}

func validAValueStrings() []string {
	values := affine.ValidAValues()
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = fmt.Sprint(v)
	}
	return s
}
