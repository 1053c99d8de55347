// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"strconv"

	"github.com/db47h/binops"
	"github.com/spf13/cobra"
)

type convResult struct {
	Operation string `json:"operation"`
	Input     string `json:"input"`
	Result    string `json:"result"`
}

func newToDecimalCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "to-decimal BINARY",
		Aliases: []string{"bin2dec"},
		Short:   "Convert a binary number to decimal",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Debug("to-decimal", "input", args[0])
			n, err := binops.BinaryToDecimal(args[0])
			if err != nil {
				return err
			}
			d := strconv.FormatUint(n, 10)
			return a.print(cmd.OutOrStdout(), "Decimal: "+d, convResult{"to-decimal", args[0], d})
		},
	}
}

func newToBinaryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "to-binary DECIMAL",
		Aliases: []string{"dec2bin"},
		Short:   "Convert a non-negative decimal number to binary",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Debug("to-binary", "input", args[0])
			b, err := binops.DecimalToBinary(args[0])
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), "Binary: "+b, convResult{"to-binary", args[0], b})
		},
	}
}
