// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"
)

type addResult struct {
	Operation string `json:"operation"`
	Engine    string `json:"engine"`
	A         string `json:"a"`
	B         string `json:"b"`
	Result    string `json:"result"`
}

func newAddCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add A B",
		Short: "Add two 4-bit binary numbers with a ripple-carry adder",
		Long: `Add two 4-bit binary numbers with a ripple-carry adder.

The result has 5 digits when the addition carries out.

Examples:
  binops add 0011 0001
  binops add 1111 0001`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y := args[0], args[1]
			a.log.Debug("add", "a", x, "b", y)
			sum, err := a.engine.RippleCarryAdd(x, y)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), "Result: "+sum, addResult{
				Operation: "add",
				Engine:    a.engine.Name(),
				A:         x,
				B:         y,
				Result:    sum,
			})
		},
	}
}
