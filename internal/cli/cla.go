// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type claResult struct {
	Operation string `json:"operation"`
	Engine    string `json:"engine"`
	A         string `json:"a"`
	B         string `json:"b"`
	CarryIn   string `json:"carry_in"`
	Sum       string `json:"sum"`
	CarryOut  string `json:"carry_out"`
	Diagram   string `json:"diagram,omitempty"`
}

func newCLACommand(a *app) *cobra.Command {
	var (
		carryIn string
		diagram bool
	)
	cmd := &cobra.Command{
		Use:   "cla A B",
		Short: "Add two 4-bit binary numbers with a carry-look-ahead adder",
		Long: `Add two 4-bit binary numbers with a carry-look-ahead adder.

Propagate (P = A xor B) and generate (G = A and B) signals are computed for
each bit. Every sum bit is P xor Cin, and the carry-out is

  Cout = G3 | G2&P3 | G1&P2&P3 | G0&P1&P2&P3

where bit 0 is the most significant.

Examples:
  binops cla 0110 0101
  binops cla 0110 0101 --carry-in 1 --diagram`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y := args[0], args[1]
			cin := carryIn
			if !cmd.Flags().Changed("carry-in") {
				cin = a.cfg.CarryIn
			}
			a.log.Debug("cla", "a", x, "b", y, "carry_in", cin)
			sum, cout, err := a.engine.CLAAdd(x, y, cin)
			if err != nil {
				return err
			}
			text := fmt.Sprintf("CLA Result: Sum=%s, Carry-out=%s", sum, cout)
			res := claResult{
				Operation: "cla",
				Engine:    a.engine.Name(),
				A:         x,
				B:         y,
				CarryIn:   cin,
				Sum:       sum,
				CarryOut:  cout,
			}
			if diagram {
				text += "\n" + CLADiagram
				res.Diagram = CLADiagram
			}
			return a.print(cmd.OutOrStdout(), text, res)
		},
	}
	cmd.Flags().StringVar(&carryIn, "carry-in", "0", "carry-in bit, 0 or 1 (default from configuration)")
	cmd.Flags().BoolVar(&diagram, "diagram", false, "also print the CLA circuit diagram")
	return cmd
}
