// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"
)

// CLADiagram is a textual diagram of the carry-look-ahead adder.
//
const CLADiagram = `CLA Circuit Diagram (4-bit, bit 0 is the msb):

          ┌─────┐                    ┌─────┐
 A[i] ─┬──┤ XOR ├──── P[i] ──────────┤ XOR ├──── Sum[i]
 B[i] ─┼┬─┤     │              Cin ──┤     │
       ││ └─────┘                    └─────┘
       ││ ┌─────┐
       └┼─┤ AND ├──── G[i]
        └─┤     │
          └─────┘

 G[3] ───────────────────┐
 G[2] ─┬─ AND ───────────┤
 P[3] ─┘                 │
 G[1] ─┬─ AND ───────────┼─ OR ──── Cout
 P[2] ─┤                 │
 P[3] ─┘                 │
 G[0] ─┬─ AND ───────────┘
 P[1] ─┤
 P[2] ─┤
 P[3] ─┘
`

func newDiagramCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diagram",
		Short: "Print the CLA circuit diagram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(cmd.OutOrStdout(), CLADiagram, map[string]string{"diagram": CLADiagram})
		},
	}
}
