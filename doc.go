// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package binops provides the arithmetic core of a small tool for exploring
binary numbers by hand.

It adds 4-bit operands with two strategies, a ripple-carry adder and a
carry-look-ahead (CLA) adder, and converts numbers between their binary and
decimal text representations.

All operands and results are plain strings of '0' and '1' characters, most
significant bit first:

	sum, err := binops.RippleCarryAdd("0011", "0001") // "0100"

	var cla binops.CLAAdder
	if err := cla.SetInputs("0110", "0101", "0"); err != nil {
		// handle err
	}
	cla.ComputeSum()
	s, cout := cla.Outputs() // "0011", "1"

Invalid input is reported as an *InvalidInputError whose message is meant to be
shown to the user as is.

The gatesim sub-package models the same adders as wired logic gates.
*/
package binops
