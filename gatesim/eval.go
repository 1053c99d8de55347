// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"github.com/pkg/errors"
)

// Eval4 runs a 4 bits adder part in a new circuit and returns its sum and
// carry-out once the circuit has settled. The part must have the same pins as
// AdderN(4).
//
func Eval4(adder NewPartFn, a, b int64, cin bool, maxSteps int) (sum int64, cout bool, err error) {
	c, err := NewCircuit(
		InputN(4, func() int64 { return a })("out[0..3]=a[0..3]"),
		InputN(4, func() int64 { return b })("out[0..3]=b[0..3]"),
		Input(func() bool { return cin })("out=cin"),
		adder("a[0..3]=a[0..3], b[0..3]=b[0..3], cin=cin, s[0..3]=s[0..3], cout=cout"),
		OutputN(4, func(v int64) { sum = v })("in[0..3]=s[0..3]"),
		Output(func(v bool) { cout = v })("in=cout"),
	)
	if err != nil {
		return 0, false, err
	}
	if err = c.Settle(maxSteps); err != nil {
		return 0, false, errors.Wrapf(err, "%d+%d", a, b)
	}
	return sum, cout, nil
}
