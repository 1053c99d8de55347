// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package binops

// A CLAAdder is a 4-bit carry-look-ahead adder.
//
// Usage is a three steps process: SetInputs, ComputeSum, then Outputs. An
// adder can be reused for any number of additions. The zero value is ready to
// use and adds 0000 and 0000.
//
// The sum stage applies the same carry-in to every bit position:
//
//	Sum[i] = P[i] ^ Cin
//
// Only the carry-out goes through the look-ahead logic. Sums are therefore the
// true binary sum only when no position generates or propagates a carry.
//
// A CLAAdder must not be used concurrently.
//
type CLAAdder struct {
	a, b Vector4
	cin  Bit

	st claState
}

// claState is the working state of a single addition.
//
type claState struct {
	p, g Vector4 // propagate, generate
	sum  Vector4
	cout Bit
}

// SetInputs sets the adder operands and carry-in. a and b must be strings of
// exactly four '0' or '1' characters and carryIn either "0" or "1".
//
// On error, the adder is left untouched. On success, the outputs of any
// previous addition are cleared.
//
func (c *CLAAdder) SetInputs(a, b, carryIn string) error {
	va, vb, err := ParseOperands("cla", a, b)
	if err != nil {
		return err
	}
	cin, err := ParseBit(carryIn)
	if err != nil {
		return err
	}
	c.a, c.b, c.cin = va, vb, cin
	c.st = claState{}
	return nil
}

// ComputeSum runs the addition on the current inputs.
//
func (c *CLAAdder) ComputeSum() {
	c.st = lookAhead(c.a, c.b, c.cin)
}

// Outputs returns the sum bits (most significant first) and the carry-out of
// the last call to ComputeSum.
//
func (c *CLAAdder) Outputs() (sum string, carryOut string) {
	return c.st.sum.String(), c.st.cout.String()
}

func lookAhead(a, b Vector4, cin Bit) (st claState) {
	for i := range a {
		st.p[i] = a[i] ^ b[i]
		st.g[i] = a[i] & b[i]
	}
	for i := range st.sum {
		st.sum[i] = st.p[i] ^ cin
	}
	p, g := &st.p, &st.g
	// index 3 is the lsb.
	st.cout = g[3] |
		g[2]&p[3] |
		g[1]&p[2]&p[3] |
		g[0]&p[1]&p[2]&p[3]
	return st
}

// CLAAdd is a single call version of CLAAdder.
//
func CLAAdd(a, b, carryIn string) (sum string, carryOut string, err error) {
	var c CLAAdder
	if err = c.SetInputs(a, b, carryIn); err != nil {
		return "", "", err
	}
	c.ComputeSum()
	sum, carryOut = c.Outputs()
	return sum, carryOut, nil
}
