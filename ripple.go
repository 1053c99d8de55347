// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package binops

// RippleCarryAdd adds two 4-bit binary strings with a ripple-carry adder.
//
// The result holds the four sum bits, most significant first. If the last
// stage carries out, the carry is prepended and the result is 5 characters
// long:
//
//	RippleCarryAdd("0011", "0001") // "0100"
//	RippleCarryAdd("1111", "0001") // "10000"
//
func RippleCarryAdd(a, b string) (string, error) {
	va, vb, err := ParseOperands("add", a, b)
	if err != nil {
		return "", err
	}
	sum, carry := rippleCarry(va, vb)
	if carry != 0 {
		return carry.String() + sum.String(), nil
	}
	return sum.String(), nil
}

func rippleCarry(a, b Vector4) (sum Vector4, carry Bit) {
	for i := len(a) - 1; i >= 0; i-- {
		p := a[i] ^ b[i]
		sum[i] = p ^ carry
		carry = a[i]&b[i] | p&carry
	}
	return sum, carry
}
