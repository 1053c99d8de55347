// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package binops

const msgOperands = "inputs must be 4-bit binary strings"

// A Bit is a single binary digit. Valid values are 0 and 1.
//
type Bit uint8

func (b Bit) String() string {
	if b != 0 {
		return "1"
	}
	return "0"
}

// ParseBit parses a single "0" or "1" character.
//
func ParseBit(s string) (Bit, error) {
	switch s {
	case "0":
		return 0, nil
	case "1":
		return 1, nil
	}
	return 0, invalidInput("bit", s, "carry-in must be 0 or 1")
}

// Vector4 is a 4 bits vector. Index 0 holds the most significant bit, index 3
// the least significant one, matching the order of digits in a binary string.
//
type Vector4 [4]Bit

// Vector4Of returns the 4 least significant bits of n.
//
func Vector4Of(n uint64) Vector4 {
	var v Vector4
	for i := range v {
		v[i] = Bit(n>>uint(3-i)) & 1
	}
	return v
}

// Uint returns the value of v.
//
func (v Vector4) Uint() uint64 {
	var n uint64
	for _, b := range v {
		n = n<<1 | uint64(b)
	}
	return n
}

func (v Vector4) String() string {
	var buf [4]byte
	for i, b := range v {
		buf[i] = '0' + byte(b)
	}
	return string(buf[:])
}

func parseVector4(s string) (v Vector4, ok bool) {
	if len(s) != len(v) {
		return v, false
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			v[i] = 1
		default:
			return v, false
		}
	}
	return v, true
}

// ParseVector4 parses a string of exactly four '0' or '1' characters.
//
func ParseVector4(s string) (Vector4, error) {
	v, ok := parseVector4(s)
	if !ok {
		return v, invalidInput("parse", s, msgOperands)
	}
	return v, nil
}

// ParseOperands parses the two operands of a 4-bit adder. op names the
// operation in the returned error.
//
func ParseOperands(op, a, b string) (va, vb Vector4, err error) {
	va, ok := parseVector4(a)
	if !ok {
		return va, vb, invalidInput(op, a, msgOperands)
	}
	vb, ok = parseVector4(b)
	if !ok {
		return va, vb, invalidInput(op, b, msgOperands)
	}
	return va, vb, nil
}
