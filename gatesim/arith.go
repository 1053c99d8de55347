// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"strconv"
)

var hAdder = &PartSpec{
	Name:    "HalfAdder",
	Inputs:  []string{pA, pB},
	Outputs: []string{"s", "c"},
	Mount: func(s *Socket) []Component {
		a, b := s.Pin(pA), s.Pin(pB)
		sum, cout := s.Pin("s"), s.Pin("c")
		return []Component{
			func(c *Circuit) {
				va, vb := c.Get(a), c.Get(b)
				c.Set(sum, va != vb)
				c.Set(cout, va && vb)
			}}
	}}

// HalfAdder returns a half adder.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
func HalfAdder(c string) Part {
	return hAdder.NewPart(c)
}

var adder = &PartSpec{
	Name:    "FullAdder",
	Inputs:  []string{pA, pB, "cin"},
	Outputs: []string{"s", "cout"},
	Mount: func(s *Socket) []Component {
		a, b, cin := s.Pin(pA), s.Pin(pB), s.Pin("cin")
		sum, cout := s.Pin("s"), s.Pin("cout")
		return []Component{
			func(c *Circuit) {
				va, vb, cin := c.Get(a), c.Get(b), c.Get(cin)
				p := va != vb
				c.Set(sum, p != cin)
				c.Set(cout, p && cin || va && vb)
			}}
	}}

// FullAdder returns a 3 bit adder.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder(c string) Part {
	return adder.NewPart(c)
}

// AdderN returns a N-bits adder. Bus pin 0 is the lsb.
//
//	Inputs: a[bits], b[bits], cin
//	Outputs: s[bits], cout
//	Function: s = lsb(a + b + cin)
//	          cout = carry out of the msb
//
func AdderN(bits int) NewPartFn {
	adderN := &PartSpec{
		Name:    "Adder" + strconv.Itoa(bits),
		Inputs:  append(bus(bits, pA, pB), "cin"),
		Outputs: append(bus(bits, "s"), "cout"),
		Mount: func(s *Socket) []Component {
			a, b, cin := s.Bus(pA, bits), s.Bus(pB, bits), s.Pin("cin")
			out, cout := s.Bus("s", bits), s.Pin("cout")
			return []Component{
				func(c *Circuit) {
					cc := c.Get(cin)
					for i, o := range out {
						va, vb := c.Get(a[i]), c.Get(b[i])
						p := va != vb
						c.Set(o, p != cc)
						cc = va && vb || p && cc
					}
					c.Set(cout, cc)
				}}
		}}
	return adderN.NewPart
}

// RippleAdder4 returns a 4 bits ripple-carry adder made of full adders. It has
// the same pins as AdderN(4).
//
func RippleAdder4() (NewPartFn, error) {
	return Chip("RippleAdder4", "a[4], b[4], cin", "s[4], cout",
		FullAdder("a=a[0], b=b[0], cin=cin, s=s[0], cout=c1"),
		FullAdder("a=a[1], b=b[1], cin=c1, s=s[1], cout=c2"),
		FullAdder("a=a[2], b=b[2], cin=c2, s=s[2], cout=c3"),
		FullAdder("a=a[3], b=b[3], cin=c3, s=s[3], cout=cout"),
	)
}

// CLA4 returns the 4 bits carry-look-ahead adder modeled by binops.CLAAdder.
//
// Propagate and generate signals are computed for each bit. The carry-in is
// applied to every sum bit and only the carry-out goes through the look-ahead
// logic:
//
//	Inputs: a[4], b[4], cin
//	Outputs: s[4], cout
//	Function: p[i] = a[i] ^ b[i]
//	          g[i] = a[i] && b[i]
//	          s[i] = p[i] ^ cin
//	          cout = g[0] || g[1] && p[0] || g[2] && p[1] && p[0] || g[3] && p[2] && p[1] && p[0]
//
func CLA4() (NewPartFn, error) {
	and3, and4, or4 := AndNWay(3), AndNWay(4), OrNWay(4)
	return Chip("CLA4", "a[4], b[4], cin", "s[4], cout",
		Xor("a=a[0], b=b[0], out=p[0]"),
		Xor("a=a[1], b=b[1], out=p[1]"),
		Xor("a=a[2], b=b[2], out=p[2]"),
		Xor("a=a[3], b=b[3], out=p[3]"),
		And("a=a[0], b=b[0], out=g[0]"),
		And("a=a[1], b=b[1], out=g[1]"),
		And("a=a[2], b=b[2], out=g[2]"),
		And("a=a[3], b=b[3], out=g[3]"),

		Xor("a=p[0], b=cin, out=s[0]"),
		Xor("a=p[1], b=cin, out=s[1]"),
		Xor("a=p[2], b=cin, out=s[2]"),
		Xor("a=p[3], b=cin, out=s[3]"),

		And("a=g[1], b=p[0], out=t1"),
		and3("in[0]=g[2], in[1..2]=p[0..1], out=t2"),
		and4("in[0]=g[3], in[1..3]=p[0..2], out=t3"),
		or4("in[0]=g[0], in[1]=t1, in[2]=t2, in[3]=t3, out=cout"),
	)
}
