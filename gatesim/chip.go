// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"github.com/pkg/errors"
)

type chip struct {
	PartSpec
	parts []Part
}

// mount mounts all sub-parts. Wires that are not chip pins are private to
// this instance of the chip.
//
func (c *chip) mount(s *Socket) []Component {
	var cs []Component
	for _, p := range c.parts {
		cs = append(cs, s.mount(p)...)
	}
	return cs
}

// Chip composes existing parts into a new part packaged into a chip. inputs
// and outputs are IO specifications for the pins of the chip.
//
// An Xor gate could be created like this:
//
//	xor, err := Chip("XOR", "a, b", "out",
//		Nand("a=a, b=b, out=nandAB"),
//		Nand("a=a, b=nandAB, out=w0"),
//		Nand("a=b, b=nandAB, out=w1"),
//		Nand("a=w0, b=w1, out=out"),
//	)
//
// The returned value is a NewPartFn that can be used to compose the new part
// with others into other chips:
//
//	xnor, err := Chip("XNOR", "a, b", "out",
//		xor("a=a, b=b, out=xorAB"),
//		Not("in=xorAB, out=out"),
//	)
//
func Chip(name string, inputs, outputs string, parts ...Part) (NewPartFn, error) {
	ins, err := IO(inputs)
	if err != nil {
		return nil, errors.Wrap(err, name+": inputs")
	}
	outs, err := IO(outputs)
	if err != nil {
		return nil, errors.Wrap(err, name+": outputs")
	}
	driven, err := checkParts(ins, parts)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	for _, o := range outs {
		if _, ok := driven[o]; !ok {
			return nil, errors.New(name + ": output pin " + o + " not connected to any part output")
		}
	}

	c := &chip{
		PartSpec{
			Name:    name,
			Inputs:  ins,
			Outputs: outs,
		},
		parts,
	}
	c.PartSpec.Mount = c.mount
	return c.PartSpec.NewPart, nil
}
