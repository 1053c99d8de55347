// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package engine selects how additions are computed: by the binops logic
// functions or by simulating the equivalent gate circuits.
//
package engine

import (
	"github.com/db47h/binops"
	"github.com/db47h/binops/gatesim"
	"github.com/pkg/errors"
)

// Engine names.
//
const (
	NameLogic = "logic"
	NameGates = "gates"
)

// An Engine performs 4-bit additions on binary strings. Both engines validate
// inputs the same way and return the same *binops.InvalidInputError values.
//
type Engine interface {
	Name() string
	RippleCarryAdd(a, b string) (string, error)
	CLAAdd(a, b, carryIn string) (sum string, carryOut string, err error)
}

// New returns the engine with the given name. maxSteps bounds the simulation
// of gate circuits and is ignored by the logic engine.
//
func New(name string, maxSteps int) (Engine, error) {
	switch name {
	case NameLogic:
		return Logic{}, nil
	case NameGates:
		g, err := NewGates(maxSteps)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	return nil, errors.Errorf("unknown engine %q", name)
}

// Logic is the Engine backed by the binops package.
//
type Logic struct{}

// Name implements Engine.
func (Logic) Name() string { return NameLogic }

// RippleCarryAdd implements Engine.
func (Logic) RippleCarryAdd(a, b string) (string, error) {
	return binops.RippleCarryAdd(a, b)
}

// CLAAdd implements Engine.
func (Logic) CLAAdd(a, b, carryIn string) (string, string, error) {
	return binops.CLAAdd(a, b, carryIn)
}

// Gates is the Engine that simulates gatesim.RippleAdder4 and gatesim.CLA4.
//
type Gates struct {
	ripple   gatesim.NewPartFn
	cla      gatesim.NewPartFn
	maxSteps int
}

// NewGates builds the adder chips.
//
func NewGates(maxSteps int) (*Gates, error) {
	if maxSteps <= 0 {
		return nil, errors.Errorf("invalid simulation step limit %d", maxSteps)
	}
	ripple, err := gatesim.RippleAdder4()
	if err != nil {
		return nil, errors.Wrap(err, "ripple-carry adder")
	}
	cla, err := gatesim.CLA4()
	if err != nil {
		return nil, errors.Wrap(err, "carry-look-ahead adder")
	}
	return &Gates{ripple: ripple, cla: cla, maxSteps: maxSteps}, nil
}

// Name implements Engine.
func (g *Gates) Name() string { return NameGates }

// RippleCarryAdd implements Engine.
func (g *Gates) RippleCarryAdd(a, b string) (string, error) {
	va, vb, err := binops.ParseOperands("add", a, b)
	if err != nil {
		return "", err
	}
	sum, cout, err := gatesim.Eval4(g.ripple, int64(va.Uint()), int64(vb.Uint()), false, g.maxSteps)
	if err != nil {
		return "", err
	}
	s := binops.Vector4Of(uint64(sum)).String()
	if cout {
		return "1" + s, nil
	}
	return s, nil
}

// CLAAdd implements Engine.
func (g *Gates) CLAAdd(a, b, carryIn string) (string, string, error) {
	va, vb, err := binops.ParseOperands("cla", a, b)
	if err != nil {
		return "", "", err
	}
	cin, err := binops.ParseBit(carryIn)
	if err != nil {
		return "", "", err
	}
	sum, cout, err := gatesim.Eval4(g.cla, int64(va.Uint()), int64(vb.Uint()), cin != 0, g.maxSteps)
	if err != nil {
		return "", "", err
	}
	c := binops.Bit(0)
	if cout {
		c = 1
	}
	return binops.Vector4Of(uint64(sum)).String(), c.String(), nil
}
