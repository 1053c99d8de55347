// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"github.com/pkg/errors"
)

// A Component is a component in a circuit that can Get and Set wire states.
//
type Component func(c *Circuit)

// A MountFn mounts a part into socket s. MountFn's should query the socket for
// assigned pin numbers and return closures around these pin numbers.
//
// For example, a Not gate can be defined like this:
//
//	not := &PartSpec{
//		Name:    "Not",
//		Inputs:  []string{"in"},
//		Outputs: []string{"out"},
//		Mount: func(s *Socket) []Component {
//			in, out := s.Pin("in"), s.Pin("out")
//			return []Component{
//				func(c *Circuit) { c.Set(out, !c.Get(in)) },
//			}
//		}}
//
type MountFn func(s *Socket) []Component

// A PartSpec wraps a part specification (its blueprint).
//
type PartSpec struct {
	// Part name.
	Name string
	// Input pin names. Must be distinct pin names.
	// Use IO to expand a description like "a[2], sel".
	Inputs []string
	// Output pin names. Must be distinct pin names.
	Outputs []string

	// Mount function (see MountFn).
	Mount MountFn
}

// NewPart is a NewPartFn that wraps p with the given connections into a Part.
// It panics if the connection string is malformed. Connection to pins that p
// does not have are reported when the part is used in a Chip or Circuit.
//
func (p *PartSpec) NewPart(connections string) Part {
	w, err := ParseConnections(connections)
	if err != nil {
		panic(err)
	}
	return Part{p, w}
}

// A NewPartFn is a function that takes a connection string and returns a new
// Part. See ParseConnections for the syntax of the connection string.
//
type NewPartFn func(c string) Part

// A Part wraps a part specification together with its connections within a
// host chip or circuit.
//
type Part struct {
	*PartSpec
	Conns W
}

// Circuit is a runnable circuit simulation.
//
type Circuit struct {
	s0    []bool // wire states frame #0
	s1    []bool // wire states frame #1
	cs    []Component
	count int // wire count
	steps uint
}

// NewCircuit builds a new circuit based on the given parts.
//
func NewCircuit(parts ...Part) (*Circuit, error) {
	if len(parts) == 0 {
		return nil, errors.New("empty part list")
	}
	if _, err := checkParts(nil, parts); err != nil {
		return nil, errors.Wrap(err, "failed to create circuit")
	}

	// new circuit with room for constant value pins.
	cc := &Circuit{count: cstCount}
	s := newSocket(cc)
	for _, p := range parts {
		cc.cs = append(cc.cs, s.mount(p)...)
	}
	cc.s0 = make([]bool, cc.count)
	cc.s1 = make([]bool, cc.count)
	cc.s0[cstTrue] = true
	cc.s1[cstTrue] = true
	return cc, nil
}

// allocPin allocates a pin and returns its number.
//
func (c *Circuit) allocPin() int {
	cnt := c.count
	c.count++
	return cnt
}

// Get returns the state of pin n. The value of n should be obtained in a
// MountFn by a call to one of the Socket methods.
//
func (c *Circuit) Get(n int) bool {
	return c.s0[n]
}

// Set sets the state s of pin n for the next simulation step.
//
func (c *Circuit) Set(n int, s bool) {
	c.s1[n] = s
}

// Step advances the simulation by one step.
//
func (c *Circuit) Step() {
	for _, f := range c.cs {
		f(c)
	}
	c.steps++
	c.s0, c.s1 = c.s1, c.s0
	if c.s0[cstFalse] || !c.s0[cstTrue] {
		panic("true or false constants have been overwritten")
	}
}

// Steps returns the value of the step counter.
//
func (c *Circuit) Steps() uint {
	return c.steps
}

// Settle runs the simulation until the state of every wire is the same for
// two consecutive steps. It returns an error if this does not happen within
// maxSteps steps, which is the case of circuits with feedback loops like
// oscillators or when maxSteps is less than the circuit depth.
//
func (c *Circuit) Settle(maxSteps int) error {
	for i := 0; i < maxSteps; i++ {
		c.Step()
		if c.stable() {
			return nil
		}
	}
	return errors.Errorf("circuit did not settle after %d steps", maxSteps)
}

func (c *Circuit) stable() bool {
	for i, s := range c.s0 {
		if c.s1[i] != s {
			return false
		}
	}
	return true
}

// Size returns the component count in the circuit.
//
func (c *Circuit) Size() int { return len(c.cs) }
