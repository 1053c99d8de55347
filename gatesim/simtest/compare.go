// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package simtest provides utility functions for testing gatesim circuits.
//
package simtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/db47h/binops/gatesim"
)

// MaxExhaustive is the maximum number of input pins for which CompareParts
// tries every combination of inputs. Larger parts get 1<<MaxExhaustive random
// input combinations.
//
const MaxExhaustive = 12

// maxSteps bounds Settle for each input combination.
const maxSteps = 256

func connString(in, out []string, prefix string) string {
	var b strings.Builder
	for _, n := range in {
		if b.Len() > 0 {
			b.WriteRune(',')
		}
		b.WriteString(n)
		b.WriteRune('=')
		b.WriteString(n)
	}
	for _, n := range out {
		if b.Len() > 0 {
			b.WriteRune(',')
		}
		b.WriteString(n)
		b.WriteRune('=')
		b.WriteString(prefix)
		b.WriteString(n)
	}
	return b.String()
}

// CompareParts takes two parts and compares their outputs given the same
// inputs. Both parts must have the same input and output pins.
//
func CompareParts(t *testing.T, part1 gatesim.NewPartFn, part2 gatesim.NewPartFn) {
	t.Helper()

	ps1, ps2 := part1(""), part2("")
	if !equal(ps1.Inputs, ps2.Inputs) {
		t.Fatalf("%s inputs %v != %s inputs %v", ps1.Name, ps1.Inputs, ps2.Name, ps2.Inputs)
	}
	if !equal(ps1.Outputs, ps2.Outputs) {
		t.Fatalf("%s outputs %v != %s outputs %v", ps1.Name, ps1.Outputs, ps2.Name, ps2.Outputs)
	}

	inputs := make([]bool, len(ps1.Inputs))
	outputs := make([][2]bool, len(ps1.Outputs))

	parts := []gatesim.Part{
		part1(connString(ps1.Inputs, ps1.Outputs, "p1.")),
		part2(connString(ps1.Inputs, ps1.Outputs, "p2.")),
	}
	for i, n := range ps1.Inputs {
		k := i
		parts = append(parts, gatesim.Input(func() bool { return inputs[k] })("out="+n))
	}
	for i, o := range ps1.Outputs {
		n := i
		parts = append(parts,
			gatesim.Output(func(b bool) { outputs[n][0] = b })("in=p1."+o),
			gatesim.Output(func(b bool) { outputs[n][1] = b })("in=p2."+o))
	}

	c, err := gatesim.NewCircuit(parts...)
	if err != nil {
		t.Fatal(err)
	}

	errString := func(oname string, ex, got bool) string {
		var b strings.Builder
		for i, n := range ps1.Inputs {
			if b.Len() > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", n, inputs[i])
		}
		return fmt.Sprintf("\nExpected %s => %s=%v\nGot %v", b.String(), oname, ex, got)
	}

	check := func() {
		t.Helper()
		if err := c.Settle(maxSteps); err != nil {
			t.Fatal(err)
		}
		for o, out := range outputs {
			if out[0] != out[1] {
				t.Fatal(errString(ps1.Outputs[o], out[0], out[1]))
			}
		}
	}

	if len(inputs) <= MaxExhaustive {
		for i := 0; i < 1<<uint(len(inputs)); i++ {
			for bit := range inputs {
				inputs[bit] = i&(1<<uint(bit)) != 0
			}
			check()
		}
	} else {
		rnd := rand.New(rand.NewSource(int64(len(inputs))))
		for i := 0; i < 1<<MaxExhaustive; i++ {
			for bit := range inputs {
				inputs[bit] = rnd.Int63()&1 != 0
			}
			check()
		}
	}

	t.Logf("%d components. %d steps", c.Size(), c.Steps())
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
