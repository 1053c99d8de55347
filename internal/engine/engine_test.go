// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package engine_test

import (
	"fmt"
	"testing"

	"github.com/db47h/binops"
	"github.com/db47h/binops/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSteps = 64

func TestNew(t *testing.T) {
	e, err := engine.New("logic", 0)
	require.NoError(t, err)
	assert.Equal(t, engine.NameLogic, e.Name())

	e, err = engine.New("gates", testSteps)
	require.NoError(t, err)
	assert.Equal(t, engine.NameGates, e.Name())

	_, err = engine.New("gates", 0)
	assert.Error(t, err)
	_, err = engine.New("abacus", testSteps)
	assert.EqualError(t, err, `unknown engine "abacus"`)
}

// Both engines must agree on every input, errors included.
func TestEngines_agree(t *testing.T) {
	logic, err := engine.New(engine.NameLogic, testSteps)
	require.NoError(t, err)
	gates, err := engine.New(engine.NameGates, testSteps)
	require.NoError(t, err)

	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			a, b := fmt.Sprintf("%04b", x), fmt.Sprintf("%04b", y)
			s1, err := logic.RippleCarryAdd(a, b)
			require.NoError(t, err)
			s2, err := gates.RippleCarryAdd(a, b)
			require.NoError(t, err)
			if s1 != s2 {
				t.Fatalf("%s + %s: logic = %s, gates = %s", a, b, s1, s2)
			}
			for _, cin := range []string{"0", "1"} {
				s1, c1, err := logic.CLAAdd(a, b, cin)
				require.NoError(t, err)
				s2, c2, err := gates.CLAAdd(a, b, cin)
				require.NoError(t, err)
				if s1 != s2 || c1 != c2 {
					t.Fatalf("cla(%s, %s, %s): logic = %s/%s, gates = %s/%s", a, b, cin, s1, c1, s2, c2)
				}
			}
		}
	}
}

func TestEngines_invalid(t *testing.T) {
	for _, name := range []string{engine.NameLogic, engine.NameGates} {
		t.Run(name, func(t *testing.T) {
			e, err := engine.New(name, testSteps)
			require.NoError(t, err)

			_, err = e.RippleCarryAdd("101", "0001")
			assert.True(t, binops.IsInvalidInput(err))
			assert.EqualError(t, err, "inputs must be 4-bit binary strings")

			_, _, err = e.CLAAdd("0110", "0102", "0")
			assert.True(t, binops.IsInvalidInput(err))

			_, _, err = e.CLAAdd("0110", "0101", "x")
			assert.True(t, binops.IsInvalidInput(err))
			assert.EqualError(t, err, "carry-in must be 0 or 1")
		})
	}
}

func TestGates_RippleCarryAdd(t *testing.T) {
	g, err := engine.NewGates(testSteps)
	require.NoError(t, err)
	s, err := g.RippleCarryAdd("1111", "0001")
	require.NoError(t, err)
	assert.Equal(t, "10000", s)

	// too few steps to propagate through the adder.
	g, err = engine.NewGates(1)
	require.NoError(t, err)
	_, err = g.RippleCarryAdd("1111", "0001")
	require.Error(t, err)
	assert.False(t, binops.IsInvalidInput(err))
}
