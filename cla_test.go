// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package binops_test

import (
	"fmt"
	"testing"

	"github.com/db47h/binops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bit returns bit i of the binary string s. Index 0 is the msb.
func bit(s string, i int) int {
	return int(s[i] - '0')
}

// claCarry computes the look-ahead carry-out from scratch.
func claCarry(a, b string) int {
	var p, g [4]int
	for i := range p {
		p[i] = bit(a, i) ^ bit(b, i)
		g[i] = bit(a, i) & bit(b, i)
	}
	return g[3] | (g[2] & p[3]) | (g[1] & p[2] & p[3]) | (g[0] & p[1] & p[2] & p[3])
}

func TestCLAAdder(t *testing.T) {
	var c binops.CLAAdder
	require.NoError(t, c.SetInputs("0110", "0101", "0"))
	c.ComputeSum()
	sum, cout := c.Outputs()
	// P = 0011, G = 0100, Cout = G[1]&P[2]&P[3]
	assert.Equal(t, "0011", sum)
	assert.Equal(t, "1", cout)
}

func TestCLAAdder_exhaustive(t *testing.T) {
	var c binops.CLAAdder
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			for cin := 0; cin < 2; cin++ {
				a, b, ci := fmt.Sprintf("%04b", x), fmt.Sprintf("%04b", y), fmt.Sprint(cin)
				if err := c.SetInputs(a, b, ci); err != nil {
					t.Fatal(err)
				}
				c.ComputeSum()
				sum, cout := c.Outputs()
				if want := fmt.Sprint(claCarry(a, b)); cout != want {
					t.Errorf("cout(%s, %s, %s) = %s, got %s", a, b, ci, want, cout)
				}
				if want := fmt.Sprintf("%04b", (x^y)^(cin*0xf)); sum != want {
					t.Errorf("sum(%s, %s, %s) = %s, got %s", a, b, ci, want, sum)
				}
			}
		}
	}
}

func TestCLAAdder_reuse(t *testing.T) {
	var c binops.CLAAdder

	require.NoError(t, c.SetInputs("1111", "1111", "1"))
	c.ComputeSum()
	sum, cout := c.Outputs()
	assert.Equal(t, "1111", sum)
	assert.Equal(t, "1", cout)

	require.NoError(t, c.SetInputs("0001", "0100", "0"))
	sum, cout = c.Outputs()
	assert.Equal(t, "0000", sum, "outputs must be cleared by SetInputs")
	assert.Equal(t, "0", cout)
	c.ComputeSum()
	sum, cout = c.Outputs()
	assert.Equal(t, "0101", sum)
	assert.Equal(t, "0", cout)

	// a rejected input must not alter the adder.
	require.Error(t, c.SetInputs("0001", "01", "0"))
	c.ComputeSum()
	sum, cout = c.Outputs()
	assert.Equal(t, "0101", sum)
	assert.Equal(t, "0", cout)
}

func TestCLAAdder_invalid(t *testing.T) {
	td := []struct {
		name      string
		a, b, cin string
		msg       string
	}{
		{"short a", "011", "0101", "0", "must be 4-bit binary strings"},
		{"non binary b", "0110", "0201", "0", "must be 4-bit binary strings"},
		{"carry 2", "0110", "0101", "2", "carry-in must be 0 or 1"},
		{"empty carry", "0110", "0101", "", "carry-in must be 0 or 1"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			sum, cout, err := binops.CLAAdd(d.a, d.b, d.cin)
			require.Error(t, err)
			assert.True(t, binops.IsInvalidInput(err))
			assert.Contains(t, err.Error(), d.msg)
			assert.Empty(t, sum)
			assert.Empty(t, cout)
		})
	}
}

func TestCLAAdd(t *testing.T) {
	sum, cout, err := binops.CLAAdd("0110", "0101", "0")
	require.NoError(t, err)
	assert.Equal(t, "0011", sum)
	assert.Equal(t, "1", cout)

	// no position generates or propagates a carry: true binary sum.
	sum, cout, err = binops.CLAAdd("1010", "0101", "0")
	require.NoError(t, err)
	assert.Equal(t, "1111", sum)
	assert.Equal(t, "0", cout)
}
