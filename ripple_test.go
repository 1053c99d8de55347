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

func TestRippleCarryAdd(t *testing.T) {
	td := []struct {
		a, b string
		want string
	}{
		{"0000", "0000", "0000"},
		{"0011", "0001", "0100"},
		{"0101", "0101", "1010"},
		{"1000", "1000", "10000"},
		{"1111", "0001", "10000"},
		{"1111", "1111", "11110"},
	}
	for _, d := range td {
		t.Run(d.a+"+"+d.b, func(t *testing.T) {
			got, err := binops.RippleCarryAdd(d.a, d.b)
			require.NoError(t, err)
			assert.Equal(t, d.want, got)
		})
	}
}

// every pair of operands must match integer addition.
func TestRippleCarryAdd_exhaustive(t *testing.T) {
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			a, b := fmt.Sprintf("%04b", x), fmt.Sprintf("%04b", y)
			got, err := binops.RippleCarryAdd(a, b)
			if err != nil {
				t.Fatal(err)
			}
			if want := fmt.Sprintf("%04b", x+y); got != want {
				t.Errorf("%s + %s = %s, got %s", a, b, want, got)
			}
			if x+y >= 16 && len(got) != 5 {
				t.Errorf("%s + %s: expected a carry digit, got %s", a, b, got)
			}
		}
	}
}

func TestRippleCarryAdd_invalid(t *testing.T) {
	td := []struct {
		name string
		a, b string
	}{
		{"short", "101", "0001"},
		{"long", "00001", "0001"},
		{"non binary", "102", "0011"},
		{"non binary 4 chars", "0120", "0011"},
		{"second operand", "0011", "001x"},
		{"empty", "", ""},
		{"spaces", " 011", "0011"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			got, err := binops.RippleCarryAdd(d.a, d.b)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, binops.IsInvalidInput(err))
			assert.Contains(t, err.Error(), "must be 4-bit binary strings")
		})
	}
}
