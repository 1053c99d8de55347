// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package binops_test

import (
	"strconv"
	"testing"
	"testing/quick"

	"github.com/db47h/binops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryToDecimal(t *testing.T) {
	td := []struct {
		in   string
		want uint64
	}{
		{"0", 0},
		{"1", 1},
		{"0011", 3},
		{"1010", 10},
		{"10000", 16},
		{"0000000011111111", 255},
		{"1111111111111111111111111111111111111111111111111111111111111111", 1<<64 - 1},
	}
	for _, d := range td {
		t.Run(d.in, func(t *testing.T) {
			got, err := binops.BinaryToDecimal(d.in)
			require.NoError(t, err)
			assert.Equal(t, d.want, got)
		})
	}
}

func TestBinaryToDecimal_invalid(t *testing.T) {
	for _, in := range []string{"", "2", "10a1", "0b101", "-101", " 101", "1_0",
		"10000000000000000000000000000000000000000000000000000000000000000"} {
		t.Run(in, func(t *testing.T) {
			_, err := binops.BinaryToDecimal(in)
			require.Error(t, err)
			assert.True(t, binops.IsInvalidInput(err))
		})
	}
}

func TestDecimalToBinary(t *testing.T) {
	td := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"1", "1"},
		{"2", "10"},
		{"10", "1010"},
		{"007", "111"},
		{" 15\n", "1111"},
		{"-0", "0"},
		{"18446744073709551615", "1111111111111111111111111111111111111111111111111111111111111111"},
	}
	for _, d := range td {
		t.Run(d.in, func(t *testing.T) {
			got, err := binops.DecimalToBinary(d.in)
			require.NoError(t, err)
			assert.Equal(t, d.want, got)
		})
	}
}

func TestDecimalToBinary_invalid(t *testing.T) {
	td := []struct {
		in  string
		msg string
	}{
		{"", "invalid decimal number"},
		{"abc", "invalid decimal number"},
		{"1.5", "invalid decimal number"},
		{"0x10", "invalid decimal number"},
		{"-3", "negative numbers are not supported"},
		{"18446744073709551616", "out of range"},
	}
	for _, d := range td {
		t.Run(d.in, func(t *testing.T) {
			got, err := binops.DecimalToBinary(d.in)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, binops.IsInvalidInput(err))
			assert.Contains(t, err.Error(), d.msg)
		})
	}
}

func TestConversion_roundTrip(t *testing.T) {
	f := func(n uint64) bool {
		s, err := binops.DecimalToBinary(strconv.FormatUint(n, 10))
		if err != nil {
			return false
		}
		m, err := binops.BinaryToDecimal(s)
		return err == nil && m == n
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

// the sum of two operands read back in decimal is the integer sum.
func TestRippleCarryAdd_decimal(t *testing.T) {
	f := func(x, y uint8) bool {
		a, b := binops.Vector4Of(uint64(x)), binops.Vector4Of(uint64(y))
		sum, err := binops.RippleCarryAdd(a.String(), b.String())
		if err != nil {
			return false
		}
		n, err := binops.BinaryToDecimal(sum)
		return err == nil && n == a.Uint()+b.Uint()
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}
