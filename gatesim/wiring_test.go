// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim_test

import (
	"testing"

	"github.com/db47h/binops/gatesim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConnections(t *testing.T) {
	td := []struct {
		in   string
		want gatesim.W
	}{
		{"", gatesim.W{}},
		{"a=x", gatesim.W{"a": "x"}},
		{" a = x ,b=y", gatesim.W{"a": "x", "b": "y"}},
		{"in[0..2]=p[1..3]", gatesim.W{"in[0]": "p[1]", "in[1]": "p[2]", "in[2]": "p[3]"}},
		{"in[0..1]=false", gatesim.W{"in[0]": "false", "in[1]": "false"}},
		{"a=bus[2]", gatesim.W{"a": "bus[2]"}},
	}
	for _, d := range td {
		t.Run(d.in, func(t *testing.T) {
			w, err := gatesim.ParseConnections(d.in)
			require.NoError(t, err)
			assert.Equal(t, d.want, w)
		})
	}
}

func TestParseConnections_errors(t *testing.T) {
	for _, in := range []string{
		"a",
		"a=",
		"=x",
		"a=x,,b=y",
		"in[0..2]=p[0..1]",
		"in[2..0]=p[0..2]",
		"in[0..x]=p",
		"[0..1]=p",
		"a=x, a=y",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := gatesim.ParseConnections(in)
			assert.Error(t, err)
		})
	}
}

func TestIO(t *testing.T) {
	pins, err := gatesim.IO("a[2], sel, b[1]")
	require.NoError(t, err)
	assert.Equal(t, []string{"a[0]", "a[1]", "sel", "b[0]"}, pins)

	pins, err = gatesim.IO("  ")
	require.NoError(t, err)
	assert.Empty(t, pins)

	for _, spec := range []string{"a,,b", "a[0]", "a[", "[2]", "a[-1]"} {
		_, err := gatesim.IO(spec)
		assert.Error(t, err, spec)
	}
}
