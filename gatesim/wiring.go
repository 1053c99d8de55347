// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Constant wire names.
//
const (
	True  = "true"
	False = "false"
)

// W is a set of wires, connecting a part's pins (the map key) to wires in its
// container.
//
type W map[string]string

// ParseConnections parses a connection string like "a=x, b[0..1]=bus[2..3]"
// into a W. An empty string yields an empty W.
//
// Ranges on both sides must have the same size, unless the right hand side is
// a single wire, in which case all the pins on the left are connected to it.
//
func ParseConnections(c string) (W, error) {
	w := make(W)
	if strings.TrimSpace(c) == "" {
		return w, nil
	}
	for _, conn := range strings.Split(c, ",") {
		kv := strings.SplitN(conn, "=", 2)
		if len(kv) != 2 {
			return nil, errors.Errorf("in %q: invalid connection %q", c, strings.TrimSpace(conn))
		}
		k, v := strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])
		if k == "" || v == "" {
			return nil, errors.Errorf("in %q: invalid pin mapping %s=%s", c, k, v)
		}
		ks, err := expandRange(k)
		if err != nil {
			return nil, errors.Wrap(err, "expand pin "+k)
		}
		vs, err := expandRange(v)
		if err != nil {
			return nil, errors.Wrap(err, "expand wire "+v)
		}
		switch {
		case len(ks) == len(vs):
		case len(vs) == 1:
			// many to one
			for len(vs) < len(ks) {
				vs = append(vs, vs[0])
			}
		default:
			return nil, errors.New("pin count mismatch in pin mapping: " + k + "=" + v)
		}
		for i, k := range ks {
			if _, ok := w[k]; ok {
				return nil, errors.Errorf("in %q: pin %s connected more than once", c, k)
			}
			w[k] = vs[i]
		}
	}
	return w, nil
}

// expandRange expands name[start..end] into individual bus pin names.
//
func expandRange(name string) ([]string, error) {
	i := strings.IndexRune(name, '[')
	if i < 0 {
		return []string{name}, nil
	}
	bus := name[:i]
	if bus == "" {
		return nil, errors.New("empty bus name")
	}
	n := name[i+1:]
	i = strings.Index(n, "..")
	if i < 0 {
		return []string{name}, nil
	}
	start, err := strconv.Atoi(n[:i])
	if err != nil {
		return nil, err
	}
	n = n[i+2:]
	i = strings.IndexRune(n, ']')
	if i < 0 {
		return nil, errors.New("no terminating ] in bus range")
	}
	end, err := strconv.Atoi(n[:i])
	if err != nil {
		return nil, err
	}
	if end < start {
		return nil, errors.Errorf("invalid bus range %d..%d", start, end)
	}
	r := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		r = append(r, BusPinName(bus, i))
	}
	return r, nil
}

// BusPinName returns the name of pin i of the named bus.
//
func BusPinName(bus string, i int) string {
	return bus + "[" + strconv.Itoa(i) + "]"
}

// IO expands an input or output specification like "a[4], sel" into
// individual pin names: "a[0]", "a[1]", "a[2]", "a[3]", "sel".
//
func IO(spec string) ([]string, error) {
	var out []string
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}
	for _, p := range strings.Split(spec, ",") {
		p = strings.TrimSpace(p)
		i := strings.IndexRune(p, '[')
		if i < 0 {
			if p == "" {
				return nil, errors.Errorf("in %q: expected pin name", spec)
			}
			out = append(out, p)
			continue
		}
		if i == 0 || !strings.HasSuffix(p, "]") {
			return nil, errors.Errorf("in %q: invalid bus specification %q", spec, p)
		}
		size, err := strconv.Atoi(p[i+1 : len(p)-1])
		if err != nil || size <= 0 {
			return nil, errors.Errorf("in %q: invalid bus size in %q", spec, p)
		}
		for j := 0; j < size; j++ {
			out = append(out, BusPinName(p[:i], j))
		}
	}
	return out, nil
}

// checkParts validates the connections of parts within a container whose
// input pins are ins. It returns the set of wires driven by part outputs.
//
func checkParts(ins []string, parts []Part) (map[string]string, error) {
	isIn := make(map[string]bool, len(ins))
	for _, in := range ins {
		isIn[in] = true
	}
	driven := make(map[string]string)
	for _, p := range parts {
		pins := make(map[string]bool, len(p.Inputs)+len(p.Outputs))
		for _, in := range p.Inputs {
			pins[in] = true
		}
		for _, o := range p.Outputs {
			pins[o] = false
		}
		for k, v := range p.Conns {
			input, ok := pins[k]
			if !ok {
				return nil, errors.New("invalid pin name " + k + " for part " + p.Name)
			}
			if input {
				continue
			}
			switch {
			case v == True || v == False:
				return nil, errors.New(p.Name + "." + k + ": output pin connected to constant " + v)
			case isIn[v]:
				return nil, errors.New(p.Name + "." + k + ": output pin connected to input " + v)
			}
			if org, ok := driven[v]; ok {
				return nil, errors.New(p.Name + "." + k + ": wire " + v + " already driven by " + org)
			}
			driven[v] = p.Name + "." + k
		}
	}
	return driven, nil
}
