// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package gatesim is a naive gate-level simulator used to model the binops
adders as wired logic gates.

A circuit is made of parts. Each part is an instance of a PartSpec (its
blueprint) together with its connections: a mapping of the part's pins to
wires in its container. Connections are written as strings:

	gatesim.Xor("a=a[0], b=b[0], out=p[0]")

Bus pins are named name[i] and ranges can be connected at once:

	gatesim.AndNWay(4)("in[0..3]=p[0..3], out=allP")

The special wires "true" and "false" are constant inputs. Unconnected input
pins read false.

Parts are composed into new parts with Chip and run in a Circuit. Every
simulation step updates all components from the previous wire states, so a
signal takes one step per gate to propagate. Combinational circuits are run
with Settle, which steps until no wire changes.
*/
package gatesim
