// This file is part of this software.

// Package busgraph renders the bus's static region table as a Graphviz dot
// graph, for developers inspecting the address map without stepping
// through a debugger session.
package busgraph

import (
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/Davidslv/zigpod-sub010/hardware/memory/bus"
)

// Dump writes a dot-format graph of regions to w.
func Dump(w io.Writer, regions []bus.Region) {
	memviz.Map(w, &regions)
}
