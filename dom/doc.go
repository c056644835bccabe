/*
Package dom implements the composition tree HTML documents are assembled
from.

A Node is either an element (with a tag), a text fragment (escaped on
output), a raw fragment (emitted verbatim, caller vouches for its safety),
or a transparent grouping node. Nodes carry insertion-ordered attributes,
CSS classes, inline style properties and event handlers; the ordering rules
live in package dom/style.

Tree Implementation

Nodes are built on top of a general purpose tree type (package tree), which
owns the parent/child bookkeeping. In a fully object oriented programming
language we would subclass the tree type; in Go we resort to composition,
embedding a generic tree node in the DOM node type and keeping a payload
reference back to the DOM node.

Ownership of a node is exclusive: attaching an already-parented node
detaches it from its old position first. Structural misuse (children on a
void tag, raw text next to children, cycles) fails immediately at the
mutating call with ErrInvalidNodeState, not later at render time.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'pagecraft.dom'.
func tracer() tracing.Trace {
	return tracing.Select("pagecraft.dom")
}
