/*
Package render serializes a composition tree into HTML text.

The serializer is a synchronous depth-first pre-order walk. It consults the
node's style accumulator for the computed class/style attributes, escapes
text content, emits raw content verbatim, and honors the void-tag rules of
package dom. Render hooks registered in a registry may extend the attribute
list of every element or wrap its emitted markup.

This implementation will never trade clarity for performance; clients in
need of a streaming, zero-allocation HTML writer should look elsewhere.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'pagecraft.render'.
func tracer() tracing.Trace {
	return tracing.Select("pagecraft.render")
}
