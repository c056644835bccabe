/*
Package template implements named, reusable markup fragments with slot
substitution.

A template is a markup skeleton containing {{slot}} placeholders, each with
an optional default value. Rendering substitutes caller-supplied values (or
defaults) in a single left-to-right pass; replacement content is never
re-scanned, so nested template output cannot recurse. The slot vocabulary
is open by default (unknown placeholders resolve to the empty string), with
an opt-in strict mode that rejects unfilled, undeclared slots.

Templates live in a registry (package registry) under the template kind, so
third parties can ship their own alongside the built-ins.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package template

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'pagecraft.template'.
func tracer() tracing.Trace {
	return tracing.Select("pagecraft.template")
}
