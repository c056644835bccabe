/*
Package cssom implements programmatic stylesheet construction.

A RuleSet is an ordered sequence of rules, optionally decorated with
per-breakpoint property overrides and keyframe blocks. Rendering emits base
rule bodies in declaration order, then one @media block per referenced
breakpoint in ascending min-width order, regardless of the order the
overrides were declared, so that cascade precedence follows viewport width.
Keyframe blocks come last.

Selectors are validated at build time (package cascadia); existing CSS text
can be imported with Parse (package douceur). Malformed input is a
ConfigurationError at the call that supplied it, never a silent drop.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'pagecraft.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("pagecraft.cssom")
}
