/*
Package pagecraft assembles trees of typed component nodes and serializes
them deterministically into HTML documents.

The work happens in the sub-packages: dom holds the composition tree,
render serializes it, cssom builds stylesheets, template substitutes slots
in reusable markup fragments, registry carries the extension points, page
wraps everything into a document, and component ships the built-in
component set. This package only wires them together for the common case.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package pagecraft

import (
	"github.com/pagecraft/pagecraft/component"
	"github.com/pagecraft/pagecraft/registry"
	"github.com/pagecraft/pagecraft/template"
)

// Bootstrap creates a registry populated with the built-in components and
// templates, plus a template engine bound to it. The registry is returned
// unfrozen: callers register their own extensions during startup and call
// Freeze before rendering concurrently.
func Bootstrap(opts ...template.Option) (*registry.Registry, *template.Engine, error) {
	reg := registry.New()
	if err := component.RegisterBuiltins(reg); err != nil {
		return nil, nil, err
	}
	eng := template.New(reg, opts...)
	if err := template.DefineBuiltins(eng); err != nil {
		return nil, nil, err
	}
	return reg, eng, nil
}
