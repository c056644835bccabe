package component

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"
	"strconv"

	"github.com/pagecraft/pagecraft/dom"
	"github.com/pagecraft/pagecraft/registry"
)

// Factory builds a component node from a flat property map. Factories are
// the open, by-name half of the component system: the registry maps
// component-type names to factories, while the functions in this package
// remain the closed, statically typed half.
type Factory func(props map[string]string) (*dom.Node, error)

// Create looks up a component factory by name and invokes it.
func Create(reg *registry.Registry, name string, props map[string]string) (*dom.Node, error) {
	v, err := reg.Lookup(registry.KindComponent, name)
	if err != nil {
		return nil, err
	}
	f, ok := v.(Factory)
	if !ok {
		return nil, fmt.Errorf("%w: registry entry %q is not a component factory", dom.ErrInvalidNodeState, name)
	}
	return f(props)
}

// RegisterBuiltins binds factories for the built-in component set, so
// gallery-style collaborators can enumerate and instantiate them by name.
func RegisterBuiltins(reg *registry.Registry) error {
	builtins := map[string]Factory{}
	names := []string{} // keep registration order stable
	add := func(name string, f Factory) {
		builtins[name] = f
		names = append(names, name)
	}
	add("Heading", func(p map[string]string) (*dom.Node, error) {
		level := 1
		if l, ok := p["level"]; ok {
			var err error
			if level, err = strconv.Atoi(l); err != nil {
				return nil, fmt.Errorf("%w: heading level %q is not a number", dom.ErrInvalidNodeState, l)
			}
		}
		return Heading(p["text"], level)
	})
	add("Paragraph", func(p map[string]string) (*dom.Node, error) {
		return Paragraph(p["text"]), nil
	})
	add("Image", func(p map[string]string) (*dom.Node, error) {
		return Image(p["src"], p["alt"]), nil
	})
	add("Link", func(p map[string]string) (*dom.Node, error) {
		return Link(p["text"], p["href"]), nil
	})
	add("Card", func(p map[string]string) (*dom.Node, error) {
		return Card(p["title"], p["body"]), nil
	})
	add("Alert", func(p map[string]string) (*dom.Node, error) {
		return Alert(p["message"], p["kind"]), nil
	})
	add("Badge", func(p map[string]string) (*dom.Node, error) {
		return Badge(p["text"], p["kind"]), nil
	})
	add("Button", func(p map[string]string) (*dom.Node, error) {
		return Button(p["text"], p["type"]), nil
	})
	add("ProgressBar", func(p map[string]string) (*dom.Node, error) {
		percent := 0
		if v, ok := p["percent"]; ok {
			var err error
			if percent, err = strconv.Atoi(v); err != nil {
				return nil, fmt.Errorf("%w: progress percent %q is not a number", dom.ErrInvalidNodeState, v)
			}
		}
		return ProgressBar(percent), nil
	})
	add("HeroSection", func(p map[string]string) (*dom.Node, error) {
		return HeroSection(p["title"], p["subtitle"]), nil
	})
	add("FeatureCard", func(p map[string]string) (*dom.Node, error) {
		return FeatureCard(p["icon"], p["title"], p["text"]), nil
	})
	for _, name := range names {
		if err := reg.Register(registry.KindComponent, name, builtins[name]); err != nil {
			return err
		}
	}
	return nil
}
