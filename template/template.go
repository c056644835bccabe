package template

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pagecraft/pagecraft/dom"
	"github.com/pagecraft/pagecraft/registry"
	"github.com/pagecraft/pagecraft/render"
)

// ErrSlot flags slot misuse. The permissive default mode never raises it:
// unfilled slots resolve to their declared default or to the empty string.
// An engine created with Strict raises it for placeholders that have
// neither a supplied value nor a declared default.
var ErrSlot = errors.New("template slot error")

// Slots maps slot names to replacement content. Values may be strings or
// *dom.Node; a node value is serialized before substitution. Substitution
// is a single left-to-right pass: replacement content is never re-scanned
// for placeholders, so nesting rendered templates into slots cannot recurse.
type Slots map[string]interface{}

// Template is a named markup skeleton containing {{slot}} placeholders,
// each with an optional default value.
type Template struct {
	name     string
	source   string
	defaults map[string]string
}

// Name returns the template's registry name.
func (t *Template) Name() string {
	return t.name
}

// Defaults returns the declared slot defaults.
func (t *Template) Defaults() map[string]string {
	out := make(map[string]string, len(t.defaults))
	for k, v := range t.defaults {
		out[k] = v
	}
	return out
}

// Engine defines and renders templates against a registry.
type Engine struct {
	reg    *registry.Registry
	r      *render.Renderer
	strict bool
}

// Option configures an Engine.
type Option func(*Engine)

// Strict makes unfilled, undeclared slots an error instead of resolving
// them to the empty string.
func Strict() Option {
	return func(e *Engine) { e.strict = true }
}

// New creates a template engine storing its templates in reg.
func New(reg *registry.Registry, opts ...Option) *Engine {
	e := &Engine{reg: reg, r: render.New(reg)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Define registers a template under name. The slot vocabulary is open:
// placeholders in source need not appear in defaults. Re-defining a name is
// a duplicate-registration error.
func (e *Engine) Define(name, source string, defaults map[string]string) (*Template, error) {
	t := &Template{name: name, source: source}
	if len(defaults) > 0 {
		t.defaults = make(map[string]string, len(defaults))
		for k, v := range defaults {
			t.defaults[k] = v
		}
	}
	if err := e.reg.Register(registry.KindTemplate, name, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Render looks up the named template and substitutes its slots: each
// {{slot}} occurrence is replaced by the supplied value if present, else by
// the declared default, else by the empty string (or an ErrSlot in strict
// mode). Named filters from the registry are applied to the result in
// order.
func (e *Engine) Render(name string, values Slots, filters ...string) (string, error) {
	v, err := e.reg.Lookup(registry.KindTemplate, name)
	if err != nil {
		return "", err
	}
	t, ok := v.(*Template)
	if !ok {
		return "", fmt.Errorf("%w: registry entry %q is not a template", ErrSlot, name)
	}
	out, err := e.substitute(t, values)
	if err != nil {
		return "", err
	}
	for _, fname := range filters {
		fv, err := e.reg.Lookup(registry.KindFilter, fname)
		if err != nil {
			return "", err
		}
		f, ok := fv.(func(string) string)
		if !ok {
			return "", fmt.Errorf("%w: registry entry %q is not a filter", ErrSlot, fname)
		}
		out = f(out)
	}
	return out, nil
}

// RenderNode renders the named template and wraps the result in a raw node,
// ready to be attached to a composition tree.
func (e *Engine) RenderNode(name string, values Slots, filters ...string) (*dom.Node, error) {
	out, err := e.Render(name, values, filters...)
	if err != nil {
		return nil, err
	}
	return dom.NewRaw(out), nil
}

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// substitute performs the single substitution pass, scanning source left to
// right. A "{{" without matching "}}" is copied through verbatim.
func (e *Engine) substitute(t *Template, values Slots) (string, error) {
	var b strings.Builder
	src := t.source
	for {
		start := strings.Index(src, openDelim)
		if start < 0 {
			b.WriteString(src)
			break
		}
		end := strings.Index(src[start:], closeDelim)
		if end < 0 {
			b.WriteString(src)
			break
		}
		end += start
		b.WriteString(src[:start])
		slot := strings.TrimSpace(src[start+len(openDelim) : end])
		content, err := e.resolve(t, slot, values)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		src = src[end+len(closeDelim):]
	}
	return b.String(), nil
}

func (e *Engine) resolve(t *Template, slot string, values Slots) (string, error) {
	if v, ok := values[slot]; ok {
		switch content := v.(type) {
		case string:
			return content, nil
		case *dom.Node:
			return e.r.Render(content), nil
		}
		return "", fmt.Errorf("%w: slot %q has unsupported value type %T", ErrSlot, slot, values[slot])
	}
	if def, ok := t.defaults[slot]; ok {
		return def, nil
	}
	if e.strict {
		return "", fmt.Errorf("%w: unfilled slot %q in template %q", ErrSlot, slot, t.name)
	}
	tracer().Debugf("template: slot %q in %q unfilled, resolving to empty", slot, t.name)
	return "", nil
}
