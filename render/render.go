package render

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/pagecraft/pagecraft/dom"
	"github.com/pagecraft/pagecraft/dom/style"
	"github.com/pagecraft/pagecraft/registry"
)

// Hook is a render-time extension point, registered under
// registry.KindRenderHook. The renderer calls Attributes after a node's
// attribute list has been computed and before children are rendered; it
// calls Wrap with the node's complete markup. Either field may be nil.
type Hook struct {
	Attributes func(n *dom.Node, attrs []style.KeyValue) []style.KeyValue
	Wrap       func(n *dom.Node, markup string) string
}

// Renderer serializes a node tree into HTML text. A Renderer is a pure
// function of the tree it is given: rendering an unmutated tree twice yields
// byte-identical output.
type Renderer struct {
	reg *registry.Registry
}

// New creates a renderer consulting reg for render hooks. reg may be nil,
// in which case no hooks run.
func New(reg *registry.Registry) *Renderer {
	return &Renderer{reg: reg}
}

// HTML serializes a node tree without any render hooks.
func HTML(n *dom.Node) string {
	return New(nil).Render(n)
}

// Render serializes the tree rooted at n. Text content is HTML-escaped;
// raw content is emitted verbatim. Void tags are serialized without closing
// tag. A node with empty tag and no literal content renders as the
// concatenation of its children.
func (r *Renderer) Render(n *dom.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	r.renderNode(&b, n, r.hooks())
	return b.String()
}

func (r *Renderer) hooks() []Hook {
	if r.reg == nil {
		return nil
	}
	names := r.reg.ListAll(registry.KindRenderHook)
	hooks := make([]Hook, 0, len(names))
	for _, name := range names {
		v, err := r.reg.Lookup(registry.KindRenderHook, name)
		if err != nil {
			continue
		}
		h, ok := v.(Hook)
		if !ok {
			tracer().Errorf("render: hook %q is not a render.Hook, skipping", name)
			continue
		}
		hooks = append(hooks, h)
	}
	return hooks
}

func (r *Renderer) renderNode(b *strings.Builder, n *dom.Node, hooks []Hook) {
	if n.Tag() == "" {
		switch {
		case n.IsRaw():
			b.WriteString(n.RawText())
		case n.IsText():
			b.WriteString(html.EscapeString(n.Text()))
		default: // transparent grouping node
			for _, ch := range n.ChildNodes() {
				r.renderNode(b, ch, hooks)
			}
		}
		return
	}

	out := b
	wrapped := false
	for _, h := range hooks {
		if h.Wrap != nil {
			wrapped = true
			out = &strings.Builder{}
			break
		}
	}

	out.WriteByte('<')
	out.WriteString(n.Tag())
	attrs := computedAttrs(n)
	for _, h := range hooks {
		if h.Attributes != nil {
			attrs = h.Attributes(n, attrs)
		}
	}
	for _, a := range attrs {
		out.WriteByte(' ')
		out.WriteString(a.Key)
		out.WriteString(`="`)
		out.WriteString(html.EscapeString(a.Value))
		out.WriteByte('"')
	}
	out.WriteByte('>')

	if !n.IsVoid() {
		if n.IsRaw() {
			out.WriteString(n.RawText())
		} else {
			for _, ch := range n.ChildNodes() {
				r.renderNode(out, ch, hooks)
			}
		}
		out.WriteString("</")
		out.WriteString(n.Tag())
		out.WriteByte('>')
	}

	if wrapped {
		markup := out.String()
		for _, h := range hooks {
			if h.Wrap != nil {
				markup = h.Wrap(n, markup)
			}
		}
		b.WriteString(markup)
	}
}

// computedAttrs flattens a node's attribute state into the serialized
// attribute list: explicit attributes in insertion order, then the computed
// class and style attributes (omitted entirely when empty), then event
// handlers as on{event} attributes.
func computedAttrs(n *dom.Node) []style.KeyValue {
	attrs := n.Attributes()
	if c := n.ClassAttr(); c != "" {
		attrs = append(attrs, style.KeyValue{Key: "class", Value: c})
	}
	if s := n.StyleAttr(); s != "" {
		attrs = append(attrs, style.KeyValue{Key: "style", Value: s})
	}
	for _, ev := range n.EventHandlers() {
		attrs = append(attrs, style.KeyValue{Key: "on" + ev.Key, Value: ev.Value})
	}
	return attrs
}
