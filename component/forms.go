package component

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"strconv"

	"github.com/pagecraft/pagecraft/dom"
)

// Form creates a <form> element. method defaults to "post".
func Form(action, method string) *dom.Node {
	if method == "" {
		method = "post"
	}
	f := dom.NewElement("form")
	f.SetAttribute("action", action)
	f.SetAttribute("method", method)
	return f
}

// Input creates an <input> of the given type. typ defaults to "text".
func Input(typ, name, placeholder string) *dom.Node {
	if typ == "" {
		typ = "text"
	}
	in := dom.NewElement("input")
	in.SetAttribute("type", typ)
	if name != "" {
		in.SetAttribute("name", name)
	}
	if placeholder != "" {
		in.SetAttribute("placeholder", placeholder)
	}
	in.AddClass("form-control")
	return in
}

// Button creates a <button> of the given type ("submit", "button", ...),
// defaulting to "button".
func Button(text, typ string) *dom.Node {
	if typ == "" {
		typ = "button"
	}
	b := textEl("button", text, "btn", "btn-primary")
	b.SetAttribute("type", typ)
	return b
}

// Select creates a <select> with one <option> per entry.
func Select(name string, options []string) *dom.Node {
	sel := dom.NewElement("select")
	if name != "" {
		sel.SetAttribute("name", name)
	}
	sel.AddClass("form-select")
	for _, opt := range options {
		o := textEl("option", opt)
		o.SetAttribute("value", opt)
		attach(sel, o)
	}
	return sel
}

// TextArea creates a <textarea>. A rows value of 0 leaves the attribute
// unset.
func TextArea(name string, rows int) *dom.Node {
	ta := dom.NewElement("textarea")
	if name != "" {
		ta.SetAttribute("name", name)
	}
	if rows > 0 {
		ta.SetAttribute("rows", strconv.Itoa(rows))
	}
	ta.AddClass("form-control")
	return ta
}
