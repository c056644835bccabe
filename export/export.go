package export

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"encoding/json"
	"fmt"

	"github.com/pagecraft/pagecraft/dom"
)

// Node kinds in the document form.
const (
	KindElement  = "element"
	KindText     = "text"
	KindRaw      = "raw"
	KindFragment = "fragment"
)

// Pair is an ordered name/value entry. Attributes, styles and events are
// stored as slices, not maps, so the document form preserves the insertion
// order the renderer depends on.
type Pair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Doc is the structural, JSON-friendly form of a composition tree. It
// exists so gallery and persistence collaborators can round-trip trees
// without depending on dom internals.
type Doc struct {
	Kind       string   `json:"kind"`
	Tag        string   `json:"tag,omitempty"`
	Text       string   `json:"text,omitempty"`
	Raw        string   `json:"raw,omitempty"`
	Attributes []Pair   `json:"attributes,omitempty"`
	Classes    []string `json:"classes,omitempty"`
	Styles     []Pair   `json:"styles,omitempty"`
	Events     []Pair   `json:"events,omitempty"`
	Children   []*Doc   `json:"children,omitempty"`
}

// FromNode converts a node tree into its document form.
func FromNode(n *dom.Node) *Doc {
	d := &Doc{}
	switch {
	case n.Tag() != "":
		d.Kind = KindElement
		d.Tag = n.Tag()
		if n.IsRaw() {
			d.Raw = n.RawText()
		}
		for _, a := range n.Attributes() {
			d.Attributes = append(d.Attributes, Pair{a.Key, a.Value})
		}
		d.Classes = nilIfEmpty(n.ClassNames())
		for _, s := range n.StyleProperties() {
			d.Styles = append(d.Styles, Pair{s.Key, s.Value})
		}
		for _, ev := range n.EventHandlers() {
			d.Events = append(d.Events, Pair{ev.Key, ev.Value})
		}
	case n.IsText():
		d.Kind = KindText
		d.Text = n.Text()
	case n.IsRaw():
		d.Kind = KindRaw
		d.Raw = n.RawText()
	default:
		d.Kind = KindFragment
	}
	for _, ch := range n.ChildNodes() {
		d.Children = append(d.Children, FromNode(ch))
	}
	return d
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

// ToNode reconstructs a node tree from its document form. Structural
// misuse in the document (children under a void tag, raw content next to
// children) surfaces as the same errors direct construction would raise.
func ToNode(d *Doc) (*dom.Node, error) {
	var n *dom.Node
	switch d.Kind {
	case KindElement:
		n = dom.NewElement(d.Tag)
		for _, a := range d.Attributes {
			n.SetAttribute(a.Name, a.Value)
		}
		for _, c := range d.Classes {
			n.AddClass(c)
		}
		for _, s := range d.Styles {
			n.SetStyle(s.Name, s.Value)
		}
		for _, ev := range d.Events {
			n.On(ev.Name, ev.Value)
		}
		if d.Raw != "" {
			if err := n.SetRawText(d.Raw); err != nil {
				return nil, err
			}
		}
	case KindText:
		n = dom.NewText(d.Text)
	case KindRaw:
		n = dom.NewRaw(d.Raw)
	case KindFragment:
		n = dom.NewFragment()
	default:
		return nil, fmt.Errorf("%w: unknown node kind %q", dom.ErrInvalidNodeState, d.Kind)
	}
	for _, chDoc := range d.Children {
		ch, err := ToNode(chDoc)
		if err != nil {
			return nil, err
		}
		if err := n.AppendChild(ch); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Marshal serializes a node tree as JSON.
func Marshal(n *dom.Node) ([]byte, error) {
	return json.Marshal(FromNode(n))
}

// Unmarshal reconstructs a node tree from JSON produced by Marshal.
func Unmarshal(data []byte) (*dom.Node, error) {
	var d Doc
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return ToNode(&d)
}
