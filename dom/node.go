package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pagecraft/pagecraft/dom/style"
	"github.com/pagecraft/pagecraft/tree"
)

// ErrInvalidNodeState flags structural misuse of a node: children attached
// to a void tag, raw text set on a node that has children, or an attachment
// that would create a cycle. It is reported at the mutating call, so the
// stack trace points at the actual mistake.
var ErrInvalidNodeState = errors.New("invalid node state")

// voidTags are elements that never receive children or a closing tag.
var voidTags = map[string]bool{
	"img":   true,
	"br":    true,
	"hr":    true,
	"input": true,
	"meta":  true,
	"link":  true,
}

// IsVoidTag reports whether tag is a void element, i.e. one that is
// serialized without closing tag and may not contain children.
func IsVoidTag(tag string) bool {
	return voidTags[tag]
}

// Node is a single element or text fragment in the composition tree.
type Node struct {
	tree.Node[*Node] // we build on top of a general purpose tree

	tag     string
	attrs   style.PropertyMap
	classes style.ClassList
	styles  style.PropertyMap
	events  style.PropertyMap
	text    string // escaped on output
	raw     string // emitted verbatim
	hasText bool
	hasRaw  bool
}

// NewElement creates a node for an element with the given tag and optional
// initial attributes, applied in the order given.
func NewElement(tag string, attrs ...style.KeyValue) *Node {
	n := &Node{tag: strings.ToLower(strings.TrimSpace(tag))}
	n.Payload = n // payload will always reference the node itself
	for _, a := range attrs {
		n.SetAttribute(a.Key, a.Value)
	}
	return n
}

// NewText creates a leaf node holding text content. The content is
// HTML-escaped when the tree is serialized.
func NewText(text string) *Node {
	n := &Node{text: text, hasText: true}
	n.Payload = n
	return n
}

// NewRaw creates a leaf node holding trusted markup that is emitted
// verbatim, without escaping. Callers are responsible for its safety.
func NewRaw(markup string) *Node {
	n := &Node{raw: markup, hasRaw: true}
	n.Payload = n
	return n
}

// NewFragment creates a transparent grouping node: it has no tag and
// serializes as the concatenation of its children.
func NewFragment() *Node {
	n := &Node{}
	n.Payload = n
	return n
}

func (n *Node) String() string {
	switch {
	case n.hasText:
		return fmt.Sprintf("#text(%q)", n.text)
	case n.hasRaw:
		return "#raw"
	case n.tag == "":
		return "#fragment"
	}
	return "<" + n.tag + ">"
}

// Tag returns the element tag, or "" for text, raw and grouping nodes.
func (n *Node) Tag() string {
	return n.tag
}

// IsVoid reports whether this node is a void element.
func (n *Node) IsVoid() bool {
	return IsVoidTag(n.tag)
}

// IsText reports whether this node is a text leaf.
func (n *Node) IsText() bool {
	return n.hasText
}

// IsRaw reports whether this node carries raw markup.
func (n *Node) IsRaw() bool {
	return n.hasRaw
}

// Text returns the text content of a text leaf.
func (n *Node) Text() string {
	return n.text
}

// RawText returns the raw markup content, if any.
func (n *Node) RawText() string {
	return n.raw
}

// SetAttribute sets an attribute, preserving the position of an attribute
// that is overwritten. The "class" and "style" attributes are not stored
// directly: their values are folded into the class list and the style
// properties, so that a node never carries two competing sources for these
// attributes.
func (n *Node) SetAttribute(name, value string) *Node {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "class":
		for _, c := range strings.Fields(value) {
			n.classes.Add(c)
		}
	case "style":
		for _, decl := range strings.Split(value, ";") {
			if k, v, ok := splitDecl(decl); ok {
				n.styles.Set(k, v)
			}
		}
	default:
		n.attrs.Set(name, value)
	}
	return n
}

func splitDecl(decl string) (string, string, bool) {
	k, v, ok := strings.Cut(decl, ":")
	k, v = strings.TrimSpace(k), strings.TrimSpace(v)
	if !ok || k == "" {
		return "", "", false
	}
	return k, v, true
}

// Attribute returns the value of an attribute, if set.
func (n *Node) Attribute(name string) (string, bool) {
	return n.attrs.Get(name)
}

// Attributes returns all attributes in insertion order, excluding the
// computed "class"/"style" attributes and event handlers.
func (n *Node) Attributes() []style.KeyValue {
	return n.attrs.Pairs()
}

// AddClass appends a CSS class; adding a present class is a no-op.
func (n *Node) AddClass(name string) *Node {
	n.classes.Add(name)
	return n
}

// HasClass reports whether a CSS class is present.
func (n *Node) HasClass(name string) bool {
	return n.classes.Contains(name)
}

// ClassNames returns all CSS classes in insertion order.
func (n *Node) ClassNames() []string {
	return n.classes.Names()
}

// ClassAttr returns the computed value of the `class` attribute, or ""
// when no classes are set.
func (n *Node) ClassAttr() string {
	return n.classes.String()
}

// SetStyle sets an inline style property. Later writes for the same
// property overwrite the value in place, keeping the original position.
func (n *Node) SetStyle(property, value string) *Node {
	n.styles.Set(property, value)
	return n
}

// Style returns the value of an inline style property, if set.
func (n *Node) Style(property string) (string, bool) {
	return n.styles.Get(property)
}

// StyleProperties returns all inline style properties in insertion order.
func (n *Node) StyleProperties() []style.KeyValue {
	return n.styles.Pairs()
}

// StyleAttr returns the computed value of the `style` attribute, or ""
// when no properties are set.
func (n *Node) StyleAttr() string {
	return n.styles.InlineString()
}

// On attaches a script to an event. The event name is given without the
// "on" prefix; it is emitted as an `on{event}` attribute.
func (n *Node) On(event, script string) *Node {
	n.events.Set(strings.ToLower(strings.TrimSpace(event)), script)
	return n
}

// EventHandlers returns all event handlers in insertion order.
func (n *Node) EventHandlers() []style.KeyValue {
	return n.events.Pairs()
}

// SetRawText sets raw inner markup on an element node. Raw content and
// children are mutually exclusive; setting raw text on a node that has
// children is a caller error.
func (n *Node) SetRawText(markup string) error {
	if n.ChildCount() > 0 {
		return fmt.Errorf("%w: node %s has children, cannot set raw text", ErrInvalidNodeState, n)
	}
	if n.hasText {
		return fmt.Errorf("%w: node %s is a text leaf, cannot set raw text", ErrInvalidNodeState, n)
	}
	if n.IsVoid() {
		return fmt.Errorf("%w: void tag <%s> cannot have content", ErrInvalidNodeState, n.tag)
	}
	n.raw = markup
	n.hasRaw = true
	return nil
}

// AppendChild attaches a child node. It fails for void tags, for nodes
// carrying text or raw content, and for attachments that would create a
// cycle. A child parented elsewhere is detached from its old position
// first.
func (n *Node) AppendChild(ch *Node) error {
	if ch == nil {
		return nil
	}
	if n.IsVoid() {
		return fmt.Errorf("%w: void tag <%s> cannot have children", ErrInvalidNodeState, n.tag)
	}
	if n.hasRaw || n.hasText {
		return fmt.Errorf("%w: node %s carries literal content, cannot have children", ErrInvalidNodeState, n)
	}
	for anc := n; anc != nil; anc = anc.ParentNode() {
		if anc == ch {
			return fmt.Errorf("%w: attaching %s to %s would create a cycle", ErrInvalidNodeState, ch, n)
		}
	}
	tracer().Debugf("dom: appending %s to %s", ch, n)
	n.Node.AddChild(&ch.Node)
	return nil
}

// Append attaches a sequence of children, stopping at the first failure.
func (n *Node) Append(children ...*Node) error {
	for _, ch := range children {
		if err := n.AppendChild(ch); err != nil {
			return err
		}
	}
	return nil
}

// AppendText attaches a text leaf with the given content.
func (n *Node) AppendText(text string) error {
	return n.AppendChild(NewText(text))
}

// Detach removes this node from its parent and returns it.
func (n *Node) Detach() *Node {
	n.Isolate()
	return n
}

// ParentNode returns the parent DOM node, or nil for a root.
func (n *Node) ParentNode() *Node {
	p := n.Node.Parent()
	if p == nil {
		return nil
	}
	return p.Payload
}

// ChildNodes returns all children as DOM nodes, in order.
func (n *Node) ChildNodes() []*Node {
	tns := n.Node.Children()
	children := make([]*Node, 0, len(tns))
	for _, tn := range tns {
		children = append(children, tn.Payload)
	}
	return children
}

// WalkNodes visits this node and all descendants in depth-first pre-order.
// If visit returns false, the descendants of that node are skipped.
func (n *Node) WalkNodes(visit func(*Node) bool) {
	n.Node.Walk(func(tn *tree.Node[*Node]) bool {
		return visit(tn.Payload)
	})
}
