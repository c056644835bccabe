/*
Package domdbg implements helpers to debug a composition tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package domdbg

import (
	"fmt"
	"io"
	"strings"

	tp "github.com/xlab/treeprint"

	"github.com/pagecraft/pagecraft/dom"
)

// Dump writes an indented tree diagram of a composition tree to w.
// The diagram shows every node's tag, classes and attribute count; it is
// meant for test logs and debugging sessions, not for machine consumption.
func Dump(n *dom.Node, w io.Writer) error {
	_, err := io.WriteString(w, String(n))
	return err
}

// String returns the tree diagram for a composition tree.
func String(n *dom.Node) string {
	p := tp.New()
	ppt(p, n)
	return p.String()
}

func ppt(p tp.Tree, n *dom.Node) {
	children := n.ChildNodes()
	if len(children) == 0 {
		p.AddNode(label(n))
		return
	}
	branch := p.AddBranch(label(n))
	for _, ch := range children {
		ppt(branch, ch)
	}
}

func label(n *dom.Node) string {
	switch {
	case n.IsText():
		return fmt.Sprintf("#text %q", n.Text())
	case n.Tag() == "" && n.IsRaw():
		return fmt.Sprintf("#raw (%d bytes)", len(n.RawText()))
	case n.Tag() == "":
		return "#fragment"
	}
	var b strings.Builder
	b.WriteString("<" + n.Tag() + ">")
	if cls := n.ClassAttr(); cls != "" {
		b.WriteString(" ." + strings.ReplaceAll(cls, " ", " ."))
	}
	if c := len(n.Attributes()); c > 0 {
		fmt.Fprintf(&b, " (%d attrs)", c)
	}
	return b.String()
}
