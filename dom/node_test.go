package dom

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestElementBasics(t *testing.T) {
	n := NewElement("div")
	n.SetAttribute("id", "main")
	if v, ok := n.Attribute("id"); !ok || v != "main" {
		t.Errorf("expected attribute id=main, is %q", v)
	}
	if n.Tag() != "div" {
		t.Errorf("expected tag to be div, is %q", n.Tag())
	}
}

func TestClassAttributeFoldsIntoClassList(t *testing.T) {
	n := NewElement("div")
	n.SetAttribute("class", "card shadow")
	n.AddClass("card")
	if got := n.ClassAttr(); got != "card shadow" {
		t.Errorf("expected class attr \"card shadow\", is %q", got)
	}
	if len(n.Attributes()) != 0 {
		t.Errorf("expected class not to be stored as plain attribute, is")
	}
}

func TestStyleAttributeFoldsIntoProperties(t *testing.T) {
	n := NewElement("div")
	n.SetAttribute("style", "color: red; margin: 0")
	n.SetStyle("color", "blue")
	if got := n.StyleAttr(); got != "color:blue;margin:0" {
		t.Errorf("expected style attr \"color:blue;margin:0\", is %q", got)
	}
}

func TestVoidTagRejectsChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagecraft.dom")
	defer teardown()
	//
	img := NewElement("img")
	err := img.AppendChild(NewElement("span"))
	if err == nil {
		t.Fatal("expected appending to <img> to fail, didn't")
	}
	if !errors.Is(err, ErrInvalidNodeState) {
		t.Errorf("expected ErrInvalidNodeState, is %v", err)
	}
}

func TestRawTextExcludesChildren(t *testing.T) {
	n := NewElement("div")
	if err := n.AppendChild(NewElement("span")); err != nil {
		t.Fatal(err)
	}
	err := n.SetRawText("<b>hi</b>")
	if !errors.Is(err, ErrInvalidNodeState) {
		t.Errorf("expected ErrInvalidNodeState for raw text on node with children, is %v", err)
	}
	m := NewElement("div")
	if err := m.SetRawText("<b>hi</b>"); err != nil {
		t.Fatal(err)
	}
	err = m.AppendChild(NewElement("span"))
	if !errors.Is(err, ErrInvalidNodeState) {
		t.Errorf("expected ErrInvalidNodeState for children on raw node, is %v", err)
	}
}

func TestAppendChildRejectsCycle(t *testing.T) {
	a := NewElement("div")
	b := NewElement("div")
	if err := a.AppendChild(b); err != nil {
		t.Fatal(err)
	}
	err := b.AppendChild(a)
	if !errors.Is(err, ErrInvalidNodeState) {
		t.Errorf("expected ErrInvalidNodeState for cyclic attachment, is %v", err)
	}
}

func TestAppendChildReparents(t *testing.T) {
	a := NewElement("div")
	b := NewElement("section")
	ch := NewElement("p")
	if err := a.AppendChild(ch); err != nil {
		t.Fatal(err)
	}
	if err := b.AppendChild(ch); err != nil {
		t.Fatal(err)
	}
	if len(a.ChildNodes()) != 0 {
		t.Error("expected child to be detached from old parent, isn't")
	}
	if ch.ParentNode() != b {
		t.Error("expected child to be re-parented, isn't")
	}
}

func TestWalkNodesPreOrder(t *testing.T) {
	root := NewElement("div")
	p := NewElement("p")
	_ = p.AppendText("hi")
	_ = root.AppendChild(p)
	_ = root.AppendChild(NewElement("hr"))
	var tags []string
	root.WalkNodes(func(n *Node) bool {
		tags = append(tags, n.String())
		return true
	})
	want := []string{"<div>", "<p>", "#text(\"hi\")", "<hr>"}
	if len(tags) != len(want) {
		t.Fatalf("expected %d nodes visited, are %d", len(want), len(tags))
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("expected node #%d to be %s, is %s", i, want[i], tags[i])
		}
	}
}
