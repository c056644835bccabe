package export

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pagecraft/pagecraft/component"
	"github.com/pagecraft/pagecraft/dom"
	"github.com/pagecraft/pagecraft/render"
)

func buildSample(t *testing.T) *dom.Node {
	t.Helper()
	card := component.Card("Title", "Body")
	card.SetStyle("margin", "1rem")
	card.On("click", "open()")
	card.SetAttribute("id", "c1")
	return card
}

func TestJSONRoundTripRendersIdentically(t *testing.T) {
	n := buildSample(t)
	data, err := Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if render.HTML(back) != render.HTML(n) {
		t.Errorf("expected round-tripped tree to render identically:\n%s\nvs\n%s",
			render.HTML(n), render.HTML(back))
	}
}

func TestDocFormPreservesOrder(t *testing.T) {
	n := dom.NewElement("div")
	n.SetAttribute("b", "2")
	n.SetAttribute("a", "1")
	d := FromNode(n)
	assert.Equal(t, []Pair{{"b", "2"}, {"a", "1"}}, d.Attributes)
}

func TestTextAndRawKinds(t *testing.T) {
	f := dom.NewFragment()
	if err := f.Append(dom.NewText("a & b"), dom.NewRaw("<b>x</b>")); err != nil {
		t.Fatal(err)
	}
	d := FromNode(f)
	assert.Equal(t, KindFragment, d.Kind)
	if assert.Len(t, d.Children, 2) {
		assert.Equal(t, KindText, d.Children[0].Kind)
		assert.Equal(t, "a & b", d.Children[0].Text)
		assert.Equal(t, KindRaw, d.Children[1].Kind)
	}
}

func TestToNodeRejectsUnknownKind(t *testing.T) {
	_, err := ToNode(&Doc{Kind: "mystery"})
	if !errors.Is(err, dom.ErrInvalidNodeState) {
		t.Errorf("expected ErrInvalidNodeState for unknown kind, is %v", err)
	}
}

func TestToNodeRejectsChildrenUnderVoidTag(t *testing.T) {
	d := &Doc{
		Kind: KindElement,
		Tag:  "img",
		Children: []*Doc{
			{Kind: KindText, Text: "x"},
		},
	}
	_, err := ToNode(d)
	if !errors.Is(err, dom.ErrInvalidNodeState) {
		t.Errorf("expected ErrInvalidNodeState for children under void tag, is %v", err)
	}
}
