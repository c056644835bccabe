package domdbg

import (
	"strings"
	"testing"

	"github.com/pagecraft/pagecraft/component"
)

func TestDumpShowsTagsAndClasses(t *testing.T) {
	card := component.Card("Title", "Body")
	out := String(card)
	t.Logf("tree =\n%s", out)
	for _, want := range []string{"<div> .card", "<h5> .card-title", "#text \"Title\""} {
		if !strings.Contains(out, want) {
			t.Errorf("expected dump to contain %q, got:\n%s", want, out)
		}
	}
}

func TestDumpLeafOnly(t *testing.T) {
	img := component.Image("x.png", "x")
	out := String(img)
	if !strings.Contains(out, "<img>") {
		t.Errorf("expected leaf dump to contain <img>, got:\n%s", out)
	}
}
