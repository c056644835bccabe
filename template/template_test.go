package template

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/pagecraft/pagecraft/dom"
	"github.com/pagecraft/pagecraft/registry"
)

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	return New(registry.New(), opts...)
}

func TestRenderSuppliedAndDefaultSlots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagecraft.template")
	defer teardown()
	//
	e := newEngine(t)
	_, err := e.Define("hero", "<h1>{{title}}</h1><p>{{subtitle}}</p>", map[string]string{
		"subtitle": "Welcome",
	})
	if err != nil {
		t.Fatal(err)
	}
	out, err := e.Render("hero", Slots{"title": "Hi"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Hi") || !strings.Contains(out, "Welcome") {
		t.Errorf("expected supplied title and default subtitle, got %q", out)
	}
}

func TestUnfilledSlotResolvesToEmpty(t *testing.T) {
	e := newEngine(t)
	if _, err := e.Define("x", "a{{missing}}b", nil); err != nil {
		t.Fatal(err)
	}
	out, err := e.Render("x", nil)
	if err != nil {
		t.Fatal(err)
	}
	if out != "ab" {
		t.Errorf("expected unfilled slot to resolve to empty string, got %q", out)
	}
}

func TestStrictModeRejectsUnfilledSlot(t *testing.T) {
	e := newEngine(t, Strict())
	if _, err := e.Define("x", "a{{missing}}b", nil); err != nil {
		t.Fatal(err)
	}
	_, err := e.Render("x", nil)
	if !errors.Is(err, ErrSlot) {
		t.Errorf("expected ErrSlot in strict mode, is %v", err)
	}
	// A declared default satisfies strict mode.
	if _, err := e.Define("y", "a{{d}}b", map[string]string{"d": "!"}); err != nil {
		t.Fatal(err)
	}
	out, err := e.Render("y", nil)
	if err != nil {
		t.Fatal(err)
	}
	if out != "a!b" {
		t.Errorf("expected default to fill slot, got %q", out)
	}
}

func TestSubstitutionIsSinglePass(t *testing.T) {
	e := newEngine(t)
	if _, err := e.Define("x", "{{a}}", nil); err != nil {
		t.Fatal(err)
	}
	out, err := e.Render("x", Slots{"a": "{{a}}"})
	if err != nil {
		t.Fatal(err)
	}
	if out != "{{a}}" {
		t.Errorf("expected replacement content not to be re-scanned, got %q", out)
	}
}

func TestNodeSlotValue(t *testing.T) {
	e := newEngine(t)
	if _, err := e.Define("x", "<div>{{body}}</div>", nil); err != nil {
		t.Fatal(err)
	}
	n := dom.NewElement("p")
	if err := n.AppendText("hi"); err != nil {
		t.Fatal(err)
	}
	out, err := e.Render("x", Slots{"body": n})
	if err != nil {
		t.Fatal(err)
	}
	if out != "<div><p>hi</p></div>" {
		t.Errorf("expected node slot to be serialized, got %q", out)
	}
}

func TestSlotWhitespaceIsTolerated(t *testing.T) {
	e := newEngine(t)
	if _, err := e.Define("x", "{{ title }}", nil); err != nil {
		t.Fatal(err)
	}
	out, err := e.Render("x", Slots{"title": "T"})
	if err != nil {
		t.Fatal(err)
	}
	if out != "T" {
		t.Errorf("expected padded placeholder to resolve, got %q", out)
	}
}

func TestDuplicateDefinitionFails(t *testing.T) {
	e := newEngine(t)
	if _, err := e.Define("x", "a", nil); err != nil {
		t.Fatal(err)
	}
	_, err := e.Define("x", "b", nil)
	if !errors.Is(err, registry.ErrDuplicateRegistration) {
		t.Errorf("expected duplicate registration error, is %v", err)
	}
}

func TestRenderUnknownTemplateFails(t *testing.T) {
	e := newEngine(t)
	_, err := e.Render("nope", nil)
	if !errors.Is(err, registry.ErrUnknownRegistration) {
		t.Errorf("expected unknown registration error, is %v", err)
	}
}

func TestFiltersApplyInOrder(t *testing.T) {
	reg := registry.New()
	e := New(reg)
	if err := reg.Register(registry.KindFilter, "upper", func(s string) string {
		return strings.ToUpper(s)
	}); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(registry.KindFilter, "trim", func(s string) string {
		return strings.TrimSpace(s)
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Define("x", "  {{v}}  ", nil); err != nil {
		t.Fatal(err)
	}
	out, err := e.Render("x", Slots{"v": "hi"}, "upper", "trim")
	if err != nil {
		t.Fatal(err)
	}
	if out != "HI" {
		t.Errorf("expected filters applied in order, got %q", out)
	}
}

func TestBuiltinTemplates(t *testing.T) {
	e := newEngine(t)
	if err := DefineBuiltins(e); err != nil {
		t.Fatal(err)
	}
	out, err := e.Render("hero", Slots{"title": "Hi"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Hi") || !strings.Contains(out, "Your amazing website") {
		t.Errorf("expected hero with supplied title and default subtitle, got %q", out)
	}
}
