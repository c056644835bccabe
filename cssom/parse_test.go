package cssom

import (
	"errors"
	"strings"
	"testing"
)

func TestParsePlainRules(t *testing.T) {
	rs, err := Parse("body { margin: 0; } .hero { color: white; }")
	if err != nil {
		t.Fatal(err)
	}
	if rs.Len() != 2 {
		t.Fatalf("expected 2 rules, are %d", rs.Len())
	}
	out := rs.Render()
	if !strings.Contains(out, "body {\n  margin: 0;\n}") {
		t.Errorf("expected body rule in output, got:\n%s", out)
	}
}

func TestParseMediaBlockMapsToBreakpoint(t *testing.T) {
	src := `
.grid { display: block; }
@media (min-width: 768px) {
  .grid { display: grid; }
}
`
	rs, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	out := rs.Render()
	if !strings.Contains(out, "@media (min-width: 768px)") {
		t.Errorf("expected md media block, got:\n%s", out)
	}
}

func TestParseUnknownMediaConditionFails(t *testing.T) {
	_, err := Parse("@media (min-width: 123px) { .x { color: red; } }")
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected ErrConfiguration for unknown media condition, is %v", err)
	}
}

func TestParseKeyframes(t *testing.T) {
	src := "@keyframes fade { from { opacity: 0; } to { opacity: 1; } }"
	rs, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	out := rs.Render()
	if !strings.Contains(out, "@keyframes fade") {
		t.Errorf("expected keyframes in output, got:\n%s", out)
	}
	if !strings.Contains(out, "opacity: 0;") {
		t.Errorf("expected frame declarations in output, got:\n%s", out)
	}
}

func TestParseUnsupportedAtRuleFails(t *testing.T) {
	_, err := Parse("@font-face { font-family: x; }")
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected ErrConfiguration for unsupported at-rule, is %v", err)
	}
}

func TestParseImportantDeclarations(t *testing.T) {
	rs, err := Parse(".x { color: red !important; }")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(rs.Render(), "color: red !important;") {
		t.Errorf("expected !important to survive the round trip, got:\n%s", rs.Render())
	}
}
