package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Parse imports existing CSS text into a RuleSet, so programmatically built
// rules and handwritten stylesheets can be merged and re-emitted with the
// same ordering guarantees. Supported constructs are plain rules, @media
// blocks whose condition matches one of the fixed breakpoints, and
// @keyframes blocks. Anything else is a configuration error.
func Parse(cssText string) (*RuleSet, error) {
	sheet, err := parser.Parse(cssText)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed CSS: %v", ErrConfiguration, err)
	}
	rs := NewRuleSet()
	for _, r := range sheet.Rules {
		switch r.Kind {
		case css.QualifiedRule:
			if _, err := rs.AddRule(selectorOf(r), declsOf(r)...); err != nil {
				return nil, err
			}
		case css.AtRule:
			if err := rs.parseAtRule(r); err != nil {
				return nil, err
			}
		}
	}
	return rs, nil
}

func (rs *RuleSet) parseAtRule(r *css.Rule) error {
	switch r.Name {
	case "@media":
		bp, ok := breakpointByPrelude(r.Prelude)
		if !ok {
			return fmt.Errorf("%w: media condition %q matches no known breakpoint", ErrConfiguration, r.Prelude)
		}
		for _, nested := range r.Rules {
			if nested.Kind != css.QualifiedRule {
				return fmt.Errorf("%w: unsupported nested rule %q inside @media", ErrConfiguration, nested.Name)
			}
			sel := selectorOf(nested)
			rule := rs.lastRuleFor(sel)
			if rule == nil {
				var err error
				if rule, err = rs.AddRule(sel); err != nil {
					return err
				}
			}
			if err := rule.addOverrides(map[string][]Decl{bp.Name: declsOf(nested)}); err != nil {
				return err
			}
		}
		return nil
	case "@keyframes":
		frames := make([]Frame, 0, len(r.Rules))
		for _, nested := range r.Rules {
			frames = append(frames, Frame{
				At:    strings.TrimSpace(nested.Prelude),
				Decls: declsOf(nested),
			})
		}
		rs.AddKeyframes(strings.TrimSpace(r.Prelude), frames...)
		return nil
	}
	return fmt.Errorf("%w: unsupported at-rule %q", ErrConfiguration, r.Name)
}

// breakpointByPrelude maps a media condition like "(min-width: 768px)" back
// to its breakpoint. Whitespace inside the condition is irrelevant.
func breakpointByPrelude(prelude string) (Breakpoint, bool) {
	cond := strings.ReplaceAll(strings.TrimSpace(prelude), " ", "")
	for _, bp := range breakpointTable {
		if cond == fmt.Sprintf("(min-width:%dpx)", bp.MinWidth) {
			return bp, true
		}
	}
	return Breakpoint{}, false
}

func selectorOf(r *css.Rule) string {
	if len(r.Selectors) > 0 {
		return strings.TrimSpace(strings.Join(r.Selectors, ", "))
	}
	return strings.TrimSpace(r.Prelude)
}

func declsOf(r *css.Rule) []Decl {
	decls := make([]Decl, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		v := d.Value
		if d.Important {
			v += " !important"
		}
		decls = append(decls, Decl{Property: d.Property, Value: v})
	}
	return decls
}
