package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"

	"github.com/pagecraft/pagecraft/dom/style"
)

// ErrConfiguration flags malformed build input: an unknown breakpoint name,
// a selector that does not parse, an unsupported at-rule. It is reported at
// the call that supplied the input, not at render time.
var ErrConfiguration = errors.New("configuration error")

// Breakpoint is a named minimum-viewport-width threshold.
type Breakpoint struct {
	Name     string
	MinWidth int // px
}

// The fixed breakpoint table, in ascending threshold order. Media queries
// are always emitted in this order.
var breakpointTable = []Breakpoint{
	{"sm", 576},
	{"md", 768},
	{"lg", 992},
	{"xl", 1200},
}

// Breakpoints returns the fixed breakpoint table in ascending threshold
// order.
func Breakpoints() []Breakpoint {
	table := make([]Breakpoint, len(breakpointTable))
	copy(table, breakpointTable)
	return table
}

func breakpointByName(name string) (Breakpoint, bool) {
	for _, bp := range breakpointTable {
		if bp.Name == name {
			return bp, true
		}
	}
	return Breakpoint{}, false
}

// Decl is a single property declaration.
type Decl struct {
	Property string
	Value    string
}

// Rule is a selector plus an ordered set of property declarations,
// optionally decorated with per-breakpoint overrides.
type Rule struct {
	selector  string
	props     style.PropertyMap
	overrides map[string]*style.PropertyMap // breakpoint name → overrides
}

// Selector returns the rule's selector.
func (r *Rule) Selector() string {
	return r.selector
}

// Set adds or overwrites a property declaration. It returns the rule to
// allow for chaining.
func (r *Rule) Set(property, value string) *Rule {
	r.props.Set(property, value)
	return r
}

// Keyframes is a named animation block, emitted verbatim after all rules.
type Keyframes struct {
	name   string
	frames []Frame
}

// Frame is one stop of a keyframe block, e.g. At = "0%" or "from".
type Frame struct {
	At    string
	Decls []Decl
}

// RuleSet is an ordered sequence of rules plus keyframe blocks.
type RuleSet struct {
	rules  []*Rule
	frames []*Keyframes
}

// NewRuleSet creates an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{}
}

// AddRule appends a rule for selector. The selector is validated
// immediately; a selector that does not parse is a configuration error.
func (rs *RuleSet) AddRule(selector string, decls ...Decl) (*Rule, error) {
	selector = strings.TrimSpace(selector)
	if _, err := cascadia.ParseGroup(selector); err != nil {
		return nil, fmt.Errorf("%w: malformed selector %q: %v", ErrConfiguration, selector, err)
	}
	rule := &Rule{selector: selector}
	for _, d := range decls {
		rule.props.Set(d.Property, d.Value)
	}
	rs.rules = append(rs.rules, rule)
	tracer().Debugf("cssom: added rule for %q", selector)
	return rule, nil
}

// AddResponsiveOverrides attaches per-breakpoint property overrides to the
// most recently added rule for selector. Unknown breakpoint names and
// selectors without a rule are configuration errors.
func (rs *RuleSet) AddResponsiveOverrides(selector string, overrides map[string][]Decl) error {
	rule := rs.lastRuleFor(selector)
	if rule == nil {
		return fmt.Errorf("%w: no rule for selector %q", ErrConfiguration, selector)
	}
	return rule.addOverrides(overrides)
}

// AddOverrides attaches per-breakpoint property overrides directly to a rule
// held by the caller. Unknown breakpoint names are configuration errors.
func (r *Rule) AddOverrides(overrides map[string][]Decl) error {
	return r.addOverrides(overrides)
}

func (r *Rule) addOverrides(overrides map[string][]Decl) error {
	for name := range overrides {
		if _, ok := breakpointByName(name); !ok {
			return fmt.Errorf("%w: unknown breakpoint %q", ErrConfiguration, name)
		}
	}
	if r.overrides == nil {
		r.overrides = make(map[string]*style.PropertyMap)
	}
	for name, decls := range overrides {
		pm := r.overrides[name]
		if pm == nil {
			pm = &style.PropertyMap{}
			r.overrides[name] = pm
		}
		for _, d := range decls {
			pm.Set(d.Property, d.Value)
		}
	}
	return nil
}

func (rs *RuleSet) lastRuleFor(selector string) *Rule {
	selector = strings.TrimSpace(selector)
	for i := len(rs.rules) - 1; i >= 0; i-- {
		if rs.rules[i].selector == selector {
			return rs.rules[i]
		}
	}
	return nil
}

// AddKeyframes appends a keyframe block. Frames are emitted in the order
// given.
func (rs *RuleSet) AddKeyframes(name string, frames ...Frame) *Keyframes {
	kf := &Keyframes{name: name, frames: frames}
	rs.frames = append(rs.frames, kf)
	return kf
}

// Len returns the number of rules (keyframe blocks not counted).
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Render emits the rule set as CSS text: base rules in declaration order,
// one @media block per referenced breakpoint in ascending threshold order,
// then keyframe blocks.
func (rs *RuleSet) Render() string {
	var b strings.Builder
	for _, r := range rs.rules {
		writeRuleBlock(&b, r.selector, &r.props, "")
	}
	for _, bp := range breakpointTable {
		var affected []*Rule
		for _, r := range rs.rules {
			if r.overrides[bp.Name] != nil {
				affected = append(affected, r)
			}
		}
		if len(affected) == 0 {
			continue
		}
		fmt.Fprintf(&b, "@media (min-width: %dpx) {\n", bp.MinWidth)
		for _, r := range affected {
			writeRuleBlock(&b, r.selector, r.overrides[bp.Name], "  ")
		}
		b.WriteString("}\n")
	}
	for _, kf := range rs.frames {
		fmt.Fprintf(&b, "@keyframes %s {\n", kf.name)
		for _, f := range kf.frames {
			fmt.Fprintf(&b, "  %s {\n", f.At)
			for _, d := range f.Decls {
				fmt.Fprintf(&b, "    %s: %s;\n", d.Property, d.Value)
			}
			b.WriteString("  }\n")
		}
		b.WriteString("}\n")
	}
	return b.String()
}

func writeRuleBlock(b *strings.Builder, selector string, props *style.PropertyMap, indent string) {
	b.WriteString(indent)
	b.WriteString(selector)
	b.WriteString(" {\n")
	props.Each(func(k, v string) {
		b.WriteString(indent)
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString(";\n")
	})
	b.WriteString(indent)
	b.WriteString("}\n")
}
