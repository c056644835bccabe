package component

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"
	"strconv"

	"github.com/pagecraft/pagecraft/dom"
)

// attach appends children built by this package. The shapes constructed
// here never hit the structural error paths (no void parents, fresh
// children), so a failure is a bug in this package.
func attach(parent *dom.Node, children ...*dom.Node) *dom.Node {
	if err := parent.Append(children...); err != nil {
		panic(err)
	}
	return parent
}

func textEl(tag, text string, classes ...string) *dom.Node {
	n := dom.NewElement(tag)
	for _, c := range classes {
		n.AddClass(c)
	}
	if text != "" {
		attach(n, dom.NewText(text))
	}
	return n
}

// Heading creates an <h1>..<h6> element. Levels outside 1..6 are a caller
// error.
func Heading(text string, level int) (*dom.Node, error) {
	if level < 1 || level > 6 {
		return nil, fmt.Errorf("%w: heading level must be between 1 and 6, is %d", dom.ErrInvalidNodeState, level)
	}
	return textEl("h"+strconv.Itoa(level), text), nil
}

// Paragraph creates a <p> element with escaped text content.
func Paragraph(text string) *dom.Node {
	return textEl("p", text)
}

// List creates a <ul> or <ol> element with one <li> per item.
func List(items []string, ordered bool) *dom.Node {
	tag := "ul"
	if ordered {
		tag = "ol"
	}
	list := dom.NewElement(tag)
	for _, item := range items {
		attach(list, textEl("li", item))
	}
	return list
}

// Image creates an <img> element. Width/height and further attributes are
// set by the caller.
func Image(src, alt string) *dom.Node {
	img := dom.NewElement("img")
	img.SetAttribute("src", src)
	img.SetAttribute("alt", alt)
	return img
}

// Link creates an <a> element.
func Link(text, href string) *dom.Node {
	a := textEl("a", text)
	a.SetAttribute("href", href)
	return a
}

// Div creates a <div> with the given classes.
func Div(classes ...string) *dom.Node {
	n := dom.NewElement("div")
	for _, c := range classes {
		n.AddClass(c)
	}
	return n
}

// Section creates a <section> with the given classes.
func Section(classes ...string) *dom.Node {
	n := dom.NewElement("section")
	for _, c := range classes {
		n.AddClass(c)
	}
	return n
}

// Card creates a Bootstrap card with an optional title and body text.
func Card(title, body string) *dom.Node {
	card := Div("card")
	cardBody := Div("card-body")
	if title != "" {
		attach(cardBody, textEl("h5", title, "card-title"))
	}
	if body != "" {
		attach(cardBody, textEl("p", body, "card-text"))
	}
	return attach(card, cardBody)
}

// Container creates a Bootstrap container.
func Container(fluid bool) *dom.Node {
	if fluid {
		return Div("container-fluid")
	}
	return Div("container")
}

// Row creates a Bootstrap grid row.
func Row() *dom.Node {
	return Div("row")
}

// Column creates a Bootstrap grid column. A width of 0 yields the
// auto-sizing "col" class, 1..12 yields "col-{width}".
func Column(width int) *dom.Node {
	if width <= 0 {
		return Div("col")
	}
	return Div("col-" + strconv.Itoa(width))
}

var justifyClasses = map[string]string{
	"start":   "justify-content-start",
	"end":     "justify-content-end",
	"center":  "justify-content-center",
	"between": "justify-content-between",
	"around":  "justify-content-around",
	"evenly":  "justify-content-evenly",
}

var alignClasses = map[string]string{
	"start":    "align-items-start",
	"end":      "align-items-end",
	"center":   "align-items-center",
	"baseline": "align-items-baseline",
	"stretch":  "align-items-stretch",
}

// Flex creates a flexbox container. direction is one of "row", "column",
// "row-reverse", "column-reverse"; justify and align accept the short
// Bootstrap keywords ("start", "center", ...) and may be empty.
func Flex(direction, justify, align string, wrap bool) *dom.Node {
	n := Div("d-flex")
	switch direction {
	case "column":
		n.AddClass("flex-column")
	case "row-reverse":
		n.AddClass("flex-row-reverse")
	case "column-reverse":
		n.AddClass("flex-column-reverse")
	}
	if c, ok := justifyClasses[justify]; ok {
		n.AddClass(c)
	}
	if c, ok := alignClasses[align]; ok {
		n.AddClass(c)
	}
	if wrap {
		n.AddClass("flex-wrap")
	}
	return n
}

// Alert creates a dismissable-free Bootstrap alert of the given kind
// ("primary", "danger", ...).
func Alert(message, kind string) *dom.Node {
	if kind == "" {
		kind = "primary"
	}
	n := textEl("div", message, "alert", "alert-"+kind)
	n.SetAttribute("role", "alert")
	return n
}

// Badge creates a Bootstrap badge of the given kind.
func Badge(text, kind string) *dom.Node {
	if kind == "" {
		kind = "secondary"
	}
	return textEl("span", text, "badge", "bg-"+kind)
}

// ProgressBar creates a Bootstrap progress bar at the given percentage,
// clamped to 0..100.
func ProgressBar(percent int) *dom.Node {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	bar := Div("progress-bar")
	bar.SetAttribute("role", "progressbar")
	bar.SetAttribute("aria-valuenow", strconv.Itoa(percent))
	bar.SetAttribute("aria-valuemin", "0")
	bar.SetAttribute("aria-valuemax", "100")
	bar.SetStyle("width", strconv.Itoa(percent)+"%")
	return attach(Div("progress"), bar)
}

// HeroSection creates a hero banner with a title and subtitle.
func HeroSection(title, subtitle string) *dom.Node {
	inner := Container(false)
	attach(inner, textEl("h1", title, "display-4"))
	if subtitle != "" {
		attach(inner, textEl("p", subtitle, "lead"))
	}
	hero := Div("hero-section", "bg-primary", "text-white", "text-center", "py-5")
	return attach(hero, inner)
}

// FeatureCard creates a card with an icon line, a title and a description.
func FeatureCard(icon, title, text string) *dom.Node {
	body := Div("card-body", "text-center")
	if icon != "" {
		attach(body, textEl("div", icon, "feature-icon", "fs-1", "mb-3"))
	}
	attach(body, textEl("h5", title, "card-title"))
	attach(body, textEl("p", text, "card-text"))
	return attach(Div("card", "h-100"), body)
}
