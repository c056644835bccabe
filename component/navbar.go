package component

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"github.com/pagecraft/pagecraft/dom"
)

// NavLink is one entry of a navigation bar.
type NavLink struct {
	Text string
	Href string
}

// Navbar creates a navigation bar with an optional brand and an ordered
// list of links.
func Navbar(brand string, links []NavLink) *dom.Node {
	nav := dom.NewElement("nav")
	nav.AddClass("navbar")
	nav.AddClass("navbar-expand")
	inner := Container(true)
	if brand != "" {
		b := textEl("a", brand, "navbar-brand")
		b.SetAttribute("href", "#")
		attach(inner, b)
	}
	ul := dom.NewElement("ul")
	ul.AddClass("navbar-nav")
	for _, l := range links {
		li := dom.NewElement("li")
		li.AddClass("nav-item")
		href := l.Href
		if href == "" {
			href = "#"
		}
		a := textEl("a", l.Text, "nav-link")
		a.SetAttribute("href", href)
		attach(li, a)
		attach(ul, li)
	}
	attach(inner, ul)
	return attach(nav, inner)
}
