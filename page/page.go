package page

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/pagecraft/pagecraft/cssom"
	"github.com/pagecraft/pagecraft/dom"
	"github.com/pagecraft/pagecraft/dom/style"
	"github.com/pagecraft/pagecraft/registry"
	"github.com/pagecraft/pagecraft/render"
)

// Page is the root aggregate representing one document under construction.
// Content nodes are appended during the construction phase; Generate
// consumes the current state and is idempotent: repeated calls with no
// intervening mutation produce byte-identical output.
type Page struct {
	title       string
	description string
	lang        string
	theme       Theme
	metas       style.PropertyMap
	cssLinks    []string
	scriptLinks []string
	bodyClasses style.ClassList
	customCSS   []string
	customJS    []string
	content     []*dom.Node
	reg         *registry.Registry
}

// New creates a page with the given title, language "en" and the bootstrap
// theme.
func New(title string) *Page {
	theme, _ := LookupTheme("bootstrap")
	return &Page{title: title, lang: "en", theme: theme}
}

// SetDescription sets the description meta tag.
func (p *Page) SetDescription(text string) *Page {
	p.description = text
	return p
}

// SetLang sets the document language.
func (p *Page) SetLang(lang string) *Page {
	p.lang = lang
	return p
}

// SetTheme selects a theme from the lookup table. Unknown names are an
// error at this call, not at Generate time.
func (p *Page) SetTheme(name string) error {
	theme, err := LookupTheme(name)
	if err != nil {
		return err
	}
	p.theme = theme
	return nil
}

// Theme returns the currently selected theme.
func (p *Page) Theme() Theme {
	return p.theme
}

// UseRegistry makes Generate consult reg for render hooks.
func (p *Page) UseRegistry(reg *registry.Registry) *Page {
	p.reg = reg
	return p
}

// AddMeta adds a named meta tag. Re-adding a name overwrites its content,
// keeping the tag's position.
func (p *Page) AddMeta(name, content string) *Page {
	p.metas.Set(name, content)
	return p
}

// AddStylesheet appends a stylesheet link after the theme's links.
func (p *Page) AddStylesheet(href string) *Page {
	p.cssLinks = append(p.cssLinks, href)
	return p
}

// AddScript appends a script link after the theme's scripts.
func (p *Page) AddScript(src string) *Page {
	p.scriptLinks = append(p.scriptLinks, src)
	return p
}

// AddBodyClass adds a class to the <body> element.
func (p *Page) AddBodyClass(name string) *Page {
	p.bodyClasses.Add(name)
	return p
}

// AddStyles splices the rendered rule set into the document head. The rule
// set is rendered now; later mutation of rs does not affect the page.
func (p *Page) AddStyles(rs *cssom.RuleSet) *Page {
	p.customCSS = append(p.customCSS, rs.Render())
	return p
}

// AppendCSS splices raw CSS text into the document head. The text is
// validated immediately; malformed CSS is a configuration error here, not a
// silently broken document later.
func (p *Page) AppendCSS(cssText string) error {
	if _, err := cssom.Parse(cssText); err != nil {
		return err
	}
	p.customCSS = append(p.customCSS, cssText)
	return nil
}

// AppendJS appends script text emitted at the end of the body.
func (p *Page) AppendJS(js string) *Page {
	p.customJS = append(p.customJS, js)
	return p
}

// Append adds top-level content nodes in order.
func (p *Page) Append(nodes ...*dom.Node) *Page {
	p.content = append(p.content, nodes...)
	return p
}

// Generate serializes the page into a complete HTML document. The skeleton
// assembly is plain string templating around the recursively rendered
// content tree; it never returns a truncated document.
func (p *Page) Generate() string {
	r := render.New(p.reg)
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="` + html.EscapeString(p.lang) + `"`)
	for _, a := range p.theme.HTMLAttrs {
		b.WriteString(" " + a.Key + `="` + html.EscapeString(a.Value) + `"`)
	}
	b.WriteString(">\n<head>\n")
	b.WriteString("  <meta charset=\"UTF-8\">\n")
	b.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	b.WriteString("  <title>" + html.EscapeString(p.title) + "</title>\n")
	if p.description != "" {
		b.WriteString(`  <meta name="description" content="` + html.EscapeString(p.description) + "\">\n")
	}
	p.metas.Each(func(name, content string) {
		b.WriteString(`  <meta name="` + html.EscapeString(name) + `" content="` + html.EscapeString(content) + "\">\n")
	})
	for _, href := range p.theme.StylesheetLinks {
		b.WriteString(`  <link rel="stylesheet" href="` + html.EscapeString(href) + "\">\n")
	}
	for _, href := range p.cssLinks {
		b.WriteString(`  <link rel="stylesheet" href="` + html.EscapeString(href) + "\">\n")
	}
	if len(p.customCSS) > 0 {
		b.WriteString("  <style>\n")
		for _, css := range p.customCSS {
			b.WriteString(css)
			if !strings.HasSuffix(css, "\n") {
				b.WriteByte('\n')
			}
		}
		b.WriteString("  </style>\n")
	}
	b.WriteString("</head>\n<body")
	if cls := p.bodyClasses.String(); cls != "" {
		b.WriteString(` class="` + html.EscapeString(cls) + `"`)
	}
	b.WriteString(">\n")

	main := "<main"
	if p.theme.ContainerClass != "" {
		main += ` class="` + p.theme.ContainerClass + ` mt-4"`
	}
	b.WriteString(main + ">\n")
	for _, n := range p.content {
		b.WriteString(r.Render(n))
		b.WriteByte('\n')
	}
	b.WriteString("</main>\n")

	for _, src := range p.theme.ScriptLinks {
		b.WriteString(`<script src="` + html.EscapeString(src) + "\"></script>\n")
	}
	for _, src := range p.scriptLinks {
		b.WriteString(`<script src="` + html.EscapeString(src) + "\"></script>\n")
	}
	for _, js := range p.customJS {
		b.WriteString("<script>\n" + js)
		if !strings.HasSuffix(js, "\n") {
			b.WriteByte('\n')
		}
		b.WriteString("</script>\n")
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
