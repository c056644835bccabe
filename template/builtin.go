package template

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// Built-in templates: a hero banner, a card grid and a footer. They follow
// the Bootstrap class conventions the built-in components use.

const heroSource = `<div class="hero-section bg-primary text-white text-center py-5">
  <div class="container">
    <h1 class="display-4">{{title}}</h1>
    <p class="lead">{{subtitle}}</p>
    <div class="hero-actions">{{actions}}</div>
  </div>
</div>`

const cardGridSource = `<div class="container my-5">
  <div class="row">
    <div class="col-12 text-center mb-4">
      <h2>{{section_title}}</h2>
      <p class="text-muted">{{section_subtitle}}</p>
    </div>
  </div>
  <div class="row">{{cards}}</div>
</div>`

const footerSource = `<footer class="bg-dark text-white py-4 mt-5">
  <div class="container">
    <div class="row">
      <div class="col-md-6">
        <h5>{{company_name}}</h5>
        <p>{{company_description}}</p>
      </div>
      <div class="col-md-6">
        <h5>Links</h5>
        {{links}}
      </div>
    </div>
    <hr class="my-3">
    <div class="text-center">
      <small>&copy; {{year}} {{company_name}}. {{copyright_text}}</small>
    </div>
  </div>
</footer>`

// DefineBuiltins registers the built-in templates ("hero", "card_grid",
// "footer") with their declared defaults. It fails if one of the names is
// already taken.
func DefineBuiltins(e *Engine) error {
	builtins := []struct {
		name     string
		source   string
		defaults map[string]string
	}{
		{"hero", heroSource, map[string]string{
			"title":    "Welcome",
			"subtitle": "Your amazing website",
			"actions":  "",
		}},
		{"card_grid", cardGridSource, map[string]string{
			"section_title":    "Features",
			"section_subtitle": "Discover what we offer",
			"cards":            "",
		}},
		{"footer", footerSource, map[string]string{
			"company_name":        "Your Company",
			"company_description": "Building amazing web experiences.",
			"links":               "",
			"year":                "2025",
			"copyright_text":      "All rights reserved.",
		}},
	}
	for _, b := range builtins {
		if _, err := e.Define(b.name, b.source, b.defaults); err != nil {
			return err
		}
	}
	return nil
}
