package page

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pagecraft/pagecraft/dom/style"
)

// ErrUnknownTheme is reported when a page selects a theme name that has no
// table entry.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme selects which CSS-framework link set and base conventions the
// document skeleton uses. Adding a theme means adding a table entry, not
// changing the rendering algorithm.
type Theme struct {
	Name            string
	StylesheetLinks []string
	ScriptLinks     []string
	HTMLAttrs       []style.KeyValue // extra attributes on the <html> element
	ContainerClass  string           // class of the <main> wrapper
}

var (
	themeMu sync.RWMutex
	themes  = map[string]Theme{}
)

func init() {
	themes["bootstrap"] = Theme{
		Name: "bootstrap",
		StylesheetLinks: []string{
			"https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css",
		},
		ScriptLinks: []string{
			"https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/js/bootstrap.bundle.min.js",
		},
		HTMLAttrs:      []style.KeyValue{{Key: "data-bs-theme", Value: "dark"}},
		ContainerClass: "container",
	}
	themes["plain"] = Theme{Name: "plain"}
}

// RegisterTheme adds a theme to the lookup table. Overwriting an existing
// entry is an error; themes are registered once at startup.
func RegisterTheme(t Theme) error {
	themeMu.Lock()
	defer themeMu.Unlock()
	if _, ok := themes[t.Name]; ok {
		return fmt.Errorf("theme %q already registered", t.Name)
	}
	themes[t.Name] = t
	return nil
}

// LookupTheme returns the table entry for name.
func LookupTheme(name string) (Theme, error) {
	themeMu.RLock()
	defer themeMu.RUnlock()
	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return t, nil
}
