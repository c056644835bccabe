/*
Package page assembles complete HTML documents around rendered composition
trees.

A Page collects document-level state (title, metadata, theme, stylesheet
and script links, custom CSS/JS, top-level content nodes) and Generate
wraps the rendered content in a static document skeleton. The skeleton is
plain, deterministic string templating; the recursive work happens in
package render.

Themes are entries in a lookup table mapping a name to framework links and
skeleton conventions; supporting another CSS framework means registering
another entry.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package page
