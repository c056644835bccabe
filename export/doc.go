/*
Package export converts composition trees to and from a structural,
JSON-friendly document form.

The document form preserves everything the renderer depends on, including
node kinds, insertion-ordered attributes, classes, styles and event
handlers, so a round trip through JSON renders byte-identically. Binary export
formats (PDF, images) are owned by external collaborators; they consume the
rendered HTML string, not this form.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package export
