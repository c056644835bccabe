/*
Package registry implements the extensibility registry: process-wide
name→value bindings for component types, templates, render hooks and
filters.

Rather than a package-level global, the registry is an explicit value with a
documented init/freeze lifecycle. Applications construct one registry during
startup, populate it, call Freeze, and pass it to rendering calls. After the
freeze, concurrent readers need no additional locking discipline.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package registry
