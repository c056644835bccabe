/*
Package component provides constructors for the built-in component set:
headings, containers, grids, forms, cards, navigation bars and the like.

Each constructor returns an ordinary dom node tree following the Bootstrap
class conventions, ready to be styled further or attached to a page. The
closed, statically typed constructor set is complemented by registry
factories (RegisterBuiltins / Create) for callers that construct components
by name.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package component
