/*
Package style implements the ordered collections behind a node's computed
`class` and `style` attributes.

Both collections preserve insertion order. Property maps additionally follow
a "last write wins, first position kept" rule: overwriting a property changes
its value but not its position. This makes serialized output stable across
repeated renders and friendly to diff-based testing.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package style
