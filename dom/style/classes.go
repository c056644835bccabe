package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import "strings"

// ClassList is an ordered set of CSS class names. Adding a name that is
// already present is a no-op, so every name occurs once, at the position of
// its first insertion.
//
// The zero value is ready to use.
type ClassList struct {
	names []string
}

// Add appends a class name unless it is already present.
func (cl *ClassList) Add(name string) {
	if name == "" || cl.Contains(name) {
		return
	}
	cl.names = append(cl.names, name)
}

// Contains reports whether a class name is present.
func (cl *ClassList) Contains(name string) bool {
	for _, n := range cl.names {
		if n == name {
			return true
		}
	}
	return false
}

// Remove deletes a class name, giving up its position.
func (cl *ClassList) Remove(name string) {
	for i, n := range cl.names {
		if n == name {
			cl.names = append(cl.names[:i], cl.names[i+1:]...)
			return
		}
	}
}

// Len returns the number of class names.
func (cl *ClassList) Len() int {
	return len(cl.names)
}

// Names returns all class names in insertion order.
func (cl *ClassList) Names() []string {
	names := make([]string, len(cl.names))
	copy(names, cl.names)
	return names
}

// String joins all class names with single spaces, the form a `class`
// attribute expects. An empty list yields "".
func (cl *ClassList) String() string {
	return strings.Join(cl.names, " ")
}
