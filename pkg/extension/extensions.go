package extension

import (
	"github.com/beevik/etree"
)

// Extensions is an ordered collection of extension elements destined for the
// <samlp:Extensions> block of an AuthnRequest. The zero value is an empty
// container ready for use.
//
// The container is not safe for concurrent mutation; callers appending from
// multiple goroutines must synchronize.
type Extensions struct {
	elements []ExtensionElement
}

// Append adds el to the end of the collection.
func (x *Extensions) Append(el ExtensionElement) {
	x.elements = append(x.elements, el)
}

// Len reports the number of collected extension elements.
func (x *Extensions) Len() int {
	return len(x.elements)
}

// Elements returns the collected extension elements in insertion order.
func (x *Extensions) Elements() []ExtensionElement {
	return x.elements
}

// Element builds a self-contained samlp:Extensions element holding every
// collected extension in insertion order. It returns nil when the container
// is empty so no empty Extensions block is ever emitted.
func (x *Extensions) Element() *etree.Element {
	if len(x.elements) == 0 {
		return nil
	}
	ext := etree.NewElement(prefixProtocol + ":Extensions")
	ext.CreateAttr("xmlns:"+prefixProtocol, NSSAMLProtocol)
	for _, el := range x.elements {
		el.AttachTo(ext)
	}
	return ext
}

// AttachTo appends a samlp:Extensions child to parent containing the
// collected elements. An empty container attaches nothing.
func (x *Extensions) AttachTo(parent *etree.Element) {
	if ext := x.Element(); ext != nil {
		parent.AddChild(ext)
	}
}
