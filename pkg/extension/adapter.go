package extension

import (
	"github.com/beevik/etree"
)

// ExtensionElement is the capability set the SAML serialization layer expects
// from an extension: attach itself under a parent node and render itself to a
// string. ElementAdapter is the canonical implementation.
type ExtensionElement interface {
	// AttachTo appends the element as a child of parent.
	AttachTo(parent *etree.Element)

	// Render returns the element subtree serialized as a string.
	Render() (string, error)
}

// ElementAdapter wraps a single etree element so it satisfies
// ExtensionElement. The adapter owns the wrapped element; callers must not
// mutate it after construction.
type ElementAdapter struct {
	el *etree.Element
}

// NewElementAdapter wraps el in an ElementAdapter.
func NewElementAdapter(el *etree.Element) *ElementAdapter {
	return &ElementAdapter{el: el}
}

// AttachTo appends the wrapped element as a child of parent.
func (a *ElementAdapter) AttachTo(parent *etree.Element) {
	parent.AddChild(a.el)
}

// Render serializes the wrapped element subtree. It operates on a copy so the
// wrapped element keeps its current parent.
func (a *ElementAdapter) Render() (string, error) {
	doc := etree.NewDocument()
	doc.SetRoot(a.el.Copy())
	return doc.WriteToString()
}
