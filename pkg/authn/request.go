package authn

import (
	"fmt"

	"github.com/beevik/etree"
	saml2 "github.com/russellhaering/gosaml2"

	"github.com/bajuku-daniel/Products.SAML2Plugins/pkg/extension"
)

// InjectExtensions inserts a samlp:Extensions block carrying the container's
// elements into an AuthnRequest document. The block is placed directly after
// the Issuer child per the SAML core schema, or first when no Issuer is
// present. An empty container leaves the document untouched.
func InjectExtensions(doc *etree.Document, exts *extension.Extensions) error {
	ext := exts.Element()
	if ext == nil {
		return nil
	}

	root := doc.Root()
	if root == nil || root.Tag != "AuthnRequest" {
		return fmt.Errorf("document root is not an AuthnRequest")
	}

	root.InsertChildAt(childIndexAfter(root, "Issuer"), ext)
	return nil
}

// childIndexAfter returns the token index just past the first child element
// named tag, or 0 when no such child exists.
func childIndexAfter(parent *etree.Element, tag string) int {
	for i, token := range parent.Child {
		if el, ok := token.(*etree.Element); ok && el.Tag == tag {
			return i + 1
		}
	}
	return 0
}

// BuildRequestDocument builds an AuthnRequest document via sp, injects the
// extensions, and signs the result when sp.SignAuthnRequests is set. Signing
// happens after injection so the enveloped signature covers the extension
// content.
func BuildRequestDocument(sp *saml2.SAMLServiceProvider, exts *extension.Extensions) (*etree.Document, error) {
	doc, err := sp.BuildAuthRequestDocumentNoSig()
	if err != nil {
		return nil, fmt.Errorf("building authn request: %w", err)
	}

	if err := InjectExtensions(doc, exts); err != nil {
		return nil, err
	}

	if sp.SignAuthnRequests {
		signed, err := sp.SignAuthnRequest(doc.Root())
		if err != nil {
			return nil, fmt.Errorf("signing authn request: %w", err)
		}
		doc.SetRoot(signed)
	}

	return doc, nil
}

// BuildAuthURL returns a redirect-binding URL for an AuthnRequest carrying
// the extensions. The redirect binding never embeds an enveloped signature;
// gosaml2 signs the query string itself when configured to.
func BuildAuthURL(sp *saml2.SAMLServiceProvider, relayState string, exts *extension.Extensions) (string, error) {
	doc, err := sp.BuildAuthRequestDocumentNoSig()
	if err != nil {
		return "", fmt.Errorf("building authn request: %w", err)
	}

	if err := InjectExtensions(doc, exts); err != nil {
		return "", err
	}

	return sp.BuildAuthURLFromDocument(relayState, doc)
}

// BuildAuthBodyPost returns a POST-binding HTML form body for an AuthnRequest
// carrying the extensions, signed when the service provider is configured to
// sign requests.
func BuildAuthBodyPost(sp *saml2.SAMLServiceProvider, relayState string, exts *extension.Extensions) ([]byte, error) {
	doc, err := BuildRequestDocument(sp, exts)
	if err != nil {
		return nil, err
	}

	return sp.BuildAuthBodyPostFromDocument(relayState, doc)
}
