/*
Package authn injects extension elements into SAML AuthnRequest documents
built by gosaml2.

gosaml2 produces AuthnRequests as etree documents but offers no hook for the
<samlp:Extensions> block. This package places a built extension container into
the document at the position the SAML core schema expects (directly after the
Issuer element) and wraps the redirect and POST bindings so callers get a
ready-to-use URL or form body in one call:

	url, err := authn.BuildAuthURL(sp, relayState, exts)

Signed requests are handled by signing after injection, so the signature
covers the extension content.
*/
package authn
