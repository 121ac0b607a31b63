/*
Package saml2plugins provides vendor-specific SAML AuthnRequest extensions
for German eGovernment identity providers (BundID, BayernID and other
AKDB-operated systems).

# Overview

These IdPs require service providers to announce the attributes they want
released, and optionally display metadata for the login page, inside the
<samlp:Extensions> block of the AuthnRequest. This module builds that
extension markup from a typed configuration and wires it into AuthnRequests
produced by gosaml2.

# Package Structure

	github.com/bajuku-daniel/Products.SAML2Plugins/pkg/extension - extension element builder and container
	github.com/bajuku-daniel/Products.SAML2Plugins/pkg/authn     - injection into gosaml2 AuthnRequest documents

# Quick Start

	builder, err := extension.NewBuilder(extension.Config{
	    RequestedAttributes: []extension.RequestedAttribute{
	        {Name: "urn:oid:2.5.4.42", Required: true},
	    },
	})
	if err != nil {
	    log.Fatal(err)
	}

	exts := &extension.Extensions{}
	builder.AddExtensions(exts)

	url, err := authn.BuildAuthURL(sp, relayState, exts)

See examples/basic for a complete program.
*/
package saml2plugins
