/*
Package extension builds AKDB AuthenticationRequest extension elements for
SAML AuthnRequests, as required by BundID, BayernID and similar German
eGovernment identity providers.

The IdPs of this family expect an <akdb:AuthenticationRequest> fragment inside
the <samlp:Extensions> block of the AuthnRequest, listing the attributes the
service provider wants released and, optionally, display metadata shown to the
citizen during login.

# Building Extensions

Construct a Builder from a Config and append the result to an Extensions
container:

	builder, err := extension.NewBuilder(extension.Config{
	    RequestedAttributes: []extension.RequestedAttribute{
	        {Name: "urn:oid:2.5.4.42", Required: true}, // givenName
	        {Name: "urn:oid:2.5.4.4"},                  // surname
	    },
	    DisplayInformation: extension.DisplayInformation{
	        OrganizationDisplayName: "Musterbehörde",
	        OnlineServiceID:         "SVC123",
	    },
	})
	if err != nil {
	    // config rejected before any XML is built
	}

	exts := &extension.Extensions{}
	builder.AddExtensions(exts)

The container can then be attached to any element, or handed to package authn
to be injected into a gosaml2-built AuthnRequest document.

# Namespaces

The package defines the AKDB namespaces as constants:

	NSRequest   = "https://www.akdb.de/request/2018/09"
	NSClassicUI = "https://www.akdb.de/request/2018/09/classic-ui/v1"
*/
package extension
