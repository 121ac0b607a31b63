package extension

// Namespace constants for the AKDB request extension and SAML protocol
const (
	// NSRequest is the AKDB AuthenticationRequest extension namespace
	NSRequest = "https://www.akdb.de/request/2018/09"

	// NSClassicUI is the AKDB classic-ui namespace carrying display metadata
	NSClassicUI = "https://www.akdb.de/request/2018/09/classic-ui/v1"

	// NSSAMLProtocol is the SAML 2.0 protocol namespace (samlp)
	NSSAMLProtocol = "urn:oasis:names:tc:SAML:2.0:protocol"
)

// Prefixes used when emitting namespaced elements
const (
	prefixRequest   = "akdb"
	prefixClassicUI = "classic-ui"
	prefixProtocol  = "samlp"
)
