// Package config handles configuration loading for the SAML extension
// tooling.
//
// Configuration is loaded from a YAML file with support for environment
// variable expansion (${VAR} or $VAR syntax), so certificate and key material
// can be injected at runtime.
//
// # Example Configuration
//
//	service_provider:
//	  idp_sso_url: https://id.bund.de/idp/profile/SAML2/Redirect/SSO
//	  idp_issuer: https://id.bund.de/idp
//	  sp_issuer: https://sp.example.de/metadata
//	  acs_url: https://sp.example.de/acs
//	  sign_requests: false
//
//	extension:
//	  version: "2"
//	  requested_attributes:
//	    - name: urn:oid:2.5.4.42
//	      required: true
//	  display_information:
//	    organization_display_name: Musterbehörde
//	    online_service_id: SVC123
//
// See [Load] for loading configuration from a file.
package config

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	saml2 "github.com/russellhaering/gosaml2"
	dsig "github.com/russellhaering/goxmldsig"
	"gopkg.in/yaml.v3"

	"github.com/bajuku-daniel/Products.SAML2Plugins/pkg/extension"
)

// Config is the root configuration structure
type Config struct {
	SP        SPConfig         `yaml:"service_provider"`
	Extension extension.Config `yaml:"extension"`
}

// SPConfig holds the SAML service provider settings handed to gosaml2
type SPConfig struct {
	IdPSSOURL    string `yaml:"idp_sso_url" validate:"required,url"`
	IdPIssuer    string `yaml:"idp_issuer" validate:"required"`
	SPIssuer     string `yaml:"sp_issuer" validate:"required"`
	ACSURL       string `yaml:"acs_url" validate:"required,url"`
	AudienceURI  string `yaml:"audience_uri"`
	NameIDFormat string `yaml:"name_id_format"`
	SignRequests bool   `yaml:"sign_requests"`

	// IdPCertificate is the IdP signing certificate in PEM form, used to
	// verify responses. Optional when only requests are built.
	IdPCertificate string `yaml:"idp_certificate"`

	// SPCertificate and SPPrivateKey are the service provider's signing
	// material in PEM form, required when sign_requests is set.
	SPCertificate string `yaml:"sp_certificate"`
	SPPrivateKey  string `yaml:"sp_private_key"`
}

// Load reads a YAML configuration file, expands environment variables and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}
	if c.SP.SignRequests && c.SP.SPPrivateKey == "" {
		return fmt.Errorf("sign_requests is set but sp_private_key is empty")
	}
	return nil
}

// ServiceProvider assembles a gosaml2 service provider from the
// configuration, parsing the PEM certificate and key material into goxmldsig
// stores.
func (c *Config) ServiceProvider() (*saml2.SAMLServiceProvider, error) {
	certStore := &dsig.MemoryX509CertificateStore{}
	if c.SP.IdPCertificate != "" {
		cert, err := parseCertificate(c.SP.IdPCertificate)
		if err != nil {
			return nil, fmt.Errorf("parsing IdP certificate: %w", err)
		}
		certStore.Roots = []*x509.Certificate{cert}
	}

	var keyStore dsig.X509KeyStore
	if c.SP.SPPrivateKey != "" {
		cert, err := parseCertificate(c.SP.SPCertificate)
		if err != nil {
			return nil, fmt.Errorf("parsing SP certificate: %w", err)
		}
		key, err := parsePrivateKey(c.SP.SPPrivateKey)
		if err != nil {
			return nil, fmt.Errorf("parsing SP private key: %w", err)
		}
		keyStore = &dsig.TLSCertKeyStore{
			PrivateKey:  key,
			Certificate: [][]byte{cert.Raw},
		}
	}

	sp := &saml2.SAMLServiceProvider{
		IdentityProviderSSOURL:      c.SP.IdPSSOURL,
		IdentityProviderIssuer:      c.SP.IdPIssuer,
		ServiceProviderIssuer:       c.SP.SPIssuer,
		AssertionConsumerServiceURL: c.SP.ACSURL,
		AudienceURI:                 c.SP.AudienceURI,
		SignAuthnRequests:           c.SP.SignRequests,
		IDPCertificateStore:         certStore,
		SPKeyStore:                  keyStore,
	}
	if c.SP.NameIDFormat != "" {
		sp.NameIdFormat = c.SP.NameIDFormat
	}

	return sp, nil
}

func parseCertificate(pemData string) (*x509.Certificate, error) {
	block, _ := pem.Decode([]byte(pemData))
	if block == nil {
		return nil, fmt.Errorf("no PEM block found")
	}
	return x509.ParseCertificate(block.Bytes)
}

// parsePrivateKey accepts PKCS#1 and PKCS#8 encoded RSA keys, as IdP vendors
// ship either.
func parsePrivateKey(pemData string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(pemData))
	if block == nil {
		return nil, fmt.Errorf("no PEM block found")
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is not RSA")
	}
	return key, nil
}
