package extension

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/go-playground/validator/v10"
)

// Defaults applied when the corresponding Config fields are empty
const (
	DefaultProfile = "bundid"
	DefaultVersion = "2"
)

// Config describes the extension content. The YAML keys match the
// configuration format consumed by config.Load.
type Config struct {
	// Profile selects the eGovernment profile the extension targets
	// (bundid, bayernid, ...). Carried for configuration purposes; the
	// produced markup is identical across AKDB profiles.
	Profile string `yaml:"profile"`

	// Version is emitted as the Version attribute of the
	// AuthenticationRequest element.
	Version string `yaml:"version"`

	// RequestedAttributes lists the attributes the service provider wants
	// the IdP to release, in the order they should appear.
	RequestedAttributes []RequestedAttribute `yaml:"requested_attributes" validate:"dive"`

	// DisplayInformation holds metadata shown to the citizen during login.
	// The zero value omits the DisplayInformation block entirely.
	DisplayInformation DisplayInformation `yaml:"display_information"`
}

// RequestedAttribute names one attribute requested from the IdP.
type RequestedAttribute struct {
	Name     string `yaml:"name" validate:"required"`
	Required bool   `yaml:"required"`
}

// DisplayInformation carries the classic-ui display metadata. A field left
// empty renders as a present-but-empty element.
type DisplayInformation struct {
	OrganizationDisplayName string `yaml:"organization_display_name"`
	OnlineServiceID         string `yaml:"online_service_id"`
}

// Builder constructs AKDB AuthenticationRequest extension elements from a
// validated Config. A Builder is immutable and may be reused; every call to
// Element or AddExtensions produces a fresh tree.
type Builder struct {
	cfg Config
}

// NewBuilder applies defaults to cfg, validates it and returns a Builder.
// Validation is fail-fast: a requested attribute without a name is rejected
// here rather than surfacing later during XML construction.
func NewBuilder(cfg Config) (*Builder, error) {
	if cfg.Profile == "" {
		cfg.Profile = DefaultProfile
	}
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid extension config: %w", err)
	}

	return &Builder{cfg: cfg}, nil
}

// Element builds the akdb:AuthenticationRequest element. Construction is a
// deterministic single pass over the config: identical configs yield
// identical serialized output.
func (b *Builder) Element() *etree.Element {
	root := etree.NewElement(prefixRequest + ":AuthenticationRequest")
	root.CreateAttr("xmlns:"+prefixRequest, NSRequest)
	root.CreateAttr("Version", b.cfg.Version)

	if len(b.cfg.RequestedAttributes) > 0 {
		attrs := root.CreateElement(prefixRequest + ":RequestedAttributes")
		for _, ra := range b.cfg.RequestedAttributes {
			el := attrs.CreateElement(prefixRequest + ":RequestedAttribute")
			el.CreateAttr("Name", ra.Name)
			el.CreateAttr("RequiredAttribute", strconv.FormatBool(ra.Required))
		}
	}

	if b.cfg.DisplayInformation != (DisplayInformation{}) {
		display := root.CreateElement(prefixRequest + ":DisplayInformation")
		version := display.CreateElement(prefixClassicUI + ":Version")
		version.CreateAttr("xmlns:"+prefixClassicUI, NSClassicUI)
		version.CreateElement(prefixClassicUI + ":OrganizationDisplayName").
			SetText(b.cfg.DisplayInformation.OrganizationDisplayName)
		version.CreateElement(prefixClassicUI + ":OnlineServiceId").
			SetText(b.cfg.DisplayInformation.OnlineServiceID)
	}

	return root
}

// AddExtensions wraps a freshly built element in an ElementAdapter and
// appends it to ext. Each call grows the container by exactly one element;
// calling it twice appends two independent trees.
func (b *Builder) AddExtensions(ext *Extensions) {
	ext.Append(NewElementAdapter(b.Element()))
}
