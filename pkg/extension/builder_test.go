package extension

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilder_Defaults(t *testing.T) {
	b, err := NewBuilder(Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultProfile, b.cfg.Profile)
	assert.Equal(t, DefaultVersion, b.cfg.Version)
}

func TestNewBuilder_KeepsExplicitValues(t *testing.T) {
	b, err := NewBuilder(Config{Profile: "bayernid", Version: "1"})
	require.NoError(t, err)
	assert.Equal(t, "bayernid", b.cfg.Profile)
	assert.Equal(t, "1", b.cfg.Version)
}

func TestNewBuilder_MissingAttributeName(t *testing.T) {
	_, err := NewBuilder(Config{
		RequestedAttributes: []RequestedAttribute{{Required: true}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid extension config")
}

func TestBuilder_EmptyConfig(t *testing.T) {
	b, err := NewBuilder(Config{})
	require.NoError(t, err)

	el := b.Element()
	assert.Equal(t, "AuthenticationRequest", el.Tag)
	assert.Equal(t, "akdb", el.Space)
	assert.Equal(t, "2", el.SelectAttrValue("Version", ""))
	assert.Equal(t, NSRequest, el.SelectAttrValue("xmlns:akdb", ""))

	// no optional sections requested, no children at all
	assert.Empty(t, el.ChildElements())
}

func TestBuilder_RequestedAttributesOrder(t *testing.T) {
	b, err := NewBuilder(Config{
		RequestedAttributes: []RequestedAttribute{
			{Name: "urn:oid:2.5.4.42", Required: true},
			{Name: "urn:oid:2.5.4.4"},
			{Name: "urn:oid:0.9.2342.19200300.100.1.3", Required: true},
		},
	})
	require.NoError(t, err)

	attrs := b.Element().SelectElement("RequestedAttributes")
	require.NotNil(t, attrs)

	entries := attrs.SelectElements("RequestedAttribute")
	require.Len(t, entries, 3)
	assert.Equal(t, "urn:oid:2.5.4.42", entries[0].SelectAttrValue("Name", ""))
	assert.Equal(t, "urn:oid:2.5.4.4", entries[1].SelectAttrValue("Name", ""))
	assert.Equal(t, "urn:oid:0.9.2342.19200300.100.1.3", entries[2].SelectAttrValue("Name", ""))
}

func TestBuilder_RequiredAttributeRendering(t *testing.T) {
	b, err := NewBuilder(Config{
		RequestedAttributes: []RequestedAttribute{
			{Name: "a", Required: true},
			{Name: "b"},
		},
	})
	require.NoError(t, err)

	entries := b.Element().SelectElement("RequestedAttributes").SelectElements("RequestedAttribute")
	require.Len(t, entries, 2)
	assert.Equal(t, "true", entries[0].SelectAttrValue("RequiredAttribute", ""))
	assert.Equal(t, "false", entries[1].SelectAttrValue("RequiredAttribute", ""))
}

func TestBuilder_DisplayInformation(t *testing.T) {
	b, err := NewBuilder(Config{
		DisplayInformation: DisplayInformation{
			OrganizationDisplayName: "Musterbehörde",
			OnlineServiceID:         "SVC123",
		},
	})
	require.NoError(t, err)

	el := b.Element()
	display := el.SelectElement("DisplayInformation")
	require.NotNil(t, display)
	assert.Equal(t, "akdb", display.Space)

	version := display.SelectElement("Version")
	require.NotNil(t, version)
	assert.Equal(t, "classic-ui", version.Space)
	assert.Equal(t, NSClassicUI, version.SelectAttrValue("xmlns:classic-ui", ""))

	assert.Equal(t, "Musterbehörde", version.SelectElement("OrganizationDisplayName").Text())
	assert.Equal(t, "SVC123", version.SelectElement("OnlineServiceId").Text())
}

func TestBuilder_DisplayInformationPartial(t *testing.T) {
	b, err := NewBuilder(Config{
		DisplayInformation: DisplayInformation{
			OrganizationDisplayName: "Musterbehörde",
		},
	})
	require.NoError(t, err)

	version := b.Element().SelectElement("DisplayInformation").SelectElement("Version")
	require.NotNil(t, version)

	// the absent field renders as a present-but-empty element, never omitted
	serviceID := version.SelectElement("OnlineServiceId")
	require.NotNil(t, serviceID)
	assert.Equal(t, "", serviceID.Text())
}

func TestBuilder_OmittedSections(t *testing.T) {
	b, err := NewBuilder(Config{
		RequestedAttributes: []RequestedAttribute{{Name: "a"}},
	})
	require.NoError(t, err)

	el := b.Element()
	assert.NotNil(t, el.SelectElement("RequestedAttributes"))
	assert.Nil(t, el.SelectElement("DisplayInformation"))

	b, err = NewBuilder(Config{
		DisplayInformation: DisplayInformation{OnlineServiceID: "SVC123"},
	})
	require.NoError(t, err)

	el = b.Element()
	assert.Nil(t, el.SelectElement("RequestedAttributes"))
	assert.NotNil(t, el.SelectElement("DisplayInformation"))
}

func TestBuilder_AddExtensionsGrowsByOne(t *testing.T) {
	b, err := NewBuilder(Config{
		RequestedAttributes: []RequestedAttribute{{Name: "a"}},
	})
	require.NoError(t, err)

	exts := &Extensions{}
	b.AddExtensions(exts)
	assert.Equal(t, 1, exts.Len())

	b.AddExtensions(exts)
	assert.Equal(t, 2, exts.Len())
}

func TestBuilder_DeterministicOutput(t *testing.T) {
	cfg := Config{
		RequestedAttributes: []RequestedAttribute{
			{Name: "urn:oid:2.5.4.42", Required: true},
			{Name: "urn:oid:2.5.4.4"},
		},
		DisplayInformation: DisplayInformation{
			OrganizationDisplayName: "Musterbehörde",
			OnlineServiceID:         "SVC123",
		},
	}

	first := &Extensions{}
	second := &Extensions{}
	for _, exts := range []*Extensions{first, second} {
		b, err := NewBuilder(cfg)
		require.NoError(t, err)
		b.AddExtensions(exts)
	}

	out1, err := first.Elements()[0].Render()
	require.NoError(t, err)
	out2, err := second.Elements()[0].Render()
	require.NoError(t, err)
	assert.Equal(t, out1, out2)
}

func TestBuilder_EndToEnd(t *testing.T) {
	b, err := NewBuilder(Config{
		RequestedAttributes: []RequestedAttribute{
			{Name: "givenName", Required: true},
		},
		DisplayInformation: DisplayInformation{
			OrganizationDisplayName: "Musterbehörde",
			OnlineServiceID:         "SVC123",
		},
	})
	require.NoError(t, err)

	exts := &Extensions{}
	b.AddExtensions(exts)
	require.Equal(t, 1, exts.Len())

	rendered, err := exts.Elements()[0].Render()
	require.NoError(t, err)

	assert.Contains(t, rendered, `<akdb:AuthenticationRequest`)
	assert.Contains(t, rendered, `Version="2"`)
	assert.Contains(t, rendered, `Name="givenName"`)
	assert.Contains(t, rendered, `RequiredAttribute="true"`)
	assert.Equal(t, 1, strings.Count(rendered, "Musterbehörde"))
	assert.Equal(t, 1, strings.Count(rendered, "SVC123"))
	assert.Equal(t, 1, strings.Count(rendered, "<akdb:DisplayInformation>"))
}
