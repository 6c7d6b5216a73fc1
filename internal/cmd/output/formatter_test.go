package output

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	Name    string `json:"name"`
	SpecURL string `json:"spec_url"`
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{
		"table": FormatTable,
		"json":  FormatJSON,
		"YAML":  FormatYAML,
		"":      Format(""),
	} {
		got, err := ParseFormat(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("yaml"))
	assert.Equal(t, FormatTable, DetectFormat("TABLE"))
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON)
	require.NoError(t, f.Format(&buf, testRow{Name: "license", SpecURL: "https://example.com"}))
	assert.JSONEq(t, `{"name":"license","spec_url":"https://example.com"}`, buf.String())
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatYAML)
	require.NoError(t, f.Format(&buf, testRow{Name: "uom", SpecURL: "https://example.com"}))
	assert.Contains(t, buf.String(), "name: uom")
	assert.Contains(t, buf.String(), "spec_url: https://example.com")
}

func TestTableFormatterData(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}
	err := f.Format(&buf, Data{
		Headers: []string{"Name", "UUID"},
		Rows:    [][]string{{"license", "b77365e5"}},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "license")
	assert.Contains(t, buf.String(), "b77365e5")
}

func TestTableFormatterStructSlice(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}
	rows := []testRow{
		{Name: "license", SpecURL: "https://example.com/license"},
		{Name: "uom", SpecURL: "https://example.com/uom"},
	}
	require.NoError(t, f.Format(&buf, rows))

	// tablewriter renders headers uppercased.
	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "SPEC URL")
	assert.Contains(t, out, "license")
	assert.Contains(t, out, "uom")
}

func TestTableFormatterSingleStruct(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}
	require.NoError(t, f.Format(&buf, testRow{Name: "license", SpecURL: "https://example.com"}))

	out := buf.String()
	assert.Contains(t, out, "PROPERTY")
	assert.Contains(t, out, "VALUE")
	assert.Contains(t, out, "license")
}

func TestHeaderName(t *testing.T) {
	typ := reflect.TypeOf(testRow{})
	assert.Equal(t, "Name", headerName(typ.Field(0)))
	assert.Equal(t, "Spec Url", headerName(typ.Field(1)))
}
