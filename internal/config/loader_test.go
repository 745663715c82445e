package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	doc := `
resultName: Contact
fields:
  - fieldName: name
    sourcePath: [Account, Name]
    rowKey: abc
  - fieldName: amount
    sourcePath:
      - Amount
    flattened: stale
`
	d, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, Name("Contact"), d.ResultName)
	require.Len(t, d.Fields, 2)

	assert.Equal(t, "Account::Name", d.Fields[0].Flattened)
	assert.Equal(t, "abc", d.Fields[0].Extra["rowKey"])

	// flattened is always re-derived from the source path
	assert.Equal(t, "Amount", d.Fields[1].Flattened)
	assert.Empty(t, d.Fields[1].Extra)
}

func TestParse_NullResultName(t *testing.T) {
	d, err := Parse([]byte(`{"resultName": null, "fields": []}`))
	require.NoError(t, err)

	assert.Empty(t, d.ResultName)
	assert.NotNil(t, d.Fields)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("fields: {not: [a list"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse configuration")
}

func TestMarshal_DefaultShape(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)
	assert.Equal(t, "resultName: null\nfields: []\n", string(data))

	js, err := json.Marshal(Default())
	require.NoError(t, err)
	assert.JSONEq(t, `{"resultName": null, "fields": []}`, string(js))
}

func TestWriteFileLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := &Configuration{
		ResultName: "Out",
		Fields:     []FieldMapping{{FieldName: "f", SourcePath: []string{"a", "b"}}},
	}

	require.NoError(t, WriteFile(cfg, path))

	d, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, Outbound(d))
	assert.Equal(t, "a::b", d.Fields[0].Flattened)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, statErr := os.Stat(path)
	require.NoError(t, statErr)
}
