package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_YAML(t *testing.T) {
	doc := `
Source:
  field:
    fieldName: Source
  children:
    Account:
      field:
        fieldName: Account
      children:
        Name:
          field:
            fieldName: Name
          children: null
`
	tree, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.NotNil(t, tree.Source)

	account := tree.Source.Children["Account"]
	require.NotNil(t, account)
	assert.Equal(t, "Account", account.Field.FieldName)
	assert.Nil(t, account.Children["Name"].Children)

	opts, err := tree.Options(nil)
	require.NoError(t, err)
	assert.Equal(t, []FieldPathOption{
		{Value: "Account", Label: "Account"},
		{Value: "Account::Name", Label: "Account.Name"},
	}, opts)
}

func TestParse_JSON(t *testing.T) {
	doc := `{"Source": {"field": {"fieldName": "Source"}, "children": {
  "Id": {"field": {"fieldName": "Id"}, "children": null}
}}}`

	tree, err := Parse([]byte(doc))
	require.NoError(t, err)

	opts, err := tree.Options(nil)
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, "Id", opts[0].Value)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("other: {}"))
	assert.ErrorIs(t, err, ErrNoSource)

	_, err = Parse([]byte("Source: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse schema")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Source:\n  field: {fieldName: Source}\n"), 0o644))

	tree, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Source", tree.Source.Field.FieldName)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read schema file")
}
