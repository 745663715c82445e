package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Empty(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())
	assert.Empty(t, d.All())
}

func TestDiagnostics_WarningsStayValid(t *testing.T) {
	var d Diagnostics
	d.AddWarning(CodeUnknownSourcePath, "unknown source path", "fields[0].sourcePath", "A::B")

	assert.True(t, d.IsValid())
	assert.True(t, d.HasCode(CodeUnknownSourcePath))
	assert.Equal(t,
		"fields[0].sourcePath: [unknown_source_path] unknown source path (did you mean A::B?)",
		d.Warnings[0].String())
}

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	d.AddError(CodeResultNameRequired, "result name is required", "resultName")
	d.AddError(CodeFieldsRequired, "at least one field is required", "")
	d.AddWarning(CodeUnknownSourcePath, "unknown source path", "fields[0].sourcePath")

	require.Error(t, d.Error())
	assert.Equal(t,
		"resultName: [result_name_required] result name is required; [fields_required] at least one field is required",
		d.Error().Error())
	assert.Len(t, d.All(), 3)
	assert.Equal(t, SeverityWarning, d.All()[2].Severity)
	assert.Equal(t, SeverityError, d.All()[0].Severity)
}

func TestDiagnostics_HasCode(t *testing.T) {
	var d Diagnostics
	d.AddWarning(CodeUnknownSourcePath, "y", "")
	d.AddError(CodeResultNameConflict, "z", "resultName")

	assert.True(t, d.HasCode(CodeResultNameConflict))
	assert.True(t, d.HasCode(CodeUnknownSourcePath))
	assert.False(t, d.HasCode(CodeSourcePathRequired))
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
