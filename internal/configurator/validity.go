package configurator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"object-builder/internal/config"
	"object-builder/internal/diagnostic"
	"object-builder/internal/match"
	"object-builder/internal/schema"
)

// maxSuggestions bounds the alternatives attached to a warning.
const maxSuggestions = 3

// validate checks the structural rules tagged on config.Configuration.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their document names: "fields[0].sourcePath".
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Valid reports whether the configuration can be submitted: no name
// conflict, a result name, at least one field, and every field named and
// mapped to a source path.
func (c *Configurator) Valid() bool {
	return c.Validate().IsValid()
}

// Validate returns every reason the configuration is invalid, plus warnings
// for source paths the current schema does not offer.
func (c *Configurator) Validate() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if c.nameConflict {
		res.AddError(diagnostic.CodeResultNameConflict, ConflictMessage, "resultName")
	}

	if err := validate.Struct(c.Outbound()); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			res.AddError("invalid_configuration", err.Error(), "")
			return res
		}

		for _, fe := range verrs {
			addFieldError(res, fe)
		}
	}

	c.checkSourcePaths(res)

	return res
}

// addFieldError translates one validator failure into a diagnostic.
func addFieldError(res *diagnostic.Diagnostics, fe validator.FieldError) {
	field := strings.TrimPrefix(fe.Namespace(), "Configuration.")

	switch fe.Field() {
	case "resultName":
		res.AddError(diagnostic.CodeResultNameRequired, "result name is required", field)
	case "fields":
		res.AddError(diagnostic.CodeFieldsRequired, "at least one field is required", field)
	case "fieldName":
		res.AddError(diagnostic.CodeFieldNameRequired, "field name is required", field)
	case "sourcePath":
		res.AddError(diagnostic.CodeSourcePathRequired, "source path is required", field)
	default:
		res.AddError("invalid_"+fe.Tag(), fmt.Sprintf("%s failed %q", field, fe.Tag()), field)
	}
}

// checkSourcePaths warns about mapped paths missing from the options. It is
// skipped until a schema has been set.
func (c *Configurator) checkSourcePaths(res *diagnostic.Diagnostics) {
	if len(c.fieldList) == 0 {
		return
	}

	for i, f := range c.draft.Fields {
		if len(f.SourcePath) == 0 {
			continue
		}

		value := config.FieldMapping{SourcePath: f.SourcePath}.Flattened()
		if c.hasOption(value) {
			continue
		}

		leaf := f.SourcePath[len(f.SourcePath)-1]
		res.AddWarning(
			diagnostic.CodeUnknownSourcePath,
			fmt.Sprintf("source path %q is not in the schema", schema.LabelFor(value)),
			fmt.Sprintf("fields[%d].sourcePath", i),
			match.Suggest(leaf, c.fieldList, maxSuggestions)...,
		)
	}
}

// SuggestSourcePaths ranks the options against the name of the field at
// index i and returns up to n values. Nil when i is out of range.
func (c *Configurator) SuggestSourcePaths(i, n int) []string {
	if !c.inRange(i) {
		return nil
	}

	return match.Suggest(c.draft.Fields[i].FieldName, c.fieldList, n)
}
