package configurator

import (
	"slices"

	"object-builder/internal/config"
	"object-builder/internal/schema"
)

// SetResultName replaces the result name.
func (c *Configurator) SetResultName(name string) {
	c.draft.ResultName = config.Name(name)
	c.checkNameConflict()
	c.changed("set_result_name")
}

// AddField appends an empty field mapping.
func (c *Configurator) AddField() {
	c.draft.Fields = append(c.draft.Fields, config.DraftField{
		FieldName:  "",
		SourcePath: []string{},
	})
	c.changed("add_field")
}

// RemoveField deletes the field at index i. An index out of range is ignored.
func (c *Configurator) RemoveField(i int) {
	if !c.inRange(i) {
		return
	}

	c.draft.Fields = slices.Delete(c.draft.Fields, i, i+1)
	c.changed("remove_field")
}

// RenameField sets the output name of the field at index i.
func (c *Configurator) RenameField(i int, name string) {
	if !c.inRange(i) {
		return
	}

	c.draft.Fields[i].FieldName = name
	c.changed("rename_field")
}

// SetSourcePath sets the source path of the field at index i from its value
// form, e.g. "Account::Name".
func (c *Configurator) SetSourcePath(i int, value string) {
	if !c.inRange(i) {
		return
	}

	f := &c.draft.Fields[i]
	f.SourcePath = schema.SplitPath(value)
	f.Flattened = value
	c.changed("set_source_path")
}

func (c *Configurator) inRange(i int) bool {
	return i >= 0 && i < len(c.draft.Fields)
}

func (c *Configurator) changed(op string) {
	c.logger.Debug().Str("op", op).Int("fields", len(c.draft.Fields)).Msg("Configuration changed")

	if c.notifier != nil {
		c.notifier.ConfigurationChanged()
	}
}
