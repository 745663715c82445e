package config

// Inbound builds an editable draft from a canonical configuration.
func Inbound(cfg *Configuration) *Draft {
	if cfg == nil {
		cfg = Default()
	}

	d := &Draft{
		ResultName: cfg.ResultName,
		Fields:     make([]DraftField, 0, len(cfg.Fields)),
	}

	for _, f := range cfg.Fields {
		d.Fields = append(d.Fields, DraftField{
			FieldName:  f.FieldName,
			SourcePath: append([]string{}, f.SourcePath...),
		})
	}

	d.Enrich()

	return d
}

// Enrich derives Flattened for every field, keeping everything else.
func (d *Draft) Enrich() {
	if d.Fields == nil {
		d.Fields = []DraftField{}
	}

	for i := range d.Fields {
		f := &d.Fields[i]
		if f.SourcePath == nil {
			f.SourcePath = []string{}
		}

		f.Flattened = f.Mapping().Flattened()
	}
}

// Outbound returns a copy of d in the canonical shape: only the result name
// and each field's name and source path. The copy shares no slices with d.
func Outbound(d *Draft) *Configuration {
	if d == nil {
		return Default()
	}

	cfg := &Configuration{
		ResultName: d.ResultName,
		Fields:     make([]FieldMapping, 0, len(d.Fields)),
	}

	for _, f := range d.Fields {
		cfg.Fields = append(cfg.Fields, f.Mapping())
	}

	return cfg
}
