package configurator

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"object-builder/internal/config"
	"object-builder/internal/schema"
)

// ConflictMessage is shown when the result name matches a source field.
const ConflictMessage = "There is already a source field with this name. Use a name that doesn't already exist."

// Notifier is told whenever the user changed the configuration. It carries
// no payload; the host re-reads Draft or Outbound.
type Notifier interface {
	ConfigurationChanged()
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func()

// ConfigurationChanged calls f.
func (f NotifierFunc) ConfigurationChanged() { f() }

// Option configures a Configurator.
type Option func(*Configurator)

// WithNotifier sets the host notified after every mutation.
func WithNotifier(n Notifier) Option {
	return func(c *Configurator) { c.notifier = n }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Configurator) { c.logger = l }
}

// WithCollator sets the collator used to order field path options.
func WithCollator(col schema.Collator) Option {
	return func(c *Configurator) { c.collator = col }
}

// Configurator is the editing state for one configuration panel.
type Configurator struct {
	id       string
	logger   zerolog.Logger
	notifier Notifier
	collator schema.Collator

	draft     *config.Draft
	fieldList []schema.FieldPathOption

	// originalName is captured once, on the first Activate.
	originalName     config.Name
	originalCaptured bool

	// active is false until the editable inputs exist.
	active       bool
	nameConflict bool
}

// New returns a Configurator holding the default shape.
func New(opts ...Option) *Configurator {
	c := &Configurator{
		id:        uuid.NewString(),
		logger:    zerolog.Nop(),
		draft:     config.Inbound(config.Default()),
		fieldList: []schema.FieldPathOption{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.collator == nil {
		c.collator = schema.NewCollator(schema.DefaultLocale)
	}

	c.logger = c.logger.With().Str("configurator", c.id).Logger()

	return c
}

// ID identifies this configurator in logs.
func (c *Configurator) ID() string {
	return c.id
}

// SetSchema rebuilds the field path options from tree and re-checks the
// result name against them. On error the previous options are kept.
func (c *Configurator) SetSchema(tree *schema.Tree) error {
	opts, err := tree.Options(c.collator)
	if err != nil {
		return fmt.Errorf("failed to flatten schema: %w", err)
	}

	c.fieldList = opts
	c.logger.Debug().Int("options", len(opts)).Msg("Schema set")

	c.checkNameConflict()

	return nil
}

// SetConfiguration starts editing a copy of cfg.
func (c *Configurator) SetConfiguration(cfg *config.Configuration) {
	c.SetDraft(config.Inbound(cfg))
}

// SetDraft starts editing d in place, deriving flattened paths first.
// Keys the host attached to fields are preserved.
func (c *Configurator) SetDraft(d *config.Draft) {
	if d == nil {
		d = config.Inbound(nil)
	}

	d.Enrich()
	c.draft = d

	c.logger.Debug().
		Str("resultName", string(d.ResultName)).
		Int("fields", len(d.Fields)).
		Msg("Configuration set")

	c.checkNameConflict()
}

// Activate marks the editable inputs as present. The first call captures
// the current result name as the original name; later calls never change it.
func (c *Configurator) Activate() {
	if !c.originalCaptured {
		c.originalName = c.draft.ResultName
		c.originalCaptured = true
	}

	c.active = true
	c.checkNameConflict()
}

// Active reports whether Activate has been called.
func (c *Configurator) Active() bool {
	return c.active
}

// DefaultShape returns the configuration used before any exists.
func (c *Configurator) DefaultShape() *config.Configuration {
	return config.Default()
}

// Draft returns the configuration being edited. The host owns it; callers
// must not retain it across SetConfiguration.
func (c *Configurator) Draft() *config.Draft {
	return c.draft
}

// Outbound returns the canonical shape to hand to the host.
func (c *Configurator) Outbound() *config.Configuration {
	return config.Outbound(c.draft)
}

// Options returns a copy of the current field path options.
func (c *Configurator) Options() []schema.FieldPathOption {
	return slices.Clone(c.fieldList)
}

// OriginalName returns the captured original result name.
func (c *Configurator) OriginalName() (config.Name, bool) {
	return c.originalName, c.originalCaptured
}

// NameConflict reports whether the result name currently collides with a
// source field.
func (c *Configurator) NameConflict() bool {
	return c.nameConflict
}

// checkNameConflict rejects a result name equal to a field path value unless
// it is the original name. It does nothing before activation.
func (c *Configurator) checkNameConflict() {
	if !c.active {
		return
	}

	candidate := string(c.draft.ResultName)
	conflict := c.draft.ResultName != c.originalName && c.hasOption(candidate)

	if conflict && !c.nameConflict {
		c.logger.Info().Str("resultName", candidate).Msg("Result name conflicts with a source field")
	}

	c.nameConflict = conflict
}

func (c *Configurator) hasOption(value string) bool {
	return slices.ContainsFunc(c.fieldList, func(o schema.FieldPathOption) bool {
		return o.Value == value
	})
}
