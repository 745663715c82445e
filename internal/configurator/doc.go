// Package configurator holds the editing state behind an object builder
// configuration panel.
//
// The host drives a Configurator explicitly instead of through implicit
// lifecycle callbacks:
//
//	c := configurator.New(configurator.WithNotifier(host))
//	_ = c.SetSchema(tree)         // schema became available
//	c.SetConfiguration(saved)     // configuration became available
//	c.Activate()                  // panel shown; original name captured once
//	c.SetResultName("Contact")    // user edits; host is notified each time
//	if c.Valid() {
//		host.Save(c.Outbound())
//	}
//
// A Configurator is not safe for concurrent use. Every method runs to
// completion synchronously.
package configurator
