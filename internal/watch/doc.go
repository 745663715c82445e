// Package watch drives a configurator from files on disk: whenever the
// schema or configuration file changes, it is reloaded into the configurator
// and the configuration is re-validated.
package watch
