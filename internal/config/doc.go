// Package config defines the object builder configuration, its edit-time
// draft form, and the normalizer that converts between them.
//
// The canonical shape is what the host persists and what this package emits:
//
//	resultName: Contact
//	fields:
//	  - fieldName: name
//	    sourcePath: [Account, Name]
//
// While editing, every field also carries a derived "flattened" value
// ("Account::Name") so a single-string picker can bind to it. Hosts may add
// other keys of their own. Outbound drops all of them.
package config
