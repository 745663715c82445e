// Package schema models the hierarchical source schema offered to the object
// builder and flattens it into addressable field paths.
//
// A schema is a tree rooted at a "Source" node. Every node names one field and
// may carry nested children:
//
//	Source:
//	  field: {fieldName: Source}
//	  children:
//	    Account:
//	      field: {fieldName: Account}
//	      children:
//	        Name:
//	          field: {fieldName: Name}
//
// # Path Syntax
//
// A field is addressed by the field names from the first level below Source
// down to the field itself:
//   - Value form (unique key): "Account::Name"
//   - Label form (display):    "Account.Name"
//
// Every node of the tree is addressable, not just leaves. Flattened options are
// ordered with a locale-aware collator rather than by byte order.
package schema
