// Package match ranks schema paths against an output field name so the
// configurator can suggest a source path for a field the user has named.
//
// Key functions:
//   - NormalizeName: folds case and separators for fuzzy comparison
//   - Levenshtein: computes edit distance between strings
//   - Rank: orders field path options by similarity to a name
package match
