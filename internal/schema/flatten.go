package schema

import (
	"maps"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is used when no collator is supplied.
var DefaultLocale = language.English

// Collator compares option values. *collate.Collator satisfies it.
type Collator interface {
	CompareString(a, b string) int
}

// NewCollator returns a collator for the given locale.
// A collator is not safe for concurrent use.
func NewCollator(tag language.Tag) *collate.Collator {
	return collate.New(tag)
}

// FlattenPaths walks children depth-first and returns one option per node,
// parents before their descendants. ancestors is the path from the root to
// the level that owns children.
//
// Siblings are visited in key order so the unsorted output is deterministic.
func FlattenPaths(children map[string]*Node, ancestors []string) []FieldPathOption {
	if len(children) == 0 {
		return nil
	}

	var result []FieldPathOption

	for _, key := range slices.Sorted(maps.Keys(children)) {
		node := children[key]
		if node == nil {
			continue
		}

		pathToHere := append(slices.Clip(ancestors), node.Field.FieldName)
		result = append(result, FieldPathOption{
			Value: JoinPath(pathToHere),
			Label: Label(pathToHere),
		})
		result = append(result, FlattenPaths(node.Children, pathToHere)...)
	}

	return result
}

// SortOptions orders options ascending by value. A nil collator uses
// DefaultLocale.
func SortOptions(opts []FieldPathOption, c Collator) {
	if c == nil {
		c = NewCollator(DefaultLocale)
	}

	slices.SortStableFunc(opts, func(a, b FieldPathOption) int {
		return c.CompareString(a.Value, b.Value)
	})
}

// Options flattens everything below the Source root and sorts the result.
func (t *Tree) Options(c Collator) ([]FieldPathOption, error) {
	if t == nil || t.Source == nil {
		return nil, ErrNoSource
	}

	opts := FlattenPaths(t.Source.Children, nil)
	if opts == nil {
		opts = []FieldPathOption{}
	}

	SortOptions(opts, c)

	return opts, nil
}
