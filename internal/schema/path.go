package schema

import "strings"

const (
	// PathSeparator joins segments in the value form of a path.
	PathSeparator = "::"
	// LabelSeparator joins segments in the display form of a path.
	LabelSeparator = "."
)

// JoinPath returns the value form of a path: "Account::Name".
func JoinPath(segments []string) string {
	return strings.Join(segments, PathSeparator)
}

// Label returns the display form of a path: "Account.Name".
func Label(segments []string) string {
	return strings.Join(segments, LabelSeparator)
}

// SplitPath parses the value form of a path into segments.
// An empty value is an empty path, so clearing a picker clears the mapping.
func SplitPath(value string) []string {
	if value == "" {
		return []string{}
	}

	return strings.Split(value, PathSeparator)
}

// LabelFor converts a value-form path into its label form.
func LabelFor(value string) string {
	return Label(SplitPath(value))
}
